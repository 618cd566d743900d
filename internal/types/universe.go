package types

// Intrinsic types. Each exists exactly once per process.
var (
	String = NewIntrinsic(FlagString, "string")
	Number = NewIntrinsic(FlagNumber, "number")

	// Error is the error sentinel produced when a name cannot be resolved
	// or a type cannot be determined.
	Error = NewIntrinsic(FlagAny, "error")
)

// universe maps the type names every module can use without declaring them.
var universe = map[string]*Type{
	"string": String,
	"number": Number,
}

// LookupIntrinsic returns the intrinsic type spelled name, or nil.
func LookupIntrinsic(name string) *Type {
	return universe[name]
}
