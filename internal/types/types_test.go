package types

import (
	"testing"

	"github.com/you-not-fish/mini/internal/syntax"
)

func TestIntrinsics(t *testing.T) {
	tests := []struct {
		typ   *Type
		name  string
		flags TypeFlags
	}{
		{String, "string", FlagString},
		{Number, "number", FlagNumber},
		{Error, "error", FlagAny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.typ.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tt.typ.Name(), tt.name)
			}
			if tt.typ.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.typ.String(), tt.name)
			}
			if tt.typ.Flags() != tt.flags {
				t.Errorf("Flags() = %v, want %v", tt.typ.Flags(), tt.flags)
			}
			if !tt.typ.Is(FlagIntrinsic) {
				t.Error("intrinsic type does not carry an intrinsic flag")
			}
			if tt.typ.IsTypeParam() {
				t.Error("intrinsic type reports IsTypeParam")
			}
		})
	}

	if String.ID() == Number.ID() || Number.ID() == Error.ID() || String.ID() == Error.ID() {
		t.Error("intrinsic ids are not unique")
	}
}

func TestLookupIntrinsic(t *testing.T) {
	if LookupIntrinsic("string") != String {
		t.Error("LookupIntrinsic(string) is not the string singleton")
	}
	if LookupIntrinsic("number") != Number {
		t.Error("LookupIntrinsic(number) is not the number singleton")
	}
	for _, name := range []string{"error", "unknown", "T", ""} {
		if got := LookupIntrinsic(name); got != nil {
			t.Errorf("LookupIntrinsic(%q) = %v, want nil", name, got)
		}
	}
}

func TestTypeParams(t *testing.T) {
	sym := NewSymbol("T", syntax.NewName(3, "T"))
	a := NewTypeParam("T", sym)
	b := NewTypeParam("T", sym)

	if a == b || a.ID() == b.ID() {
		t.Error("type parameters with the same name must be distinct")
	}
	if !a.IsTypeParam() || a.Flags() != FlagTypeParameter {
		t.Errorf("Flags() = %v, want TypeParameter", a.Flags())
	}
	if a.Is(FlagIntrinsic) {
		t.Error("type parameter carries an intrinsic flag")
	}
	if a.Symbol() != sym {
		t.Error("Symbol() is not the declaring symbol")
	}
	if a.String() != "T" {
		t.Errorf("String() = %q, want T", a.String())
	}
}

func TestTypeStringNil(t *testing.T) {
	var nilType *Type
	if nilType.String() != "unknown" {
		t.Errorf("nil String() = %q, want unknown", nilType.String())
	}
	if nilType.Is(FlagAny) {
		t.Error("nil type reports a flag")
	}
	if got := NewIntrinsic(FlagUnknown, "").String(); got != "unknown" {
		t.Errorf("nameless String() = %q, want unknown", got)
	}
}

func TestTypeFlagsString(t *testing.T) {
	tests := []struct {
		flags TypeFlags
		want  string
	}{
		{0, "0"},
		{FlagAny, "Any"},
		{FlagTypeParameter, "TypeParameter"},
		{FlagIntrinsic, "Any|Unknown|String|Number"},
		{FlagNumber | 1<<10, "Number|0x400"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("TypeFlags(%#x).String() = %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}
}

func TestMeaningOf(t *testing.T) {
	tests := []struct {
		node syntax.Node
		want Meaning
		ok   bool
	}{
		{&syntax.VarDecl{}, ValueMeaning, true},
		{&syntax.Field{}, ValueMeaning, true},
		{&syntax.TypeDecl{}, TypeMeaning, true},
		{&syntax.Name{}, TypeMeaning, true},
		{&syntax.FuncDecl{}, CallableMeaning, true},
		{&syntax.ExprStmt{}, 0, false},
		{&syntax.BasicLit{}, 0, false},
	}
	for _, tt := range tests {
		m, ok := MeaningOf(tt.node)
		if m != tt.want || ok != tt.ok {
			t.Errorf("MeaningOf(%T) = %v, %v; want %v, %v", tt.node, m, ok, tt.want, tt.ok)
		}
	}
}

func TestSymbolDecls(t *testing.T) {
	typ := &syntax.TypeDecl{Name: syntax.NewName(5, "x")}
	v := &syntax.VarDecl{Name: syntax.NewName(20, "x")}

	sym := NewSymbol("x", typ)
	if sym.ValueDecl != nil {
		t.Error("type alias must not become the value declaration")
	}
	sym.Add(v)
	if sym.ValueDecl != v {
		t.Error("var declaration did not become the value declaration")
	}
	if sym.Decl(TypeMeaning) != typ || sym.Decl(ValueMeaning) != v {
		t.Error("Decl() returned the wrong declaration")
	}
	if sym.Has(CallableMeaning) {
		t.Error("Has(callable) = true")
	}
	if got := sym.String(); got != "x [type value]" {
		t.Errorf("String() = %q", got)
	}

	sym.Add(&syntax.ExprStmt{})
	if sym.ValueDecl != v {
		t.Error("non-declaration replaced the value declaration")
	}
}

func TestSymbolPos(t *testing.T) {
	if got := (&Symbol{Name: "x"}).Pos(); got != syntax.NoPos {
		t.Errorf("empty symbol Pos() = %v, want NoPos", got)
	}
	n := syntax.NewName(7, "T")
	if got := NewSymbol("T", n).Pos(); got != 7 {
		t.Errorf("Pos() = %v, want 7", got)
	}
}

func TestTableInsertAndLookup(t *testing.T) {
	tab := NewTable("module")

	x := NewSymbol("x", &syntax.VarDecl{})
	if existing := tab.Insert(x); existing != nil {
		t.Errorf("Insert() returned non-nil for first insert")
	}
	if tab.Lookup("x") != x {
		t.Errorf("Lookup() did not return inserted symbol")
	}

	x2 := NewSymbol("x", &syntax.TypeDecl{})
	if existing := tab.Insert(x2); existing != x {
		t.Errorf("Insert() should return first symbol for duplicate")
	}
	if tab.Lookup("x") != x {
		t.Errorf("duplicate Insert() replaced the symbol")
	}
	if tab.Lookup("y") != nil {
		t.Errorf("Lookup() found an undeclared name")
	}
	if tab.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tab.Len())
	}
}

func TestTableNamesAndString(t *testing.T) {
	tab := NewTable("function f")
	for _, name := range []string{"c", "a", "b"} {
		tab.Insert(NewSymbol(name, &syntax.Field{}))
	}
	tab.Lookup("b").Add(syntax.NewName(0, "b"))

	names := tab.Names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("Names() = %v, want [a b c]", names)
	}

	want := "table function f {\n  a [value]\n  b [value type]\n  c [value]\n}\n"
	if got := tab.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if tab.Comment() != "function f" {
		t.Errorf("Comment() = %q", tab.Comment())
	}
}

func TestSignatureString(t *testing.T) {
	tsym := NewSymbol("T", syntax.NewName(0, "T"))
	tp := NewTypeParam("T", tsym)
	sig := &Signature{
		TParams:    []*Type{tp},
		Params:     []*Symbol{NewSymbol("x", &syntax.Field{}), NewSymbol("y", &syntax.Field{})},
		ParamTypes: []*Type{tp, nil},
		Result:     Number,
	}
	if got, want := sig.String(), "<T>(x: T, y): number"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if sig.TParam("T") != tp || sig.TParam("U") != nil {
		t.Error("TParam() lookup failed")
	}

	empty := &Signature{Result: Error}
	if got := empty.String(); got != "(): error" {
		t.Errorf("String() = %q, want (): error", got)
	}
}
