package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempMiniFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.mini")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

func runMinic(t *testing.T, args ...string) (code int, stdout string, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(append([]string{"minic"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestTokens(t *testing.T) {
	filename := writeTempMiniFile(t, "var x = 1 // one\n")
	code, out, errOut := runMinic(t, "tokens", filename)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	want := []string{
		"OFFSET   TOKEN        TEXT",
		`0        var          "var"`,
		`4        identifier   "x"`,
		`6        =            "="`,
		`8        literal      "1"`,
		`17       EOF          ""`,
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestParseFormats(t *testing.T) {
	filename := writeTempMiniFile(t, "var x = f<T>(1)")
	tests := []struct {
		format string
		want   string
	}{
		{"text", "  VarDecl 0\n"},
		{"json", `"type": "CallExpr"`},
		{"repr", "syntax.VarDecl"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			code, out, errOut := runMinic(t, "parse", "--format", tt.format, filename)
			if code != 0 {
				t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}

	code, _, errOut := runMinic(t, "parse", "--format", "yaml", filename)
	if code != 2 || !strings.Contains(errOut, `unknown format "yaml"`) {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestParseSyntaxError(t *testing.T) {
	filename := writeTempMiniFile(t, "var x 1")
	code, out, errOut := runMinic(t, "parse", filename)
	if code != 1 {
		t.Errorf("exit=%d, want 1", code)
	}
	if !strings.Contains(out, "VarDecl") {
		t.Errorf("tree not printed despite recovery:\n%s", out)
	}
	want := filename + `:1:7: expected = but got literal "1"`
	if !strings.Contains(errOut, want) {
		t.Errorf("stderr missing %q:\n%s", want, errOut)
	}
}

func TestCheckTypes(t *testing.T) {
	filename := writeTempMiniFile(t, "type A = number; var y: A = 1; function f(): string;\ny; f(); @")
	code, out, errOut := runMinic(t, "check", "--types", filename)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	want := "1: number\n2: number\n3: -\n4: number\n5: string\n6: -\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestCheckDiagnostics(t *testing.T) {
	filename := writeTempMiniFile(t, "var x = 1; var x = 2;\ny = x")
	code, out, errOut := runMinic(t, "check", filename)
	if code != 1 {
		t.Errorf("exit=%d, want 1", code)
	}
	if out != "" {
		t.Errorf("unexpected stdout:\n%s", out)
	}
	want := filename + ":1:12: cannot redeclare x; first declared at 0\n" +
		filename + ":2:1: could not resolve y\n"
	if errOut != want {
		t.Errorf("stderr =\n%s\nwant\n%s", errOut, want)
	}
}

func TestEmit(t *testing.T) {
	filename := writeTempMiniFile(t, "function  f<T>(a:T):T;\nvar x=f<number>(1)")

	code, out, errOut := runMinic(t, "emit", filename)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	if want := "function f<T>(a: T): T;\nvar x = f(1)\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	_, out, _ = runMinic(t, "emit", "--type-args", filename)
	if want := "function f<T>(a: T): T;\nvar x = f<number>(1)\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestMaxErrors(t *testing.T) {
	filename := writeTempMiniFile(t, "a; b; c")
	code, _, errOut := runMinic(t, "--max-errors", "1", "check", filename)
	if code != 1 {
		t.Errorf("exit=%d, want 1", code)
	}
	want := filename + ":1:1: could not resolve a\ntoo many errors (2 more)\n"
	if errOut != want {
		t.Errorf("stderr =\n%s\nwant\n%s", errOut, want)
	}
}

func TestTrace(t *testing.T) {
	filename := writeTempMiniFile(t, "var x = 1")
	code, _, errOut := runMinic(t, "--trace", "check", filename)
	if code != 0 {
		t.Fatalf("exit=%d\nstderr:\n%s", code, errOut)
	}
	for _, phase := range []string{"read", "parse", "bind", "check"} {
		if !strings.Contains(errOut, "trace: "+phase) {
			t.Errorf("trace missing phase %s:\n%s", phase, errOut)
		}
	}
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.mini")
	code, _, errOut := runMinic(t, "check", missing)
	if code != 1 {
		t.Errorf("exit=%d, want 1", code)
	}
	if !strings.HasPrefix(errOut, "minic: open "+missing) {
		t.Errorf("stderr = %q", errOut)
	}

	_, _, debugOut := runMinic(t, "--debug", "check", missing)
	if len(debugOut) <= len(errOut) {
		t.Errorf("--debug added no stack trace:\n%s", debugOut)
	}

	code, _, errOut = runMinic(t, "check")
	if code != 1 || !strings.Contains(errOut, "no input file") {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestInitAndBuild(t *testing.T) {
	dir := t.TempDir()
	code, out, errOut := runMinic(t, "init", "--dir", dir, "demo")
	if code != 0 {
		t.Fatalf("init exit=%d\nstderr:\n%s", code, errOut)
	}
	manifest := filepath.Join(dir, "mini.yaml")
	if !strings.Contains(out, manifest) {
		t.Errorf("init output = %q", out)
	}

	code, _, errOut = runMinic(t, "init", "--dir", dir, "demo")
	if code != 1 || !strings.Contains(errOut, "already exists") {
		t.Errorf("second init exit=%d stderr=%q", code, errOut)
	}

	if err := os.WriteFile(filepath.Join(dir, "main.mini"), []byte("var  x=1;\nx"), 0o600); err != nil {
		t.Fatal(err)
	}
	code, out, errOut = runMinic(t, "build", "--manifest", manifest)
	if code != 0 {
		t.Fatalf("build exit=%d\nstderr:\n%s", code, errOut)
	}
	if out != "demo: 1 files, 0 with errors\n" {
		t.Errorf("build output = %q", out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out", "main.mini"))
	if err != nil {
		t.Fatalf("emitted file: %v", err)
	}
	if string(data) != "var x = 1;\nx\n" {
		t.Errorf("emitted = %q", data)
	}
}

func TestBuildWithErrors(t *testing.T) {
	dir := t.TempDir()
	if code, _, errOut := runMinic(t, "init", "--dir", dir, "bad"); code != 0 {
		t.Fatalf("init: %s", errOut)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.mini"), []byte("var s: string = 1"), 0o600); err != nil {
		t.Fatal(err)
	}
	code, out, errOut := runMinic(t, "build", "--manifest", filepath.Join(dir, "mini.yaml"))
	if code != 1 {
		t.Errorf("exit=%d, want 1", code)
	}
	if !strings.Contains(errOut, "cannot assign initializer of type 'number'") {
		t.Errorf("stderr = %q", errOut)
	}
	if out != "bad: 1 files, 1 with errors\n" {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "bad.mini")); !os.IsNotExist(err) {
		t.Errorf("output written for a file with errors: %v", err)
	}
}

func TestBuildBadManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "mini.yaml")
	if err := os.WriteFile(manifest, []byte("name: p\nsources: [a.mini]\nextra: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	code, _, errOut := runMinic(t, "build", "--manifest", manifest)
	if code != 1 || !strings.Contains(errOut, "field extra not found") {
		t.Errorf("exit=%d stderr=%q", code, errOut)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runMinic(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "minic version "+Version) {
		t.Errorf("exit=%d output=%q", code, out)
	}
}

func TestFormatLiteral(t *testing.T) {
	tests := map[string]string{
		"":      `""`,
		"x":     `"x"`,
		"a\"b":  `"a\"b"`,
		"\t\\":  `"\t\\"`,
		"\n\r@": `"\n\r@"`,
	}
	for in, want := range tests {
		if got := formatLiteral(in); got != want {
			t.Errorf("formatLiteral(%q) = %s, want %s", in, got, want)
		}
	}
}
