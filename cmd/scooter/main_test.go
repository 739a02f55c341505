package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"scooter/internal/ir"
)

const goodSource = `
fn add(a: i32, b: i32) -> i32 { return a + b; }
fn main() -> i32 { return add(1, 2); }
`

const badSource = `fn main() -> i32 { return true; }`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	be.Err(t, os.MkdirAll(filepath.Dir(path), 0o755), nil)
	be.Err(t, os.WriteFile(path, []byte(content), 0o600), nil)
	return path
}

// execute runs the CLI with colors off and returns stdout, stderr and the exit code.
func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	code := run(root, append(args, "--color=off"))
	return stdout.String(), stderr.String(), code
}

func TestCheckFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.sc", goodSource)
	stdout, stderr, code := execute(t, "check", path)
	be.Equal(t, code, 0)
	be.Equal(t, stderr, "")
	be.Equal(t, stdout, "checked 1 units: 0 failed, 0 cached, 0 diagnostics\n")
}

func TestCheckFileFails(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.sc", badSource)
	_, stderr, code := execute(t, "check", path, "--format=short", "--quiet")
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, "ERROR SEM3014: "))
	// errFailed itself is not printed
	be.True(t, !strings.Contains(stderr, "compilation failed"))
}

func TestCheckDirJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sc", goodSource)
	writeFile(t, dir, "b.sc", badSource)
	writeFile(t, dir, "nested/c.sc", goodSource)

	stdout, stderr, code := execute(t, "check", dir, "--format=json")
	be.Equal(t, code, 1)
	be.Equal(t, stdout, "checked 3 units: 1 failed, 0 cached, 1 diagnostics\n")

	var doc struct {
		Count       int `json:"count"`
		Diagnostics []struct {
			Code string `json:"code"`
		} `json:"diagnostics"`
	}
	be.Err(t, json.Unmarshal([]byte(stderr), &doc), nil)
	be.Equal(t, doc.Count, 1)
	be.Equal(t, doc.Diagnostics[0].Code, "SEM3014")
}

func TestCheckFailurePrintsSummary(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.sc", badSource)
	stdout, _, code := execute(t, "check", path, "--format=short")
	be.Equal(t, code, 1)
	be.Equal(t, stdout, "checked 1 units: 1 failed, 0 cached, 1 diagnostics\n")
}

func TestCheckDuplicateFunctionNote(t *testing.T) {
	src := "fn f() -> i32 { return 1; }\nfn f() -> i32 { return 2; }\nfn main() -> i32 { return f(); }\n"
	path := writeFile(t, t.TempDir(), "dup.sc", src)
	_, stderr, code := execute(t, "check", path, "--quiet")
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, "SEM3006: the function 'f' is defined multiple times"))
	be.True(t, strings.Contains(stderr, "note:"))
	be.True(t, strings.Contains(stderr, "dup.sc:1:4: previous definition of 'f' here"))
	be.True(t, !strings.Contains(stderr, "IR9002"))
}

func TestNoMainFlagAndCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	path := writeFile(t, t.TempDir(), "lib.sc", "fn helper() -> i32 { return 1; }")

	_, _, code := execute(t, "check", path, "--cache", "--quiet", "--no-main")
	be.Equal(t, code, 0)
	// без --no-main кэш не должен скрыть отсутствие main
	_, stderr, code := execute(t, "check", path, "--cache", "--quiet")
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, "SEM3020"))
	stdout, _, code := execute(t, "check", path, "--cache", "--no-main")
	be.Equal(t, code, 0)
	be.Equal(t, stdout, "checked 1 units: 0 failed, 1 cached, 0 diagnostics\n")
}

func TestCheckUsesCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	path := writeFile(t, t.TempDir(), "ok.sc", goodSource)

	_, _, code := execute(t, "check", path, "--cache")
	be.Equal(t, code, 0)
	stdout, _, code := execute(t, "check", path, "--cache")
	be.Equal(t, code, 0)
	be.Equal(t, stdout, "checked 1 units: 0 failed, 1 cached, 0 diagnostics\n")
}

func TestBuildFileText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "prog.sc", goodSource)
	out := filepath.Join(dir, "out")

	stdout, _, code := execute(t, "build", path, "-o", out)
	be.Equal(t, code, 0)
	be.True(t, strings.HasPrefix(stdout, "built 1 units"))

	text, err := os.ReadFile(filepath.Join(out, "prog.ir"))
	be.Err(t, err, nil)
	be.True(t, strings.HasPrefix(string(text), "L0:"))
	be.True(t, strings.Contains(string(text), "call L0, 2"))
}

func TestBuildToStdout(t *testing.T) {
	path := writeFile(t, t.TempDir(), "prog.sc", goodSource)
	stdout, _, code := execute(t, "build", path, "-o", "-")
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(stdout, "param "))
	be.True(t, !strings.Contains(stdout, "built"))
}

func TestBuildFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.sc", badSource)
	out := filepath.Join(dir, "out")
	_, _, code := execute(t, "build", path, "-o", out, "--quiet")
	be.Equal(t, code, 1)
	_, err := os.Stat(filepath.Join(out, "bad.ir"))
	be.True(t, os.IsNotExist(err))
}

func TestBuildFromManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scooter.toml", `
[package]
name = "demo"

[build]
main = "src/main.sc"
emit = "msgpack"
`)
	writeFile(t, dir, "src/main.sc", goodSource)
	t.Chdir(filepath.Join(dir, "src"))

	_, stderr, code := execute(t, "build", "--quiet")
	be.Equal(t, code, 0)
	be.Equal(t, stderr, "")

	f, err := os.Open(filepath.Join(dir, "build", "main.irpk"))
	be.Err(t, err, nil)
	defer f.Close()
	root, err := ir.Decode(f)
	be.Err(t, err, nil)
	_, ok := root.Func("main")
	be.True(t, ok)
}

func TestBuildEmitFlagOverridesManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scooter.toml", "[package]\nname = \"demo\"\n[build]\nmain = \"main.sc\"\nemit = \"msgpack\"\n")
	writeFile(t, dir, "main.sc", goodSource)
	t.Chdir(dir)

	_, _, code := execute(t, "build", "--quiet", "--emit=ir")
	be.Equal(t, code, 0)
	_, err := os.Stat(filepath.Join(dir, "build", "main.ir"))
	be.Err(t, err, nil)
}

func TestBuildWithoutManifest(t *testing.T) {
	t.Chdir(t.TempDir())
	_, stderr, code := execute(t, "build")
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, "scooter.toml"))
}

func TestBuildRejectsUnknownEmit(t *testing.T) {
	path := writeFile(t, t.TempDir(), "prog.sc", goodSource)
	_, stderr, code := execute(t, "build", path, "--emit=llvm")
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, `unknown emit kind "llvm"`))
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		path, emit, want string
	}{
		{"src/main.sc", "ir", "main.ir"},
		{"main.sc", "msgpack", "main.irpk"},
		{"weird.txt", "ir", "weird.txt.ir"},
	}
	for _, tt := range tests {
		be.Equal(t, outputName(tt.path, tt.emit), tt.want)
	}
}

func TestTokenizeJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.sc", "fn main() {}")
	stdout, _, code := execute(t, "tokenize", path, "--tokens=json")
	be.Equal(t, code, 0)

	var toks []struct {
		Kind string `json:"kind"`
	}
	be.Err(t, json.Unmarshal([]byte(stdout), &toks), nil)
	be.Equal(t, len(toks), 7)
}

func TestParseDump(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.sc", goodSource)
	stdout, _, code := execute(t, "parse", path, "--dump")
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(stdout, "FnDecl"))
	be.True(t, !strings.Contains(stdout, "Span"))
}

func TestParseSyntaxError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.sc", "fn main() -> i32 { let x: i32 = 1 }")
	_, stderr, code := execute(t, "parse", path)
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, "SYN2012"))

	path = writeFile(t, t.TempDir(), "noarrow.sc", "fn main() { }")
	_, stderr, code = execute(t, "parse", path, "--format=short")
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, "ERROR SYN2208: "))
}

func TestVersionJSON(t *testing.T) {
	stdout, _, code := execute(t, "version", "--as=json")
	be.Equal(t, code, 0)
	var payload versionPayload
	be.Err(t, json.Unmarshal([]byte(stdout), &payload), nil)
	be.Equal(t, payload.Tool, "scooter")
}

func TestInvalidFlags(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.sc", goodSource)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"check", path, "--format=xml"}, "unknown diagnostics format"},
		{[]string{"check", path, "--trace-level=loud"}, "invalid trace level"},
		{[]string{"check", path, "--max-diagnostics=-1"}, "must not be negative"},
	}
	for _, tt := range tests {
		_, stderr, code := execute(t, tt.args...)
		be.Equal(t, code, 1)
		be.True(t, strings.Contains(stderr, tt.want))
	}
}

func TestTraceStream(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.sc", goodSource)
	_, stderr, code := execute(t, "check", path, "--quiet", "--trace-level=phase")
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(stderr, "cmd:check"))
}

func TestTraceRingDumpedOnFailure(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.sc", goodSource)
	bad := writeFile(t, dir, "bad.sc", badSource)

	_, stderr, code := execute(t, "check", ok, "--quiet", "--trace-level=error", "--trace-mode=ring")
	be.Equal(t, code, 0)
	be.Equal(t, stderr, "")

	_, stderr, code = execute(t, "check", bad, "--quiet", "--trace-level=error", "--trace-mode=ring")
	be.Equal(t, code, 1)
	be.True(t, strings.Contains(stderr, "unit:"))
}

func TestTimings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.sc", goodSource)
	_, stderr, code := execute(t, "check", path, "--quiet", "--timings")
	be.Equal(t, code, 0)
	be.True(t, strings.Contains(stderr, "timings:"))
	be.True(t, strings.Contains(stderr, "lower"))
}

func TestProfileFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ok.sc", goodSource)
	mem := filepath.Join(dir, "mem.pprof")
	cpu := filepath.Join(dir, "cpu.pprof")

	_, _, code := execute(t, "check", path, "--quiet", "--memprofile", mem, "--cpuprofile", cpu)
	be.Equal(t, code, 0)
	for _, p := range []string{mem, cpu} {
		st, err := os.Stat(p)
		be.Err(t, err, nil)
		be.True(t, st.Size() > 0)
	}
}
