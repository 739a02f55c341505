package testkit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"scooter/internal/driver"
	"scooter/internal/ir"
	"scooter/internal/source"
)

func TestGoldenCases(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.md"))
	be.Err(t, err, nil)
	be.True(t, len(files) > 0)

	for _, path := range files {
		data, err := os.ReadFile(path)
		be.Err(t, err, nil)
		cases, err := ExtractCases(data)
		be.Err(t, err, nil)

		for _, tc := range cases {
			t.Run(tc.Name, func(t *testing.T) {
				fs := source.NewFileSet()
				id := fs.AddVirtual(tc.Name+".sc", []byte(tc.Source))
				res := driver.CompileFile(context.Background(), fs, id, driver.Options{})

				var got []string
				for _, d := range res.Bag.Items() {
					got = append(got, d.Code.ID())
				}
				if tc.Errors != nil {
					be.Equal(t, strings.Join(got, "\n"), strings.Join(tc.Errors, "\n"))
					return
				}
				if len(got) != 0 {
					t.Fatalf("%s:%d: unexpected diagnostics %v", path, tc.Line, got)
				}
				if err := CheckSpanInvariants(res.File, fs.Get(id)); err != nil {
					t.Fatalf("span invariants: %v", err)
				}
				if err := CheckIRInvariants(res.Root); err != nil {
					t.Fatalf("ir invariants: %v", err)
				}
				be.Equal(t, res.Root.String(), tc.IR)
			})
		}
	}
}

func TestExtractCasesErrors(t *testing.T) {
	cases := []struct{ name, md, want string }{
		{"fence outside", "```ir\nL0: nop\n```\n", "fence outside of a test"},
		{"no source", "## Test: x\n\n```ir\nL0: nop\n```\n", "has no scooter fence"},
		{"no expectation", "## Test: x\n\n```scooter\nfn main() -> () { }\n```\n", "has no ir or errors fence"},
		{"unknown fence", "## Test: x\n\n```rust\nfn main() {}\n```\n", "unknown fence language"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractCases([]byte(tc.md))
			be.Err(t, err, tc.want)
		})
	}
}

func TestExtractCasesEmptyErrorsFence(t *testing.T) {
	md := "## Test: clean\n\n```scooter\nfn main() -> () { }\n```\n\n```errors\n```\n"
	cases, err := ExtractCases([]byte(md))
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 1)
	be.Equal(t, len(cases[0].Errors), 0)
	be.True(t, cases[0].Errors != nil)
	be.Equal(t, cases[0].Line, 1)
}

func TestCheckIRInvariantsCatchesArgc(t *testing.T) {
	root := ir.NewRoot()
	root.LabelCount = 1
	c := ir.Const(root.Pool.Insert(ir.IntLiteral(1)))
	copyIn, _ := ir.NewCopy(ir.Temp(0), c)
	call, _ := ir.NewCall(ir.Temp(1), ir.Label{Index: 0}, 2)
	root.Instrs = []ir.Instr{copyIn, ir.NewParam(ir.Temp(0)), call, ir.NewReturn(ir.Temp(1))}
	root.Instrs[0].SetLabel(ir.Label{Index: 0})
	root.Funcs = []ir.FuncInfo{{Name: "main", Label: ir.Label{Index: 0}, Entry: 0}}

	be.Err(t, CheckIRInvariants(root), "call with argc 2 after 1 params")
}
