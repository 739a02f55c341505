// Package testkit holds checks and fixtures shared by compiler tests.
package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"scooter/internal/ast"
	"scooter/internal/ir"
	"scooter/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) file.Span lies within the content of sf
// 2) every item span is non-empty and inside file.Span
// 3) items appear in source order without overlapping
func CheckSpanInvariants(f *ast.File, sf *source.File) error {
	if f == nil || sf == nil {
		return fmt.Errorf("nil file")
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}

	var prevEnd uint32
	for i, it := range f.Items {
		sp := it.Pos()
		if sp.End <= sp.Start {
			return fmt.Errorf("item %d: empty span %v", i, sp)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("item %d: span %v is outside file span %v", i, sp, f.Span)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("item %d: span %v overlaps previous item", i, sp)
		}
		prevEnd = sp.End
	}
	return nil
}

// CheckIRInvariants validates root and additionally checks what lowering
// guarantees beyond ir.Validate:
// 1) one FuncInfo per label, entries in increasing order
// 2) temporaries are numbered t0, t1, ... in order of definition
// 3) a call's argc equals the number of params directly before it
func CheckIRInvariants(root *ir.Root) error {
	if root == nil {
		return fmt.Errorf("nil root")
	}
	errs := []error{ir.Validate(root)}

	if n := len(root.Funcs); uint32(n) != root.LabelCount {
		errs = append(errs, fmt.Errorf("label count %d, functions %d", root.LabelCount, n))
	}
	for i := 1; i < len(root.Funcs); i++ {
		if root.Funcs[i].Entry <= root.Funcs[i-1].Entry {
			errs = append(errs, fmt.Errorf("function %s: entry %d not after %s", root.Funcs[i].Name, root.Funcs[i].Entry, root.Funcs[i-1].Name))
		}
	}

	var nextTemp uint32
	params := 0
	for i := range root.Instrs {
		in := &root.Instrs[i]
		if dst, ok := in.Dest(); ok && dst.Kind == ir.AddrTemp {
			if dst.Index != nextTemp {
				errs = append(errs, fmt.Errorf("instr %d: defines %s, want t%d", i, dst, nextTemp))
			}
			nextTemp = dst.Index + 1
		}
		switch in.Kind {
		case ir.InstrParam:
			params++
			continue
		case ir.InstrCall:
			if int(in.Argc) != params {
				errs = append(errs, fmt.Errorf("instr %d: call with argc %d after %d params", i, in.Argc, params))
			}
		}
		params = 0
	}
	return errors.Join(errs...)
}
