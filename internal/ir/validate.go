package ir

import (
	"errors"
	"fmt"
)

// Validate checks IR invariants:
//   - each function label sits on its entry instruction, and only there;
//   - no destination is a constant;
//   - every temporary is defined exactly once;
//   - constant operands exist in the pool;
//   - call targets are known labels.
func Validate(r *Root) error {
	if r == nil {
		return nil
	}
	var errs []error
	errs = append(errs, validateLabels(r)...)
	errs = append(errs, validateAddrs(r)...)
	return errors.Join(errs...)
}

func validateLabels(r *Root) []error {
	var errs []error
	owners := make(map[uint32]int)
	for i := range r.Instrs {
		if l := r.Instrs[i].Label; l != nil {
			if prev, dup := owners[l.Index]; dup {
				errs = append(errs, fmt.Errorf("%s: attached to instructions %d and %d", l, prev, i))
			}
			owners[l.Index] = i
		}
	}
	for _, f := range r.Funcs {
		if f.Entry < 0 || f.Entry >= len(r.Instrs) {
			errs = append(errs, fmt.Errorf("function %s: entry %d out of range", f.Name, f.Entry))
			continue
		}
		l := r.Instrs[f.Entry].Label
		if l == nil || l.Index != f.Label.Index {
			errs = append(errs, fmt.Errorf("function %s: %s is not on entry instruction %d", f.Name, f.Label, f.Entry))
		}
		if f.Label.Index >= r.LabelCount {
			errs = append(errs, fmt.Errorf("function %s: %s exceeds label count %d", f.Name, f.Label, r.LabelCount))
		}
	}
	for i := range r.Instrs {
		in := &r.Instrs[i]
		if in.Kind == InstrCall && in.Callee.Index >= r.LabelCount {
			errs = append(errs, fmt.Errorf("instr %d: call to unknown %s", i, in.Callee))
		}
	}
	return errs
}

func validateAddrs(r *Root) []error {
	var errs []error
	defined := make(map[uint32]int)
	poolLen := 0
	if r.Pool != nil {
		poolLen = r.Pool.Len()
	}
	for i := range r.Instrs {
		in := &r.Instrs[i]
		if dst, ok := in.Dest(); ok {
			switch dst.Kind {
			case AddrConst:
				errs = append(errs, fmt.Errorf("instr %d: constant destination", i))
			case AddrTemp:
				if prev, dup := defined[dst.Index]; dup {
					errs = append(errs, fmt.Errorf("instr %d: %s already defined at %d", i, dst, prev))
				}
				defined[dst.Index] = i
			}
		}
		for _, op := range in.Operands() {
			if op.Kind == AddrConst && int(op.Index) >= poolLen {
				errs = append(errs, fmt.Errorf("instr %d: constant %d not in pool", i, op.Index))
			}
		}
	}
	return errs
}
