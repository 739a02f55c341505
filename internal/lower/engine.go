// Package lower turns a resolved AST into three-address IR.
package lower

import (
	"fmt"

	"fortio.org/safecast"

	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/ir"
	"scooter/internal/symbols"
)

// Engine lowers one compilation unit. Every counter lives on the engine, so
// a fresh Engine must be used per unit.
type Engine struct {
	instrs   []ir.Instr
	names    *symbols.Mapper
	labels   *symbols.Mapper
	pool     *ir.Pool[ir.Literal]
	funcs    []ir.FuncInfo
	placed   map[uint32]struct{}
	nextTemp uint32
}

// New creates an engine. labels must already hold every function of the
// unit, as produced by symbols.Resolver.
func New(labels *symbols.Mapper) *Engine {
	return &Engine{
		names:  symbols.NewMapper(),
		labels: labels,
		pool:   ir.NewPool[ir.Literal](),
		placed: make(map[uint32]struct{}),
	}
}

// Lower emits IR for every function and impl method in file. Any name the
// resolver should have guaranteed but cannot be found aborts lowering.
func (e *Engine) Lower(file *ast.File) (*ir.Root, error) {
	for _, fn := range file.Functions() {
		if err := e.lowerFn(fn); err != nil {
			return nil, fmt.Errorf("lower %s: %w", fn.QualifiedName(), err)
		}
	}
	return &ir.Root{
		LabelCount: e.labels.Next(),
		Pool:       e.pool,
		Instrs:     e.instrs,
		Funcs:      e.funcs,
	}, nil
}

func (e *Engine) lowerFn(fn *ast.FnDecl) (err error) {
	name := fn.QualifiedName()
	idx, err := e.labels.Find(name)
	if err != nil {
		return diag.ErrorAt(diag.SemaUndefinedFunction, fn.Name.Span, "Undefined function '%s'", name)
	}
	if _, dup := e.placed[idx]; dup {
		// у повторного объявления нет своей метки
		return diag.ErrorAt(diag.SemaDuplicateDefinition, fn.Name.Span, "the function '%s' is defined multiple times", name)
	}
	e.placed[idx] = struct{}{}
	label := ir.Label{Index: idx}

	e.names.Push()
	defer func() {
		if perr := e.names.Pop(); perr != nil && err == nil {
			err = perr
		}
	}()

	for _, p := range fn.Params {
		e.names.Insert(p.Name.Name)
	}

	entry := len(e.instrs)
	for _, stmt := range fn.Body.Stmts {
		if err := e.lowerStmt(stmt); err != nil {
			return err
		}
	}
	if len(e.instrs) == entry {
		e.emit(ir.NewNop())
	}
	e.instrs[entry].SetLabel(label)
	e.funcs = append(e.funcs, ir.FuncInfo{
		Name:   name,
		Label:  label,
		Entry:  entry,
		Params: len(fn.Params),
	})
	return nil
}

// emit appends an instruction and returns its position.
func (e *Engine) emit(in ir.Instr) int {
	e.instrs = append(e.instrs, in)
	return len(e.instrs) - 1
}

func (e *Engine) emitChecked(in ir.Instr, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return e.emit(in), nil
}

func (e *Engine) freshTemp() ir.Addr {
	t := ir.Temp(e.nextTemp)
	e.nextTemp++
	return t
}

// dest returns the destination of the instruction at pos.
func (e *Engine) dest(pos int) (ir.Addr, error) {
	dst, ok := e.instrs[pos].Dest()
	if !ok {
		return ir.Addr{}, fmt.Errorf("instruction %d (%s) has no destination", pos, e.instrs[pos].Kind)
	}
	return dst, nil
}

func argc(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("argument count overflow: %w", err))
	}
	return v
}
