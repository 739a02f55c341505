package sema

import (
	"errors"
	"fmt"

	"scooter/internal/ast"
	"scooter/internal/diag"
)

// Analysis is one semantic pass over a file.
type Analysis interface {
	Name() string
	Run(file *ast.File) error
}

// Engine runs registered analyses in order. A failing analysis does not stop
// the ones after it.
type Engine struct {
	analyses []Analysis
	reporter diag.Reporter
}

// NewEngine creates an engine; reporter may be nil.
func NewEngine(reporter diag.Reporter) *Engine {
	return &Engine{reporter: reporter}
}

// Register appends an analysis and returns the engine for chaining.
func (e *Engine) Register(a Analysis) *Engine {
	e.analyses = append(e.analyses, a)
	return e
}

// Run executes every analysis. Failures are forwarded to the reporter and
// returned joined.
func (e *Engine) Run(file *ast.File) error {
	var errs []error
	for _, a := range e.analyses {
		err := a.Run(file)
		if err == nil {
			continue
		}
		if e.reporter != nil {
			if n := diag.ReportErrors(e.reporter, err); n == 0 {
				e.reporter.Report(diag.SemaError, diag.SevError, file.Span, err.Error(), nil)
			}
		}
		errs = append(errs, fmt.Errorf("%s: %w", a.Name(), err))
	}
	return errors.Join(errs...)
}
