package sema

import (
	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/source"
)

// CheckMain requires a free function `main` without parameters.
type CheckMain struct{}

func (CheckMain) Name() string { return "check-main" }

func (CheckMain) Run(file *ast.File) error {
	var main *ast.FnDecl
	for _, fn := range file.Fns() {
		if fn.Name.Name == "main" {
			main = fn
		}
	}
	switch {
	case main == nil:
		at := source.Span{File: file.Span.File, Start: file.Span.Start, End: file.Span.Start}
		return diag.ErrorAt(diag.SemaMissingMain, at, "Could not find the main function")
	case len(main.Params) == 1:
		return diag.ErrorAt(diag.SemaMainParams, main.Name.Span, "Main function takes no arguments, but 1 was provided")
	case len(main.Params) > 1:
		return diag.ErrorAt(diag.SemaMainParams, main.Name.Span,
			"Main function takes no arguments, but %d were provided", len(main.Params))
	}
	return nil
}
