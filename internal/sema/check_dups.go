package sema

import (
	"errors"

	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/symbols"
)

// CheckDuplicates reports top-level names the resolver saw more than once.
type CheckDuplicates struct {
	Resolver *symbols.Resolver
}

func (CheckDuplicates) Name() string { return "check-duplicates" }

func (c CheckDuplicates) Run(*ast.File) error {
	var errs []error
	for _, d := range c.Resolver.Duplicates() {
		if d.Builtin {
			errs = append(errs, diag.ErrorAt(diag.SemaDuplicateDefinition, d.Span,
				"'%s' is a builtin type and cannot be redefined", d.Name))
			continue
		}
		errs = append(errs, diag.ErrorAt(diag.SemaDuplicateDefinition, d.Span,
			"the %s '%s' is defined multiple times", d.Prev.Kind, d.Name).
			WithNote(d.Prev.Span, "previous definition of '%s' here", d.Name))
	}
	return errors.Join(errs...)
}
