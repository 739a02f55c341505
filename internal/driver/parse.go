package driver

import (
	"fortio.org/safecast"

	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/lexer"
	"scooter/internal/parser"
	"scooter/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	AST     *ast.File
	Bag     *diag.Bag
}

// Parse loads path and parses it without semantic analysis.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, diag.Errorf(diag.IOLoadFileError, "%s: %v", path, err)
	}
	file := fs.Get(id)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	res := parser.ParseFile(lexer.New(file, lexer.Options{Reporter: reporter}), parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})
	return &ParseResult{FileSet: fs, File: file, AST: res.File, Bag: bag}, nil
}
