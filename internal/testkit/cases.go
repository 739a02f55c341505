package testkit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fence languages recognised in case files.
const (
	FenceSource = "scooter" // program under test
	FenceIR     = "ir"      // expected ir.Dump output
	FenceErrors = "errors"  // expected diagnostic ids, one per line
)

// Case is one golden test taken from a markdown file. A heading
// "Test: <name>" opens a case; the fences below it fill it in.
type Case struct {
	Name   string
	Line   int
	Source string
	IR     string   // пусто, если фенса ir нет
	Errors []string // "SEM3014", ...
}

// ExtractCases parses markdown and returns its cases in document order.
// Each case needs a source fence and at least one of ir/errors.
func ExtractCases(markdown []byte) ([]Case, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(markdown))

	var cases []Case
	var cur *Case
	flush := func() error {
		if cur == nil {
			return nil
		}
		if cur.Source == "" {
			return fmt.Errorf("line %d: test %q has no %s fence", cur.Line, cur.Name, FenceSource)
		}
		if cur.IR == "" && cur.Errors == nil {
			return fmt.Errorf("line %d: test %q has no %s or %s fence", cur.Line, cur.Name, FenceIR, FenceErrors)
		}
		cases = append(cases, *cur)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			title := nodeText(n, markdown)
			name, ok := strings.CutPrefix(title, "Test: ")
			if !ok {
				return ast.WalkContinue, nil
			}
			if err := flush(); err != nil {
				return ast.WalkStop, err
			}
			cur = &Case{Name: name, Line: lineOf(n, markdown)}

		case *ast.FencedCodeBlock:
			lang := string(n.Language(markdown))
			line := lineOf(n, markdown)
			if cur == nil {
				if lang != "" {
					return ast.WalkStop, fmt.Errorf("line %d: %q fence outside of a test", line, lang)
				}
				return ast.WalkContinue, nil
			}
			body := fenceText(n, markdown)
			switch lang {
			case FenceSource:
				if cur.Source != "" {
					return ast.WalkStop, fmt.Errorf("line %d: second %s fence in test %q", line, lang, cur.Name)
				}
				cur.Source = body
			case FenceIR:
				cur.IR = body
			case FenceErrors:
				cur.Errors = strings.Fields(body)
				if cur.Errors == nil {
					cur.Errors = []string{}
				}
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language %q in test %q", line, lang, cur.Name)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return cases, nil
}

func nodeText(node ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func fenceText(block *ast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

func lineOf(node ast.Node, src []byte) int {
	if node.Lines().Len() == 0 {
		return 0
	}
	start := node.Lines().At(0).Start
	return 1 + bytes.Count(src[:min(start, len(src))], []byte("\n"))
}
