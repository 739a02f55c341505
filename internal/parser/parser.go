package parser

import (
	"slices"

	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/lexer"
	"scooter/internal/source"
	"scooter/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File   *ast.File
	Errors uint
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile: входная точка для разбора одного файла.
// Всегда возвращает File; разобранные с ошибками items пропускаются.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	file := p.parseItems()
	return Result{File: file, Errors: p.opts.CurrentErrors}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseItems: основной цикл верхнего уровня: пока не EOF: parseItem.
func (p *Parser) parseItems() *ast.File {
	start := p.lx.Peek().Span
	file := &ast.File{ID: start.File}
	for !p.at(token.EOF) && !p.opts.Enough() {
		item, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			continue
		}
		file.Items = append(file.Items, item)
	}
	file.Span = start.Cover(p.lx.Peek().Span)
	return file
}

// parseItem выбирает по первому токену нужный распознаватель top-level конструкции.
func (p *Parser) parseItem() (ast.Item, bool) {
	switch p.lx.Peek().Kind {
	case token.KwFn:
		fn, ok := p.parseFn("")
		return fn, ok
	case token.KwStruct:
		return p.parseStruct()
	case token.KwImpl:
		return p.parseImpl()
	default:
		tok := p.advance()
		if tok.Kind != token.Invalid {
			p.report(diag.SynUnexpectedTopLevel, diag.SevError, tok.Span,
				"unexpected top-level construct "+tok.Kind.String()+", expected 'fn', 'struct' or 'impl'")
		}
		return nil, false
	}
}

// resyncTop: прокручиваем до стартового токена следующего item или EOF.
func (p *Parser) resyncTop() {
	p.resyncUntil(token.KwFn, token.KwStruct, token.KwImpl)
}

// parseIdent: ожидает Ident. На ошибке: репорт SynExpectIdentifier.
func (p *Parser) parseIdent() (*ast.Ident, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return &ast.Ident{Name: tok.Text, Span: tok.Span}, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got "+p.lx.Peek().Kind.String())
	return nil, false
}
