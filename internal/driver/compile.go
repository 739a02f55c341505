// Package driver runs the compiler pipeline over files and directories.
package driver

import (
	"context"
	"fmt"

	"fortio.org/safecast"

	"scooter/internal/ast"
	"scooter/internal/diag"
	"scooter/internal/ir"
	"scooter/internal/lexer"
	"scooter/internal/lower"
	"scooter/internal/observ"
	"scooter/internal/parser"
	"scooter/internal/sema"
	"scooter/internal/source"
	"scooter/internal/symbols"
	"scooter/internal/trace"
)

// Options configure a compilation.
type Options struct {
	MaxDiagnostics int  // на один файл; 0 - без ограничения
	Jobs           int  // CompileDir workers; 0 - GOMAXPROCS
	Timings        bool // collect observ timings into Result.Timing
	NoMain         bool // do not require fn main()
	Cache          *DiskCache
	Progress       ProgressSink
}

// Result is the outcome of compiling one unit. File and Resolver are nil
// when the IR came from the cache; Root is nil when compilation failed.
type Result struct {
	Path     string
	FileSet  *source.FileSet
	FileID   source.FileID
	File     *ast.File
	Resolver *symbols.Resolver
	Root     *ir.Root
	Bag      *diag.Bag
	Timing   *observ.Report
	Cached   bool
}

// Failed reports whether the unit produced error diagnostics.
func (r *Result) Failed() bool { return r.Bag.HasErrors() }

// CompilePath loads path into a fresh FileSet and compiles it.
func CompilePath(ctx context.Context, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, diag.Errorf(diag.IOLoadFileError, "%s: %v", path, err)
	}
	return CompileFile(ctx, fs, id, opts), nil
}

// CompileFile runs lex → parse → resolve → check → lower → validate on one
// file. It stops before lowering when earlier stages reported errors.
func CompileFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *Result {
	file := fs.Get(id)
	res := &Result{
		Path:    file.Path,
		FileSet: fs,
		FileID:  id,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}
	ctx, span := trace.Start(ctx, trace.ScopeUnit, "unit:"+file.Path)
	defer func() {
		span.With("errors", fmt.Sprint(res.Bag.Len())).End(statusOf(res))
	}()

	var key CacheKey
	if opts.Cache != nil {
		key = KeyFor(file, opts)
		if root, ok, err := opts.Cache.Get(key); err == nil && ok {
			res.Root, res.Cached = root, true
			trace.Point(ctx, trace.ScopeUnit, "cache", "hit")
			notify(opts.Progress, Event{File: file.Path, Stage: StageLower, Status: StatusCached})
			return res
		}
	}

	defer res.Bag.Sort()
	p := &pipeline{
		ctx:      ctx,
		res:      res,
		opts:     opts,
		reporter: diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag}),
	}
	if opts.Timings {
		p.timer = observ.NewTimer()
		defer func() {
			report := p.timer.Report()
			res.Timing = &report
		}()
	}

	p.run(StageParse, func() string { return p.parse(file) })
	if res.Failed() {
		p.finish(StageParse)
		return res
	}
	p.run(StageResolve, func() string { return p.resolve() })
	p.run(StageCheck, func() string { return p.check() })
	if res.Failed() {
		p.finish(StageCheck)
		return res
	}
	p.run(StageLower, func() string { return p.lower() })
	p.finish(StageLower)

	if opts.Cache != nil && !res.Failed() {
		if err := opts.Cache.Put(key, file.Path, res.Root); err != nil {
			trace.Point(ctx, trace.ScopeUnit, "cache", "put failed: "+err.Error())
		}
	}
	return res
}

type pipeline struct {
	ctx      context.Context
	res      *Result
	opts     Options
	reporter diag.Reporter
	timer    *observ.Timer
}

// run оборачивает фазу в span, таймер и события прогресса.
func (p *pipeline) run(stage Stage, fn func() string) {
	path := p.res.Path
	notify(p.opts.Progress, Event{File: path, Stage: stage, Status: StatusWorking})
	ctx, span := trace.Start(p.ctx, trace.ScopePass, string(stage))
	saved := p.ctx
	p.ctx = ctx
	idx := p.timer.Begin(string(stage))

	note := fn()

	p.timer.End(idx, note)
	p.ctx = saved
	span.End(note)
}

func (p *pipeline) finish(stage Stage) {
	ev := Event{File: p.res.Path, Stage: stage, Status: StatusDone}
	if p.res.Failed() {
		ev.Status = StatusError
		ev.Err = fmt.Errorf("%s: %d error(s)", p.res.Path, p.res.Bag.Len())
	}
	notify(p.opts.Progress, ev)
}

func (p *pipeline) parse(file *source.File) string {
	maxErrors, err := safecast.Conv[uint](max(p.opts.MaxDiagnostics, 0))
	if err != nil {
		maxErrors = 0
	}
	lx := lexer.New(file, lexer.Options{Reporter: p.reporter})
	out := parser.ParseFile(lx, parser.Options{Reporter: p.reporter, MaxErrors: maxErrors})
	p.res.File = out.File
	return fmt.Sprintf("%d items", len(out.File.Items))
}

func (p *pipeline) resolve() string {
	p.res.Resolver = symbols.NewResolver()
	p.res.Resolver.Resolve(p.res.File)
	return fmt.Sprintf("%d labels", p.res.Resolver.Labels().Next())
}

func (p *pipeline) check() string {
	eng := sema.NewEngine(p.reporter).
		Register(sema.CheckDuplicates{Resolver: p.res.Resolver}).
		Register(sema.NewTypeChecker(p.res.Resolver))
	if !p.opts.NoMain {
		eng.Register(sema.CheckMain{})
	}
	for _, fn := range p.res.File.Functions() {
		trace.Point(p.ctx, trace.ScopeFunc, "fn:"+fn.QualifiedName(), "")
	}
	if err := eng.Run(p.res.File); err != nil {
		return fmt.Sprintf("%d errors", len(diag.Errors(err)))
	}
	return ""
}

func (p *pipeline) lower() string {
	root, err := lower.New(p.res.Resolver.Labels()).Lower(p.res.File)
	if err != nil {
		p.reportErr(diag.SemaError, err)
		return "failed"
	}
	if err := ir.Validate(root); err != nil {
		p.reportErr(diag.IRMalformed, err)
		return "invalid"
	}
	p.res.Root = root
	return fmt.Sprintf("%d instrs", len(root.Instrs))
}

// reportErr кладёт структурированные ошибки в bag, а остальные - под fallback-кодом.
func (p *pipeline) reportErr(fallback diag.Code, err error) {
	if diag.ReportErrors(p.reporter, err) == 0 {
		p.reporter.Report(fallback, diag.SevError, p.res.File.Span, err.Error(), nil)
	}
}

func statusOf(r *Result) string {
	switch {
	case r.Cached:
		return "cached"
	case r.Failed():
		return "failed"
	}
	return "ok"
}
