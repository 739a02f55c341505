package diag

import "scooter/internal/source"

// Reporter receives diagnostics from the lexer, parser and passes.
// BagReporter stores them; DedupReporter filters repeats in front of another Reporter.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// ReportBuilder collects notes for one error and hands it to a Reporter on Emit.
// A second Emit is a no-op.
type ReportBuilder struct {
	to   Reporter
	d    Diagnostic
	sent bool
}

// ReportError starts an error diagnostic addressed to r.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{to: r, d: NewError(code, primary, msg)}
}

func (rb *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	rb.d = rb.d.WithNote(sp, msg)
	return rb
}

func (rb *ReportBuilder) Emit() {
	if rb.sent {
		return
	}
	rb.sent = true
	if rb.to != nil {
		rb.to.Report(rb.d.Code, rb.d.Severity, rb.d.Primary, rb.d.Message, rb.d.Notes)
	}
}

// BagReporter пишет в *Bag; nil Bag всё глотает.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag != nil {
		d := New(sev, code, primary, msg)
		d.Notes = notes
		r.Bag.Add(d)
	}
}

// DedupReporter drops repeats of (code, severity, span, message) before they
// reach the wrapped reporter. Parser recovery tends to re-report the same token.
type DedupReporter struct {
	next Reporter
	seen map[reportKey]struct{}
}

type reportKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[reportKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	// ноты в ключ не входят: повтор с другой нотой всё равно повтор
	k := reportKey{code, sev, primary, msg}
	if _, dup := r.seen[k]; dup {
		return
	}
	r.seen[k] = struct{}{}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, notes)
	}
}
