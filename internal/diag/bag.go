package diag

import (
	"cmp"
	"math"
	"slices"
)

// Bag collects the diagnostics of one compilation unit, up to a limit.
// It is not safe for concurrent use; CompileDir gives each unit its own bag.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most maxItems diagnostics. Zero, negative
// or oversized limits mean MaxUint16.
func NewBag(maxItems int) *Bag {
	limit := uint16(math.MaxUint16)
	if maxItems > 0 && maxItems < math.MaxUint16 {
		limit = uint16(maxItems) //nolint:gosec // checked above
	}
	return &Bag{items: make([]Diagnostic, 0, min(int(limit), 16)), max: limit}
}

// Add appends d unless the limit is reached.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors: хотя бы одна ошибка, значит юнит не идёт дальше по конвейеру.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

func (b *Bag) Len() int { return len(b.items) }

// Items returns the backing slice; callers must not modify it.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends other's items, raising the limit so none are dropped.
// The CLI uses it to print a whole directory as one JSON document.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	total := len(b.items) + len(other.items)
	if total > int(b.max) {
		b.max = uint16(min(total, math.MaxUint16)) //nolint:gosec // bounded above
	}
	b.items = append(b.items, other.items...)
}

func compareDiagnostics(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.Primary.File, b.Primary.File),
		cmp.Compare(a.Primary.Start, b.Primary.Start),
		cmp.Compare(a.Primary.End, b.Primary.End),
		cmp.Compare(b.Severity, a.Severity), // errors first
		cmp.Compare(a.Code, b.Code),
	)
}

// Sort orders by position, then severity (descending), then code, so output
// is deterministic whatever order the passes reported in.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, compareDiagnostics)
}
