package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("DETAIL")
	be.Err(t, err, nil)
	be.Equal(t, l, LevelDetail)
	_, err = ParseLevel("loud")
	be.Err(t, err, "invalid trace level")
}

func TestShouldEmit(t *testing.T) {
	be.True(t, LevelPhase.ShouldEmit(ScopePass))
	be.True(t, !LevelPhase.ShouldEmit(ScopeUnit))
	be.True(t, LevelDetail.ShouldEmit(ScopeUnit))
	be.True(t, !LevelDetail.ShouldEmit(ScopeFunc))
	be.True(t, LevelDebug.ShouldEmit(ScopeFunc))
	be.True(t, !LevelError.ShouldEmit(ScopeDriver))
}

func TestNopSpanIsInert(t *testing.T) {
	ctx, span := Start(context.Background(), ScopePass, "parse")
	be.True(t, span == nil)
	be.Equal(t, span.With("k", "v").End(""), 0)
	be.Equal(t, CurrentSpan(ctx), uint64(0))
}

func TestStreamTextNesting(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, unit := Start(ctx, ScopeUnit, "unit:a.sc")
	_, pass := Start(ctx, ScopePass, "parse")
	pass.With("items", "2").End("ok")
	_, fn := Start(ctx, ScopeFunc, "fn:main")
	fn.End("")
	unit.End("")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	be.Equal(t, len(lines), 4)
	be.True(t, strings.Contains(lines[0], "] → unit:a.sc"))
	be.True(t, strings.Contains(lines[1], "]   → parse"))
	be.True(t, strings.Contains(lines[2], "← parse"))
	be.True(t, strings.HasSuffix(lines[2], "(ok) {items=2}"))
	be.True(t, strings.Contains(lines[3], "← unit:a.sc"))
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeStream, Format: FormatNDJSON, Output: &buf})
	be.Err(t, err, nil)
	span := Begin(tr, ScopePass, "lower", 0)
	span.End("")

	var ev struct {
		Seq  uint64 `json:"seq"`
		Kind string `json:"kind"`
		Name string `json:"name"`
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	be.Equal(t, len(lines), 2)
	be.Err(t, json.Unmarshal([]byte(lines[1]), &ev), nil)
	be.Equal(t, ev.Seq, uint64(2))
	be.Equal(t, ev.Kind, "end")
	be.Equal(t, ev.Name, "lower")
}

func TestRingWraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeFunc, Name: name})
	}
	var names []string
	for _, ev := range r.Snapshot() {
		names = append(names, ev.Name)
	}
	be.Equal(t, names, []string{"c", "d", "e"})
}

func TestRingAtErrorLevelKeepsEverything(t *testing.T) {
	tr, err := New(Config{Level: LevelError, Mode: ModeRing, RingSize: 8})
	be.Err(t, err, nil)
	Begin(tr, ScopeFunc, "fn:f", 0).End("")

	ring, ok := Ring(tr)
	be.True(t, ok)
	be.Equal(t, len(ring.Snapshot()), 2)

	var buf bytes.Buffer
	be.Err(t, ring.Dump(&buf, FormatText), nil)
	be.True(t, strings.Contains(buf.String(), "fn:f"))
}

func TestModeBothFindsRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	be.Err(t, err, nil)
	Begin(tr, ScopeDriver, "build", 0).End("")
	ring, ok := Ring(tr)
	be.True(t, ok)
	be.Equal(t, len(ring.Snapshot()), 2)
	be.True(t, strings.Contains(buf.String(), "→ build"))
	be.Err(t, tr.Close(), nil)
}

func TestLevelOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff, Mode: ModeStream})
	be.Err(t, err, nil)
	be.True(t, !tr.Enabled())
	_, ok := Ring(tr)
	be.True(t, !ok)
}
