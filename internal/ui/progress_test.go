package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"scooter/internal/driver"
)

func TestApplyEventUpdatesStatus(t *testing.T) {
	m := NewProgressModel("build", []string{"a.sc", "b.sc"}, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.sc", Stage: driver.StageCheck, Status: driver.StatusWorking})
	be.Equal(t, m.items[0].status, "checking")
	be.Equal(t, m.percent(), 0.25)

	m.applyEvent(driver.Event{File: "a.sc", Stage: driver.StageLower, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "b.sc", Stage: driver.StageLower, Status: driver.StatusCached})
	be.Equal(t, m.percent(), 1.0)

	// неизвестный файл игнорируется
	be.True(t, m.applyEvent(driver.Event{File: "zzz.sc"}) == nil)
}

func TestViewListsFiles(t *testing.T) {
	m := NewProgressModel("build", []string{"src/main.sc"}, nil).(*progressModel)
	m.applyEvent(driver.Event{File: "src/main.sc", Status: driver.StatusError})
	m.done = true
	view := m.View()
	be.True(t, strings.Contains(view, "done: build"))
	be.True(t, strings.Contains(view, "error"))
	be.True(t, strings.Contains(view, "src/main.sc"))
}

func TestTruncate(t *testing.T) {
	be.Equal(t, truncate("short", 10), "short")
	be.Equal(t, truncate("a/very/long/path.sc", 10), "a/very/...")
	be.Equal(t, truncate("abcdef", 2), "ab")
}

func TestRunReturnsWorkError(t *testing.T) {
	var out bytes.Buffer
	want := errors.New("boom")
	err := Run(&out, "build", []string{"a.sc"}, func(sink driver.ProgressSink) error {
		sink.OnEvent(driver.Event{File: "a.sc", Stage: driver.StageParse, Status: driver.StatusWorking})
		sink.OnEvent(driver.Event{File: "a.sc", Stage: driver.StageParse, Status: driver.StatusError})
		return want
	})
	be.Err(t, err, want)
}
