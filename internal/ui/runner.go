package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"scooter/internal/driver"
)

// Run executes work while rendering its progress events to out. work gets
// a sink to pass into driver.Options; its error is returned after the UI
// exits. A UI failure takes precedence.
func Run(out io.Writer, title string, files []string, work func(driver.ProgressSink) error) error {
	events := make(chan driver.Event, 256)
	errCh := make(chan error, 1)
	go func() {
		defer close(events)
		errCh <- work(driver.ChannelSink{Ch: events})
	}()

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	// дочитываем события, чтобы воркер не завис на полном канале
	go func() {
		for range events {
		}
	}()
	workErr := <-errCh
	if uiErr != nil {
		return uiErr
	}
	return workErr
}
