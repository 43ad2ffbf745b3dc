package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/careernav/internal/model"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ErrCancelled is returned when the user aborts a running fetch.
var ErrCancelled = errors.New("cancelled")

// FetchFunc produces the snapshot the loader waits for.
type FetchFunc func(ctx context.Context) (*model.Snapshot, error)

type fetchDoneMsg struct {
	snap *model.Snapshot
	err  error
}

type spinnerTickMsg struct{}

type loaderModel struct {
	label   string
	fetchFn FetchFunc
	timeout time.Duration
	frame   int
	result  *model.Snapshot
	err     error
	done    bool
}

func (m loaderModel) Init() tea.Cmd {
	return tea.Batch(m.doFetch(), m.tick())
}

func (m loaderModel) doFetch() tea.Cmd {
	fetchFn, timeout := m.fetchFn, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		snap, err := fetchFn(ctx)
		return fetchDoneMsg{snap: snap, err: err}
	}
}

func (m loaderModel) tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m loaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchDoneMsg:
		m.result = msg.snap
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinnerTickMsg:
		if m.done {
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, m.tick()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			m.err = ErrCancelled
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m loaderModel) View() string {
	if m.done {
		return ""
	}
	spinner := lipgloss.NewStyle().Foreground(colorAccent).Render(spinnerFrames[m.frame])
	return fmt.Sprintf("%s %s\n", spinner, m.label)
}

// RunLoader shows a spinner labelled "Analyzing profile..." while fetchFn
// runs with the given timeout. It renders inline (no alt screen).
func RunLoader(timeout time.Duration, fetchFn FetchFunc) (*model.Snapshot, error) {
	m := loaderModel{
		label:   "Analyzing profile...",
		fetchFn: fetchFn,
		timeout: timeout,
	}
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final := result.(loaderModel)
	return final.result, final.err
}
