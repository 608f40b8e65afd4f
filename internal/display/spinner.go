package display

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type workDoneMsg struct{}

type spinnerModel struct {
	spinner   spinner.Model
	message   string
	cancelled bool
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return spinnerModel{spinner: s, message: message}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

// Spin runs work while showing a spinner on stderr. The spinner is purely
// cosmetic: work runs exactly once and its error is returned as-is. If the
// terminal cannot host the spinner program, the work still completes and its
// result is used.
func Spin(message string, work func() error) error {
	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(os.Stderr))

	errCh := make(chan error, 1)
	go func() {
		errCh <- work()
		p.Send(workDoneMsg{})
	}()

	final, err := p.Run()
	if err != nil {
		return <-errCh
	}
	if m, ok := final.(spinnerModel); ok && m.cancelled {
		return errors.New("cancelled")
	}
	return <-errCh
}
