// Package display renders taskai output for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskai/taskai/internal/backlog"
)

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#87AF87") // Muted sage for success

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	idStyle      = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(secondaryColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	spinnerStyle = lipgloss.NewStyle().Foreground(primaryColor)
)

// ReadyTasks renders the output of the next command: id, title, description
// lines, and deliverable paths for each ready task.
func ReadyTasks(tasks []*backlog.Task) string {
	if len(tasks) == 0 {
		return subtleStyle.Render("No tasks are ready to work on.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks ready to work on:"))
	b.WriteString("\n")

	for _, t := range tasks {
		fmt.Fprintf(&b, "%s: %s\n", idStyle.Render(t.ID), t.Title)

		if t.Description != "" {
			for _, line := range strings.Split(t.Description, "\n") {
				fmt.Fprintf(&b, "  %s\n", line)
			}
		}

		paths := t.Deliverable.Paths()
		switch {
		case len(paths) == 1:
			fmt.Fprintf(&b, "  %s %s\n", subtleStyle.Render("Deliverable:"), paths[0])
		case len(paths) > 1:
			fmt.Fprintf(&b, "  %s\n", subtleStyle.Render("Deliverables:"))
			for _, p := range paths {
				fmt.Fprintf(&b, "    - %s\n", p)
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}

// ValidationOK renders the success line of the validate command.
func ValidationOK(project string) string {
	return successStyle.Render(fmt.Sprintf("backlog OK (project %q)", project)) + "\n"
}
