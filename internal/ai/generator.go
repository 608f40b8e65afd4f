// Package ai produces backlogs from free-text specifications by prompting a
// generative model through the Claude Code CLI.
package ai

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/taskai/taskai/internal/backlog"
	"github.com/taskai/taskai/internal/recovery"
)

//go:embed prompts/system_en.txt
var systemPromptEN string

//go:embed prompts/system_fr.txt
var systemPromptFR string

// CommandContext is the function used to create exec.Cmd instances.
// It can be replaced in tests to mock command execution.
var CommandContext = exec.CommandContext

// DefaultTimeout bounds a single generation call when neither the caller's
// context nor the generator carries a deadline.
const DefaultTimeout = 5 * time.Minute

// Generator turns a specification into a backlog. All knobs are injected
// explicitly; the generator never reads process environment.
type Generator struct {
	Model   string
	Lang    string
	Style   string
	Timeout time.Duration
}

// IsClaudeAvailable checks if the claude command exists in PATH.
func IsClaudeAvailable() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}

// Generate prompts the model with the specification and feeds the raw
// response through the recovery pipeline, so the returned backlog is always
// validated.
func (g Generator) Generate(ctx context.Context, spec string) (*backlog.Backlog, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		timeout := g.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	prompt := g.buildPrompt(spec)

	// --dangerously-skip-permissions is required for non-interactive use.
	// This is safe here because we only pass a controlled prompt with the -p
	// flag (no file access or tool use).
	args := []string{"-p", prompt, "--output-format", "text", "--dangerously-skip-permissions"}
	if g.Model != "" {
		args = append(args, "--model", g.Model)
	}

	cmd := CommandContext(ctx, "claude", args...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.New("backlog generation timed out")
		}
		if ctx.Err() == context.Canceled {
			return nil, errors.New("backlog generation was cancelled")
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("claude command failed: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("failed to execute claude command: %w", err)
	}

	b, err := recovery.Parse(string(output))
	if err != nil {
		return nil, fmt.Errorf("model output did not yield a valid backlog: %w", err)
	}
	return b, nil
}

func (g Generator) systemPrompt() string {
	if g.Lang == "fr" {
		return systemPromptFR
	}
	return systemPromptEN
}

// buildPrompt assembles the full prompt: system instructions, backlog style,
// then the user's specification.
func (g Generator) buildPrompt(spec string) string {
	style := g.Style
	if style == "" {
		style = "standard"
	}
	return fmt.Sprintf("%s\nBacklog style: %s\n\nSPECIFICATION:\n%s", g.systemPrompt(), style, spec)
}
