package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskai/taskai/internal/ai"
	"github.com/taskai/taskai/internal/backlog"
	"github.com/taskai/taskai/internal/config"
	"github.com/taskai/taskai/internal/display"
)

var (
	genLang    string
	genStyle   string
	genModel   string
	genTimeout time.Duration
	genOut     string
)

func init() {
	genCmd.Flags().StringVar(&genLang, "lang", "", "Prompt language (en, fr)")
	genCmd.Flags().StringVar(&genStyle, "style", "", "Style of the generated backlog")
	genCmd.Flags().StringVar(&genModel, "model", "", "Model to use for generation")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 0, "Generation timeout (default from config)")
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "Write the backlog to a file instead of stdout")
}

var genCmd = &cobra.Command{
	Use:   "gen <spec-file>",
	Short: "Generate a task backlog from a specification",
	Long:  `Generate a YAML task backlog from a free-text specification file using a generative model. The model's raw output goes through the recovery pipeline, so only a structurally and semantically valid backlog is ever emitted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read specification file: %w", err)
		}

		if !ai.IsClaudeAvailable() {
			return errors.New("Claude Code CLI not found. Install it: https://claude.ai/code")
		}

		gen, err := newGenerator()
		if err != nil {
			return err
		}

		var b *backlog.Backlog
		err = display.Spin("Generating backlog...", func() error {
			var genErr error
			b, genErr = gen.Generate(context.Background(), string(content))
			return genErr
		})
		if err != nil {
			return fmt.Errorf("failed to generate backlog: %w", err)
		}

		if genOut != "" {
			if err := backlog.Save(genOut, b); err != nil {
				return err
			}
			fmt.Printf("wrote backlog to %s\n", genOut)
			return nil
		}

		data, err := backlog.Encode(b)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

// newGenerator builds a generator from config files with flag overrides on
// top.
func newGenerator() (ai.Generator, error) {
	cfg, err := config.Load()
	if err != nil {
		return ai.Generator{}, err
	}

	gen := ai.Generator{
		Model:   cfg.Gen.Model,
		Lang:    cfg.Gen.Lang,
		Style:   cfg.Gen.Style,
		Timeout: cfg.Gen.Timeout.Duration,
	}
	if genModel != "" {
		gen.Model = genModel
	}
	if genLang != "" {
		gen.Lang = genLang
	}
	if genStyle != "" {
		gen.Style = genStyle
	}
	if genTimeout > 0 {
		gen.Timeout = genTimeout
	}
	return gen, nil
}
