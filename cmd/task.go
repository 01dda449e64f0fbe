// File: cmd/task.go
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/codeagent/internal/apperr"
	"github.com/xkilldash9x/codeagent/internal/config"
	"github.com/xkilldash9x/codeagent/internal/observability"
	"github.com/xkilldash9x/codeagent/internal/prompts"
	"github.com/xkilldash9x/codeagent/internal/render"
)

const missingPromptMessage = "Error: No prompt provided. Use positional argument or --prompt option."

// newTaskCmd creates the subcommand for one task kind.
func newTaskCmd(kind prompts.TaskKind, root *rootOptions, deps dependencies) *cobra.Command {
	var promptFlag string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [prompt]", kind.String()),
		Short: kind.Description(),
		Example: fmt.Sprintf(`  codeagent %[1]s "binary search in Go"
  codeagent %[1]s --prompt "binary search in Go"`, kind.String()),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			renderer := render.New(out, render.WithPlain(root.plain || !render.IsTerminal(out)))
			prompt := resolvePrompt(args, promptFlag)
			return runTask(cmd.Context(), kind, prompt, root.cfgFile, deps, renderer)
		},
	}

	cmd.Flags().StringVarP(&promptFlag, "prompt", "p", "", "prompt via option")
	return cmd
}

// resolvePrompt prefers the positional prompt over the --prompt flag.
func resolvePrompt(args []string, flagValue string) string {
	if positional := strings.TrimSpace(strings.Join(args, " ")); positional != "" {
		return positional
	}
	return strings.TrimSpace(flagValue)
}

// runTask contains the core, testable logic of a task command: validate the prompt,
// load configuration, build the agent and render its answer or the failure.
func runTask(
	ctx context.Context,
	kind prompts.TaskKind,
	prompt, cfgFile string,
	deps dependencies,
	renderer *render.Renderer,
) error {
	// The prompt is checked before configuration so a bare invocation never needs a key.
	if prompt == "" {
		if err := renderer.Error("Error", missingPromptMessage); err != nil {
			return err
		}
		return fmt.Errorf("%w: %w", errReported, apperr.New(apperr.MissingPrompt, missingPromptMessage))
	}

	cfg, err := deps.loadConfig(cfgFile)
	if err != nil {
		deps.initLogger(config.NewDefaultConfig().Logger)
		return report(renderer, err)
	}
	deps.initLogger(cfg.Logger)
	logger := observability.GetLogger()

	p, err := deps.newProcessor(ctx, cfg.LLM, logger)
	if err != nil {
		return report(renderer, err)
	}

	response, err := p.Process(ctx, kind.String(), prompt)
	if err != nil {
		return report(renderer, err)
	}

	if err := renderer.Result(kind.Title()+" Result", response); err != nil {
		logger.Error("Failed to write result", zap.Error(err))
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// report renders err in the panel matching its kind and marks it as reported.
func report(renderer *render.Renderer, err error) error {
	var renderErr error
	if apperr.IsConfiguration(err) {
		renderErr = renderer.Error("Configuration Error", "Please check your configuration: "+err.Error())
	} else {
		renderErr = renderer.Error("Error", "An error occurred: "+err.Error())
	}
	if renderErr != nil {
		return fmt.Errorf("failed to write error: %w", renderErr)
	}
	return fmt.Errorf("%w: %w", errReported, err)
}
