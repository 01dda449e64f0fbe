// -- cmd/root.go --
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/codeagent/internal/agent"
	"github.com/xkilldash9x/codeagent/internal/config"
	"github.com/xkilldash9x/codeagent/internal/observability"
	"github.com/xkilldash9x/codeagent/internal/prompts"
)

// processor answers a single prompt. *agent.Agent is the production implementation.
type processor interface {
	Process(ctx context.Context, token, raw string) (string, error)
}

// dependencies are the seams the commands use to reach the outside world.
type dependencies struct {
	// loadConfig reads configuration from file, .env and environment.
	loadConfig func(cfgFile string) (*config.Config, error)
	// newProcessor builds the request orchestrator from validated configuration.
	newProcessor func(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (processor, error)
	// initLogger installs the global logger.
	initLogger func(cfg config.LoggerConfig)
}

func defaultDependencies() dependencies {
	return dependencies{
		loadConfig: func(cfgFile string) (*config.Config, error) {
			return config.Load(viper.New(), cfgFile)
		},
		newProcessor: func(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (processor, error) {
			return agent.NewFromConfig(ctx, cfg, logger)
		},
		initLogger: observability.InitializeLogger,
	}
}

// rootOptions holds the persistent flags.
type rootOptions struct {
	cfgFile string
	plain   bool
}

// errReported marks an error whose message has already been shown to the user.
var errReported = errors.New("error already reported")

// NewRootCommand builds a fresh command tree. Each call returns independent flag
// state, which keeps tests isolated.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultDependencies())
}

func newRootCommand(deps dependencies) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "codeagent",
		Short:         "CLI AI Coding Agent for code generation and assistance",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is ./config.yaml or ~/.codeagent/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "print results without colors or borders")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	for _, kind := range prompts.Kinds() {
		rootCmd.AddCommand(newTaskCmd(kind, opts, deps))
	}
	return rootCmd
}

// Execute runs the command tree with ctx. Errors already rendered to the user are
// not printed a second time.
func Execute(ctx context.Context) error {
	defer observability.Sync()
	return execute(ctx, NewRootCommand(), nil)
}

func execute(ctx context.Context, rootCmd *cobra.Command, args []string) error {
	if args != nil {
		rootCmd.SetArgs(args)
	}
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errReported) {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
}
