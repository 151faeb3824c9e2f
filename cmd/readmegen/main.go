package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	readmegen "github.com/goliatone/go-readmegen"
	"github.com/goliatone/go-readmegen/internal/config"
	"github.com/goliatone/go-readmegen/internal/console"
	"github.com/goliatone/go-readmegen/pkg/orchestrator"
	"github.com/goliatone/go-readmegen/pkg/prompt"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command. extra options are applied after the ones
// derived from configuration, so tests can swap the prompt or filesystem.
func newRootCmd(stdout, stderr io.Writer, extra ...orchestrator.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readmegen",
		Short: "Generate a project README by answering a few questions",
		Long: `readmegen asks for a project's title, description, installation and usage
notes, credits, contribution and test instructions, GitHub username, email
and license, then writes a README.md built from the answers.

Every question must be answered; an invalid answer is asked again.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, stdout, stderr, extra)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().String("config", "", "config file (default: ./readmegen.yaml or ~/.config/readmegen/readmegen.yaml)")
	cmd.Flags().StringP("output", "o", orchestrator.DefaultOutputPath, "path of the generated README")
	cmd.Flags().BoolP("verbose", "v", false, "log progress to stderr")
	return cmd
}

func run(cmd *cobra.Command, stdout, stderr io.Writer, extra []orchestrator.Option) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	v, err := config.New(cfgFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	if err := v.BindPFlag(config.KeyOutput, cmd.Flags().Lookup("output")); err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		v.Set(config.KeyLogLevel, "debug")
	}

	cfg, err := config.Load(v)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}
	printer := console.New(stdout, cfg.NoColor)

	promptOptions := []prompt.Option{
		prompt.WithTheme(prompt.Theme{ErrorPrefix: "✗ ", Decorate: printer.Warn}),
	}
	if cfg.SanitizeHTML {
		promptOptions = append(promptOptions, prompt.WithSanitizer(prompt.StripHTML))
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithOutputPath(cfg.Output),
		orchestrator.WithPromptOptions(promptOptions...),
	}
	options = append(options, extra...)

	res, err := readmegen.NewOrchestrator(options...).Run(cmd.Context())
	if err != nil {
		logger.Error("generate README", "output", cfg.Output, "error", err)
		printer.Error(fmt.Sprintf("Error creating README: %v", err))
		return err
	}

	printer.Success("README created!")
	logger.Debug("done", "path", res.Path, "bytes", res.Bytes)
	return nil
}
