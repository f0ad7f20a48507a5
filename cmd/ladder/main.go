package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"archuser.org/idle-ladder/internal/content"
)

type rootOptions struct {
	contentFile string
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "ladder",
		Short: "Industry ladder idle game simulator",
		Long: `Inspect game content and simulate play sessions of the
industry ladder idle game without a UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.contentFile, "content", "c", "", "Path to YAML content file (default: bundled content)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every purchase")

	rootCmd.AddCommand(newInspectCmd(opts), newSimulateCmd(opts))
	return rootCmd
}

func (o *rootOptions) loadContent() (*content.Content, error) {
	if o.contentFile == "" {
		return content.Default(), nil
	}
	c, err := content.Load(o.contentFile)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", o.contentFile, err)
	}
	return c, nil
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
