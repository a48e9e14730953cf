// Command fabgen writes the semiconductor equipment models to
// public/models as binary glTF assets, plus a manifest locating each
// model's signal-tower lamps.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chazu/fabgen/pkg/compose"
	"github.com/chazu/fabgen/pkg/layout"
	"github.com/chazu/fabgen/pkg/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// debugEnv turns on debug logging when set to 1.
const debugEnv = "FABGEN_DEBUG"

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "fabgen",
	Short: "Generate semiconductor equipment models as .glb assets",
	Long: `fabgen lays out the EUV, CVD, CMP, ETCH and SEM equipment models and
writes each one to public/models/<NAME>.glb, followed by manifest.yaml.

Existing assets are replaced. Generation stops at the first failing model.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if os.Getenv(debugEnv) == "1" {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd.OutOrStdout())
	},
}

func generate(out io.Writer) error {
	tables, err := layout.LoadAll()
	if err != nil {
		return err
	}

	runner := pipeline.New(pipeline.Config{
		OutputDir: pipeline.DefaultOutputDir,
		Logger:    logger,
		Progress:  out,
	})
	models := compose.Models(tables)
	fmt.Fprintf(out, "Generating %d GLB models → %s/\n", len(models), runner.OutputDir())
	if _, err := runner.Run(models); err != nil {
		return err
	}
	fmt.Fprintln(out, "Done.")
	return nil
}

// execute runs the root command and flushes the logger, whether or not
// the command failed.
func execute() error {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func main() {
	if err := execute(); err != nil {
		var me *pipeline.ModelError
		if !errors.As(err, &me) {
			err = fmt.Errorf("fabgen: %w", err)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
