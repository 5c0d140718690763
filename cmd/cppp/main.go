// cppp pre-pre-processes a C/C++ header file: every #include that can be
// found on the include search path is expanded in place, recursively, and
// the result is wrapped in #define/#undef pairs for the symbols given on
// the command line. This doesn't quite mimic the real preprocessor, as we
// don't track include guards and instead prevent files from being included
// in a loop.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cppp/internal/config"
	"cppp/internal/preprocessor"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	output       string
	includeDirs  []string
	defines      []string
	configFile   string
	markerFormat string
	relativeBase string
	writeDeps    bool
	depsFile     string
	phonyDeps    bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "cppp <header>",
	Short: "Pre-pre-process a C/C++ header file",
	Long: TitleStyle.Render("cppp") + SubtitleStyle.Render(" - a pre-pre-processor for C/C++ headers") + `

cppp flattens a header: #define's for the symbols given with -D at the
top, the header with every resolvable #include spliced in recursively,
and matching #undef's at the bottom. Line markers keep output lines
attributable to their original source locations, and -M writes a
make-compatible dependency file listing everything that was pulled in.

Includes that cannot be found on the search path pass through unchanged
for a real compiler to resolve later. Conditionals are not evaluated and
macros are not expanded.

` + SubtitleStyle.Render("Examples:") + `
  cppp api.h -I include -D VERSION=2 -o flat.h
  cppp api.h -o flat.h -M -P
  cppp api.h --line-marker '' -o flat.h`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "place the output in file (default: stdout)")
	rootCmd.Flags().StringArrayVarP(&includeDirs, "include", "I", nil, "add dir to the include search path (directory of the including file is always searched first)")
	rootCmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "define sym[=val], wrapped as #define/#undef around the output")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (YAML)")
	rootCmd.Flags().StringVar(&markerFormat, "line-marker", preprocessor.DefaultMarkerFormat, "line-marker template with {line} and {file} fields; empty disables markers")
	rootCmd.Flags().StringVar(&relativeBase, "relative-base", "", "shorten file names in markers and the dependency target against this dir")
	rootCmd.Flags().BoolVarP(&writeDeps, "deps", "M", false, "also write a make-compatible dependency file")
	rootCmd.Flags().StringVar(&depsFile, "deps-file", "", "dependency file path (default: output with extension replaced by .d)")
	rootCmd.Flags().BoolVarP(&phonyDeps, "phony", "P", false, "add an empty rule per dependency to the dependency file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// usageError marks configuration mistakes that should exit with a distinct
// usage status rather than a processing failure.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func run(cmd *cobra.Command, header string) error {
	depsRequested := writeDeps || depsFile != "" || phonyDeps
	if depsRequested && output == "" {
		return &usageError{"dependency output requires -o"}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "cppp",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	pp := preprocessor.NewPreprocessor()
	pp.Logger = logger
	pp.MarkerFormat = markerFormat
	pp.RelativeBase = relativeBase

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		pp.IncludeDirs = append(pp.IncludeDirs, cfg.IncludeDirs...)
		for _, s := range cfg.Symbols {
			pp.Symbols = append(pp.Symbols, preprocessor.ParseDefine(s))
		}
		if cfg.MarkerFormat != nil && !cmd.Flags().Changed("line-marker") {
			pp.MarkerFormat = *cfg.MarkerFormat
		}
		if cfg.RelativeBase != "" && relativeBase == "" {
			pp.RelativeBase = cfg.RelativeBase
		}
	}
	pp.IncludeDirs = append(pp.IncludeDirs, includeDirs...)
	for _, s := range defines {
		pp.Symbols = append(pp.Symbols, preprocessor.ParseDefine(s))
	}

	in, err := os.Open(header)
	if err != nil {
		return fmt.Errorf("opening header: %w", err)
	}
	defer in.Close()

	out := os.Stdout
	if output != "" {
		out, err = os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer out.Close()
	}

	deps, err := pp.Process(header, in, out)
	if err != nil {
		return err
	}
	logger.Debug("expanded header", "header", header, "deps", len(deps))

	if depsRequested {
		path := depsFile
		if path == "" {
			path = depFilePath(output)
		}
		df, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating dependency file: %w", err)
		}
		defer df.Close()
		if err := pp.WriteDepFile(df, output, deps, phonyDeps); err != nil {
			return fmt.Errorf("writing dependency file: %w", err)
		}
		logger.Debug("wrote dependency file", "path", path)
	}

	return nil
}

// depFilePath derives the dependency-file name from the output name by
// replacing its extension with .d.
func depFilePath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".d"
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var uerr *usageError
		if errors.As(err, &uerr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
