/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for prism.
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/prism/config"
	"bennypowers.dev/prism/fs"
	generatelib "bennypowers.dev/prism/generate"
	"bennypowers.dev/prism/internal/logger"
	"bennypowers.dev/prism/load"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Generate the Swift theme package",
	Long: `Generate Swift sources for every token kind and theme.

Files default to the "files" entry of .config/prism.yaml. Flags override
the matching config fields; so do PRISM_OUTPUT, PRISM_INCLUDE_INHERITED
and PRISM_KINDS.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Directory to write Sources/ into")
	Cmd.Flags().Bool("include-inherited", false, "Give every theme the full default token set")
	Cmd.Flags().StringSlice("kinds", nil, "Kinds to generate (default all)")
	Cmd.Flags().Bool("dry-run", false, "List files instead of writing them")

	for _, name := range []string{"output", "include-inherited", "kinds"} {
		if err := viper.BindPFlag(name, Cmd.Flags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}
}

func run(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	result, err := load.Load(cmd.Context(), load.FromFlags(viper.GetViper(), args))
	if err != nil {
		return err
	}

	cfg := applyFlags(viper.GetViper(), result.Config)
	opts, err := cfg.GenerateOptions()
	if err != nil {
		return err
	}

	files, err := generatelib.Generate(result.Document, opts)
	if err != nil {
		return fmt.Errorf("error generating sources: %w", err)
	}

	out, err := outputDir(viper.GetString("root"), cfg.Output)
	if err != nil {
		return err
	}

	if dryRun {
		for _, f := range files {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(out, f.Path))
		}
		return nil
	}

	if err := generatelib.Write(fs.NewOSFileSystem(), out, files); err != nil {
		return err
	}
	logger.Info("wrote %d files to %s", len(files), out)
	return nil
}

// applyFlags returns a copy of cfg with explicitly set flags or
// environment variables taking precedence.
func applyFlags(v *viper.Viper, cfg *config.Config) *config.Config {
	merged := *cfg
	if v.IsSet("output") && v.GetString("output") != "" {
		merged.Output = v.GetString("output")
	}
	if v.IsSet("include-inherited") {
		merged.IncludeInheritedTokens = v.GetBool("include-inherited")
	}
	if v.IsSet("kinds") {
		if kinds := v.GetStringSlice("kinds"); len(kinds) > 0 {
			merged.Kinds = kinds
		}
	}
	return &merged
}

// outputDir resolves a relative output directory against the project root.
func outputDir(root, output string) (string, error) {
	if output == "" {
		output = config.DefaultOutput
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}
	abs, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory: %w", err)
	}
	return abs, nil
}
