/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for prism.
package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"bennypowers.dev/prism/load"
	"bennypowers.dev/prism/parser"
	"bennypowers.dev/prism/theme"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate design token files",
	Long: `Validate token documents and their themes. Every problem found is
reported, not only the first.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail when the document cannot be generated")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	result, err := load.Load(cmd.Context(), load.FromFlags(viper.GetViper(), args))
	if err != nil {
		if errors.Is(err, load.ErrNoFiles) {
			return err
		}
		report(stderr, err)
		return fmt.Errorf("validation failed")
	}

	doc := result.Document
	if _, err := theme.MergeDarkValues(doc.Tokens, doc.Themes, false); err != nil {
		if strict {
			report(stderr, err)
			return fmt.Errorf("validation failed")
		}
		_, _ = fmt.Fprintf(stderr, "Warning: %v\n", err)
	}

	if !quiet {
		for _, file := range result.Files {
			_, _ = fmt.Fprintf(stdout, "Validated %s\n", file)
		}
		_, _ = fmt.Fprintf(stdout, "  %d tokens, %d themes\n", len(doc.Tokens), len(doc.Themes))
		_, _ = fmt.Fprintln(stdout, "All files valid.")
	}
	return nil
}

// report prints each aggregated problem on its own line, followed by a
// count of problems that were located in a document.
func report(w io.Writer, err error) {
	errs := multierr.Errors(err)
	located := 0
	for _, e := range errs {
		var ve *parser.ValidationError
		if errors.As(e, &ve) {
			located++
		}
		_, _ = fmt.Fprintf(w, "Error: %v\n", e)
	}
	_, _ = fmt.Fprintf(w, "%d problems (%d in token documents)\n", len(errs), located)
}
