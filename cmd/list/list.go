/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for prism.
package list

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/prism/cmd/render"
	"bennypowers.dev/prism/kind"
	"bennypowers.dev/prism/load"
	"bennypowers.dev/prism/theme"
	"bennypowers.dev/prism/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens with their Swift identifiers and values",
	Long: `List every token of a theme with its Swift identifier, backend key,
generation kind and the Swift expression generated for it.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("theme", "t", theme.DefaultName, "Theme to list")
	Cmd.Flags().StringP("kind", "k", "", "Filter by kind")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, markdown, names")
	Cmd.Flags().Bool("swatches", false, "Draw color swatches in table output")
	Cmd.Flags().Bool("include-inherited", false, "List inherited default tokens for non-default themes")
}

func run(cmd *cobra.Command, args []string) error {
	themeName, _ := cmd.Flags().GetString("theme")
	kindFilter, _ := cmd.Flags().GetString("kind")
	format, _ := cmd.Flags().GetString("format")
	swatches, _ := cmd.Flags().GetBool("swatches")
	inherited, _ := cmd.Flags().GetBool("include-inherited")

	result, err := load.Load(cmd.Context(), load.FromFlags(viper.GetViper(), args))
	if err != nil {
		return err
	}

	merged, err := theme.MergeDarkValues(result.Document.Tokens, result.Document.Themes, inherited)
	if err != nil {
		return err
	}
	t, ok := findTheme(merged, themeName)
	if !ok {
		return fmt.Errorf("unknown theme %q", themeName)
	}

	tokens, err := filterTokens(t.Tokens, kindFilter)
	if err != nil {
		return err
	}
	rows, err := render.ComputeRows(tokens, t.Name)
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), rows, format, swatches)
}

// findTheme matches a theme by name, ignoring whitespace so that
// "DeepSea" finds "Deep Sea".
func findTheme(themes []theme.Theme, name string) (theme.Theme, bool) {
	if t, ok := theme.Find(themes, name); ok {
		return t, true
	}
	want := theme.Theme{Name: name}.Compact().Name
	for _, t := range themes {
		if t.Compact().Name == want {
			return t, true
		}
	}
	return theme.Theme{}, false
}

// filterTokens keeps tokens matching the named kind. An empty name keeps all.
func filterTokens(tokens []*token.Token, kindName string) ([]*token.Token, error) {
	if kindName == "" {
		return tokens, nil
	}
	k, err := kind.Parse(kindName)
	if err != nil {
		return nil, err
	}
	return kind.Filter(k, tokens), nil
}

func write(w io.Writer, rows []render.Row, format string, swatches bool) error {
	switch format {
	case "json":
		return render.JSON(w, rows)
	case "markdown", "md":
		return render.Markdown(w, rows)
	case "names":
		return render.Names(w, rows)
	case "table", "":
		return render.Table(w, rows, swatches)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
