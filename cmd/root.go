/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for prism.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/prism/cmd/generate"
	"bennypowers.dev/prism/cmd/list"
	"bennypowers.dev/prism/cmd/validate"
	"bennypowers.dev/prism/cmd/version"
	"bennypowers.dev/prism/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Generate Swift theme packages from design tokens",
	Long: `prism reads design token documents and their themes, and generates
the Swift sources of a theme package: token provider protocols, default
values, per-theme providers, activators and font registries.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(viper.GetString("log-level"))
		if viper.GetBool("verbose") {
			logger.SetVerbose(true)
		}
	},
}

// Execute runs the root command. An interrupt cancels in-flight fetches.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initEnv)

	flags := rootCmd.PersistentFlags()
	flags.StringP("root", "C", ".", "Project root containing .config/prism.{yaml,json}")
	flags.Bool("remote", false, "Allow http(s) URLs in the file list")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	for _, name := range []string{"root", "remote", "verbose", "log-level"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

// initEnv lets PRISM_* environment variables stand in for flags,
// e.g. PRISM_LOG_LEVEL=debug.
func initEnv() {
	viper.SetEnvPrefix("prism")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
