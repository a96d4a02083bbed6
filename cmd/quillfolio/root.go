// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/olegiv/quillfolio/internal/config"
)

// rootOptions are the flags shared by every subcommand. Flags override the
// environment.
type rootOptions struct {
	envFile    string
	contentDir string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "quillfolio",
		Short:         "Bilingual copywriter portfolio site",
		Long:          "quillfolio reads a localized content tree and serves it as JSON pages,\nexports it to static files, or searches it from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "load environment variables from this file (default .env if present)")
	cmd.PersistentFlags().StringVar(&opts.contentDir, "content", "", "content directory (overrides QF_CONTENT_DIR)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides QF_LOG_LEVEL)")

	cmd.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newSearchCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// load reads the environment and applies flag overrides.
func (o *rootOptions) load() (*config.Config, error) {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return nil, err
		}
	} else {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.contentDir != "" {
		cfg.ContentDir = o.contentDir
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}
