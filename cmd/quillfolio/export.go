// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/olegiv/quillfolio/internal/export"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var (
		out      string
		watch    bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every page as static JSON",
		Long:  "export removes the output directory, then writes one JSON document per page\nfor every locale. With --watch it re-exports whenever the content tree changes.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if out != "" {
				cfg.OutputDir = out
			}
			a, err := newApp(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			ex := export.New(a.pages, export.Config{
				OutputDir:     cfg.OutputDir,
				ContentDir:    cfg.ContentDir,
				Locales:       cfg.Locales,
				DefaultLocale: cfg.DefaultLocale,
			}, a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if watch {
				return ex.Watch(ctx, debounce)
			}
			res, err := ex.Export(ctx)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d files (%d skipped) for %v to %s in %s\n",
				res.Files, res.Skipped, res.Locales, cfg.OutputDir, res.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (overrides QF_OUTPUT_DIR)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-export when content changes")
	cmd.Flags().DurationVar(&debounce, "debounce", export.DefaultDebounce, "quiet period before a watched re-export")
	return cmd
}
