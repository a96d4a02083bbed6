// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/olegiv/quillfolio/internal/i18n"
	"github.com/olegiv/quillfolio/internal/model"
)

func newSearchCmd(root *rootOptions) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search posts, portfolio items and services",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			a, err := newApp(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			if locale == "" {
				locale = cfg.DefaultLocale
			}
			page := a.pages.Search(cmd.Context(), strings.Join(args, " "), locale)
			if page.Empty {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), page.EmptyMessage)
				return nil
			}
			return printResults(cmd.OutOrStdout(), locale, page.Results)
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "locale to search (default QF_DEFAULT_LOCALE)")
	return cmd
}

func printResults(w io.Writer, locale string, results []model.SearchResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range results {
		date := ""
		if r.Date != "" {
			date = i18n.FormatDate(locale, r.Date)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Type, r.Title, date, r.Href)
	}
	return tw.Flush()
}
