// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers and a small bilingual
// content tree.
package testutil

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/olegiv/quillfolio/internal/content"
)

// TestLogger creates a silent test logger that only outputs warnings and errors.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

// TestLoggerSilent creates a logger that discards everything.
func TestLoggerSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Repository returns a repository over SiteFS.
func Repository() *content.Repository {
	return content.New("", content.WithFS(SiteFS()), content.WithLogger(TestLoggerSilent()))
}

// WriteTree copies fsys into dir on disk.
func WriteTree(t *testing.T, dir string, fsys fs.FS) {
	t.Helper()
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
	if err != nil {
		t.Fatalf("writing content tree: %v", err)
	}
}

func file(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

// SiteFS returns a content tree with full English content and partial
// Vietnamese content, so Vietnamese requests exercise fallback.
func SiteFS() fstest.MapFS {
	return fstest.MapFS{
		"en/blog/posts/email-marketing-strategy.md": file(`---
title: "Email Marketing Strategy"
excerpt: "Plan campaigns that people open."
date: "2024-01-01"
author: "Jane Writer"
category: "Marketing"
tags: ["email", "strategy"]
featured: true
readTime: "4 min read"
---
## Start with the list

Segment your audience before you write a single subject line.
`),
		"en/blog/posts/copywriting-tips.md": file(`---
title: "Copywriting Tips"
excerpt: "Small edits that make copy sell."
date: "2024-02-01"
author: "Jane Writer"
category: "Copywriting"
tags: ["copy"]
featured: false
---
Write **short** sentences.

<aside class="tip">Read it aloud.</aside>
`),
		"en/blog/posts/landing-pages.md": file(`---
title: "Landing Pages That Convert"
excerpt: "Structure for pages with one goal."
date: "2024-03-01"
author: "Jane Writer"
category: "Marketing"
tags: ["conversion"]
featured: true
readTime: "6 min read"
---
One page, one call to action.
`),
		"en/blog/categories/marketing.json":   file(`{"id":"1","name":"Marketing","slug":"marketing","description":"Campaigns and funnels","color":"#3b82f6"}`),
		"en/blog/categories/copywriting.json": file(`{"id":"2","name":"Copywriting","slug":"copywriting","description":"Words that sell","color":"#10b981"}`),
		"en/blog/categories/seo.json":         file(`{"id":"3","name":"SEO","slug":"seo","description":"Search visibility","color":"#f59e0b"}`),
		"en/portfolio/writing-samples.json": file(`{"items":[
			{"slug":"newsletter","title":"Weekly Newsletter","category":"Email","description":"A newsletter for a SaaS brand","image":"/img/newsletter.jpg","featured":true,"date":"2023-06-01"},
			{"slug":"website-copy","title":"Website Copy","category":"Web","description":"Homepage rewrite","image":"/img/web.jpg","featured":true},
			{"slug":"product-launch","title":"Product Launch Emails","category":"Email","description":"Launch sequence","image":"/img/launch.jpg","content":"Five emails over ten days"}
		]}`),
		"en/portfolio/testimonials.json": file(`[
			{"author":"Ann Lee","role":"CMO, Acme","quote":"Open rates doubled."},
			{"author":"Minh Tran","role":"Founder","quote":"Clear and fast."}
		]`),
		"en/services/services-list.json": file(`[
			{"id":"write-blog","title":"Blog Writing","description":"Researched long-form posts","features":["SEO research","Two revisions"],"price":"$300","category":"Writing","featured":true},
			{"id":"email-copy","title":"Email Copywriting","description":"Sequences that convert","features":["Welcome series","A/B subject lines"],"category":"Email","featured":true},
			{"id":"website-copy","title":"Website Copy","description":"Pages that explain and sell","features":["Homepage","About page"],"category":"Web"}
		]`),
		"en/about/about-content.json": file(`{
			"name":"Jane Writer",
			"tagline":"Copywriter for SaaS",
			"bio":"Ten years of writing for software companies.",
			"skills":["Email","SEO","Web copy"],
			"experience":[{"title":"Senior Copywriter","company":"Acme","years":"2019-2024"}]
		}`),

		"vi/blog/posts/email-marketing-strategy.md": file(`---
title: "Chiến lược Email Marketing"
excerpt: "Lên kế hoạch cho chiến dịch được mở đọc."
date: "2024-01-01"
author: "Jane Writer"
category: "Tiếp thị"
tags: ["email"]
featured: true
---
## Bắt đầu với danh sách

Phân khúc khán giả trước khi viết.
`),
		"vi/blog/categories/tiep-thi.json": file(`{"id":"1","name":"Tiếp thị","slug":"tiep-thi","color":"#3b82f6"}`),
		"vi/services/services-list.json": file(`[
			{"id":"write-blog","title":"Viết blog","description":"Bài viết dài có nghiên cứu","features":["Nghiên cứu SEO"],"featured":true}
		]`),
	}
}
