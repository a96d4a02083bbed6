// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "github.com/olegiv/quillfolio/internal/model"

// RelatedLimit caps the related entries shown next to a detail view.
const RelatedLimit = 3

// RelatedPosts returns up to RelatedLimit posts from all sharing post's
// category, excluding post itself.
func RelatedPosts(all []model.BlogPost, post model.BlogPost) []model.BlogPost {
	return firstMatching(all, func(p model.BlogPost) bool {
		return p.Slug != post.Slug && p.Category == post.Category
	}, RelatedLimit)
}

// RelatedPortfolioItems returns up to RelatedLimit items sharing item's category.
func RelatedPortfolioItems(all []model.PortfolioItem, item model.PortfolioItem) []model.PortfolioItem {
	return firstMatching(all, func(i model.PortfolioItem) bool {
		return i.Slug != item.Slug && i.Category == item.Category
	}, RelatedLimit)
}

// RelatedServices returns up to RelatedLimit other services.
func RelatedServices(all []model.Service, service model.Service) []model.Service {
	return firstMatching(all, func(s model.Service) bool {
		return s.Slug != service.Slug
	}, RelatedLimit)
}
