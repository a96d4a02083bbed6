// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Service is an offering from services/services-list.json.
// The file stores the identifier as "id"; it is exposed as Slug.
type Service struct {
	Slug         string   `json:"slug" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Features     []string `json:"features,omitempty"`
	Price        string   `json:"price,omitempty"`
	Category     string   `json:"category,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
	Content      string   `json:"content,omitempty"`
	DeliveryTime string   `json:"deliveryTime,omitempty"`
	Icon         string   `json:"icon,omitempty"`
}

// ServiceRecord is a Service as stored on disk.
type ServiceRecord struct {
	ID string `json:"id"`
	Service
}

// ToService promotes the stored id to the service slug.
func (r ServiceRecord) ToService() Service {
	s := r.Service
	s.Slug = r.ID
	return s
}
