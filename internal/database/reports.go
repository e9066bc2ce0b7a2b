// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package database

import (
	"context"

	"github.com/go-donew/mentoring-api/internal/models"
)

// ReportStore persists report definitions.
type ReportStore struct {
	reports *collection[models.Report]
}

// Find returns all reports matching the filters.
func (s *ReportStore) Find(ctx context.Context, filters []Filter) ([]*models.Report, error) {
	return s.reports.Find(ctx, filters)
}

// Get fetches a report by id.
func (s *ReportStore) Get(ctx context.Context, id string) (*models.Report, error) {
	return s.reports.Get(ctx, id)
}

// Create stores a new report.
func (s *ReportStore) Create(ctx context.Context, report *models.Report) error {
	return s.reports.Create(ctx, report.ID, report)
}

// Update applies mutate to the stored report inside one transaction.
func (s *ReportStore) Update(ctx context.Context, id string, mutate func(*models.Report) error) (*models.Report, error) {
	return s.reports.Update(ctx, id, mutate)
}

// Delete removes a report by id.
func (s *ReportStore) Delete(ctx context.Context, id string) error {
	return s.reports.Delete(ctx, id)
}
