// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package compat

import (
	"context"
	"fmt"

	"github.com/tomtom215/lovesync/internal/models"
	"github.com/tomtom215/lovesync/internal/validation"
)

// DefaultExplainLimit is the number of shared attributes Explain reports.
const DefaultExplainLimit = 5

// PreferenceReader loads preference vectors. preference.Store implements it.
type PreferenceReader interface {
	Get(ctx context.Context, userID string) (*models.PreferenceVector, error)
}

// Explanation is a score together with the attributes driving it.
type Explanation struct {
	Score  float64        `json:"score"`
	Shared []Contribution `json:"shared"`
}

// Service scores stored users against each other.
type Service struct {
	prefs PreferenceReader
}

// NewService creates a compatibility service.
func NewService(prefs PreferenceReader) *Service {
	return &Service{prefs: prefs}
}

// Compatibility returns Score of the two users' preference vectors.
func (s *Service) Compatibility(ctx context.Context, a, b string) (float64, error) {
	va, vb, err := s.load(ctx, a, b)
	if err != nil {
		return 0, err
	}
	return Score(va.Weights, vb.Weights), nil
}

// Explain returns the score plus the top shared attributes.
func (s *Service) Explain(ctx context.Context, a, b string, limit int) (*Explanation, error) {
	va, vb, err := s.load(ctx, a, b)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultExplainLimit
	}
	return &Explanation{
		Score:  Score(va.Weights, vb.Weights),
		Shared: TopShared(va.Weights, vb.Weights, limit),
	}, nil
}

func (s *Service) load(ctx context.Context, a, b string) (*models.PreferenceVector, *models.PreferenceVector, error) {
	for _, id := range []string{a, b} {
		if !validation.ValidEntityID(id) {
			return nil, nil, fmt.Errorf("%w: invalid user id %q", models.ErrInvalidInput, id)
		}
	}
	va, err := s.prefs.Get(ctx, a)
	if err != nil {
		return nil, nil, err
	}
	vb, err := s.prefs.Get(ctx, b)
	if err != nil {
		return nil, nil, err
	}
	return va, vb, nil
}
