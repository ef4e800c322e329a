// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package compat

import (
	"math"
	"sort"
)

// Neutral is the score of a pair where either vector carries no signal.
const Neutral = 0.5

// Score returns the cosine similarity of a and b over the union of their
// keys, rescaled from [-1,1] to [0,1]. Missing keys count as 0. If either
// vector has zero magnitude the cosine is taken as 0, giving Neutral.
func Score(a, b map[string]float64) float64 {
	dot, normA, normB := products(a, b)
	if normA == 0 || normB == 0 {
		return Neutral
	}
	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return clamp((cos + 1) / 2)
}

// Contribution is one attribute's share of the cosine between two vectors.
type Contribution struct {
	Attribute    string  `json:"attribute"`
	Contribution float64 `json:"contribution"`
}

// TopShared returns up to n attributes present in both vectors, ordered by
// contribution to the cosine (largest first, ties by name).
func TopShared(a, b map[string]float64, n int) []Contribution {
	_, normA, normB := products(a, b)
	out := []Contribution{}
	if normA == 0 || normB == 0 || n <= 0 {
		return out
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)

	for k, x := range a {
		y, ok := b[k]
		if !ok || x == 0 || y == 0 {
			continue
		}
		out = append(out, Contribution{Attribute: k, Contribution: x * y / denom})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Contribution != out[j].Contribution {
			return out[i].Contribution > out[j].Contribution
		}
		return out[i].Attribute < out[j].Attribute
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// products returns a·b, |a|² and |b|², summed in key order so the result is
// deterministic and exactly symmetric.
func products(a, b map[string]float64) (dot, normA, normB float64) {
	for _, k := range unionKeys(a, b) {
		x, y := a[k], b[k]
		dot += x * y
		normA += x * x
		normB += y * y
	}
	return dot, normA, normB
}

func unionKeys(a, b map[string]float64) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return Neutral
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
