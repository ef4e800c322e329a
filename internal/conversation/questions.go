// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package conversation

import (
	"fmt"
	"strings"

	"github.com/tomtom215/lovesync/internal/models"
)

// Kind is how a question expects to be answered.
type Kind string

const (
	KindText   Kind = "text"
	KindChoice Kind = "choice"
	KindScale  Kind = "scale"
)

// Scale answers are integers in [ScaleMin, ScaleMax].
const (
	ScaleMin = 1
	ScaleMax = 5
)

// Question is one prompt of the learning conversation.
type Question struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Kind     Kind     `json:"kind"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
	FollowUp bool     `json:"followUp,omitempty"`

	// Attribute receives the mapped value of a scale answer.
	Attribute string `json:"-"`

	// Polarity multiplies keyword hits of a text answer. Deal-breaker
	// questions use -1.
	Polarity float64 `json:"-"`

	// Choices maps each option, lower-cased, to its delta.
	Choices map[string]models.Delta `json:"-"`
}

// Bank is an ordered question set plus the follow-up pool.
type Bank struct {
	Questions []Question
	FollowUps []Question
}

// Validate checks that every question can be classified.
func (b *Bank) Validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("question bank is empty")
	}
	seen := make(map[string]struct{})
	all := append(append([]Question(nil), b.Questions...), b.FollowUps...)
	for _, q := range all {
		if q.ID == "" {
			return fmt.Errorf("question %q has no id", q.Text)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = struct{}{}

		switch q.Kind {
		case KindChoice:
			if len(q.Options) == 0 {
				return fmt.Errorf("choice question %s has no options", q.ID)
			}
			for _, opt := range q.Options {
				if _, ok := q.Choices[strings.ToLower(opt)]; !ok {
					return fmt.Errorf("choice question %s: option %q has no delta", q.ID, opt)
				}
			}
		case KindScale:
			if q.Attribute == "" {
				return fmt.Errorf("scale question %s has no attribute", q.ID)
			}
		case KindText:
		default:
			return fmt.Errorf("question %s has unknown kind %q", q.ID, q.Kind)
		}
	}
	for _, q := range b.FollowUps {
		if q.Kind != KindText {
			return fmt.Errorf("follow-up %s must be a text question", q.ID)
		}
	}
	return nil
}

// find returns the question with id from either list.
func (b *Bank) find(id string) (*Question, bool) {
	for i := range b.Questions {
		if b.Questions[i].ID == id {
			return &b.Questions[i], true
		}
	}
	for i := range b.FollowUps {
		if b.FollowUps[i].ID == id {
			return &b.FollowUps[i], true
		}
	}
	return nil, false
}

// order returns question IDs with required questions first, each group in
// bank order.
func (b *Bank) order() []string {
	ids := make([]string, 0, len(b.Questions))
	for _, q := range b.Questions {
		if q.Required {
			ids = append(ids, q.ID)
		}
	}
	for _, q := range b.Questions {
		if !q.Required {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// DefaultBank returns the onboarding questionnaire.
func DefaultBank() *Bank {
	return &Bank{
		Questions: []Question{
			{
				ID:       "relationship_goal",
				Text:     "What are you looking for in a relationship?",
				Kind:     KindChoice,
				Options:  []string{"Something casual", "Long-term relationship", "Not sure yet", "Just friends"},
				Required: true,
				Choices: map[string]models.Delta{
					"something casual":       {"casual": 1, "long_term": -0.5},
					"long-term relationship": {"long_term": 1, "casual": -0.5},
					"not sure yet":           {"open_minded": 0.5},
					"just friends":           {"friendship": 1},
				},
			},
			{
				ID:       "personality",
				Text:     "How would you describe your personality?",
				Kind:     KindText,
				Required: true,
				Polarity: 1,
			},
			{
				ID:       "interests",
				Text:     "What are your main interests and hobbies?",
				Kind:     KindText,
				Required: true,
				Polarity: 1,
			},
			{
				ID:        "fitness",
				Text:      "How important is physical fitness in your life?",
				Kind:      KindScale,
				Required:  false,
				Attribute: "fitness",
			},
			{
				ID:       "first_date",
				Text:     "What's your ideal first date?",
				Kind:     KindText,
				Required: true,
				Polarity: 1,
			},
			{
				ID:       "communication",
				Text:     "How do you prefer to communicate?",
				Kind:     KindChoice,
				Options:  []string{"Texting", "Phone calls", "Video calls", "In person"},
				Required: true,
				Choices: map[string]models.Delta{
					"texting":     {"texting": 1},
					"phone calls": {"phone_calls": 1},
					"video calls": {"video_calls": 1},
					"in person":   {"in_person": 1},
				},
			},
			{
				ID:       "deal_breakers",
				Text:     "What are your deal-breakers in a relationship?",
				Kind:     KindText,
				Required: true,
				Polarity: -1,
			},
		},
		FollowUps: []Question{
			{
				ID:       "followup_passions",
				Text:     "What's something you're passionate about that most people don't know?",
				Kind:     KindText,
				FollowUp: true,
				Polarity: 1,
			},
			{
				ID:       "followup_weekend",
				Text:     "What does your ideal weekend look like?",
				Kind:     KindText,
				FollowUp: true,
				Polarity: 1,
			},
			{
				ID:       "followup_laugh",
				Text:     "What makes you laugh?",
				Kind:     KindText,
				FollowUp: true,
				Polarity: 1,
			},
		},
	}
}
