// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

package conversation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tomtom215/lovesync/internal/models"
)

// MaxAnswerLength bounds answer text in characters.
const MaxAnswerLength = 2000

// negationWindow is how many preceding tokens can negate a keyword.
const negationWindow = 3

// keywordAttributes maps answer tokens to preference attributes.
var keywordAttributes = map[string]string{
	"hiking": "hiking", "hike": "hiking", "hikes": "hiking", "trekking": "hiking",
	"outdoors": "outdoors", "outdoor": "outdoors", "nature": "outdoors", "camping": "outdoors",
	"art": "art", "painting": "art", "museum": "art", "museums": "art", "gallery": "art", "drawing": "art",
	"music": "music", "concert": "music", "concerts": "music", "guitar": "music", "singing": "music",
	"travel": "travel", "traveling": "travel", "travelling": "travel", "trips": "travel",
	"cooking": "cooking", "cook": "cooking", "baking": "cooking", "food": "food", "dinner": "food", "restaurant": "food",
	"reading": "reading", "books": "reading", "book": "reading", "novels": "reading",
	"gaming": "gaming", "games": "gaming", "videogames": "gaming",
	"fitness": "fitness", "gym": "fitness", "running": "fitness", "yoga": "fitness", "workout": "fitness",
	"movies": "movies", "movie": "movies", "film": "movies", "cinema": "movies",
	"coffee": "coffee", "cafe": "coffee",
	"dancing": "dancing", "dance": "dancing",
	"dogs": "pets", "dog": "pets", "cats": "pets", "cat": "pets", "pets": "pets",
	"funny": "humor", "humor": "humor", "humour": "humor", "jokes": "humor", "laugh": "humor", "laughing": "humor",
	"adventurous": "adventure", "adventure": "adventure", "spontaneous": "adventure",
	"introvert": "introvert", "introverted": "introvert", "quiet": "introvert", "shy": "introvert",
	"extrovert": "extrovert", "extroverted": "extrovert", "outgoing": "extrovert", "social": "extrovert",
	"smoking": "smoking", "smoke": "smoking", "smoker": "smoking",
	"drinking": "drinking", "drinks": "drinking", "wine": "drinking", "beer": "drinking",
	"kids": "family", "children": "family", "family": "family",
	"honest": "honesty", "honesty": "honesty", "lying": "honesty", "liar": "honesty",
	"kind": "kindness", "kindness": "kindness", "caring": "kindness", "rude": "kindness",
}

// Tokens whose polarity is inverted on their own, e.g. "lying" as a
// deal-breaker means honesty matters.
var invertedKeywords = map[string]struct{}{
	"lying": {}, "liar": {}, "rude": {},
}

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "dont": {}, "doesnt": {}, "isnt": {},
	"cant": {}, "wont": {}, "hate": {}, "dislike": {}, "without": {}, "nor": {},
}

// Classify validates answer against q and converts it into a preference
// delta. It returns the canonical answer text: the matched option for choice
// questions, the digit for scale questions and the trimmed text otherwise.
func Classify(q *Question, answer string) (models.Delta, string, error) {
	text := strings.TrimSpace(answer)
	if text == "" {
		return nil, "", fmt.Errorf("%w: answer must not be empty", models.ErrInvalidInput)
	}
	if len([]rune(text)) > MaxAnswerLength {
		return nil, "", fmt.Errorf("%w: answer must be at most %d characters", models.ErrInvalidInput, MaxAnswerLength)
	}

	switch q.Kind {
	case KindChoice:
		return classifyChoice(q, text)
	case KindScale:
		return classifyScale(q, text)
	default:
		return classifyText(q, text), text, nil
	}
}

// classifyChoice matches an option case-insensitively or by 1-based index.
func classifyChoice(q *Question, text string) (models.Delta, string, error) {
	option := ""
	if n, err := strconv.Atoi(text); err == nil {
		if n >= 1 && n <= len(q.Options) {
			option = q.Options[n-1]
		}
	} else {
		for _, opt := range q.Options {
			if strings.EqualFold(opt, text) {
				option = opt
				break
			}
		}
	}
	if option == "" {
		return nil, "", fmt.Errorf("%w: answer must be one of %s or 1-%d",
			models.ErrInvalidInput, strings.Join(q.Options, ", "), len(q.Options))
	}

	delta := q.Choices[strings.ToLower(option)]
	return copyDelta(delta), option, nil
}

// classifyScale maps 1..5 linearly onto -1..+1 for the question's attribute.
func classifyScale(q *Question, text string) (models.Delta, string, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < ScaleMin || n > ScaleMax {
		return nil, "", fmt.Errorf("%w: answer must be an integer from %d to %d", models.ErrInvalidInput, ScaleMin, ScaleMax)
	}
	mid := float64(ScaleMin+ScaleMax) / 2
	half := float64(ScaleMax-ScaleMin) / 2
	return models.Delta{q.Attribute: (float64(n) - mid) / half}, strconv.Itoa(n), nil
}

// classifyText sums keyword hits, flipping the sign when a negation appears
// within the preceding negationWindow tokens. Weights are clamped to [-1,1].
func classifyText(q *Question, text string) models.Delta {
	polarity := q.Polarity
	if polarity == 0 {
		polarity = 1
	}

	tokens := tokenize(text)
	delta := make(models.Delta)
	for i, tok := range tokens {
		attr, ok := keywordAttributes[tok]
		if !ok {
			continue
		}
		sign := polarity
		if _, inv := invertedKeywords[tok]; inv {
			sign = -sign
		}
		if negated(tokens, i) {
			sign = -sign
		}
		delta[attr] += sign
	}

	for k, v := range delta {
		switch {
		case v > 1:
			delta[k] = 1
		case v < -1:
			delta[k] = -1
		case v == 0:
			delete(delta, k)
		}
	}
	return delta
}

func negated(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
		if _, ok := negations[tokens[j]]; ok {
			return true
		}
	}
	return false
}

// tokenize lower-cases text, splits on anything but letters and digits and
// drops apostrophes so "don't" becomes "dont".
func tokenize(text string) []string {
	text = strings.NewReplacer("'", "", "’", "").Replace(strings.ToLower(text))
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func copyDelta(d models.Delta) models.Delta {
	out := make(models.Delta, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
