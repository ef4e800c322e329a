// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package conversation runs the onboarding dialogue that teaches the
preference model about a user.

A session walks a question bank: required questions in bank order, then
optional ones. Each answer is classified into a preference delta (choice
options map to fixed deltas, 1..5 scales map linearly onto -1..+1 and free
text goes through a keyword heuristic with negation handling) and handed to
the preference store.

States:

	idle -> awaiting_answer -> classifying -> awaiting_answer ... -> completed

A text answer that yields no signal pulls in a follow-up question, up to
the configured budget per session; follow-ups never repeat. A session
therefore completes within MaxSteps answers. Completed is terminal.

Sessions are in-memory only. Sweep evicts those idle longer than the
session TTL and is driven by a supervised janitor.
*/
package conversation
