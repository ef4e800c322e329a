// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

// Swagger general API information. The docs package is regenerated from
// these and the handler annotations with:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
//
// @title LoveSync API
// @version 1.0
// @description Match recommendation and conversational learning engine.
// @description
// @description ## Learning
// @description
// @description - **Swipes**: likes and passes move the swiper's preference vector toward or away from the target's attributes
// @description - **Conversations**: onboarding answers are classified into preference signals
// @description - **Reset**: POST /users/{userId}/reset-ai restores the profile-derived seed
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Writes and health checks have their own limits.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-03-01T12:00:00Z",
// @description     "requestId": "..."
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/lovesync/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Engine
// @tag.description Swipe ingestion, ranked recommendations and pairwise compatibility
//
// @tag.name Conversation
// @tag.description Conversational preference learning sessions
//
// @tag.name Users
// @tag.description Profiles, discovery settings, preference vectors and swipe history
//
// @tag.name Core
// @tag.description Health and readiness checks
package main
