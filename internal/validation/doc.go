// LoveSync - Match Recommendation and Conversational Learning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lovesync

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is created on first use with
WithRequiredStructEnabled. Field names in errors come from json tags, so a
failure on User.Age is reported as "age".

Custom tags:
  - entityid: user and session identifiers, 1-64 of [A-Za-z0-9_-]

ValidateStruct returns a *RequestValidationError, which unwraps to
models.ErrInvalidInput and converts to the API error body with ToAPIError:

	if err := validation.ValidateStruct(&req); err != nil {
	    var verr *validation.RequestValidationError
	    if errors.As(err, &verr) {
	        apiErr := verr.ToAPIError()
	        ...
	    }
	}
*/
package validation
