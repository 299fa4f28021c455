// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by every resource of the
// tracker API.
//
// All Msg* constants are the exact strings written into the "message" field
// of JSON error bodies. Resource-specific messages live next to their
// controllers in the http handler package.
package app

const (
	// MsgResourceNotFound is returned for an unknown path resource and for
	// routes that do not exist.
	MsgResourceNotFound = "Resource not found"

	// MsgMethodNotAllowed is returned when the HTTP method is not supported
	// by the addressed resource.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs, including recovered panics. Details are only logged.
	MsgInternalServerError = "Internal server error"

	// MsgBodyTooLarge is returned when the request body exceeds the
	// configured limit.
	MsgBodyTooLarge = "Request body too large"

	// MsgInvalidDataProvided is returned when a body is valid JSON but its
	// values do not fit the resource (e.g. text where a number is expected).
	MsgInvalidDataProvided = "Invalid data provided"
)
