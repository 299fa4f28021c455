// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded request models before they reach the
// services: required telemetry fields, login credentials, account updates,
// filter ranges and password reset payloads.
//
// Missing fields are reported together in a [MissingFieldsError], which
// matches [ErrMissingFields], so the caller can name every one of them.
package validators

import "context"

// Validator validates a request model. The optional field names narrow the
// check, for example "email" and "password" for a login attempt.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
