// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errPanic wraps a value recovered from a panicking handler.
var errPanic = errors.New("handler panicked")

// errInvalidGzipBody marks a request body whose gzip stream is corrupt.
var errInvalidGzipBody = errors.New("invalid gzip request body")
