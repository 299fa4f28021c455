// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the collector's client of the tracker API.
//
// [TrackerAdapter] decouples the ingest pipeline from the transport. The
// package ships an HTTP implementation ([NewHTTPTrackerAdapter]) that talks
// to the legacy query-routed endpoint (/?path=can_frames).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrBadRequest] for
// a rejected frame, [ErrNotFound] for an unknown id).
package adapter

import (
	"context"
	"net/url"

	"github.com/solarpanel/tracker-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TrackerAdapter sends telemetry to and reads it back from the tracker API.
type TrackerAdapter interface {
	// CreateCanFrame stores one telemetry frame and returns its id.
	CreateCanFrame(ctx context.Context, input models.CanFrameInput) (int64, error)

	// GetCanFrame fetches a single frame by id.
	GetCanFrame(ctx context.Context, id int64) (models.CanFrame, error)

	// ListCanFrames fetches the frames matching filter, newest first.
	// filter uses the query parameter names of the API (column names,
	// date_from, date_to).
	ListCanFrames(ctx context.Context, filter url.Values) ([]models.CanFrame, error)
}
