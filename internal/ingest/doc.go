// Package ingest forwards the tracker's serial telemetry to the API.
//
// A [Subscriber] receives raw firmware lines from an MQTT topic (published by
// the serial bridge next to the tracker) and hands every message to a
// [FrameHandler], which decodes the lines and stores them through the
// tracker API adapter.
package ingest
