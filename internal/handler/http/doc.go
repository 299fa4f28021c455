// Package http implements the HTTP transport layer of the tracker API.
//
// The legacy dashboard addresses every resource through a single entry point
// ("/" or "/index.php") and selects it with the path query parameter, e.g.
// ?path=can_frames/12. The dispatcher resolves the resource and optional id,
// reads the JSON body once and hands the request to the can_frames, login or
// reset_password controller. Tracing, access logging, metrics, panic recovery
// and CORS are applied as middleware before dispatching.
package http
