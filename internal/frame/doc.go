// Package frame decodes the serial telemetry line emitted by the tracker
// firmware.
//
// A line is the ASCII marker "FA", a fixed-width payload of right-aligned
// decimal fields and the ASCII marker "0D". The payload layout is described
// by [Layout]; padding between groups is skipped.
package frame
