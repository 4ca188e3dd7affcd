// Package otel republishes client metrics through an OpenTelemetry meter.
//
// Instruments are observable: the registered callback reads a fresh
// snapshot on every collection cycle. Histograms are modeled as one gauge
// per cumulative bucket plus a count gauge, since snapshots carry raw
// bucket counts rather than recorded samples.
//
// Callers own the meter provider; Close only unregisters the callback.
package otel
