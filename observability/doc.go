// Package observability initializes OpenTelemetry metrics export for ssekit
// services. Instruments are created through Meter; without InitMeter the
// global no-op provider keeps recording free.
package observability
