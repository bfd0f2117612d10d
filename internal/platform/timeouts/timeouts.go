// Package timeouts defines shared timeout constants used across commands.
// Centralizing these values prevents drift between service boundaries and
// makes the durations discoverable.
package timeouts

import "time"

// SessionIdle is how long an investigation may sit without an accepted
// event before it terminates itself.
const SessionIdle = 5 * time.Minute

// SurfaceCall caps a single outbound surface call (render, notify, delete).
const SurfaceCall = 10 * time.Second

// Shutdown limits how long a command waits for in-flight work during
// graceful shutdown.
const Shutdown = 5 * time.Second
