// Package server owns the lifecycle of the inbound HTTP transport:
// construction from configuration, startup, and signal-driven graceful
// shutdown.
package server
