// Package server provides a unified HTTP server backed by Gin with h2c
// support, a standard middleware stack, and default health/info endpoints.
package server
