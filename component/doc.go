// Package component defines the lifecycle contract for ssekit infrastructure
// components and a registry that starts them in order, stops them in reverse
// order, and aggregates health.
package component
