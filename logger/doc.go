// Package logger provides structured logging for ssekit built on zerolog.
//
// It exposes a small Logger wrapper with component tagging and field maps,
// plus package-level functions that delegate to a process-wide global
// logger. Components accept an injected *Logger and fall back to the global
// one when given nil.
package logger
