// Package logging provides module-scoped loggers for the reader runtime along
// with a no-op fallback used whenever diagnostics are switched off.
package logging
