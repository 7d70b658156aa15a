// Package commands adapts go-command handlers to the reader runtime. Handler
// validates messages, applies timeouts, logs execution and categorises
// failures with go-errors.
package commands
