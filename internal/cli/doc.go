// Package cli resolves invocation arguments into a Request and renders the
// help text and error reports written by the ai_coding_agent binary.
package cli
