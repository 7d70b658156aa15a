// Package validation holds the syntactic checks applied to user supplied
// paths before any filesystem access happens.
package validation
