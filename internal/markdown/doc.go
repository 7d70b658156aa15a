// Package markdown reads single markdown files from the local filesystem.
//
// Reader applies its checks in a fixed order (existence, file type,
// extension, size, decoding) and reports the first failure as an *Error whose
// Kind identifies the failed check. Successful reads return the file text
// verbatim.
package markdown
