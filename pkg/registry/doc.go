// Package registry provides a generic, thread-safe name registry. It backs
// the parser's global placeholder providers and the loader's source kinds.
package registry
