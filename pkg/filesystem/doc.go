// Package filesystem provides the filesystem abstraction used by the compiler,
// the source finder and the batch build.
//
// Everything goes through FS so that commands run against the real disk while
// tests run against an in-memory tree.
package filesystem
