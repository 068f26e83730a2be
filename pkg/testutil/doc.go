// Package testutil provides helpers shared by the oxi package tests.
//
// Key components:
//   - Disk fixtures: CreateFile, CreateTemplates, Chdir
//   - Memory fixtures: MemoryFS seeds an in-memory filesystem.FS
//   - Assertions: AssertErrorCode, AssertErrorDetail, AssertWellFormed
//
// Prefer MemoryFS. Only tests that drive the CLI, which always works on the
// real disk, need the disk helpers.
package testutil
