// Package testutil provides helpers shared by chatstyle's tests.
//
// Key components:
//   - TestEnvironment: points every XDG location at a temp dir so config,
//     data and log files never touch the real home directory
//   - MemorySource: an in-memory emoticon data source for loader tests
//
// Usage guidelines:
//   - Call NewTestEnvironment before loading configuration
//   - Define test data inline, not in external files
package testutil
