// Package async provides a helper for running independent tasks concurrently.
//
// [RunParallel] starts every task, waits for all of them, and returns the
// first error encountered. It is used where a step fans out over independent
// remote lookups, such as discovering parameters under several path roots.
package async
