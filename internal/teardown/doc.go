// Package teardown provides shared types and interfaces for destroying a
// deployed application stack.
//
// The teardown domain is organized into focused subpackages:
//   - bucket/: empties and removes object storage buckets
//   - parameters/: purges configuration parameters
//   - loggroups/: reaps function log groups
//   - destroy/: the ordered destroy pipeline and its entry point
//
// This root package contains the request and state types, the remote client
// bundle, the error taxonomy, progress reporting and metrics shared across
// subpackages.
package teardown
