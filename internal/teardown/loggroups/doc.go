// Package loggroups reaps the CloudWatch log groups created by a stack's
// functions. Deletions are staggered because the logs API rejects bursts,
// and a failed deletion is reported as a warning rather than an error.
package loggroups
