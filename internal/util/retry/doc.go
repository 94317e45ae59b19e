// Package retry provides a bounded polling loop for operations that settle
// asynchronously on the remote side.
//
// [Poll] calls a check function on a fixed interval until it reports done,
// fails, or the attempt budget runs out. It is used to wait for stack
// deletion to complete.
package retry
