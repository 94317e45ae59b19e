// Package destroy runs the ordered destroy pipeline for an application stack.
//
// The pipeline waits out a grace period, describes the stack, refuses to
// touch user data (static bucket, tables) without force, empties the static
// and deployment buckets, purges parameters, reaps log groups, deletes the
// stack and polls until CloudFormation reports it gone.
package destroy
