// Package cloudformation provides the infrastructure stack operations used
// by a destroy run: describing a stack and its resources, requesting
// deletion, and recognising the "stack does not exist" answer.
//
// The SDK surface is consumed through narrow per-operation interfaces so
// tests can substitute a fake for the remote API.
package cloudformation
