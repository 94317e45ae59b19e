// Package ssm provides the Parameter Store operations used by a destroy
// run: reading a single parameter, paging through a path, and deleting
// names in batches of at most 10.
package ssm
