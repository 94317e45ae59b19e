// Package logs provides the CloudWatch Logs operations used to reap the log
// groups left behind by a stack's functions.
package logs
