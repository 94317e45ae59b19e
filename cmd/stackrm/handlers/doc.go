// Package handlers executes stackrm commands.
//
// Handlers resolve the application manifest, confirm the operator's intent,
// build the AWS clients and run the destroy pipeline. Guard errors are
// turned into the remediation text an operator needs to proceed.
package handlers
