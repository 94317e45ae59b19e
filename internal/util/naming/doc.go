// Package naming derives the remote resource names of a deployed application.
//
// Every lookup the destroy workflow performs is keyed off the stack
// identifier, a PascalCase logical ID built from the application name,
// environment and optional stack suffix. Parameter paths, the deployment
// bucket parameter and the Lambda log group prefix are derived from the
// same inputs so that deploy and destroy tooling agree on them.
package naming
