// Package config loads the application manifest and runtime timings.
//
// The manifest (stackrm.yaml) names the application and the AWS region and
// profile it is deployed to. It is discovered in the working directory or
// the nearest parent directory. Timings that tests and operators may want to
// tune (grace period, poll interval, log deletion stagger, poll budget) are
// read from STACKRM_* environment variables.
package config
