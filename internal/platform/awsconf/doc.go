// Package awsconf builds the shared AWS configuration used by every remote
// client of a destroy run.
//
// The configuration is constructed once from the region, profile, optional
// static credentials and optional endpoint override, then handed to the
// s3, cloudformation, ssm and logs clients. CallerIdentity resolves the
// account the credentials belong to.
package awsconf
