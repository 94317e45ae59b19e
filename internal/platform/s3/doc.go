// Package s3 provides the object storage operations needed to empty and
// remove a bucket: existence probe, paginated listing, bulk deletion of up
// to 1000 keys per call, and bucket deletion.
package s3
