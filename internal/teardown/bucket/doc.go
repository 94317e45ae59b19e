// Package bucket empties object storage buckets and optionally removes them.
package bucket
