// Package s3 provides a client for S3-compatible object storage such as
// Hetzner Object Storage or AWS S3.
//
// It uploads generated manifests and reads them back for validation.
package s3
