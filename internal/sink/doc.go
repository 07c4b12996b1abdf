// Package sink writes an encoded manifest to its destination: a local file
// or an object in S3-compatible storage addressed as s3://bucket/key.
package sink
