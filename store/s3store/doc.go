// Package s3store implements store.Store on Amazon S3 (or any endpoint
// speaking the S3 API).
//
// # Usage
//
//	s, err := s3store.Dial(ctx, s3store.Options{
//	    Bucket: "tsp-results",
//	    Prefix: "runs/2025",
//	    Region: "eu-central-1",
//	})
//
// Credentials come from the default AWS chain (environment, shared config,
// instance role).
package s3store
