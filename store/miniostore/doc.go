// Package miniostore implements store.Store on MinIO and other S3-compatible
// object storage, so instance corpora and result files can live in a bucket
// shared by several benchmark machines.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := miniostore.New(client, "tsp", "runs/")
//	inst, err := tsplib.LoadFrom(ctx, s, "inputs/atlanta.tsp")
package miniostore
