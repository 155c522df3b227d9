package s3store

// Config contains S3 connection settings.
type Config struct {
	Bucket         string `env:"S3_BUCKET,required"`
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`                            // Endpoint is set for S3-compatible services.
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"` // ForcePathStyle is needed by MinIO and similar services.
	KeyPrefix      string `env:"S3_KEY_PREFIX" envDefault:"payloadkit"`  // KeyPrefix namespaces object keys.
}
