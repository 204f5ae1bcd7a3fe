package storage

// Config holds configuration for the object storage clients.
type Config struct {
	// Endpoint overrides the storage endpoint (e.g. a MinIO host). When empty the
	// regional AWS S3 endpoint of the source location is used.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication. When empty the
	// environment, shared credentials file and IAM role are tried in order.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// Region is used for s3:// locations, which carry no region of their own.
	Region string `mapstructure:"region" default:"us-west-2"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
