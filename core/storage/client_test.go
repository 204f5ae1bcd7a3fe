package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"poc-portal/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("StaticCredentials", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg, "us-east-1")
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("CredentialChain", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{}, "eu-central-1")
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("DefaultRegion", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{}, "")
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		cfg        storage.Config
		region     string
		wantHost   string
		wantSecure bool
	}{
		{"AWSRegional", storage.Config{}, "eu-west-1", "s3.eu-west-1.amazonaws.com", true},
		{"Plain", storage.Config{Endpoint: "localhost:9000"}, "us-east-1", "localhost:9000", false},
		{"PlainWithSSL", storage.Config{Endpoint: "minio.internal", UseSSL: true}, "us-east-1", "minio.internal", true},
		{"HTTPScheme", storage.Config{Endpoint: "http://localhost:9000/", UseSSL: true}, "us-east-1", "localhost:9000", false},
		{"HTTPSScheme", storage.Config{Endpoint: "https://s3.example.com"}, "us-east-1", "s3.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, secure := storage.Endpoint(tt.cfg, tt.region)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, storage.IsNotFound(nil))
	assert.False(t, storage.IsNotFound(errors.New("boom")))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, storage.IsNotFound(fmt.Errorf("wrapped: %w", minio.ErrorResponse{Code: "NoSuchBucket"})))
	assert.True(t, storage.IsNotFound(minio.ErrorResponse{StatusCode: 404}))
	assert.False(t, storage.IsNotFound(minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403}))
}

func TestPool(t *testing.T) {
	created := 0
	pool := storage.NewPoolWithFactory(storage.Config{Region: "eu-west-1"}, func(cfg storage.Config, region string) (storage.Client, error) {
		created++
		if region == "broken" {
			return nil, errors.New("no client")
		}
		return storage.NewClient(cfg, region)
	})

	assert.Equal(t, "eu-west-1", pool.DefaultRegion())

	a, err := pool.Get("us-east-1")
	require.NoError(t, err)
	b, err := pool.Get("us-east-1")
	require.NoError(t, err)
	assert.Same(t, a, b)

	_, err = pool.Get("")
	require.NoError(t, err)
	assert.Equal(t, 2, pool.Len())

	_, err = pool.Get("broken")
	assert.Error(t, err)
	assert.Equal(t, 2, pool.Len())
	assert.Equal(t, 3, created)
}
