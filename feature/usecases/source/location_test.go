package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseS3(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want S3Location
	}{
		{
			name: "s3 scheme",
			raw:  "s3://poc-content/use-cases/",
			want: S3Location{Bucket: "poc-content", Prefix: "use-cases", Region: "eu-west-1"},
		},
		{
			name: "s3 scheme bucket root",
			raw:  "s3://poc-content",
			want: S3Location{Bucket: "poc-content", Region: "eu-west-1"},
		},
		{
			name: "virtual hosted with region",
			raw:  "https://poc-content.s3.us-east-1.amazonaws.com/use-cases",
			want: S3Location{Bucket: "poc-content", Prefix: "use-cases", Region: "us-east-1", Web: true},
		},
		{
			name: "virtual hosted dash region",
			raw:  "https://poc-content.s3-ap-south-1.amazonaws.com",
			want: S3Location{Bucket: "poc-content", Region: "ap-south-1", Web: true},
		},
		{
			name: "virtual hosted global",
			raw:  "https://poc-content.s3.amazonaws.com/a/b",
			want: S3Location{Bucket: "poc-content", Prefix: "a/b", Region: "eu-west-1", Web: true},
		},
		{
			name: "path style",
			raw:  "https://s3.us-east-2.amazonaws.com/poc-content/use-cases",
			want: S3Location{Bucket: "poc-content", Prefix: "use-cases", Region: "us-east-2", Web: true},
		},
		{
			name: "dotted bucket",
			raw:  "https://docs.example.s3.us-east-1.amazonaws.com/",
			want: S3Location{Bucket: "docs.example", Region: "us-east-1", Web: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseS3(tt.raw, "eu-west-1")
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseS3_NotObjectStorage(t *testing.T) {
	for _, raw := range []string{
		"https://content.example.com/use-cases",
		"http://localhost:8080",
		"s3://",
		"file:///tmp/use-cases",
		"",
	} {
		_, ok := ParseS3(raw, "us-west-2")
		assert.False(t, ok, raw)
	}
}
