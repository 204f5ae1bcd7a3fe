package source

import (
	"regexp"
	"strings"
)

// S3Location is a parsed object storage address.
type S3Location struct {
	Bucket string
	// Prefix is the key prefix without surrounding slashes. Empty means the bucket root.
	Prefix string
	Region string
	// Web is set when the location was given as an HTTPS URL, which can also be fetched over plain HTTP.
	Web bool
}

var (
	// https://bucket.s3.region.amazonaws.com/prefix and https://bucket.s3-region.amazonaws.com/prefix
	virtualHostedRegional = regexp.MustCompile(`^https?://([^./]+(?:\.[^./]+)*?)\.s3[.-]([a-z0-9-]+)\.amazonaws\.com(?:/(.*))?$`)
	// https://bucket.s3.amazonaws.com/prefix
	virtualHostedGlobal = regexp.MustCompile(`^https?://([^/]+?)\.s3\.amazonaws\.com(?:/(.*))?$`)
	// https://s3.region.amazonaws.com/bucket/prefix
	pathStyle = regexp.MustCompile(`^https?://s3[.-]([a-z0-9-]+)\.amazonaws\.com/([^/]+)(?:/(.*))?$`)
)

// ParseS3 recognizes the supported object storage address forms:
//
//	s3://bucket/prefix
//	https://bucket.s3.region.amazonaws.com/prefix
//	https://bucket.s3-region.amazonaws.com/prefix
//	https://bucket.s3.amazonaws.com/prefix
//	https://s3.region.amazonaws.com/bucket/prefix
//
// defaultRegion is used when the address does not carry one.
// It returns false for anything else.
func ParseS3(raw, defaultRegion string) (S3Location, bool) {
	raw = strings.TrimSpace(raw)

	if rest, ok := strings.CutPrefix(raw, "s3://"); ok {
		bucket, prefix, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return S3Location{}, false
		}
		return S3Location{Bucket: bucket, Prefix: cleanPrefix(prefix), Region: defaultRegion}, true
	}

	if m := pathStyle.FindStringSubmatch(raw); m != nil {
		return S3Location{Bucket: m[2], Prefix: cleanPrefix(m[3]), Region: m[1], Web: true}, true
	}
	if m := virtualHostedGlobal.FindStringSubmatch(raw); m != nil {
		return S3Location{Bucket: m[1], Prefix: cleanPrefix(m[2]), Region: defaultRegion, Web: true}, true
	}
	if m := virtualHostedRegional.FindStringSubmatch(raw); m != nil {
		return S3Location{Bucket: m[1], Prefix: cleanPrefix(m[3]), Region: m[2], Web: true}, true
	}

	return S3Location{}, false
}

func cleanPrefix(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return strings.Trim(p, "/")
}
