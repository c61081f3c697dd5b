package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/corporate-radar/backend/pkg/ftm"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// FileSource reads an export dump from the local filesystem.
type FileSource struct {
	Path string
}

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	return file, nil
}

func (s *FileSource) Name() string {
	return s.Path
}

// S3Source streams an export dump from object storage. Open returns a fresh
// body every time, so the two ingestion passes each read the object from
// the start.
type S3Source struct {
	Client *s3.Client
	Bucket string
	Key    string
}

func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	return OpenObject(ctx, s.Client, s.Bucket, s.Key)
}

func (s *S3Source) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
}

// NewSource resolves a source reference into an openable source. References
// of the form s3://bucket/key are streamed from object storage; everything
// else is treated as a local file path.
func NewSource(ctx context.Context, ref string) (ftm.Source, error) {
	if !strings.HasPrefix(ref, "s3://") {
		return &FileSource{Path: ref}, nil
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid source reference %s: %w", ref, err)
	}
	bucket := parsed.Host
	key := strings.TrimPrefix(parsed.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid source reference %s: need s3://bucket/key", ref)
	}

	client, err := NewS3Client(ctx)
	if err != nil {
		return nil, err
	}

	return &S3Source{Client: client, Bucket: bucket, Key: key}, nil
}
