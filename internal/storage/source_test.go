package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSourceLocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "entities.ftm.json")
	if err := os.WriteFile(path, []byte(`{"id":"c1"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := NewSource(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Name() != path {
		t.Errorf("expected name %q, got %q", path, source.Name())
	}

	reader, err := source.Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"id":"c1"}` {
		t.Errorf("unexpected content %q", data)
	}
}

func TestNewSourceS3Reference(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		bucket  string
		key     string
		wantErr bool
	}{
		{name: "bucket and key", ref: "s3://exports/full/entities.ftm.json", bucket: "exports", key: "full/entities.ftm.json"},
		{name: "missing key", ref: "s3://exports", wantErr: true},
		{name: "missing bucket", ref: "s3:///entities.ftm.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := NewSource(context.Background(), tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			s3Source, ok := source.(*S3Source)
			if !ok {
				t.Fatalf("expected S3 source, got %T", source)
			}
			if s3Source.Bucket != tt.bucket || s3Source.Key != tt.key {
				t.Errorf("expected %s/%s, got %s/%s", tt.bucket, tt.key, s3Source.Bucket, s3Source.Key)
			}
			if source.Name() != tt.ref {
				t.Errorf("expected name %q, got %q", tt.ref, source.Name())
			}
		})
	}
}
