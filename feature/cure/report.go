package cure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"

	"asset-curator/core/curator"
	"asset-curator/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ReportPublisher uploads cure reports as JSON objects.
type ReportPublisher struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewReportPublisher creates a publisher writing to bucket under prefix.
func NewReportPublisher(client storage.Client, bucket, prefix string, logger *zap.Logger) *ReportPublisher {
	return &ReportPublisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// ObjectKey returns <prefix>/<dir-base>/<started-unix>-<run-id>.json.
func ObjectKey(prefix string, rep *curator.Report) string {
	name := fmt.Sprintf("%d-%s.json", rep.StartedAt.Unix(), rep.RunID)
	return path.Join(prefix, filepath.Base(rep.Dir), name)
}

// Publish uploads rep and returns its object key. The bucket is created when missing.
func (p *ReportPublisher) Publish(ctx context.Context, rep *curator.Report) (string, error) {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
		p.logger.Info("Created report bucket", zap.String("bucket", p.bucket))
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	key := ObjectKey(p.prefix, rep)
	_, err = p.client.PutObject(ctx, p.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", key, err)
	}
	return key, nil
}
