package cure

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"asset-curator/core/curator"
	"asset-curator/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestObjectKey(t *testing.T) {
	rep := &curator.Report{RunID: "abc", Dir: "/lib/lesson-1", StartedAt: time.Unix(1700000000, 0)}
	assert.Equal(t, "reports/lesson-1/1700000000-abc.json", ObjectKey("reports", rep))
	assert.Equal(t, "lesson-1/1700000000-abc.json", ObjectKey("", rep))
}

func TestReportPublisher_Publish(t *testing.T) {
	rep := sampleReport("run-1", "/lib/a", time.Unix(1700000000, 0))
	jsonOpts := mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" })

	t.Run("existing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, "reports-bucket", "reports/a/1700000000-run-1.json", mock.Anything, mock.AnythingOfType("int64"), jsonOpts).
			Run(func(args mock.Arguments) {
				body, err := io.ReadAll(args.Get(3).(io.Reader))
				require.NoError(t, err)
				assert.Contains(t, string(body), `"run_id": "run-1"`)
				assert.Equal(t, int64(len(body)), args.Get(4).(int64))
			}).
			Return(minio.UploadInfo{}, nil)

		key, err := NewReportPublisher(client, "reports-bucket", "reports", zap.NewNop()).Publish(context.Background(), rep)

		require.NoError(t, err)
		assert.Equal(t, "reports/a/1700000000-run-1.json", key)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
		client.AssertExpectations(t)
	})

	t.Run("missing bucket is created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports-bucket").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "reports-bucket", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "reports-bucket", mock.Anything, mock.Anything, mock.Anything, jsonOpts).
			Return(minio.UploadInfo{}, nil)

		_, err := NewReportPublisher(client, "reports-bucket", "reports", zap.NewNop()).Publish(context.Background(), rep)

		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("bucket check failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports-bucket").Return(false, errors.New("unreachable"))

		_, err := NewReportPublisher(client, "reports-bucket", "reports", zap.NewNop()).Publish(context.Background(), rep)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check bucket existence")
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, "reports-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("quota exceeded"))

		_, err := NewReportPublisher(client, "reports-bucket", "reports", zap.NewNop()).Publish(context.Background(), rep)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}
