// Package storage はGoogle Cloud Storageを使用したブロブストアを提供します。
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSBlobStore はスクリーンショット等のバイト列をGCSバケットに保存し、
// 公開URLを返します。
type GCSBlobStore struct {
	client *gcs.Client
	bucket string
}

// NewGCSBlobStore はADCを使用してGCSBlobStoreの新しいインスタンスを生成します。
func NewGCSBlobStore(ctx context.Context, bucket string) (*GCSBlobStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSBlobStore{client: client, bucket: bucket}, nil
}

// Close はGCSクライアントを解放します。
func (s *GCSBlobStore) Close() error {
	return s.client.Close()
}

// Upload はバイト列を指定されたオブジェクトパスに書き込み、公開URLを返します。
// 書き込みが完了するまで関数は戻りません。部分的な書き込みは残しません。
func (s *GCSBlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	w := s.client.Bucket(s.bucket).Object(path).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, path), nil
}
