// Package vision はGoogle Cloud Vision APIを使用したスクリーンショットの
// テキスト抽出クライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"journal_backend/internal/feature/trades/usecase"
)

// VisionInspector はGoogle Cloud Vision APIで取引チケットの
// スクリーンショットからテキストを抽出します。
type VisionInspector struct {
	client *gvision.ImageAnnotatorClient
}

// VisionInspectorがScreenshotInspectorを実装していることをコンパイル時に検証します。
var _ usecase.ScreenshotInspector = (*VisionInspector)(nil)

// NewVisionInspector はADCを使用してVisionInspectorの新しいインスタンスを生成します。
func NewVisionInspector(ctx context.Context) (*VisionInspector, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionInspector{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionInspector) Close() error {
	return v.client.Close()
}

// ExtractText は画像バイト列からテキストを抽出します。
// テキストが検出されなかった場合は空文字列を返します。
func (v *VisionInspector) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", nil
	}

	if resp.Responses[0].Error != nil {
		return "", fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	// 先頭のアノテーションが画像全体の抽出テキスト
	annotations := resp.Responses[0].TextAnnotations
	if len(annotations) == 0 {
		return "", nil
	}
	return annotations[0].Description, nil
}
