// Package webhook は取引作成時のチャットWebhook通知クライアントを提供します。
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"journal_backend/internal/feature/trades/domain/entity"
	"journal_backend/internal/feature/trades/usecase"
	"journal_backend/internal/shared/ratelimiter"
)

// WebhookNotifier はDiscord互換のWebhookエンドポイントに取引通知をPOSTします。
// 通知はベストエフォートであり、呼び出し側はエラーをログ出力のみ行います。
type WebhookNotifier struct {
	client  *http.Client
	url     string
	limiter ratelimiter.RateLimiterInterface
}

// WebhookNotifierがNotifierを実装していることをコンパイル時に検証します。
var _ usecase.Notifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier は指定されたHTTPクライアントとWebhook URLで
// WebhookNotifierの新しいインスタンスを生成します。
// limiterはWebhook先への送信頻度を抑えるために使用されます（nil可）。
func NewWebhookNotifier(client *http.Client, url string, limiter ratelimiter.RateLimiterInterface) *WebhookNotifier {
	return &WebhookNotifier{client: client, url: url, limiter: limiter}
}

// payload はDiscord互換Webhookのメッセージボディです。
type payload struct {
	Content string `json:"content"`
}

// Notify は取引の概要をWebhookに送信します。
func (n *WebhookNotifier) Notify(ctx context.Context, t *entity.Trade) error {
	if n.limiter != nil {
		n.limiter.WaitIfNeeded()
	}

	msg := payload{Content: formatTrade(t)}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// formatTrade は通知メッセージの本文を組み立てます。
func formatTrade(t *entity.Trade) string {
	result := "open"
	if t.Profit != nil {
		result = fmt.Sprintf("%+.2f", *t.Profit)
	}
	return fmt.Sprintf("New trade: %s %s %.2f lots @ %.2f (%s) on %s",
		t.Symbol, t.Side, t.LotSize, t.EntryPrice, result,
		t.OccurredAt.Format(time.RFC3339))
}
