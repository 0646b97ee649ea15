// Package usecase はtradesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"journal_backend/internal/feature/trades/domain/entity"
)

const (
	// DefaultListLimit は取引一覧のデフォルト返却件数です。
	DefaultListLimit = 200
	// MaxListLimit は取引一覧の最大返却件数です。
	MaxListLimit = 2000
	// MaxScreenshotSize はスクリーンショットアップロードの最大サイズ（10MB）です。
	MaxScreenshotSize = 10 * 1024 * 1024
	// notifyTimeout はベストエフォート通知の送信タイムアウトです。
	notifyTimeout = 5 * time.Second
)

// TradeRepository は取引エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type TradeRepository interface {
	// Create は新しい取引をストレージに永続化します。
	Create(ctx context.Context, trade *entity.Trade) error

	// FindByUser は指定ユーザーの取引を新しい順で最大limit件取得します。
	FindByUser(ctx context.Context, userID uint, limit int) ([]entity.Trade, error)

	// FindByID はIDと所有者の両方でスコープして取引を取得します。
	// 該当しない場合はErrTradeNotFoundを返します。
	FindByID(ctx context.Context, id, userID uint) (*entity.Trade, error)

	// Update は編集可能フィールドを全て上書きします。
	// IDと所有者の両方でフィルタするため、他ユーザーの取引には影響しません。
	// 更新対象が存在しない場合はErrTradeNotFoundを返します。
	Update(ctx context.Context, trade *entity.Trade) error

	// SetAnalysis は指定取引のAI分析テキストを保存します。
	SetAnalysis(ctx context.Context, id, userID uint, analysis string) error

	// SetScreenshotURL は指定取引のスクリーンショットURLを保存します。
	SetScreenshotURL(ctx context.Context, id, userID uint, url string) error

	// Delete はIDと所有者の両方でスコープして取引を削除します。
	Delete(ctx context.Context, id, userID uint) error
}

// Notifier は取引作成時のチャットWebhook通知を抽象化します。
type Notifier interface {
	// Notify は取引作成通知を送信します。ベストエフォートであり、
	// エラーは呼び出し側でログ出力のみ行われます。
	Notify(ctx context.Context, trade *entity.Trade) error
}

// BlobStore はスクリーンショットのブロブストレージを抽象化します。
type BlobStore interface {
	// Upload はバイト列を保存し、公開URLを返します。
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// Analyzer は取引分析テキストの生成を抽象化します。
// 未設定（nil）の場合は組み込みのフレーズバンクが使用されます。
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// ScreenshotInspector はアップロードされたスクリーンショットからテキストを
// 抽出します。未設定（nil）の場合、抽出はスキップされます。
type ScreenshotInspector interface {
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}

// ObjectNamer はブロブのオブジェクトパスを採番します。
type ObjectNamer func(userID, tradeID uint) string

// tradesUsecase は取引操作のビジネスロジックを実装します。
type tradesUsecase struct {
	trades    TradeRepository
	notifier  Notifier
	blobs     BlobStore
	analyzer  Analyzer
	inspector ScreenshotInspector
	nameBlob  ObjectNamer
}

// NewTradesUsecase はtradesUsecaseの新しいインスタンスを生成します。
// notifier, blobs, analyzer, inspectorはnil可で、nilの場合その機能は無効になります。
func NewTradesUsecase(trades TradeRepository, notifier Notifier, blobs BlobStore,
	analyzer Analyzer, inspector ScreenshotInspector, nameBlob ObjectNamer) *tradesUsecase {
	return &tradesUsecase{
		trades:    trades,
		notifier:  notifier,
		blobs:     blobs,
		analyzer:  analyzer,
		inspector: inspector,
		nameBlob:  nameBlob,
	}
}

// validate は作成・更新共通の入力検証を行います。
// 集計関数は0ガードで全域的ですが、記録の作成経路では有効な数値を要求します。
func validate(trade *entity.Trade) error {
	trade.Symbol = strings.ToUpper(strings.TrimSpace(trade.Symbol))
	if trade.Symbol == "" {
		return ErrInvalidSymbol
	}
	if !trade.Side.IsValid() {
		return ErrInvalidSide
	}
	if trade.LotSize <= 0 {
		return ErrInvalidLotSize
	}
	return nil
}

// Create は取引を検証して永続化し、成功時にベストエフォートの
// Webhook通知を別ゴルーチンで送信します。通知の失敗は取引作成を
// 失敗させず、リトライも行いません。
func (u *tradesUsecase) Create(ctx context.Context, trade *entity.Trade) error {
	if err := validate(trade); err != nil {
		return err
	}
	if trade.OccurredAt.IsZero() {
		trade.OccurredAt = time.Now()
	}

	if err := u.trades.Create(ctx, trade); err != nil {
		return fmt.Errorf("failed to create trade: %w", err)
	}

	if u.notifier != nil {
		// リクエストのキャンセルに巻き込まれないよう独立したコンテキストを使う
		go func(t entity.Trade) {
			nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := u.notifier.Notify(nctx, &t); err != nil {
				slog.Warn("trade webhook notification failed", "error", err, "trade_id", t.ID)
			}
		}(*trade)
	}

	return nil
}

// List は指定ユーザーの取引を新しい順で取得します。
func (u *tradesUsecase) List(ctx context.Context, userID uint, limit int) ([]entity.Trade, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	return u.trades.FindByUser(ctx, userID, limit)
}

// Get はIDと所有者でスコープして1件の取引を取得します。
func (u *tradesUsecase) Get(ctx context.Context, id, userID uint) (*entity.Trade, error) {
	return u.trades.FindByID(ctx, id, userID)
}

// Update は編集可能フィールドを全て上書きします。所有者以外の更新は
// ErrTradeNotFoundになり、対象に影響を与えません。
func (u *tradesUsecase) Update(ctx context.Context, trade *entity.Trade) error {
	if err := validate(trade); err != nil {
		return err
	}
	return u.trades.Update(ctx, trade)
}

// Delete はIDと所有者でスコープして取引を削除します。
func (u *tradesUsecase) Delete(ctx context.Context, id, userID uint) error {
	return u.trades.Delete(ctx, id, userID)
}

// GenerateAnalysis は取引の分析テキストを生成して保存します。
// 外部のAnalyzerが設定されていればそれを使用し、未設定または失敗時は
// 損益の符号に基づくフレーズバンクから決定的に選択します。
// 既存の分析は明示的な再生成として上書きされます。
func (u *tradesUsecase) GenerateAnalysis(ctx context.Context, id, userID uint) (string, error) {
	trade, err := u.trades.FindByID(ctx, id, userID)
	if err != nil {
		return "", err
	}

	analysis := PhraseFor(trade)
	if u.analyzer != nil {
		prompt := analysisPrompt(trade)
		if generated, aerr := u.analyzer.Analyze(ctx, prompt); aerr == nil && generated != "" {
			analysis = generated
		} else if aerr != nil {
			slog.Warn("external analyzer failed, falling back to phrase bank", "error", aerr, "trade_id", id)
		}
	}

	if err := u.trades.SetAnalysis(ctx, id, userID, analysis); err != nil {
		return "", err
	}
	return analysis, nil
}

// UploadScreenshot はスクリーンショットをブロブストアに保存し、公開URLを
// 取引に記録します。Inspectorが設定されている場合は画像からテキストを
// 抽出して返します（抽出結果は永続化されません）。
func (u *tradesUsecase) UploadScreenshot(ctx context.Context, id, userID uint, data []byte, contentType string) (url, detectedText string, err error) {
	if len(data) == 0 {
		return "", "", ErrEmptyScreenshot
	}
	if len(data) > MaxScreenshotSize {
		return "", "", ErrScreenshotTooLarge
	}
	if u.blobs == nil {
		return "", "", fmt.Errorf("blob storage is not configured")
	}

	// 所有権の確認を先に行う
	if _, err := u.trades.FindByID(ctx, id, userID); err != nil {
		return "", "", err
	}

	url, err = u.blobs.Upload(ctx, u.nameBlob(userID, id), data, contentType)
	if err != nil {
		return "", "", fmt.Errorf("failed to upload screenshot: %w", err)
	}

	if err := u.trades.SetScreenshotURL(ctx, id, userID, url); err != nil {
		return "", "", err
	}

	if u.inspector != nil {
		text, ierr := u.inspector.ExtractText(ctx, data)
		if ierr != nil {
			// OCRはベストエフォート。失敗してもアップロード自体は成功扱い。
			slog.Warn("screenshot text extraction failed", "error", ierr, "trade_id", id)
		} else {
			detectedText = text
		}
	}

	return url, detectedText, nil
}

// analysisPrompt は外部Analyzer用のプロンプトを組み立てます。
func analysisPrompt(t *entity.Trade) string {
	return fmt.Sprintf(
		"Review this trade in 2-3 sentences: symbol=%s side=%s lots=%.2f entry=%.2f profit=%.2f",
		t.Symbol, t.Side, t.LotSize, t.EntryPrice, t.ProfitValue())
}
