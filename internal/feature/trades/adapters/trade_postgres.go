// Package adapters はtradesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"journal_backend/internal/feature/trades/domain/entity"
	"journal_backend/internal/feature/trades/usecase"
)

// tradePostgres はTradeRepositoryインターフェースのGORM実装です。
// 全てのクエリはid・user_idの両方でフィルタされます（所有権は必須条件）。
type tradePostgres struct {
	db *gorm.DB
}

// tradePostgresがTradeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.TradeRepository = (*tradePostgres)(nil)

// NewTradeRepository は指定されたgorm.DB接続でtradePostgresの新しいインスタンスを生成します。
func NewTradeRepository(db *gorm.DB) *tradePostgres {
	return &tradePostgres{db: db}
}

// Create は取引をデータベースに追加します。
func (r *tradePostgres) Create(ctx context.Context, t *entity.Trade) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByUser は指定ユーザーの取引を発生日時の新しい順で最大limit件取得します。
func (r *tradePostgres) FindByUser(ctx context.Context, userID uint, limit int) ([]entity.Trade, error) {
	var trades []entity.Trade
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}

// FindByID はIDと所有者でスコープして取引を取得します。
// 該当しない場合（不存在または他ユーザーの所有）、usecase.ErrTradeNotFoundを返します。
func (r *tradePostgres) FindByID(ctx context.Context, id, userID uint) (*entity.Trade, error) {
	var t entity.Trade
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTradeNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update は編集可能フィールドを全て上書きします。マップ指定によりゼロ値や
// NULL（未決済化）も正しく反映されます。対象が存在しないか所有者が異なる
// 場合は行が更新されず、usecase.ErrTradeNotFoundを返します。
func (r *tradePostgres) Update(ctx context.Context, t *entity.Trade) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Trade{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Updates(map[string]interface{}{
			"symbol":      t.Symbol,
			"side":        t.Side,
			"lot_size":    t.LotSize,
			"entry_price": t.EntryPrice,
			"exit_price":  t.ExitPrice,
			"profit":      t.Profit,
			"notes":       t.Notes,
			"occurred_at": t.OccurredAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTradeNotFound
	}
	return nil
}

// SetAnalysis は指定取引のAI分析テキストを保存します。
func (r *tradePostgres) SetAnalysis(ctx context.Context, id, userID uint, analysis string) error {
	return r.updateColumn(ctx, id, userID, "ai_analysis", analysis)
}

// SetScreenshotURL は指定取引のスクリーンショットURLを保存します。
func (r *tradePostgres) SetScreenshotURL(ctx context.Context, id, userID uint, url string) error {
	return r.updateColumn(ctx, id, userID, "screenshot_url", url)
}

// Delete はIDと所有者でスコープして取引を削除します。
// 対象が存在しない場合はusecase.ErrTradeNotFoundを返します。
func (r *tradePostgres) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Trade{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTradeNotFound
	}
	return nil
}

func (r *tradePostgres) updateColumn(ctx context.Context, id, userID uint, column string, value interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Trade{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTradeNotFound
	}
	return nil
}
