// Package adapters はadminフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"journal_backend/internal/feature/admin/usecase"
	authentity "journal_backend/internal/feature/auth/domain/entity"
	goalsentity "journal_backend/internal/feature/goals/domain/entity"
	journalentity "journal_backend/internal/feature/journal/domain/entity"
	tradeentity "journal_backend/internal/feature/trades/domain/entity"
)

// adminPostgres はAdminRepositoryインターフェースのGORM実装です。
type adminPostgres struct {
	db *gorm.DB
}

// adminPostgresがAdminRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AdminRepository = (*adminPostgres)(nil)

// NewAdminRepository は指定されたgorm.DB接続でadminPostgresの新しいインスタンスを生成します。
func NewAdminRepository(db *gorm.DB) *adminPostgres {
	return &adminPostgres{db: db}
}

// ListUsers は全ユーザーを作成日時の昇順で返します。
func (r *adminPostgres) ListUsers(ctx context.Context) ([]authentity.User, error) {
	var users []authentity.User
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindTradesByUser は指定ユーザーの取引を発生日時の新しい順で最大limit件返します。
func (r *adminPostgres) FindTradesByUser(ctx context.Context, userID uint, limit int) ([]tradeentity.Trade, error) {
	var trades []tradeentity.Trade
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}

// FindAllTrades は全ユーザーの取引を発生日時の新しい順で最大limit件返します。
func (r *adminPostgres) FindAllTrades(ctx context.Context, limit int) ([]tradeentity.Trade, error) {
	var trades []tradeentity.Trade
	err := r.db.WithContext(ctx).
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}

// DeleteTradesByUser は指定ユーザーの全取引を削除し、削除件数を返します。
func (r *adminPostgres) DeleteTradesByUser(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&tradeentity.Trade{})
	return res.RowsAffected, res.Error
}

// DeleteEntriesByUser は指定ユーザーの全ジャーナルエントリを削除し、削除件数を返します。
func (r *adminPostgres) DeleteEntriesByUser(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&journalentity.Entry{})
	return res.RowsAffected, res.Error
}

// DeleteUserEntirely はユーザーを取引・エントリ・プロフィールごと
// 1トランザクションで削除します。途中で失敗した場合は全てロールバックされます。
func (r *adminPostgres) DeleteUserEntirely(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&tradeentity.Trade{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&journalentity.Entry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&goalsentity.Profile{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&authentity.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		return nil
	})
}
