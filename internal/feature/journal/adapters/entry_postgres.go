// Package adapters はjournalフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"journal_backend/internal/feature/journal/domain/entity"
	"journal_backend/internal/feature/journal/usecase"
)

// entryPostgres はEntryRepositoryインターフェースのGORM実装です。
type entryPostgres struct {
	db *gorm.DB
}

// entryPostgresがEntryRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.EntryRepository = (*entryPostgres)(nil)

// NewEntryRepository は指定されたgorm.DB接続でentryPostgresの新しいインスタンスを生成します。
func NewEntryRepository(db *gorm.DB) *entryPostgres {
	return &entryPostgres{db: db}
}

// Create はエントリをデータベースに追加します。
func (r *entryPostgres) Create(ctx context.Context, e *entity.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindByUser は指定ユーザーのエントリをトレーディングデーの新しい順で
// 最大limit件取得します。
func (r *entryPostgres) FindByUser(ctx context.Context, userID uint, limit int) ([]entity.Entry, error) {
	var entries []entity.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("trading_day DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Update は編集可能フィールドを上書きします。対象が存在しないか所有者が
// 異なる場合、usecase.ErrEntryNotFoundを返します。
// Tagsのserializer:jsonを効かせるため構造体で更新し、ゼロ値も書き込まれる
// ようSelectで対象カラムを明示します。
func (r *entryPostgres) Update(ctx context.Context, e *entity.Entry) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Entry{}).
		Where("id = ? AND user_id = ?", e.ID, e.UserID).
		Select("title", "content", "mood", "tags", "trading_day", "followed_plan").
		Updates(e)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrEntryNotFound
	}
	return nil
}

// Delete はIDと所有者でスコープしてエントリを削除します。
func (r *entryPostgres) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Entry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrEntryNotFound
	}
	return nil
}
