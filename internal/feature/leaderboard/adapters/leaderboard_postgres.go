// Package adapters はleaderboardフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"journal_backend/internal/feature/leaderboard/domain/entity"
	"journal_backend/internal/feature/leaderboard/usecase"
)

// leaderboardPostgres はLeaderboardRepositoryインターフェースのGORM実装です。
type leaderboardPostgres struct {
	db *gorm.DB
}

// leaderboardPostgresがLeaderboardRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.LeaderboardRepository = (*leaderboardPostgres)(nil)

// NewLeaderboardRepository は指定されたgorm.DB接続でleaderboardPostgresの新しいインスタンスを生成します。
func NewLeaderboardRepository(db *gorm.DB) *leaderboardPostgres {
	return &leaderboardPostgres{db: db}
}

// TopByNetProfit は取引テーブルをユーザーごとに集計し、純損益の降順で返します。
// Profitが未設定（オープン中）の取引は0として扱います。
func (r *leaderboardPostgres) TopByNetProfit(ctx context.Context, limit int) ([]entity.Row, error) {
	var rows []entity.Row
	err := r.db.WithContext(ctx).
		Table("trades").
		Select("trades.user_id AS user_id, " +
			"users.username AS username, " +
			"COALESCE(SUM(trades.profit), 0) AS net_profit, " +
			"COUNT(trades.id) AS trade_count, " +
			"SUM(CASE WHEN trades.profit > 0 THEN 1 ELSE 0 END) AS wins").
		Joins("JOIN users ON users.id = trades.user_id").
		Group("trades.user_id, users.username").
		Order("net_profit DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
