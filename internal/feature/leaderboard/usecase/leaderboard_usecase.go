// Package usecase はleaderboardフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"journal_backend/internal/feature/leaderboard/domain/entity"
)

const (
	// DefaultLimit はリーダーボードのデフォルト表示件数です。
	DefaultLimit = 50
	// MaxLimit はリーダーボードの最大表示件数です。
	MaxLimit = 100
)

// LeaderboardRepository はリーダーボード集計の読み取りを抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type LeaderboardRepository interface {
	// TopByNetProfit は全ユーザーの純損益ランキングを降順で最大limit件返します。
	TopByNetProfit(ctx context.Context, limit int) ([]entity.Row, error)
}

// leaderboardUsecase はリーダーボード取得のビジネスロジックを実装します。
type leaderboardUsecase struct {
	rows LeaderboardRepository
}

// NewLeaderboardUsecase はleaderboardUsecaseの新しいインスタンスを生成します。
func NewLeaderboardUsecase(rows LeaderboardRepository) *leaderboardUsecase {
	return &leaderboardUsecase{rows: rows}
}

// GetLeaderboard は純損益の降順で並んだランキングを返します。
func (u *leaderboardUsecase) GetLeaderboard(ctx context.Context, limit int) ([]entity.Row, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return u.rows.TopByNetProfit(ctx, limit)
}
