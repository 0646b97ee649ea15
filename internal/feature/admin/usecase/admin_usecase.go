// Package usecase はadminフィーチャーのビジネスロジックを実装します。
// 通常のユーザー操作とは別の認可境界であり、全ての操作は対象ユーザーIDを
// 引数に取ります（呼び出し元自身ではありません）。
package usecase

import (
	"context"

	"journal_backend/internal/feature/analytics/domain/stats"
	authentity "journal_backend/internal/feature/auth/domain/entity"
	tradeentity "journal_backend/internal/feature/trades/domain/entity"
)

const (
	// DefaultTradeListLimit は全取引一覧のデフォルト返却件数です。
	DefaultTradeListLimit = 200
	// MaxTradeListLimit は全取引一覧の最大返却件数です。
	MaxTradeListLimit = 5000
	// statsFetchLimit はユーザーごとの統計計算で読み込む取引の上限件数です。
	statsFetchLimit = 2000
)

// AdminRepository は管理者操作の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type AdminRepository interface {
	// ListUsers は全ユーザーを作成日時の昇順で返します。
	ListUsers(ctx context.Context) ([]authentity.User, error)

	// FindTradesByUser は指定ユーザーの取引を最大limit件返します。
	FindTradesByUser(ctx context.Context, userID uint, limit int) ([]tradeentity.Trade, error)

	// FindAllTrades は全ユーザーの取引を新しい順で最大limit件返します。
	FindAllTrades(ctx context.Context, limit int) ([]tradeentity.Trade, error)

	// DeleteTradesByUser は指定ユーザーの全取引を削除し、削除件数を返します。
	DeleteTradesByUser(ctx context.Context, userID uint) (int64, error)

	// DeleteEntriesByUser は指定ユーザーの全ジャーナルエントリを削除し、削除件数を返します。
	DeleteEntriesByUser(ctx context.Context, userID uint) (int64, error)

	// DeleteUserEntirely はユーザーを取引・エントリ・プロフィールごと
	// 1トランザクションで削除します。ユーザーが存在しない場合は
	// ErrUserNotFoundを返します。
	DeleteUserEntirely(ctx context.Context, userID uint) error
}

// UserWithStats は1ユーザーの概要と取引統計です。
type UserWithStats struct {
	User  authentity.User
	Stats stats.Summary
}

// adminUsecase は管理者操作のビジネスロジックを実装します。
type adminUsecase struct {
	repo AdminRepository
}

// NewAdminUsecase はadminUsecaseの新しいインスタンスを生成します。
func NewAdminUsecase(repo AdminRepository) *adminUsecase {
	return &adminUsecase{repo: repo}
}

// ListUsersWithStats は全ユーザーとそれぞれの取引統計を返します。
// 統計はユーザーごとに取引一覧から再計算します。
func (u *adminUsecase) ListUsersWithStats(ctx context.Context) ([]UserWithStats, error) {
	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserWithStats, 0, len(users))
	for i := range users {
		trades, err := u.repo.FindTradesByUser(ctx, users[i].ID, statsFetchLimit)
		if err != nil {
			return nil, err
		}
		out = append(out, UserWithStats{User: users[i], Stats: stats.Compute(trades)})
	}
	return out, nil
}

// ListAllTrades は全ユーザーの取引を新しい順で返します。
func (u *adminUsecase) ListAllTrades(ctx context.Context, limit int) ([]tradeentity.Trade, error) {
	if limit <= 0 || limit > MaxTradeListLimit {
		limit = DefaultTradeListLimit
	}
	return u.repo.FindAllTrades(ctx, limit)
}

// DeleteTradesForUser は対象ユーザーの全取引を削除します。
func (u *adminUsecase) DeleteTradesForUser(ctx context.Context, targetUserID uint) (int64, error) {
	return u.repo.DeleteTradesByUser(ctx, targetUserID)
}

// DeleteEntriesForUser は対象ユーザーの全ジャーナルエントリを削除します。
func (u *adminUsecase) DeleteEntriesForUser(ctx context.Context, targetUserID uint) (int64, error) {
	return u.repo.DeleteEntriesByUser(ctx, targetUserID)
}

// DeleteUserEntirely は対象ユーザーを関連データごと削除します。
func (u *adminUsecase) DeleteUserEntirely(ctx context.Context, targetUserID uint) error {
	return u.repo.DeleteUserEntirely(ctx, targetUserID)
}
