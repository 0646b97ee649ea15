// Package usecase はjournalフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"
	"time"

	"journal_backend/internal/feature/analytics/domain/tradingday"
	"journal_backend/internal/feature/journal/domain/entity"
)

const (
	// DefaultListLimit はエントリ一覧のデフォルト返却件数です。
	DefaultListLimit = 100
	// MaxListLimit はエントリ一覧の最大返却件数です。
	MaxListLimit = 1000
)

// EntryRepository はジャーナルエントリの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type EntryRepository interface {
	// Create は新しいエントリをストレージに永続化します。
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByUser は指定ユーザーのエントリをトレーディングデーの新しい順で
	// 最大limit件取得します。
	FindByUser(ctx context.Context, userID uint, limit int) ([]entity.Entry, error)

	// Update は編集可能フィールドを上書きします。IDと所有者の両方でフィルタし、
	// 対象が存在しない場合はErrEntryNotFoundを返します。
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete はIDと所有者でスコープしてエントリを削除します。
	Delete(ctx context.Context, id, userID uint) error
}

// journalUsecase はジャーナル操作のビジネスロジックを実装します。
type journalUsecase struct {
	entries EntryRepository
}

// NewJournalUsecase はjournalUsecaseの新しいインスタンスを生成します。
func NewJournalUsecase(entries EntryRepository) *journalUsecase {
	return &journalUsecase{entries: entries}
}

// validate は作成・更新共通の入力検証を行います。
func validate(entry *entity.Entry) error {
	entry.Title = strings.TrimSpace(entry.Title)
	if entry.Title == "" {
		return ErrInvalidTitle
	}
	if !entry.Mood.IsValid() {
		return ErrInvalidMood
	}
	return nil
}

// dateOnly は日付の時刻成分を捨てて0時に正規化します。
// ユーザーが指定したTradingDayはカレンダー上の日付そのものであり、
// 06:00のセッションルールは実時刻（現在時刻のデフォルト）にのみ適用します。
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Create はエントリを検証して永続化します。
// TradingDayが未指定の場合は現在時刻のトレーディングデーを使用します。
func (u *journalUsecase) Create(ctx context.Context, entry *entity.Entry) error {
	if err := validate(entry); err != nil {
		return err
	}
	if entry.TradingDay.IsZero() {
		entry.TradingDay = tradingday.Of(time.Now())
	} else {
		entry.TradingDay = dateOnly(entry.TradingDay)
	}
	return u.entries.Create(ctx, entry)
}

// List は指定ユーザーのエントリをトレーディングデーの新しい順で取得します。
func (u *journalUsecase) List(ctx context.Context, userID uint, limit int) ([]entity.Entry, error) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	return u.entries.FindByUser(ctx, userID, limit)
}

// Update はエントリの編集可能フィールドを上書きします。
// 他ユーザーのエントリにはErrEntryNotFoundを返し、影響を与えません。
func (u *journalUsecase) Update(ctx context.Context, entry *entity.Entry) error {
	if err := validate(entry); err != nil {
		return err
	}
	if !entry.TradingDay.IsZero() {
		entry.TradingDay = dateOnly(entry.TradingDay)
	}
	return u.entries.Update(ctx, entry)
}

// Delete はIDと所有者でスコープしてエントリを削除します。
func (u *journalUsecase) Delete(ctx context.Context, id, userID uint) error {
	return u.entries.Delete(ctx, id, userID)
}

// StreakStats は継続記録とプラン遵守率の集計値です。
type StreakStats struct {
	// Streak は今日から連続して記入されているトレーディングデーの日数です。
	Streak int
	// TotalEntries は全エントリ数です。
	TotalEntries int
	// FollowedPlanCount はプランに従ったエントリ数です。
	FollowedPlanCount int
	// PlanAdherenceRate はプラン遵守率（0〜100）です。エントリ0件の場合は0です。
	PlanAdherenceRate float64
}

// GetStreakStats は指定ユーザーの継続記録とプラン遵守率を計算します。
func (u *journalUsecase) GetStreakStats(ctx context.Context, userID uint) (StreakStats, error) {
	entries, err := u.entries.FindByUser(ctx, userID, MaxListLimit)
	if err != nil {
		return StreakStats{}, err
	}
	return computeStreakStats(entries, time.Now()), nil
}

// computeStreakStats はエントリ一覧（トレーディングデーの新しい順）から
// 継続記録とプラン遵守率を計算する純粋関数です。
//
// 継続記録は最新のエントリから順に、各エントリの日付が「今日 - i 日」に
// 一致するかを確認し、最初のギャップまでの連続一致数を数えます。
// 同じ日の複数エントリは1日としてカウントします。
func computeStreakStats(entries []entity.Entry, now time.Time) StreakStats {
	s := StreakStats{TotalEntries: len(entries)}

	for i := range entries {
		if entries[i].FollowedPlan {
			s.FollowedPlanCount++
		}
	}
	if s.TotalEntries > 0 {
		s.PlanAdherenceRate = float64(s.FollowedPlanCount) / float64(s.TotalEntries) * 100
	}

	// 重複日を除いた日付列（新しい順）を作る。TradingDayは0時に正規化済みの
	// 日付なので、ここでセッションルールを再適用してはならない。
	days := make([]time.Time, 0, len(entries))
	for i := range entries {
		day := dateOnly(entries[i].TradingDay)
		if len(days) == 0 || !days[len(days)-1].Equal(day) {
			days = append(days, day)
		}
	}

	today := tradingday.Of(now)
	for i, day := range days {
		if !day.Equal(today.AddDate(0, 0, -i)) {
			break
		}
		s.Streak++
	}
	return s
}
