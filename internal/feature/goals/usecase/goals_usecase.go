// Package usecase はgoalsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"time"

	"journal_backend/internal/feature/analytics/domain/stats"
	"journal_backend/internal/feature/analytics/domain/tradingday"
	"journal_backend/internal/feature/goals/domain/entity"
	"journal_backend/internal/feature/goals/domain/points"
	tradeentity "journal_backend/internal/feature/trades/domain/entity"
)

// questFetchLimit はクエスト進捗の計算で読み込む取引の上限件数です。
const questFetchLimit = 2000

// ProfileRepository は目標設定の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type ProfileRepository interface {
	// FindOrCreate は指定ユーザーのプロフィールを取得します。
	// 存在しない場合はデフォルト値で作成して返します。
	FindOrCreate(ctx context.Context, userID uint) (*entity.Profile, error)

	// Save はプロフィールの設定フィールドを永続化します。
	Save(ctx context.Context, profile *entity.Profile) error
}

// TradeReader は取引一覧の読み取りを抽象化します。
type TradeReader interface {
	FindByUser(ctx context.Context, userID uint, limit int) ([]tradeentity.Trade, error)
}

// CelebrationMarker は「最後に達成を祝ったトレーディングデー」の
// サーバー側マーカーを抽象化します。複数デバイスからのアクセスでも
// 1トレーディングデーにつき1回だけ祝うために使います。
type CelebrationMarker interface {
	// MarkCelebrated は指定ユーザーの指定トレーディングデーを「祝った」
	// として記録し、そのデーで初めての記録だった場合にtrueを返します。
	MarkCelebrated(ctx context.Context, userID uint, day time.Time) (bool, error)
}

// GoalView は目標設定と導出値をまとめた読み取りビューです。
type GoalView struct {
	PortSize          float64
	ProfitGoalPercent float64
	MonthlyGoal       float64
	DailyTarget       float64
	QuestActive       bool
}

// QuestProgress はクエストの当日進捗です。
type QuestProgress struct {
	Active         bool
	DailyTarget    float64
	NetProfitToday float64
	// Progress は日次目標に対する進捗率（0〜100）です。
	Progress float64
	// Completed は当日の純損益が日次目標に到達したかどうかです。
	Completed bool
	// Celebrate は今回のリクエストで初めて達成が確認された場合にtrueです。
	// 同じトレーディングデー内の2回目以降の確認ではfalseになります。
	Celebrate bool
	Points    points.Summary
}

// goalsUsecase は目標設定とクエスト進捗のビジネスロジックを実装します。
type goalsUsecase struct {
	profiles     ProfileRepository
	trades       TradeReader
	celebrations CelebrationMarker // nilの場合は祝い通知を出さない
}

// NewGoalsUsecase はgoalsUsecaseの新しいインスタンスを生成します。
// celebrationsはnil可です（その場合Celebrateは常にfalse）。
func NewGoalsUsecase(profiles ProfileRepository, trades TradeReader, celebrations CelebrationMarker) *goalsUsecase {
	return &goalsUsecase{profiles: profiles, trades: trades, celebrations: celebrations}
}

// GetGoals は目標設定と導出値（月間目標・日次目標）を返します。
func (u *goalsUsecase) GetGoals(ctx context.Context, userID uint) (GoalView, error) {
	p, err := u.profiles.FindOrCreate(ctx, userID)
	if err != nil {
		return GoalView{}, err
	}
	return toView(p), nil
}

// UpdateGoals は口座サイズと目標パーセントを検証して保存します。
func (u *goalsUsecase) UpdateGoals(ctx context.Context, userID uint, portSize, goalPercent float64) (GoalView, error) {
	if portSize <= 0 {
		return GoalView{}, ErrInvalidPortSize
	}
	if goalPercent <= 0 {
		return GoalView{}, ErrInvalidGoalPercent
	}

	p, err := u.profiles.FindOrCreate(ctx, userID)
	if err != nil {
		return GoalView{}, err
	}
	p.PortSize = portSize
	p.ProfitGoalPercent = goalPercent
	if err := u.profiles.Save(ctx, p); err != nil {
		return GoalView{}, err
	}
	return toView(p), nil
}

// ActivateQuest はクエストを有効化し、指定の目標設定を同時に保存します。
// 既に有効な場合も同じ結果になります（冪等）。
func (u *goalsUsecase) ActivateQuest(ctx context.Context, userID uint, portSize, goalPercent float64) (GoalView, error) {
	if portSize <= 0 {
		return GoalView{}, ErrInvalidPortSize
	}
	if goalPercent <= 0 {
		return GoalView{}, ErrInvalidGoalPercent
	}

	p, err := u.profiles.FindOrCreate(ctx, userID)
	if err != nil {
		return GoalView{}, err
	}
	p.PortSize = portSize
	p.ProfitGoalPercent = goalPercent
	p.QuestActive = true
	if err := u.profiles.Save(ctx, p); err != nil {
		return GoalView{}, err
	}
	return toView(p), nil
}

// CancelQuest はクエストを無効化します。目標設定は最後の値を保持します。
// 既に無効な場合も同じ結果になります（冪等）。
func (u *goalsUsecase) CancelQuest(ctx context.Context, userID uint) (GoalView, error) {
	p, err := u.profiles.FindOrCreate(ctx, userID)
	if err != nil {
		return GoalView{}, err
	}
	p.QuestActive = false
	if err := u.profiles.Save(ctx, p); err != nil {
		return GoalView{}, err
	}
	return toView(p), nil
}

// GetQuestProgress は当日の純損益・進捗率・ポイント集計を計算します。
// 目標達成が当日初めて確認された場合のみCelebrateをtrueにします。
func (u *goalsUsecase) GetQuestProgress(ctx context.Context, userID uint) (QuestProgress, error) {
	return u.questProgressAt(ctx, userID, time.Now())
}

// questProgressAt はGetQuestProgressの実体で、基準時刻を注入できます。
func (u *goalsUsecase) questProgressAt(ctx context.Context, userID uint, now time.Time) (QuestProgress, error) {
	p, err := u.profiles.FindOrCreate(ctx, userID)
	if err != nil {
		return QuestProgress{}, err
	}

	trades, err := u.trades.FindByUser(ctx, userID, questFetchLimit)
	if err != nil {
		return QuestProgress{}, err
	}

	today := tradingday.Of(now)
	target := points.DailyTarget(p.EffectivePortSize(), p.EffectiveGoalPercent())
	netToday := stats.NetProfitOn(trades, today)

	progress := QuestProgress{
		Active:         p.QuestActive,
		DailyTarget:    target,
		NetProfitToday: netToday,
		Progress:       points.Progress(netToday, target),
		Completed:      target > 0 && netToday >= target,
		Points:         points.Aggregate(trades, now),
	}

	if progress.Active && progress.Completed && u.celebrations != nil {
		first, err := u.celebrations.MarkCelebrated(ctx, userID, today)
		if err != nil {
			// マーカーの失敗で進捗の取得は失敗させない
			slog.Warn("failed to mark celebration", "error", err, "user_id", userID)
		} else {
			progress.Celebrate = first
		}
	}
	return progress, nil
}

func toView(p *entity.Profile) GoalView {
	return GoalView{
		PortSize:          p.PortSize,
		ProfitGoalPercent: p.ProfitGoalPercent,
		MonthlyGoal:       points.MonthlyGoal(p.EffectivePortSize(), p.EffectiveGoalPercent()),
		DailyTarget:       points.DailyTarget(p.EffectivePortSize(), p.EffectiveGoalPercent()),
		QuestActive:       p.QuestActive,
	}
}
