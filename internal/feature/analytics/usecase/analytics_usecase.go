// Package usecase はanalyticsフィーチャーのビジネスロジックを実装します。
// 全ての集計は取得済みの取引リストから読み取りごとに再計算され、
// 導出値をインクリメンタルに保持することはありません。
package usecase

import (
	"context"
	"sort"
	"time"

	"journal_backend/internal/feature/analytics/domain/equity"
	"journal_backend/internal/feature/analytics/domain/stats"
	"journal_backend/internal/feature/analytics/domain/tradingday"
	"journal_backend/internal/feature/trades/domain/entity"
)

const (
	// statsFetchLimit は集計対象として取得する取引の上限件数です。
	statsFetchLimit = 2000
)

// TradeReader は集計対象の取引を読み取るレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TradeReader interface {
	// FindByUser は指定ユーザーの取引を新しい順で最大limit件取得します。
	FindByUser(ctx context.Context, userID uint, limit int) ([]entity.Trade, error)
}

// CalendarDay は1トレーディングデーの集計値です。
type CalendarDay struct {
	Day       time.Time
	NetProfit float64
	Trades    int
}

// analyticsUsecase は取引統計のユースケースを実装します。
type analyticsUsecase struct {
	trades TradeReader
}

// NewAnalyticsUsecase はanalyticsUsecaseの新しいインスタンスを生成します。
func NewAnalyticsUsecase(trades TradeReader) *analyticsUsecase {
	return &analyticsUsecase{trades: trades}
}

// GetStats は指定ユーザーのサマリー統計を計算します。
func (u *analyticsUsecase) GetStats(ctx context.Context, userID uint) (stats.Summary, error) {
	trades, err := u.trades.FindByUser(ctx, userID, statsFetchLimit)
	if err != nil {
		return stats.Summary{}, err
	}
	return stats.Compute(trades), nil
}

// GetEquityCurve は指定ユーザーのエクイティカーブを生成します。
func (u *analyticsUsecase) GetEquityCurve(ctx context.Context, userID uint) ([]equity.Point, error) {
	trades, err := u.trades.FindByUser(ctx, userID, statsFetchLimit)
	if err != nil {
		return nil, err
	}
	return equity.Curve(trades), nil
}

// GetAssetPerformance は銘柄別の成績を純損益の降順で返します。
func (u *analyticsUsecase) GetAssetPerformance(ctx context.Context, userID uint) ([]equity.AssetPerformance, error) {
	trades, err := u.trades.FindByUser(ctx, userID, statsFetchLimit)
	if err != nil {
		return nil, err
	}
	return equity.BySymbol(trades), nil
}

// GetDistribution は勝敗分布を返します。
func (u *analyticsUsecase) GetDistribution(ctx context.Context, userID uint) ([]equity.DistributionBucket, error) {
	trades, err := u.trades.FindByUser(ctx, userID, statsFetchLimit)
	if err != nil {
		return nil, err
	}
	return equity.Distribution(trades), nil
}

// GetCalendar は指定月の各トレーディングデーの純損益と取引件数を
// 日付の昇順で返します。取引のない日は結果に含まれません。
func (u *analyticsUsecase) GetCalendar(ctx context.Context, userID uint, year int, month time.Month) ([]CalendarDay, error) {
	trades, err := u.trades.FindByUser(ctx, userID, statsFetchLimit)
	if err != nil {
		return nil, err
	}

	byDay := map[time.Time]*CalendarDay{}
	for i := range trades {
		day := tradingday.Of(trades[i].OccurredAt)
		if day.Year() != year || day.Month() != month {
			continue
		}
		cd, ok := byDay[day]
		if !ok {
			cd = &CalendarDay{Day: day}
			byDay[day] = cd
		}
		cd.NetProfit += trades[i].ProfitValue()
		cd.Trades++
	}

	out := make([]CalendarDay, 0, len(byDay))
	for _, cd := range byDay {
		out = append(out, *cd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}
