// Package points は損益をロット数で正規化した「ポイント」と、
// 目標金額まわりの計算を提供する純粋関数群です。
package points

import (
	"math"
	"sort"
	"time"

	"journal_backend/internal/feature/analytics/domain/tradingday"
	"journal_backend/internal/feature/trades/domain/entity"
)

// TradingDaysPerMonth は日次目標の計算に使う1ヶ月あたりの取引日数です。
const TradingDaysPerMonth = 20

// ForTrade は1取引のポイント（ロット数で正規化した損益の四捨五入値）を返します。
// ロット数が0の場合はゼロ除算を避けるため0を返します。入力のロット数は
// 非ゼロであることを信用してはいけません。
func ForTrade(profit, lotSize float64) int {
	if lotSize == 0 {
		return 0
	}
	return int(math.Round(profit / lotSize))
}

// DailyTarget は口座サイズと月間目標パーセントから1日あたりの目標金額を
// 計算します。月間目標 = portSize * goalPercent / 100 を固定の取引日数で
// 割った値です。
func DailyTarget(portSize, goalPercent float64) float64 {
	monthlyGoal := portSize * goalPercent / 100
	return monthlyGoal / TradingDaysPerMonth
}

// MonthlyGoal は月間の目標金額を返します。
func MonthlyGoal(portSize, goalPercent float64) float64 {
	return portSize * goalPercent / 100
}

// Summary はポイントの期間別集計です。
type Summary struct {
	Today     int
	ThisWeek  int // 月曜始まりの週
	ThisMonth int // 暦月
	Total     int
}

// Aggregate は各取引のポイントをトレーディングデーでバケッティングし、
// nowを基準とした当日・今週・今月・累計の合計を返します。
func Aggregate(trades []entity.Trade, now time.Time) Summary {
	today := tradingday.Of(now)
	weekStart := tradingday.WeekStart(today)
	monthStart := tradingday.MonthStart(today)

	var s Summary
	for i := range trades {
		t := &trades[i]
		pts := ForTrade(t.ProfitValue(), t.LotSize)
		day := tradingday.Of(t.OccurredAt)

		s.Total += pts
		if day.Equal(today) {
			s.Today += pts
		}
		if !day.Before(weekStart) && !day.After(today) {
			s.ThisWeek += pts
		}
		if !day.Before(monthStart) && !day.After(today) {
			s.ThisMonth += pts
		}
	}
	return s
}

// DayPoints は1トレーディングデーのポイント合計です。
type DayPoints struct {
	Day    time.Time
	Points int
}

// ByDay は取引のポイントをトレーディングデーごとに合計し、日付の昇順で返します。
func ByDay(trades []entity.Trade) []DayPoints {
	byDay := map[time.Time]int{}
	for i := range trades {
		t := &trades[i]
		byDay[tradingday.Of(t.OccurredAt)] += ForTrade(t.ProfitValue(), t.LotSize)
	}

	out := make([]DayPoints, 0, len(byDay))
	for day, pts := range byDay {
		out = append(out, DayPoints{Day: day, Points: pts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// Progress は日次目標に対する進捗率（0〜100）を返します。
// 目標が0以下の場合は0を返します。
func Progress(netProfitToday, dailyTarget float64) float64 {
	if dailyTarget <= 0 {
		return 0
	}
	p := netProfitToday / dailyTarget * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
