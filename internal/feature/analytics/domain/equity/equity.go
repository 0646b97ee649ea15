// Package equity はチャート描画用のエクイティカーブ・銘柄別成績・勝敗分布を
// 計算する純粋関数を提供します。
package equity

import (
	"sort"
	"time"

	"journal_backend/internal/feature/analytics/domain/stats"
	"journal_backend/internal/feature/analytics/domain/tradingday"
	"journal_backend/internal/feature/trades/domain/entity"
)

// Point はエクイティカーブ上の1点です。
type Point struct {
	// Day は取引が属するトレーディングデーです。先頭の合成ゼロ点では
	// 最初の取引と同じ日になります。
	Day time.Time
	// Equity はその時点までの累積損益です。
	Equity float64
	// Drawdown はその時点のピークからの下落幅です。
	Drawdown float64
}

// Curve は取引を発生時刻の昇順に並べ、1取引ごとの累積損益と
// ドローダウンを持つエクイティカーブを生成します。
//
// チャートが常に描画可能であるよう、取引が存在する場合は先頭に損益0の
// 合成点を追加し、取引が空の場合はゼロ点1つだけを返します。
// 入力リストは変更されません。
func Curve(trades []entity.Trade) []Point {
	if len(trades) == 0 {
		return []Point{{}}
	}

	ordered := stats.Chronological(trades)

	points := make([]Point, 0, len(ordered)+1)
	points = append(points, Point{Day: tradingday.Of(ordered[0].OccurredAt)})

	var equity, peak float64
	for i := range ordered {
		equity += ordered[i].ProfitValue()
		if equity > peak {
			peak = equity
		}
		points = append(points, Point{
			Day:      tradingday.Of(ordered[i].OccurredAt),
			Equity:   equity,
			Drawdown: peak - equity,
		})
	}
	return points
}

// AssetPerformance は銘柄ごとの成績です。
type AssetPerformance struct {
	Symbol    string
	Trades    int
	Wins      int
	WinRate   float64
	NetProfit float64
}

// BySymbol は取引を銘柄ごとにグループ化し、銘柄別の損益・件数・勝率を
// 計算して純損益の降順（成績の良い順）で返します。
func BySymbol(trades []entity.Trade) []AssetPerformance {
	bySymbol := map[string]*AssetPerformance{}
	order := make([]string, 0)

	for i := range trades {
		t := &trades[i]
		perf, ok := bySymbol[t.Symbol]
		if !ok {
			perf = &AssetPerformance{Symbol: t.Symbol}
			bySymbol[t.Symbol] = perf
			order = append(order, t.Symbol)
		}
		perf.Trades++
		perf.NetProfit += t.ProfitValue()
		if t.ProfitValue() > 0 {
			perf.Wins++
		}
	}

	out := make([]AssetPerformance, 0, len(order))
	for _, sym := range order {
		perf := bySymbol[sym]
		perf.WinRate = float64(perf.Wins) / float64(perf.Trades) * 100
		out = append(out, *perf)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NetProfit > out[j].NetProfit
	})
	return out
}

// DistributionBucket は勝敗分布の1区分です。
type DistributionBucket struct {
	Label string
	Color string
	Count int
}

// 分布チャートの表示ラベルと色タグです。
const (
	winColor       = "#22c55e"
	lossColor      = "#ef4444"
	breakevenColor = "#94a3b8"
)

// Distribution は勝ち・負け・ブレークイーブンの件数分布を返します。
// 件数0の区分は結果から除外されます。
func Distribution(trades []entity.Trade) []DistributionBucket {
	var wins, losses int
	for i := range trades {
		p := trades[i].ProfitValue()
		if p > 0 {
			wins++
		} else if p < 0 {
			losses++
		}
	}
	breakevens := len(trades) - wins - losses

	out := make([]DistributionBucket, 0, 3)
	if wins > 0 {
		out = append(out, DistributionBucket{Label: "Win", Color: winColor, Count: wins})
	}
	if losses > 0 {
		out = append(out, DistributionBucket{Label: "Loss", Color: lossColor, Count: losses})
	}
	if breakevens > 0 {
		out = append(out, DistributionBucket{Label: "Breakeven", Color: breakevenColor, Count: breakevens})
	}
	return out
}
