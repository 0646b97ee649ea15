// Package stats は取引リストからサマリー統計を計算する純粋関数を提供します。
//
// 勝敗の判定ルール: profit > 0 を勝ち、profit < 0 を負け、profit == 0 は
// ブレークイーブンとして勝ち・負けのどちらにも数えません。このルールは
// 勝率・プロフィットファクター・平均損益・期待値の全てで一貫して適用されます。
// Profitがnilの取引は損益0として扱います。
package stats

import (
	"sort"
	"time"

	"journal_backend/internal/feature/analytics/domain/tradingday"
	"journal_backend/internal/feature/trades/domain/entity"
)

// SideSummary は売買方向ごとの内訳統計です。
type SideSummary struct {
	Trades    int
	Wins      int
	WinRate   float64
	NetProfit float64
}

// Summary は取引リスト全体のサマリー統計です。
// 全フィールドは空のリストに対して0になり、ゼロ除算は発生しません。
type Summary struct {
	TotalTrades  int
	Wins         int
	Losses       int
	Breakevens   int
	WinRate      float64 // 勝ちトレードの割合（0〜100）
	ProfitFactor float64 // 総利益 / 総損失。総損失が0の場合は総利益そのもの
	GrossWin     float64 // 勝ちトレードの損益合計
	GrossLoss    float64 // 負けトレードの損益絶対値合計
	AverageWin   float64
	AverageLoss  float64
	Expectancy   float64 // 1トレードあたりの期待損益
	NetProfit    float64
	TotalLots    float64
	MaxDrawdown  float64 // ピークからの最大下落幅（通貨絶対値）
	Long         SideSummary
	Short        SideSummary
}

// Compute は取引リストからサマリー統計を計算します。
// 入力リストは変更されません。同じ入力に対して常に同じ結果を返します。
func Compute(trades []entity.Trade) Summary {
	s := Summary{TotalTrades: len(trades)}

	for i := range trades {
		t := &trades[i]
		p := t.ProfitValue()
		s.NetProfit += p
		s.TotalLots += t.LotSize

		switch {
		case p > 0:
			s.Wins++
			s.GrossWin += p
		case p < 0:
			s.Losses++
			s.GrossLoss += -p
		default:
			s.Breakevens++
		}

		side := sideFor(&s, t.Side)
		side.Trades++
		side.NetProfit += p
		if p > 0 {
			side.Wins++
		}
	}

	if s.TotalTrades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.TotalTrades) * 100
	}
	if s.GrossLoss > 0 {
		s.ProfitFactor = s.GrossWin / s.GrossLoss
	} else {
		s.ProfitFactor = s.GrossWin
	}
	if s.Wins > 0 {
		s.AverageWin = s.GrossWin / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AverageLoss = s.GrossLoss / float64(s.Losses)
	}
	if s.TotalTrades > 0 {
		s.Expectancy = s.AverageWin*(s.WinRate/100) - s.AverageLoss*(float64(s.Losses)/float64(s.TotalTrades))
	}

	finishSide(&s.Long)
	finishSide(&s.Short)

	s.MaxDrawdown = MaxDrawdown(trades)

	return s
}

// MaxDrawdown は取引を時系列順（古い順）に辿り、累積損益のピークからの
// 最大下落幅を返します。戻り値は常に0以上です。
func MaxDrawdown(trades []entity.Trade) float64 {
	ordered := Chronological(trades)

	var equity, peak, max float64
	for i := range ordered {
		equity += ordered[i].ProfitValue()
		if equity > peak {
			peak = equity
		}
		if dd := peak - equity; dd > max {
			max = dd
		}
	}
	return max
}

// Chronological は取引をOccurredAtの昇順にソートしたコピーを返します。
// 入力リストは変更されません。
func Chronological(trades []entity.Trade) []entity.Trade {
	ordered := make([]entity.Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OccurredAt.Before(ordered[j].OccurredAt)
	})
	return ordered
}

// NetProfitOn は指定したトレーディングデーに属する取引の損益合計を返します。
// dayはtradingday.Ofで正規化済みであることを前提とします。
func NetProfitOn(trades []entity.Trade, day time.Time) float64 {
	var sum float64
	for i := range trades {
		if tradingday.Of(trades[i].OccurredAt).Equal(day) {
			sum += trades[i].ProfitValue()
		}
	}
	return sum
}

func sideFor(s *Summary, side entity.Side) *SideSummary {
	if side == entity.SideSell {
		return &s.Short
	}
	return &s.Long
}

func finishSide(side *SideSummary) {
	if side.Trades > 0 {
		side.WinRate = float64(side.Wins) / float64(side.Trades) * 100
	}
}
