// Package dto はanalyticsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// SideStatsRes は売買方向ごとの内訳統計のレスポンスDTOです。
type SideStatsRes struct {
	Trades    int     `json:"trades"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"win_rate"`
	NetProfit float64 `json:"net_profit"`
}

// StatsRes はサマリー統計のレスポンスDTOです。
type StatsRes struct {
	TotalTrades  int          `json:"total_trades"`
	Wins         int          `json:"wins"`
	Losses       int          `json:"losses"`
	Breakevens   int          `json:"breakevens"`
	WinRate      float64      `json:"win_rate"`
	ProfitFactor float64      `json:"profit_factor"`
	GrossWin     float64      `json:"gross_win"`
	GrossLoss    float64      `json:"gross_loss"`
	AverageWin   float64      `json:"average_win"`
	AverageLoss  float64      `json:"average_loss"`
	Expectancy   float64      `json:"expectancy"`
	NetProfit    float64      `json:"net_profit"`
	TotalLots    float64      `json:"total_lots"`
	MaxDrawdown  float64      `json:"max_drawdown"`
	Long         SideStatsRes `json:"long"`
	Short        SideStatsRes `json:"short"`
}

// EquityPointRes はエクイティカーブ上の1点のレスポンスDTOです。
type EquityPointRes struct {
	Date     string  `json:"date"`
	Equity   float64 `json:"equity"`
	Drawdown float64 `json:"drawdown"`
}

// AssetPerformanceRes は銘柄別成績のレスポンスDTOです。
type AssetPerformanceRes struct {
	Symbol    string  `json:"symbol"`
	Trades    int     `json:"trades"`
	WinRate   float64 `json:"win_rate"`
	NetProfit float64 `json:"net_profit"`
}

// DistributionBucketRes は勝敗分布の1区分のレスポンスDTOです。
type DistributionBucketRes struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// CalendarDayRes は1トレーディングデーの集計レスポンスDTOです。
type CalendarDayRes struct {
	Date      string  `json:"date"`
	NetProfit float64 `json:"net_profit"`
	Trades    int     `json:"trades"`
}
