// Package dto はleaderboardフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LeaderboardEntryRes はリーダーボード1行分のレスポンスDTOです。
type LeaderboardEntryRes struct {
	Rank       int     `json:"rank"`
	Username   string  `json:"username"`
	NetProfit  float64 `json:"net_profit"`
	TradeCount int     `json:"trade_count"`
	WinRate    float64 `json:"win_rate"`
}
