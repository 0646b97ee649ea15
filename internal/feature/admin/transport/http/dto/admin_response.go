// Package dto はadminフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// AdminUserRes は管理者向けの1ユーザー概要と取引統計です。
type AdminUserRes struct {
	ID           uint    `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	DisplayName  string  `json:"display_name,omitempty"`
	CreatedAt    string  `json:"created_at"`
	TotalTrades  int     `json:"total_trades"`
	NetProfit    float64 `json:"net_profit"`
	WinRate      float64 `json:"win_rate"`
	ProfitFactor float64 `json:"profit_factor"`
	MaxDrawdown  float64 `json:"max_drawdown"`
}

// AdminTradeRes は管理者向けの取引1件のレスポンスDTOです。
// 所有者のユーザーIDを含む点が通常の取引レスポンスと異なります。
type AdminTradeRes struct {
	ID         uint     `json:"id"`
	UserID     uint     `json:"user_id"`
	Symbol     string   `json:"symbol"`
	Side       string   `json:"side"`
	LotSize    float64  `json:"lot_size"`
	EntryPrice float64  `json:"entry_price"`
	ExitPrice  float64  `json:"exit_price"`
	Profit     *float64 `json:"profit"`
	OccurredAt string   `json:"occurred_at"`
}

// AdminDeleteRes は一括削除操作の結果です。
type AdminDeleteRes struct {
	UserID  uint  `json:"user_id"`
	Deleted int64 `json:"deleted"`
}
