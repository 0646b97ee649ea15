// Package dto はtradesフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "time"

// TradeReq は取引の作成・更新リクエストボディを表します。
// 作成経路では有効な数値のロット数とエントリー価格が必須です（集計側の
// 0ガードとは別に、記録自体は正しい値を要求する）。
type TradeReq struct {
	Symbol     string    `json:"symbol" binding:"required"`
	Side       string    `json:"side" binding:"required,oneof=BUY SELL"`
	LotSize    float64   `json:"lot_size" binding:"required,gt=0"`
	EntryPrice float64   `json:"entry_price" binding:"required"`
	ExitPrice  *float64  `json:"exit_price"`
	Profit     *float64  `json:"profit"`
	Notes      string    `json:"notes"`
	OccurredAt time.Time `json:"occurred_at" binding:"required"`
}
