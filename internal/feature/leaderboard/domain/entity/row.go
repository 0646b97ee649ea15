// Package entity はleaderboardフィーチャーのドメインエンティティを定義します。
package entity

// Row はリーダーボード1行分の集計値です。取引テーブルからの読み取り専用の
// 集計であり、永続化されるエンティティではありません。
type Row struct {
	UserID     uint    `json:"user_id"`
	Username   string  `json:"username"`
	NetProfit  float64 `json:"net_profit"`
	TradeCount int     `json:"trade_count"`
	Wins       int     `json:"wins"`
}

// WinRate は勝率（0〜100）を返します。取引0件の場合は0です。
func (r *Row) WinRate() float64 {
	if r.TradeCount == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.TradeCount) * 100
}
