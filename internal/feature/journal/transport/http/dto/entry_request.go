// Package dto はjournalフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// EntryReq はジャーナルエントリの作成・更新リクエストボディを表します。
// TradingDayは"2006-01-02"形式の日付文字列です（省略時は当日のトレーディングデー）。
type EntryReq struct {
	Title        string   `json:"title" binding:"required"`
	Content      string   `json:"content"`
	Mood         string   `json:"mood" binding:"omitempty,oneof=great good neutral bad terrible"`
	Tags         []string `json:"tags" binding:"omitempty,max=20,dive,max=32"`
	TradingDay   string   `json:"trading_day" binding:"omitempty,datetime=2006-01-02"`
	FollowedPlan bool     `json:"followed_plan"`
}
