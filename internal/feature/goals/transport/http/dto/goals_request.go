// Package dto はgoalsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// GoalsReq は目標設定の更新・クエスト有効化リクエストボディを表します。
type GoalsReq struct {
	PortSize          float64 `json:"port_size" binding:"required,gt=0"`
	ProfitGoalPercent float64 `json:"profit_goal_percent" binding:"required,gt=0"`
}
