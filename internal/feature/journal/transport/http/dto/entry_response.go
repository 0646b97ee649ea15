package dto

// EntryRes はジャーナルエントリ1件のレスポンスDTOです。
type EntryRes struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content,omitempty"`
	Mood         string   `json:"mood,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	TradingDay   string   `json:"trading_day"`
	FollowedPlan bool     `json:"followed_plan"`
}

// StreakRes は継続記録とプラン遵守率のレスポンスDTOです。
type StreakRes struct {
	Streak            int     `json:"streak"`
	TotalEntries      int     `json:"total_entries"`
	FollowedPlanCount int     `json:"followed_plan_count"`
	PlanAdherenceRate float64 `json:"plan_adherence_rate"`
}
