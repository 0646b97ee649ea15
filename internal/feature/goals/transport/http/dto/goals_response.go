package dto

// GoalsRes は目標設定と導出値のレスポンスDTOです。
type GoalsRes struct {
	PortSize          float64 `json:"port_size"`
	ProfitGoalPercent float64 `json:"profit_goal_percent"`
	MonthlyGoal       float64 `json:"monthly_goal"`
	DailyTarget       float64 `json:"daily_target"`
	QuestActive       bool    `json:"quest_active"`
}

// PointsRes はポイントの期間別集計のレスポンスDTOです。
type PointsRes struct {
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
	Total     int `json:"total"`
}

// QuestProgressRes はクエストの当日進捗のレスポンスDTOです。
type QuestProgressRes struct {
	Active         bool      `json:"active"`
	DailyTarget    float64   `json:"daily_target"`
	NetProfitToday float64   `json:"net_profit_today"`
	Progress       float64   `json:"progress"`
	Completed      bool      `json:"completed"`
	Celebrate      bool      `json:"celebrate"`
	Points         PointsRes `json:"points"`
}
