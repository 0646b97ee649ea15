package dto

// TradeRes は取引1件のレスポンスDTOです。
// ExitPriceは未記録の場合でも表示用に逆算された値が入ります。
// Profitがnullの取引は未決済（open=true）として扱われます。
type TradeRes struct {
	ID            uint     `json:"id"`
	Symbol        string   `json:"symbol"`
	Side          string   `json:"side"`
	LotSize       float64  `json:"lot_size"`
	EntryPrice    float64  `json:"entry_price"`
	ExitPrice     float64  `json:"exit_price"`
	Profit        *float64 `json:"profit"`
	Open          bool     `json:"open"`
	Notes         string   `json:"notes,omitempty"`
	AIAnalysis    string   `json:"ai_analysis,omitempty"`
	ScreenshotURL string   `json:"screenshot_url,omitempty"`
	OccurredAt    string   `json:"occurred_at"`
	TradingDay    string   `json:"trading_day"`
}

// AnalysisRes は分析生成のレスポンスDTOです。
type AnalysisRes struct {
	TradeID  uint   `json:"trade_id"`
	Analysis string `json:"analysis"`
}

// ScreenshotRes はスクリーンショットアップロードのレスポンスDTOです。
// DetectedTextはOCRが有効な場合のみ設定されます。
type ScreenshotRes struct {
	TradeID      uint   `json:"trade_id"`
	URL          string `json:"url"`
	DetectedText string `json:"detected_text,omitempty"`
}
