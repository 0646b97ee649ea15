package points

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"journal_backend/internal/feature/trades/domain/entity"
)

func ptr(f float64) *float64 { return &f }

func trade(profit, lotSize float64, occurredAt time.Time) entity.Trade {
	return entity.Trade{
		Symbol:     "XAUUSD",
		Side:       entity.SideBuy,
		LotSize:    lotSize,
		EntryPrice: 2300,
		Profit:     ptr(profit),
		OccurredAt: occurredAt,
	}
}

func TestForTrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		profit   float64
		lotSize  float64
		expected int
	}{
		{"profit 34 at lot 0.02 scores 1700", 34, 0.02, 1700},
		{"negative profit", -50, 0.1, -500},
		{"rounding up", 1, 0.3, 3},     // 3.33… → 3
		{"rounding half", 0.05, 0.1, 1}, // 0.5 → 1
		{"zero lot size guard", 100, 0, 0},
		{"zero profit", 0, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ForTrade(tt.profit, tt.lotSize))
		})
	}
}

// TestDailyTarget はデフォルト設定
// portSize=1000, goalPercent=10 ⇒ 月間目標100, 日次目標5.00 を確認します。
func TestDailyTarget(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, MonthlyGoal(1000, 10))
	assert.Equal(t, 5.0, DailyTarget(1000, 10))
	assert.Equal(t, 0.0, DailyTarget(0, 10))
	assert.Equal(t, 0.0, DailyTarget(1000, 0))
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	// 2024-05-22は水曜日。週は05-20（月曜）始まり。
	now := time.Date(2024, 5, 22, 12, 0, 0, 0, time.UTC)
	trades := []entity.Trade{
		trade(10, 0.1, time.Date(2024, 5, 22, 10, 0, 0, 0, time.UTC)),  // 当日: 100pt
		trade(20, 0.1, time.Date(2024, 5, 23, 3, 0, 0, 0, time.UTC)),   // 暦日は翌日だが同一セッション: 200pt
		trade(5, 0.1, time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)),   // 今週月曜: 50pt
		trade(-10, 0.1, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),  // 今月初: -100pt
		trade(100, 0.1, time.Date(2024, 4, 10, 10, 0, 0, 0, time.UTC)), // 先月: 1000pt
	}

	s := Aggregate(trades, now)

	assert.Equal(t, 300, s.Today)
	assert.Equal(t, 350, s.ThisWeek)
	assert.Equal(t, 250, s.ThisMonth)
	assert.Equal(t, 1250, s.Total)
}

func TestByDay(t *testing.T) {
	t.Parallel()

	trades := []entity.Trade{
		trade(10, 0.1, time.Date(2024, 5, 21, 10, 0, 0, 0, time.UTC)),
		trade(20, 0.1, time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)),
		trade(30, 0.1, time.Date(2024, 5, 20, 14, 0, 0, 0, time.UTC)),
	}

	days := ByDay(trades)

	assert.Len(t, days, 2)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), days[0].Day)
	assert.Equal(t, 500, days[0].Points)
	assert.Equal(t, 100, days[1].Points)
}

func TestProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		netProfit float64
		target    float64
		expected  float64
	}{
		{"halfway", 2.5, 5, 50},
		{"complete", 5, 5, 100},
		{"over target clamps to 100", 12, 5, 100},
		{"negative clamps to 0", -3, 5, 0},
		{"zero target", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Progress(tt.netProfit, tt.target))
		})
	}
}
