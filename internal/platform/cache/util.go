package cache

import "time"

// SessionStartHour はトレーディングセッションの開始時刻（ローカル時間）です。
const SessionStartHour = 6

// TimeUntilNextSession は次のセッション開始（午前6時）までの期間を返します。
func TimeUntilNextSession() time.Duration {
	now := time.Now()

	// 次の午前6時を計算
	next := time.Date(now.Year(), now.Month(), now.Day(), SessionStartHour, 0, 0, 0, now.Location())

	// 今日の午前6時が既に過ぎている場合は明日の午前6時を使用
	if !now.Before(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}
