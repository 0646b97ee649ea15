// Package tradingday はタイムスタンプを論理的なトレーディングデーに割り当てる
// カレンダールールを提供します。
//
// トレーディングセッションはローカル時間の06:00に始まり、翌日の05:59:59.999に
// 終わります。つまりローカル時間で6時未満のタイムスタンプは前日のセッションに
// 属します。タイムゾーンのネゴシエーションは行わず、タイムスタンプ自身の
// ロケーションをそのまま使います（意図的な簡略化）。
package tradingday

import "time"

// SessionStartHour はトレーディングセッションの開始時刻（ローカル時間）です。
const SessionStartHour = 6

// Of はタイムスタンプが属するトレーディングデーを返します。
// 戻り値はその日付の0時に正規化されるため、同じトレーディングデーに属する
// 2つのタイムスタンプはOfの結果が等しくなります。
func Of(t time.Time) time.Time {
	if t.Hour() < SessionStartHour {
		t = t.AddDate(0, 0, -1)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay は2つのタイムスタンプが同じトレーディングデーに属するかを返します。
func SameDay(a, b time.Time) bool {
	return Of(a).Equal(Of(b))
}

// WeekStart はトレーディングデーが属する週の開始日（月曜日）を返します。
// dayはOfで正規化済みであることを前提とします。
func WeekStart(day time.Time) time.Time {
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7 // 日曜は週の7日目
	}
	return day.AddDate(0, 0, -(wd - 1))
}

// MonthStart はトレーディングデーが属する月の初日を返します。
func MonthStart(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
}
