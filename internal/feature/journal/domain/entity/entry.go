// Package entity はjournalフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Mood はジャーナルエントリの気分を表します。
type Mood string

// 定義済みのMood値です。空文字は「未設定」を表します。
const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

// IsValid はMoodが未設定または定義済みの値かどうかを返します。
func (m Mood) IsValid() bool {
	switch m {
	case "", MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodTerrible:
		return true
	}
	return false
}

// Entry は1トレーディングデーに紐付く振り返りのジャーナルエントリです。
type Entry struct {
	// ID はエントリの一意な識別子です。
	ID uint `gorm:"primaryKey"`

	// UserID はエントリの所有者です。
	UserID uint `gorm:"index;not null"`

	// Title はエントリの題名です（必須）。
	Title string `gorm:"size:255;not null"`

	// Content は本文です（任意）。
	Content string `gorm:"type:text"`

	// Mood はその日の気分です（任意）。
	Mood Mood `gorm:"size:16"`

	// Tags は短い文字列のタグ集合です。JSONとして直列化されます。
	Tags []string `gorm:"serializer:json"`

	// TradingDay はエントリが属するトレーディングデーです（時刻ではなく日付）。
	TradingDay time.Time `gorm:"index;not null"`

	// FollowedPlan はその日トレードプランに従ったかどうかです。
	FollowedPlan bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
