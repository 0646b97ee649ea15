// Package entity はgoalsフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// デフォルトの目標設定値です。
const (
	DefaultPortSize          = 1000.0
	DefaultProfitGoalPercent = 10.0
)

// Profile はユーザーごとの目標設定です。ユーザーと1対1で対応します。
type Profile struct {
	// ID はプロフィールの一意な識別子です。
	ID uint `gorm:"primaryKey"`

	// UserID はプロフィールの所有者です。ユーザーごとに1行のみ存在します。
	UserID uint `gorm:"uniqueIndex;not null"`

	// PortSize は口座サイズ（通貨単位）です。正の値である必要があります。
	PortSize float64 `gorm:"not null;default:1000"`

	// ProfitGoalPercent は月間目標（口座サイズに対するパーセント）です。
	ProfitGoalPercent float64 `gorm:"not null;default:10"`

	// QuestActive はポートフォリオクエストの参加フラグです。
	QuestActive bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectivePortSize は集計の分母として安全に使える口座サイズを返します。
// 0以下の場合はデフォルト値で代用します。
func (p *Profile) EffectivePortSize() float64 {
	if p.PortSize <= 0 {
		return DefaultPortSize
	}
	return p.PortSize
}

// EffectiveGoalPercent は目標計算に安全に使えるパーセント値を返します。
func (p *Profile) EffectiveGoalPercent() float64 {
	if p.ProfitGoalPercent <= 0 {
		return DefaultProfitGoalPercent
	}
	return p.ProfitGoalPercent
}
