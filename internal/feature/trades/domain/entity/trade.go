// Package entity はtradesフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// Side は取引の売買方向を表します。
type Side string

const (
	// SideBuy はロング（買い）ポジションです。
	SideBuy Side = "BUY"
	// SideSell はショート（売り）ポジションです。
	SideSell Side = "SELL"
)

// IsValid はSideが定義済みの値かどうかを返します。
func (s Side) IsValid() bool {
	return s == SideBuy || s == SideSell
}

// ContractSize は表示用の決済価格を逆算する際の固定コントラクトサイズです。
const ContractSize = 100

// Trade は1件の取引記録を表します。
// ExitPriceとProfitは未決済の取引ではnilになります。
// 全てのクエリ・更新はUserIDでスコープされます（マルチテナント分離）。
type Trade struct {
	// ID は取引の一意な識別子です。作成時に採番され、以後不変です。
	ID uint `gorm:"primaryKey"`

	// UserID は取引の所有者です。
	UserID uint `gorm:"index;not null"`

	// Symbol は取引した銘柄シンボルです（大文字、空文字不可）。
	Symbol string `gorm:"size:32;not null"`

	// Side は売買方向（BUY / SELL）です。
	Side Side `gorm:"size:8;not null"`

	// LotSize はロット数です。ポイント計算の分母になるため0は不可です。
	LotSize float64 `gorm:"not null"`

	// EntryPrice はエントリー価格です。
	EntryPrice float64 `gorm:"not null"`

	// ExitPrice は決済価格です。未決済の場合はnilです。
	ExitPrice *float64

	// Profit は損益です。nilの場合、集計では0として扱い、表示では「未決済」として扱います。
	Profit *float64

	// Notes は自由記述のメモです。
	Notes string `gorm:"type:text"`

	// AIAnalysis は生成された分析テキストです。明示的な再生成以外では一度だけ設定されます。
	AIAnalysis string `gorm:"type:text"`

	// ScreenshotURL はアップロードされたスクリーンショットの公開URLです。
	ScreenshotURL string `gorm:"size:512"`

	// OccurredAt はユーザーが入力した取引日時です（現在時刻とは限らない）。
	// トレーディングデーへのバケッティングは全てこのフィールドを基準にします。
	OccurredAt time.Time `gorm:"index;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfitValue はProfitの値を返します。nilの場合は0を返します。
func (t *Trade) ProfitValue() float64 {
	if t.Profit == nil {
		return 0
	}
	return *t.Profit
}

// DisplayExitPrice は表示用の決済価格を返します。
// ExitPriceが記録されていればそのまま返し、未記録の場合は
// 損益・ロット数・エントリー価格から固定コントラクトサイズで逆算します。
func (t *Trade) DisplayExitPrice() float64 {
	if t.ExitPrice != nil {
		return *t.ExitPrice
	}
	if t.Profit == nil || t.LotSize == 0 {
		return t.EntryPrice
	}
	delta := *t.Profit / (t.LotSize * ContractSize)
	if t.Side == SideSell {
		return t.EntryPrice - delta
	}
	return t.EntryPrice + delta
}
