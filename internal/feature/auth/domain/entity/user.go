// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// User は登録済みユーザーを表します。
// 認証情報とプロフィール表示用のメタデータを保持します。
type User struct {
	// ID はユーザーの一意な識別子です。
	ID uint `gorm:"primaryKey"`

	// Email は認証に使用するメールアドレスです。全ユーザー間で一意です。
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Username はリーダーボード等に表示される一意なユーザー名です。
	Username string `gorm:"uniqueIndex;size:64;not null"`

	// DisplayName は任意の表示名です。
	DisplayName string `gorm:"size:128"`

	// AvatarURL は任意のアバター画像URLです。
	AvatarURL string `gorm:"size:512"`

	// Password はハッシュ化されたパスワードです。平文は保存しません。
	Password string `gorm:"size:255;not null"`

	// CreatedAt はユーザーの作成日時です。
	CreatedAt time.Time

	// UpdatedAt はユーザーの最終更新日時です。
	UpdatedAt time.Time
}
