package usecase

import "errors"

// 管理者操作のドメインエラーです。
var (
	// ErrUserNotFound は対象ユーザーが存在しない場合に返されます。
	ErrUserNotFound = errors.New("user not found")
)
