package usecase

import "errors"

// 目標設定操作のドメインエラーです。
var (
	// ErrInvalidPortSize は口座サイズが正の値でない場合に返されます。
	ErrInvalidPortSize = errors.New("port size must be positive")

	// ErrInvalidGoalPercent は目標パーセントが正の値でない場合に返されます。
	ErrInvalidGoalPercent = errors.New("profit goal percent must be positive")
)
