package usecase

import "errors"

// ジャーナル操作のドメインエラーです。
var (
	// ErrEntryNotFound はエントリが存在しないか、呼び出し元の所有物でない場合に返されます。
	ErrEntryNotFound = errors.New("journal entry not found")

	// ErrInvalidTitle は題名が空の場合に返されます。
	ErrInvalidTitle = errors.New("title is required")

	// ErrInvalidMood は気分が定義済みの値でない場合に返されます。
	ErrInvalidMood = errors.New("invalid mood value")
)
