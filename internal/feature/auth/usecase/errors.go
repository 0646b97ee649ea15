package usecase

import "errors"

// 認証操作のドメインエラーです。上位層で適切に処理されます。
var (
	// ErrUserAlreadyExists は同じメールアドレスまたはユーザー名のユーザーが
	// 既に存在する場合に返されます。
	ErrUserAlreadyExists = errors.New("user with this email or username already exists")

	// ErrUserNotFound は条件に一致するユーザーが存在しない場合に返されます。
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials はメールアドレスまたはパスワードが不正な場合に返されます。
	ErrInvalidCredentials = errors.New("invalid email or password")
)
