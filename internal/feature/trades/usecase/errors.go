package usecase

import "errors"

// 取引操作のドメインエラーです。上位層で適切に処理されます。
var (
	// ErrTradeNotFound は取引が存在しないか、呼び出し元の所有物でない場合に返されます。
	// 所有権違反と不存在は区別せず、どちらもこのエラーになります。
	ErrTradeNotFound = errors.New("trade not found")

	// ErrInvalidSymbol は銘柄シンボルが空の場合に返されます。
	ErrInvalidSymbol = errors.New("symbol is required")

	// ErrInvalidSide は売買方向がBUY/SELL以外の場合に返されます。
	ErrInvalidSide = errors.New("side must be BUY or SELL")

	// ErrInvalidLotSize はロット数が0以下の場合に返されます。
	ErrInvalidLotSize = errors.New("lot size must be positive")

	// ErrScreenshotTooLarge はスクリーンショットが最大サイズを超える場合に返されます。
	ErrScreenshotTooLarge = errors.New("screenshot exceeds maximum size")

	// ErrEmptyScreenshot はスクリーンショットのデータが空の場合に返されます。
	ErrEmptyScreenshot = errors.New("screenshot data is empty")
)
