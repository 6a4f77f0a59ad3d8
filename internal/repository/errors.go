package repository

import "errors"

// infraのDBエラーはここに翻訳してからusecaseへ返す。
// usecase側でDBドライバのエラーコードを見ない約束。
var (
	// 対象レコードが存在しない
	ErrNotFound = errors.New("record not found")

	// 一意制約違反
	ErrConflict = errors.New("record already exists")

	// 外部キー違反（参照先が存在しない）
	ErrInvalidReference = errors.New("referenced record does not exist")
)
