// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import "errors"

// センチネルエラー - リソースが見つからない場合
var (
	ErrPrefectureNotFound = errors.New("prefecture not found")
	ErrDistrictNotFound   = errors.New("district not found")
	ErrLocationNotFound   = errors.New("location not found")
)

// ErrInvalidImport はインポート文書の形式が不正な場合のエラーです。
var ErrInvalidImport = errors.New("invalid import document")

// ValidationError はバリデーションエラーを表す型
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError はValidationErrorを生成するヘルパー関数
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
