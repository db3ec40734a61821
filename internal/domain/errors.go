package domain

import (
	"errors"
	"fmt"
	"slices"

	"git.appkode.ru/pub/go/failure"
)

// AppError ошибка домена с кодом из errcodes. Message показывается
// клиентам API, cause остаётся в логах.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError добавляет к ошибке инфраструктуры код и сообщение.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode код ближайшей AppError в цепочке.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// HasCode true, если код ошибки один из codes.
func HasCode(err error, codes ...failure.ErrorCode) bool {
	code, ok := GetCode(err)
	return ok && slices.Contains(codes, code)
}

// Message сообщение ближайшей AppError или пустая строка.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
