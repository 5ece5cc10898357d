package domain

import "fmt"

const (
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeInvalidArgument = "INVALID_ARGUMENT"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrConflict - ресурс конфликтует с уже существующим
	ErrConflict = &DomainError{
		Code:    CodeConflict,
		Message: "resource conflict",
	}

	// ErrInvalidArgument - некорректные входные данные
	ErrInvalidArgument = &DomainError{
		Code:    CodeInvalidArgument,
		Message: "invalid argument",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewConflictError создает ошибку CONFLICT
func NewConflictError(message string) *DomainError {
	return &DomainError{
		Code:    CodeConflict,
		Message: message,
	}
}

// NewInvalidArgumentError создает ошибку INVALID_ARGUMENT
func NewInvalidArgumentError(message string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidArgument,
		Message: message,
	}
}
