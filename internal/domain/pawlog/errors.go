package pawlog

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrStorage         = errors.New("storage failure")
	ErrInvalidBackup   = errors.New("invalid backup data format")
	ErrQuotaExceeded   = errors.New("storage quota exceeded")
)

type AppError struct {
	Err     error  // sentinel
	Message string // mensaje legible
	Field   string // opcional
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// StorageError indica que una lectura o escritura del almacén falló.
// En mutaciones del Store, el estado en memoria ya quedó aplicado.
type StorageError struct {
	Op  string // read | write | delete
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

// IsWriteFailure: la mutación siguió en memoria pero no quedó persistida.
func IsWriteFailure(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.Op != "read"
}
