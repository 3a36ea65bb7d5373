package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes del CLI.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // la operación corrió y falló (backup inválido, almacén lleno...)
	ExitCommandError = 2 // uso incorrecto o entorno inválido (config, archivo inexistente)
)

// ExitError lleva el código de salida junto al error.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode devuelve ExitFailure para errores que no son ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

type response struct {
	Status string `json:"status"` // ok | error
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// formatter escribe en text o json según --format.
type formatter struct {
	format string
	w      io.Writer
}

// success: en text imprime cada línea; en json envuelve data.
func (f *formatter) success(data any, lines ...string) error {
	if f.format == "json" {
		return json.NewEncoder(f.w).Encode(response{Status: "ok", Data: data})
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(f.w, l); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) failure(err error) {
	if f.format == "json" {
		_ = json.NewEncoder(f.w).Encode(response{Status: "error", Error: err.Error()})
		return
	}
	fmt.Fprintf(f.w, "Error: %v\n", err)
}
