package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an upstream failure the way the console reacts to it.
type Kind int

const (
	KindUnavailable Kind = iota + 1 // no response at all
	KindUnauthorized
	KindValidation
	KindNotFound
	KindPayloadTooLarge
	KindUnsupportedMedia
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPayloadTooLarge:
		return "payload_too_large"
	case KindUnsupportedMedia:
		return "unsupported_media"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// Error is the single error type the client returns for upstream failures.
type Error struct {
	Kind    Kind
	Status  int    // 0 when no response was received
	Op      string // "GET /admin/products"
	Message string // operator-facing text
	cause   error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: %s: backend unavailable: %v", e.Op, e.cause)
	}
	return fmt.Sprintf("api: %s: %d %s: %s", e.Op, e.Status, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf reports the Kind of err, or 0 when err is not an api error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

func IsUnavailable(err error) bool  { return KindOf(err) == KindUnavailable }
func IsUnauthorized(err error) bool { return KindOf(err) == KindUnauthorized }
func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsValidation(err error) bool   { return KindOf(err) == KindValidation }

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return KindValidation
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusRequestEntityTooLarge:
		return KindPayloadTooLarge
	case status == http.StatusUnsupportedMediaType:
		return KindUnsupportedMedia
	default:
		return KindServer
	}
}

// errorMessage digs the operator-facing message out of an error body:
// "message", then "error", then "errors[0].msg", with a generic fallback.
func errorMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		ErrStr  string `json:"error"`
		Errors  []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.ErrStr != "" {
			return payload.ErrStr
		}
		if len(payload.Errors) > 0 && payload.Errors[0].Msg != "" {
			return payload.Errors[0].Msg
		}
	}
	return http.StatusText(status)
}
