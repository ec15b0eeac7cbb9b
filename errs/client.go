package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Client-side failures that never reached a usable HTTP response.
var (
	ErrTransport = errors.New("transport failure")
	ErrDecode    = errors.New("malformed response")
	ErrEncode    = errors.New("could not encode request")
	ErrStorage   = errors.New("persisted storage failure")
)

// NewHTTPError builds the error for a non-2xx response. serverMessage is the
// "message" field of the reply body and may be empty.
func NewHTTPError(statusCode int, serverMessage string) *ApiErr {
	e := &ApiErr{
		StatusCode: statusCode,
		err:        sentinelForStatus(statusCode),
		Details:    serverMessage,
	}
	if serverMessage == "" {
		e.err = fmt.Errorf("%w: request failed with status %d", e.err, statusCode)
	}
	return e
}

func NewTransportError(cause error) *ApiErr {
	return &ApiErr{err: ErrTransport, Cause: cause}
}

func NewDecodeError(statusCode int, cause error) *ApiErr {
	return &ApiErr{StatusCode: statusCode, err: ErrDecode, Cause: cause}
}

func NewEncodeError(cause error) *ApiErr {
	return &ApiErr{err: ErrEncode, Cause: cause}
}

func NewStorageError(key string, cause error) *ApiErr {
	return &ApiErr{err: ErrStorage, Field: key, Cause: cause}
}

// WithFallback rewraps err for a named operation. The returned error's
// message is the server-supplied message when there is one, else fallback.
// The original error stays reachable through errors.Is / errors.As.
func WithFallback(err error, fallback string) *ApiErr {
	if err == nil {
		return nil
	}

	out := &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New(fallback),
		Cause:      err,
	}

	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		out.StatusCode = apiErr.StatusCode
		out.Field = apiErr.Field
		if apiErr.Details != "" {
			out.err = errors.New(apiErr.Details)
		}
	}
	return out
}

// Message returns the text a view should display for err, "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}
