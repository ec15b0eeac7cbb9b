package store

import (
	"errors"

	"github.com/rpupo63/portfolio-sync/errs"
)

// Status is the lifecycle position of one asynchronous operation.
type Status int

const (
	Idle Status = iota
	Pending
	Fulfilled
	Rejected
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "idle"
	}
}

// Result is the outcome of a store operation: Pending, Ok(value) or
// Fail(message). Reducers consume it to compute the next state.
type Result[T any] struct {
	Status Status
	Value  T
	Err    string
	cause  error
}

func PendingResult[T any]() Result[T] {
	return Result[T]{Status: Pending}
}

func Ok[T any](value T) Result[T] {
	return Result[T]{Status: Fulfilled, Value: value}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{Status: Rejected, Err: errs.Message(err), cause: err}
}

func (r Result[T]) OK() bool {
	return r.Status == Fulfilled
}

// Error returns the underlying error of a rejected result, nil otherwise.
func (r Result[T]) Error() error {
	if r.Status != Rejected {
		return nil
	}
	if r.cause != nil {
		return r.cause
	}
	return errors.New(r.Err)
}

func settle[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

// Lifecycle is the request state every store carries. Loading tracks
// fetches; ActionLoading tracks mutations. Error holds the message of the
// last failed operation until the next one starts or it is cleared.
type Lifecycle struct {
	Loading       bool
	ActionLoading bool
	Error         string
}

// reduceLifecycle applies r to l. action selects which flag r drives.
func reduceLifecycle[T any](l Lifecycle, action bool, r Result[T]) Lifecycle {
	flag := &l.Loading
	if action {
		flag = &l.ActionLoading
	}

	switch r.Status {
	case Pending:
		*flag = true
		l.Error = ""
	case Fulfilled:
		*flag = false
		l.Error = ""
	case Rejected:
		*flag = false
		l.Error = r.Err
	}
	return l
}
