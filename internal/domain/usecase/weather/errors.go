package weather

import (
	"errors"
	"fmt"
)

// Kind is the closed set of ways a forecast request can fail.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidRequest
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

const (
	MessageCityRequired = "City parameter is required"
	MessageCityNotFound = "City not found"
)

// Error is returned by UseCase. Message is what the caller gets to see.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of err, KindInternal for anything that is not an *Error.
func KindOf(err error) Kind {
	var forecastErr *Error
	if errors.As(err, &forecastErr) {
		return forecastErr.Kind
	}
	return KindInternal
}

// MalformedEntryError reports an entry with a valid timestamp but a missing body block.
type MalformedEntryError struct {
	Index int
	Field string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("forecast entry %d: missing %s", e.Index, e.Field)
}

func invalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

func notFound(err error) *Error {
	return &Error{Kind: KindNotFound, Message: MessageCityNotFound, Err: err}
}

func internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}
