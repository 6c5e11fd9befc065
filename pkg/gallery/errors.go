package gallery

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")
var ErrAlreadyLiked = errors.New("already liked")
var ErrRequestInFlight = errors.New("request already in flight")
var ErrMissingFile = errors.New("an image file must be provided")
var ErrEmptyComment = errors.New("comment text must not be empty")
var ErrNoOpenAlbum = errors.New("no album is currently open")
var ErrNoOpenImage = errors.New("no image is currently open")

// ValidationError indicates a request that was rejected locally,
// before any call to the remote store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// TransportError indicates the remote store could not be reached or
// answered with a failure that carries no more specific meaning. The
// caller may retry the same operation manually.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gallery service %s: %s", e.Op, e.Err.Error())
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsValidation reports whether err was raised locally before dispatch.
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrMissingFile) || errors.Is(err, ErrEmptyComment)
}

// IsNotFound reports whether the target entity vanished, either from
// the cache or server-side.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is an informational no-op state
// (already liked, duplicate in-flight request) rather than a failure.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyLiked) || errors.Is(err, ErrRequestInFlight)
}

// IsTransport reports whether err is a remote store failure that left
// local state unchanged and is worth a manual retry.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
