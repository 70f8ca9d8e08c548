package entity

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrAlreadyExists        = errors.New("already exists")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrSessionClosed        = errors.New("session closed")
)

// FetchError reports a failed synchronize stage. A failing stage aborts the
// whole pass; the previous snapshot stays in place.
type FetchError struct {
	Stage string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// WriteError reports a failed optimistic-write confirmation. By the time the
// caller sees it the local rollback has already been applied.
type WriteError struct {
	Op  string
	ID  uuid.UUID
	Err error
}

func (e *WriteError) Error() string {
	if e.ID.IsNil() {
		return fmt.Sprintf("write %s: %s", e.Op, e.Err)
	}

	return fmt.Sprintf("write %s %s: %s", e.Op, e.ID, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// SubscriptionError reports a dropped or unopenable change channel. Live
// updates are an enhancement: after it the dashboard degrades to manual
// refresh, which stays fully functional.
type SubscriptionError struct {
	Channel string
	Err     error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscription %s: %s", e.Channel, e.Err)
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}
