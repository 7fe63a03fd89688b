package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var (
	ErrConnection = errors.New("backing store unavailable")
	ErrConstraint = errors.New("constraint violated")
	ErrDuplicate  = errors.New("resource already exists")
	ErrNotFound   = errors.New("resource not found")
	ErrStorage    = errors.New("storage failure")
	ErrTimeout    = errors.New("storage call timed out")
)

// ConstraintError reports which field a rejected write violated.
type ConstraintError struct {
	Field string
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// Is makes every ConstraintError match ErrConstraint, duplicates included.
func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

// classify maps driver errors onto the package sentinels. op is used as the
// message prefix.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrTimeout)
	}
	if errors.Is(err, driver.ErrBadConn) {
		return fmt.Errorf("%s: %w: %v", op, ErrConnection, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, &ConstraintError{Field: constraintField(pqErr), Err: ErrDuplicate})
		case "23514", "23503", "23502":
			return fmt.Errorf("%s: %w", op, &ConstraintError{Field: constraintField(pqErr), Err: ErrConstraint})
		}
		if pqErr.Code.Class() == "08" {
			return fmt.Errorf("%s: %w: %s", op, ErrConnection, pqErr.Message)
		}
	}

	return fmt.Errorf("%s: %w: %v", op, ErrStorage, err)
}

func constraintField(err *pq.Error) string {
	if err.Column != "" {
		return err.Column
	}
	switch {
	case strings.Contains(err.Constraint, "rating"):
		return "rating"
	case strings.Contains(err.Constraint, "restaurant_id"):
		return "restaurant_id"
	case strings.Contains(err.Constraint, "name"):
		return "name"
	}
	return err.Constraint
}
