package pointstore

import (
	"context"
	"errors"

	"github.com/chainsafe/mentor-api/pkg/points"
)

// ErrAssignmentExists is returned when inserting a mentor/mentee pair that is already stored.
var ErrAssignmentExists = errors.New("mentor assignment already exists")

// BalanceStore defines user point balance persistence.
// Both writes are single-statement upserts so concurrent callers never lose updates.
type BalanceStore interface {
	AddPoints(ctx context.Context, userID, delta int64) (int64, error)
	SetPoints(ctx context.Context, userID, value int64) error
	GetBalance(ctx context.Context, userID int64) (*points.Balance, error)
}

// AssignmentStore defines mentor/mentee pair persistence
type AssignmentStore interface {
	AssignmentExists(ctx context.Context, mentorID, menteeID int64) (bool, error)
	CreateAssignment(ctx context.Context, mentorID, menteeID int64) error
	DeleteAssignment(ctx context.Context, mentorID, menteeID int64) error
	ListAssignments(ctx context.Context) ([]*points.Assignment, error)
}

// CheckinStore defines append-only daily check-in persistence
type CheckinStore interface {
	CreateCheckin(ctx context.Context, userID int64, checkinType points.CheckinType) (*points.Checkin, error)
}

// Store combines every persistence concern of the API.
type Store interface {
	BalanceStore
	AssignmentStore
	CheckinStore
}
