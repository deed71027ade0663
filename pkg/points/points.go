// Package points holds the domain model of the mentor points API: user balances,
// mentor/mentee assignments and daily check-ins, plus their HTTP request/response shapes.
package points

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidCheckinType is returned for any check-in type outside CheckinGood/CheckinBad.
var ErrInvalidCheckinType = errors.New("invalid checkin type")

// CheckinType is the normalized (lowercase) kind of a daily check-in.
type CheckinType string

const (
	CheckinGood CheckinType = "good"
	CheckinBad  CheckinType = "bad"
)

// ParseCheckinType matches s case-insensitively against the allowed check-in types.
func ParseCheckinType(s string) (CheckinType, error) {
	switch ct := CheckinType(strings.ToLower(s)); ct {
	case CheckinGood, CheckinBad:
		return ct, nil
	default:
		return "", ErrInvalidCheckinType
	}
}

// Balance is a user's current point total. A user without a stored row has a zero balance.
type Balance struct {
	UserID      int64
	Points      int64
	LastUpdated *time.Time
}

// Assignment pairs a mentor with a mentee.
type Assignment struct {
	MentorID   int64
	MenteeID   int64
	AssignedAt time.Time
}

// Checkin is one append-only daily check-in record.
type Checkin struct {
	ID        int64
	UserID    int64
	Type      CheckinType
	CreatedAt time.Time
}

// AssignmentAction reports which way a toggle went.
type AssignmentAction int

const (
	Assigned AssignmentAction = iota + 1
	Unassigned
)

func (a AssignmentAction) String() string {
	switch a {
	case Assigned:
		return "assigned"
	case Unassigned:
		return "unassigned"
	default:
		return "unknown"
	}
}

// PointsRequest is the body of /add_points and /set_points.
type PointsRequest struct {
	UserID *int64 `json:"user_id" validate:"required"`
	Points *int64 `json:"points" validate:"required"`
}

// AddPointsResponse is returned by /add_points.
type AddPointsResponse struct {
	UserID   int64 `json:"user_id"`
	NewTotal int64 `json:"new_total"`
}

// PointsResponse is returned by /get_points/{user_id}.
type PointsResponse struct {
	UserID int64 `json:"user_id"`
	Points int64 `json:"points"`
}

// AssignmentRequest is the body of POST /mentor-assignments.
type AssignmentRequest struct {
	MentorID *int64 `json:"mentor_id" validate:"required"`
	MenteeID *int64 `json:"mentee_id" validate:"required"`
}

// AssignmentResponse is one element of GET /mentor-assignments.
type AssignmentResponse struct {
	MentorID int64 `json:"mentor_id"`
	MenteeID int64 `json:"mentee_id"`
}

// CheckinRequest is the body of /log-checkin.
type CheckinRequest struct {
	UserID      *int64 `json:"user_id" validate:"required"`
	CheckinType string `json:"checkin_type" validate:"required"`
}

// MessageResponse carries a human-readable result.
type MessageResponse struct {
	Message string `json:"message"`
}
