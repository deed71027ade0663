package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/mentor-api/pkg/app/errors"
	"github.com/chainsafe/mentor-api/pkg/points"
	"github.com/chainsafe/mentor-api/pkg/pointstore"
)

// Public messages returned with 500 responses. Causes are logged, never returned.
const (
	msgAddPointsFailed   = "Error updating points in database."
	msgGetPointsFailed   = "Error reading points from database."
	msgSetPointsFailed   = "Error setting points in database."
	msgAssignmentFailed  = "An unexpected error occurred in the database."
	msgListFailed        = "Error reading mentor assignments from database."
	msgCheckinFailed     = "Error logging check-in in database."
	msgInvalidCheckinTyp = "checkin_type must be 'good' or 'bad'"
)

// Store is the narrow data-access interface for the points service.
// pointstore.Store satisfies it.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	AddPoints(ctx context.Context, userID, delta int64) (int64, error)
	SetPoints(ctx context.Context, userID, value int64) error
	GetBalance(ctx context.Context, userID int64) (*points.Balance, error)
	AssignmentExists(ctx context.Context, mentorID, menteeID int64) (bool, error)
	CreateAssignment(ctx context.Context, mentorID, menteeID int64) error
	DeleteAssignment(ctx context.Context, mentorID, menteeID int64) error
	ListAssignments(ctx context.Context) ([]*points.Assignment, error)
	CreateCheckin(ctx context.Context, userID int64, checkinType points.CheckinType) (*points.Checkin, error)
}

// Service defines the business operations of the mentor API
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	AddPoints(ctx context.Context, userID, delta int64) (*points.AddPointsResponse, error)
	GetPoints(ctx context.Context, userID int64) (*points.PointsResponse, error)
	SetPoints(ctx context.Context, userID, value int64) (*points.MessageResponse, error)
	ToggleMentorAssignment(ctx context.Context, mentorID, menteeID int64) (points.AssignmentAction, error)
	ListMentorAssignments(ctx context.Context) ([]points.AssignmentResponse, error)
	LogCheckin(ctx context.Context, userID int64, checkinType string) (*points.Checkin, error)
}

type pointsService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new points service
func NewService(store Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pointsService{
		store:  store,
		logger: logger,
	}
}

// AddPoints adds delta (possibly negative) to the user's balance, creating it when absent,
// and returns the total produced by the same statement.
func (s *pointsService) AddPoints(ctx context.Context, userID, delta int64) (*points.AddPointsResponse, error) {
	total, err := s.store.AddPoints(ctx, userID, delta)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to add points: %w", err), msgAddPointsFailed)
	}

	return &points.AddPointsResponse{
		UserID:   userID,
		NewTotal: total,
	}, nil
}

// GetPoints returns the user's balance, 0 for unknown users.
func (s *pointsService) GetPoints(ctx context.Context, userID int64) (*points.PointsResponse, error) {
	balance, err := s.store.GetBalance(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to get balance: %w", err), msgGetPointsFailed)
	}

	return &points.PointsResponse{
		UserID: userID,
		Points: balance.Points,
	}, nil
}

// SetPoints overwrites the user's balance.
func (s *pointsService) SetPoints(ctx context.Context, userID, value int64) (*points.MessageResponse, error) {
	if err := s.store.SetPoints(ctx, userID, value); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to set points: %w", err), msgSetPointsFailed)
	}

	return &points.MessageResponse{
		Message: fmt.Sprintf("User %d points set to %d.", userID, value),
	}, nil
}

// ToggleMentorAssignment removes the pair when it exists and creates it otherwise.
//
// The existence check and the write are separate statements. Two concurrent toggles of the
// same pair can both observe "absent"; the loser's insert hits the primary key and is
// reported as Assigned, which is the state the pair ends up in.
func (s *pointsService) ToggleMentorAssignment(ctx context.Context, mentorID, menteeID int64) (points.AssignmentAction, error) {
	exists, err := s.store.AssignmentExists(ctx, mentorID, menteeID)
	if err != nil {
		return 0, apperrors.InternalError(fmt.Errorf("failed to check assignment: %w", err), msgAssignmentFailed)
	}

	if exists {
		if err := s.store.DeleteAssignment(ctx, mentorID, menteeID); err != nil {
			return 0, apperrors.InternalError(fmt.Errorf("failed to delete assignment: %w", err), msgAssignmentFailed)
		}
		return points.Unassigned, nil
	}

	err = s.store.CreateAssignment(ctx, mentorID, menteeID)
	switch {
	case err == nil:
		return points.Assigned, nil
	case errors.Is(err, pointstore.ErrAssignmentExists):
		s.logger.Debug("Concurrent toggle created the assignment first",
			zap.Int64("mentor_id", mentorID),
			zap.Int64("mentee_id", menteeID),
		)
		return points.Assigned, nil
	default:
		return 0, apperrors.InternalError(fmt.Errorf("failed to create assignment: %w", err), msgAssignmentFailed)
	}
}

// ListMentorAssignments returns every stored pair. The result is never nil.
func (s *pointsService) ListMentorAssignments(ctx context.Context) ([]points.AssignmentResponse, error) {
	assignments, err := s.store.ListAssignments(ctx)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to list assignments: %w", err), msgListFailed)
	}

	resp := make([]points.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		resp = append(resp, points.AssignmentResponse{
			MentorID: a.MentorID,
			MenteeID: a.MenteeID,
		})
	}
	return resp, nil
}

// LogCheckin validates the check-in type case-insensitively and appends a new record.
func (s *pointsService) LogCheckin(ctx context.Context, userID int64, checkinType string) (*points.Checkin, error) {
	ct, err := points.ParseCheckinType(checkinType)
	if err != nil {
		return nil, apperrors.BadRequestError(err, msgInvalidCheckinTyp)
	}

	checkin, err := s.store.CreateCheckin(ctx, userID, ct)
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to create checkin: %w", err), msgCheckinFailed)
	}
	return checkin, nil
}

var _ Store = (pointstore.Store)(nil)
