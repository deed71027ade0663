package pointstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/mentor-api/pkg/points"
)

type pgStore struct {
	db bun.IDB
}

// NewStore creates a new postgres implementation of the points store
func NewStore(db bun.IDB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) AddPoints(ctx context.Context, userID, delta int64) (int64, error) {
	dao := &UserPointsDao{UserID: userID, Points: delta}

	err := s.db.NewInsert().
		Model(dao).
		Value("last_updated", "NOW()").
		On("CONFLICT (user_id) DO UPDATE").
		Set("points = ?TableAlias.points + EXCLUDED.points").
		Set("last_updated = NOW()").
		Returning("points").
		Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to add points: %w", err)
	}

	return dao.Points, nil
}

func (s *pgStore) SetPoints(ctx context.Context, userID, value int64) error {
	dao := &UserPointsDao{UserID: userID, Points: value}

	_, err := s.db.NewInsert().
		Model(dao).
		Value("last_updated", "NOW()").
		On("CONFLICT (user_id) DO UPDATE").
		Set("points = EXCLUDED.points").
		Set("last_updated = NOW()").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set points: %w", err)
	}

	return nil
}

func (s *pgStore) GetBalance(ctx context.Context, userID int64) (*points.Balance, error) {
	dao := new(UserPointsDao)

	err := s.db.NewSelect().
		Model(dao).
		Column("user_id", "points", "last_updated").
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &points.Balance{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get points: %w", err)
	}

	return toBalance(dao), nil
}

func (s *pgStore) AssignmentExists(ctx context.Context, mentorID, menteeID int64) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*MentorAssignmentDao)(nil)).
		Where("mentor_id = ?", mentorID).
		Where("mentee_id = ?", menteeID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check mentor assignment: %w", err)
	}
	return exists, nil
}

func (s *pgStore) CreateAssignment(ctx context.Context, mentorID, menteeID int64) error {
	dao := &MentorAssignmentDao{MentorID: mentorID, MenteeID: menteeID}

	_, err := s.db.NewInsert().
		Model(dao).
		Value("assigned_at", "NOW()").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return fmt.Errorf("%w: mentor %d, mentee %d", ErrAssignmentExists, mentorID, menteeID)
		}
		return fmt.Errorf("failed to create mentor assignment: %w", err)
	}

	return nil
}

func (s *pgStore) DeleteAssignment(ctx context.Context, mentorID, menteeID int64) error {
	_, err := s.db.NewDelete().
		Model((*MentorAssignmentDao)(nil)).
		Where("mentor_id = ?", mentorID).
		Where("mentee_id = ?", menteeID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete mentor assignment: %w", err)
	}
	return nil
}

func (s *pgStore) ListAssignments(ctx context.Context) ([]*points.Assignment, error) {
	var daos []MentorAssignmentDao
	err := s.db.NewSelect().Model(&daos).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentor assignments: %w", err)
	}

	assignments := make([]*points.Assignment, len(daos))
	for i := range daos {
		assignments[i] = toAssignment(&daos[i])
	}
	return assignments, nil
}

func (s *pgStore) CreateCheckin(ctx context.Context, userID int64, checkinType points.CheckinType) (*points.Checkin, error) {
	dao := &DailyCheckinDao{UserID: userID, CheckinType: string(checkinType)}

	err := s.db.NewInsert().
		Model(dao).
		Returning("id, created_at").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to log checkin: %w", err)
	}

	return toCheckin(dao), nil
}
