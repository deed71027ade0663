package pointstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/mentor-api/pkg/points"
)

// UserPointsDao maps directly to the 'user_points' table in PostgreSQL.
type UserPointsDao struct {
	bun.BaseModel `bun:"table:user_points,alias:up"`
	UserID        int64      `bun:"user_id,pk,type:bigint"`
	Points        int64      `bun:"points,notnull,type:integer,default:0"`
	LastUpdated   *time.Time `bun:"last_updated,type:timestamp,default:current_timestamp"`
}

// MentorAssignmentDao maps directly to the 'mentor_assignments' table in PostgreSQL.
type MentorAssignmentDao struct {
	bun.BaseModel `bun:"table:mentor_assignments,alias:ma"`
	MentorID      int64     `bun:"mentor_id,pk,type:bigint"`
	MenteeID      int64     `bun:"mentee_id,pk,type:bigint"`
	AssignedAt    time.Time `bun:"assigned_at,nullzero,type:timestamp,default:current_timestamp"`
}

// DailyCheckinDao maps directly to the 'daily_checkins' table in PostgreSQL.
type DailyCheckinDao struct {
	bun.BaseModel `bun:"table:daily_checkins,alias:dc"`
	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        int64     `bun:"user_id,notnull,type:bigint"`
	CheckinType   string    `bun:"checkin_type,notnull,type:varchar(8)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,type:timestamp,default:current_timestamp"`
}

func toBalance(dao *UserPointsDao) *points.Balance {
	return &points.Balance{
		UserID:      dao.UserID,
		Points:      dao.Points,
		LastUpdated: dao.LastUpdated,
	}
}

func toAssignment(dao *MentorAssignmentDao) *points.Assignment {
	return &points.Assignment{
		MentorID:   dao.MentorID,
		MenteeID:   dao.MenteeID,
		AssignedAt: dao.AssignedAt,
	}
}

func toCheckin(dao *DailyCheckinDao) *points.Checkin {
	return &points.Checkin{
		ID:        dao.ID,
		UserID:    dao.UserID,
		Type:      points.CheckinType(dao.CheckinType),
		CreatedAt: dao.CreatedAt,
	}
}
