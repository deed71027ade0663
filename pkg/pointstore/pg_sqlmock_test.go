package pointstore

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/chainsafe/mentor-api/pkg/points"
)

var errConnReset = errors.New("connection reset by peer")

func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := bun.NewDB(sqldb, pgdialect.New())
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return NewStore(db), mock
}

func TestPGStore_AddPoints_SingleUpsertStatement(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO "user_points" AS "up" .+ON CONFLICT \(user_id\) DO UPDATE SET points = "up"\.points \+ EXCLUDED\.points.+RETURNING points`).
		WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(15))

	total, err := s.AddPoints(context.Background(), 42, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
}

func TestPGStore_AddPoints_DBFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "user_points"`)).WillReturnError(errConnReset)

	_, err := s.AddPoints(context.Background(), 42, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, errConnReset)
	assert.Contains(t, err.Error(), "failed to add points")
}

func TestPGStore_SetPoints(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO "user_points" AS "up" .+ON CONFLICT \(user_id\) DO UPDATE SET points = EXCLUDED\.points`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.SetPoints(context.Background(), 42, 0))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "user_points"`)).WillReturnError(errConnReset)
	err := s.SetPoints(context.Background(), 42, 7)
	assert.ErrorIs(t, err, errConnReset)
}

func TestPGStore_GetBalance(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "user_points" AS "up" WHERE (user_id = 42)`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "points", "last_updated"}).AddRow(42, 10, now))

	bal, err := s.GetBalance(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), bal.UserID)
	assert.Equal(t, int64(10), bal.Points)
	require.NotNil(t, bal.LastUpdated)

	// absent row reads as zero
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "user_points"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "points", "last_updated"}))

	bal, err = s.GetBalance(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, &points.Balance{UserID: 7}, bal)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "user_points"`)).WillReturnError(errConnReset)
	_, err = s.GetBalance(ctx, 7)
	assert.ErrorIs(t, err, errConnReset)
}

func TestPGStore_AssignmentExists(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT EXISTS .+FROM "mentor_assignments" AS "ma" WHERE \(mentor_id = 1\) AND \(mentee_id = 2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.AssignmentExists(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(errConnReset)
	_, err = s.AssignmentExists(ctx, 1, 2)
	assert.ErrorIs(t, err, errConnReset)
}

func TestPGStore_CreateAndDeleteAssignment(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "mentor_assignments"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.CreateAssignment(ctx, 1, 2))

	mock.ExpectExec(`DELETE FROM "mentor_assignments" AS "ma" WHERE \(mentor_id = 1\) AND \(mentee_id = 2\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.DeleteAssignment(ctx, 1, 2))

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "mentor_assignments"`)).WillReturnError(errConnReset)
	err := s.CreateAssignment(ctx, 1, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAssignmentExists)
	assert.ErrorIs(t, err, errConnReset)
}

func TestPGStore_ListAssignments(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "mentor_assignments" AS "ma"`)).
		WillReturnRows(sqlmock.NewRows([]string{"mentor_id", "mentee_id", "assigned_at"}).
			AddRow(1, 2, now).
			AddRow(1, 3, now))

	got, err := s.ListAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].MentorID)
	assert.Equal(t, int64(2), got[0].MenteeID)
	assert.Equal(t, int64(3), got[1].MenteeID)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "mentor_assignments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"mentor_id", "mentee_id", "assigned_at"}))
	got, err = s.ListAssignments(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPGStore_CreateCheckin(t *testing.T) {
	s, mock := newMockStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO "daily_checkins" .+'bad'.+RETURNING id, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

	c, err := s.CreateCheckin(ctx, 42, points.CheckinBad)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, int64(42), c.UserID)
	assert.Equal(t, points.CheckinBad, c.Type)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "daily_checkins"`)).WillReturnError(errConnReset)
	_, err = s.CreateCheckin(ctx, 42, points.CheckinGood)
	assert.ErrorIs(t, err, errConnReset)
}
