package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/mentor-api/pkg/app/errors"
	"github.com/chainsafe/mentor-api/pkg/points"
)

const serviceName = "PointsService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the points Service.
// It logs method exit with duration, and errors with their full cause chain.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// logResult logs the outcome of a call. Client errors are logged at warn level.
func (ls *logService) logResult(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	}, fields...)

	switch {
	case err == nil:
		ls.logger.Info(method+" completed", fields...)
	case apperrors.IsInternalError(err):
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
	default:
		ls.logger.Warn(method+" rejected", append(fields, zap.Error(err))...)
	}
}

func (ls *logService) AddPoints(ctx context.Context, userID, delta int64) (resp *points.AddPointsResponse, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{zap.Int64("user_id", userID), zap.Int64("delta", delta)}
		if err == nil {
			fields = append(fields, zap.Int64("new_total", resp.NewTotal))
		}
		ls.logResult("AddPoints", start, err, fields...)
	}(time.Now())

	return ls.svc.AddPoints(ctx, userID, delta)
}

func (ls *logService) GetPoints(ctx context.Context, userID int64) (resp *points.PointsResponse, err error) {
	defer func(start time.Time) {
		ls.logResult("GetPoints", start, err, zap.Int64("user_id", userID))
	}(time.Now())

	return ls.svc.GetPoints(ctx, userID)
}

func (ls *logService) SetPoints(ctx context.Context, userID, value int64) (resp *points.MessageResponse, err error) {
	defer func(start time.Time) {
		ls.logResult("SetPoints", start, err, zap.Int64("user_id", userID), zap.Int64("points", value))
	}(time.Now())

	return ls.svc.SetPoints(ctx, userID, value)
}

func (ls *logService) ToggleMentorAssignment(ctx context.Context, mentorID, menteeID int64) (action points.AssignmentAction, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{zap.Int64("mentor_id", mentorID), zap.Int64("mentee_id", menteeID)}
		if err == nil {
			fields = append(fields, zap.Stringer("action", action))
		}
		ls.logResult("ToggleMentorAssignment", start, err, fields...)
	}(time.Now())

	return ls.svc.ToggleMentorAssignment(ctx, mentorID, menteeID)
}

func (ls *logService) ListMentorAssignments(ctx context.Context) (resp []points.AssignmentResponse, err error) {
	defer func(start time.Time) {
		ls.logResult("ListMentorAssignments", start, err, zap.Int("count", len(resp)))
	}(time.Now())

	return ls.svc.ListMentorAssignments(ctx)
}

func (ls *logService) LogCheckin(ctx context.Context, userID int64, checkinType string) (checkin *points.Checkin, err error) {
	defer func(start time.Time) {
		fields := []zap.Field{zap.Int64("user_id", userID), zap.String("checkin_type", checkinType)}
		if err == nil {
			fields = append(fields, zap.Int64("checkin_id", checkin.ID))
		}
		ls.logResult("LogCheckin", start, err, fields...)
	}(time.Now())

	return ls.svc.LogCheckin(ctx, userID, checkinType)
}
