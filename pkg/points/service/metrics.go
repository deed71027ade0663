package service

import (
	"context"
	"time"

	"github.com/chainsafe/mentor-api/internal/metrics"
	apperrors "github.com/chainsafe/mentor-api/pkg/app/errors"
	"github.com/chainsafe/mentor-api/pkg/points"
)

type metricsService struct {
	svc Service
}

// NewMetrics creates a decorator that records Prometheus counters and latency per operation.
func NewMetrics(svc Service) Service {
	return &metricsService{svc: svc}
}

func observe(operation string, start time.Time, err error) {
	metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.OperationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case apperrors.IsInternalError(err):
		return "error"
	default:
		return "rejected"
	}
}

func (m *metricsService) AddPoints(ctx context.Context, userID, delta int64) (resp *points.AddPointsResponse, err error) {
	defer func(start time.Time) { observe("add_points", start, err) }(time.Now())
	return m.svc.AddPoints(ctx, userID, delta)
}

func (m *metricsService) GetPoints(ctx context.Context, userID int64) (resp *points.PointsResponse, err error) {
	defer func(start time.Time) { observe("get_points", start, err) }(time.Now())
	return m.svc.GetPoints(ctx, userID)
}

func (m *metricsService) SetPoints(ctx context.Context, userID, value int64) (resp *points.MessageResponse, err error) {
	defer func(start time.Time) { observe("set_points", start, err) }(time.Now())
	return m.svc.SetPoints(ctx, userID, value)
}

func (m *metricsService) ToggleMentorAssignment(ctx context.Context, mentorID, menteeID int64) (action points.AssignmentAction, err error) {
	defer func(start time.Time) {
		observe("toggle_mentor_assignment", start, err)
		if err == nil {
			metrics.AssignmentToggles.WithLabelValues(action.String()).Inc()
		}
	}(time.Now())
	return m.svc.ToggleMentorAssignment(ctx, mentorID, menteeID)
}

func (m *metricsService) ListMentorAssignments(ctx context.Context) (resp []points.AssignmentResponse, err error) {
	defer func(start time.Time) { observe("list_mentor_assignments", start, err) }(time.Now())
	return m.svc.ListMentorAssignments(ctx)
}

func (m *metricsService) LogCheckin(ctx context.Context, userID int64, checkinType string) (checkin *points.Checkin, err error) {
	defer func(start time.Time) {
		observe("log_checkin", start, err)
		if err == nil {
			metrics.CheckinsTotal.WithLabelValues(string(checkin.Type)).Inc()
		}
	}(time.Now())
	return m.svc.LogCheckin(ctx, userID, checkinType)
}
