package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/mentor-api/pkg/app/errors"
	apphttp "github.com/chainsafe/mentor-api/pkg/app/http"
	"github.com/chainsafe/mentor-api/pkg/points"
)

const (
	msgAssigned        = "Mentor assigned successfully"
	msgUnassigned      = "Mentor unassigned successfully"
	msgCheckinLogged   = "Check-in logged successfully"
	msgServiceIsUp     = "Mentor API is running"
	msgInvalidUserPath = "user_id must be an integer"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the points service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/", h.root)
	r.Post("/add_points", apphttp.HandleError(h.addPoints))
	r.Get("/get_points/{user_id}", apphttp.HandleError(h.getPoints))
	r.Post("/set_points", apphttp.HandleError(h.setPoints))
	r.Post("/mentor-assignments", apphttp.HandleError(h.toggleAssignment))
	r.Get("/mentor-assignments", apphttp.HandleError(h.listAssignments))
	r.Post("/log-checkin", apphttp.HandleError(h.logCheckin))
}

// root is a liveness probe that never touches the database.
func (h *HTTP) root(w http.ResponseWriter, _ *http.Request) {
	apphttp.WriteJSON(w, http.StatusOK, &points.MessageResponse{Message: msgServiceIsUp})
}

func (h *HTTP) addPoints(w http.ResponseWriter, r *http.Request) error {
	var req points.PointsRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.AddPoints(r.Context(), *req.UserID, *req.Points)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) getPoints(w http.ResponseWriter, r *http.Request) error {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		return apperrors.BadRequestError(err, msgInvalidUserPath)
	}

	resp, err := h.service.GetPoints(r.Context(), userID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) setPoints(w http.ResponseWriter, r *http.Request) error {
	var req points.PointsRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.SetPoints(r.Context(), *req.UserID, *req.Points)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) toggleAssignment(w http.ResponseWriter, r *http.Request) error {
	var req points.AssignmentRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	action, err := h.service.ToggleMentorAssignment(r.Context(), *req.MentorID, *req.MenteeID)
	if err != nil {
		return err
	}

	msg := msgAssigned
	if action == points.Unassigned {
		msg = msgUnassigned
	}
	apphttp.WriteJSON(w, http.StatusOK, &points.MessageResponse{Message: msg})
	return nil
}

func (h *HTTP) listAssignments(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.ListMentorAssignments(r.Context())
	if err != nil {
		return err
	}
	if resp == nil {
		resp = []points.AssignmentResponse{}
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) logCheckin(w http.ResponseWriter, r *http.Request) error {
	var req points.CheckinRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	if _, err := h.service.LogCheckin(r.Context(), *req.UserID, req.CheckinType); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &points.MessageResponse{Message: msgCheckinLogged})
	return nil
}
