package handlers

import (
	"context"
	"errors"
	"net/http"

	"driver-dispatch-service/internal/apperr"
	"driver-dispatch-service/internal/domain"
)

// AssignmentUsecase is the orchestrator surface the HTTP layer exposes.
type AssignmentUsecase interface {
	RunInitialAssignment(ctx context.Context, appointmentID int64) ([]domain.AssignmentResult, error)
	CreateTaskSequence(ctx context.Context, appointmentID int64) ([]domain.TaskGroup, error)
	Accept(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error)
	Decline(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error)
	Cancel(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error)
	Reconfirm(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error)
	RetrySweep(ctx context.Context, appointmentID int64) ([]domain.AssignmentResult, error)
	SweepAll(ctx context.Context) ([]domain.AssignmentResult, error)
}

// AssignmentHandler serves the assignment action endpoints.
type AssignmentHandler struct{ uc AssignmentUsecase }

// NewAssignmentHandler wires an AssignmentUsecase into HTTP handlers.
func NewAssignmentHandler(uc AssignmentUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

type resultsResponse struct {
	Message string                    `json:"message"`
	Results []domain.AssignmentResult `json:"results"`
}

// writeResults maps unit-level outcomes onto 200 (all fine) or 207
// (some units failed while others proceeded).
func writeResults(w http.ResponseWriter, r *http.Request, results []domain.AssignmentResult) {
	failed := 0
	for _, res := range results {
		if res.Status.Failed() {
			failed++
		}
	}

	status := http.StatusOK
	msg := "ok"
	switch {
	case failed == 0:
	case failed == len(results):
		status = http.StatusInternalServerError
		msg = "all units failed"
	default:
		status = http.StatusMultiStatus
		msg = "some units failed"
	}
	writeJSON(w, r, status, resultsResponse{Message: msg, Results: results})
}

func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalid):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusTooManyRequests, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Assign handles POST /appointments/{id}/assign.
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	results, err := h.uc.RunInitialAssignment(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeResults(w, r, results)
}

// CreateTasks handles POST /appointments/{id}/tasks.
func (h *AssignmentHandler) CreateTasks(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	groups, err := h.uc.CreateTaskSequence(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]any{
		"message": "tasks created",
		"units":   len(groups),
	})
}

type driverRequest struct {
	DriverID int64 `json:"driver_id"`
}

type driverAction func(ctx context.Context, appointmentID, driverID int64) ([]domain.AssignmentResult, error)

func (h *AssignmentHandler) driverAction(w http.ResponseWriter, r *http.Request, action driverAction) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req driverRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	if req.DriverID <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid driver_id")
		return
	}

	results, err := action(r.Context(), id, req.DriverID)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeResults(w, r, results)
}

// Accept handles POST /appointments/{id}/accept.
func (h *AssignmentHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.driverAction(w, r, h.uc.Accept)
}

// Decline handles POST /appointments/{id}/decline.
func (h *AssignmentHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.driverAction(w, r, h.uc.Decline)
}

// Cancel handles POST /appointments/{id}/cancel.
func (h *AssignmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.driverAction(w, r, h.uc.Cancel)
}

// Reconfirm handles POST /appointments/{id}/reconfirm.
func (h *AssignmentHandler) Reconfirm(w http.ResponseWriter, r *http.Request) {
	h.driverAction(w, r, h.uc.Reconfirm)
}

// Retry handles POST /appointments/{id}/retry.
func (h *AssignmentHandler) Retry(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}

	results, err := h.uc.RetrySweep(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeResults(w, r, results)
}

// SweepAll handles POST /assignments/retry-sweep.
func (h *AssignmentHandler) SweepAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.uc.SweepAll(r.Context())
	if err != nil {
		writeUsecaseError(w, r, err)
		return
	}
	writeResults(w, r, results)
}
