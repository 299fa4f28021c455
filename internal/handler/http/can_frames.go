package http

import (
	"net/http"

	"github.com/solarpanel/tracker-api/internal/app"
	"github.com/solarpanel/tracker-api/internal/utils"
	"github.com/solarpanel/tracker-api/models"
)

const (
	msgDataNotFound     = "Data not found"
	msgDataNotProvided  = "Data not provided"
	msgDataCreated      = "Data created"
	msgDataCreateError  = "Error creating data"
	msgDataIDRequired   = "ID and required data"
	msgDataUpdated      = "Updated data"
	msgDataUpdateError  = "Error updating data"
	msgDataDeleteNoID   = "ID required to delete"
	msgDataRemoved      = "Data removed"
	msgDataDeleteError  = "Error deleting data"
	msgInvalidDateRange = "Invalid date range"
)

func (h *Handler) canFrames(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	switch r.Method {
	case http.MethodGet:
		if req.hasID() {
			h.getCanFrame(w, r, req)
			return
		}
		h.listCanFrames(w, r, req)
	case http.MethodPost:
		h.createCanFrame(w, r, req)
	case http.MethodPut:
		h.updateCanFrame(w, r, req)
	case http.MethodDelete:
		h.deleteCanFrame(w, r, req)
	default:
		h.methodNotAllowed(w, r)
	}
}

func (h *Handler) getCanFrame(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	frame, err := h.services.CanFrameService.Get(r.Context(), req.id)
	if err != nil {
		writeError(w, r, err, statusMessages{http.StatusNotFound: msgDataNotFound})
		return
	}

	utils.WriteJSON(w, frame, http.StatusOK)
}

func (h *Handler) listCanFrames(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	ctx := r.Context()

	filter, err := h.services.CanFrameService.ParseFilter(ctx, req.query)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	frames, err := h.services.CanFrameService.List(ctx, filter)
	if err != nil {
		writeError(w, r, err, statusMessages{
			http.StatusNotFound:   msgDataNotFound,
			http.StatusBadRequest: msgInvalidDateRange,
		})
		return
	}

	utils.WriteJSON(w, frames, http.StatusOK)
}

func (h *Handler) createCanFrame(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	if !req.hasBody() {
		writeMessage(w, msgDataNotProvided, http.StatusBadRequest)
		return
	}

	var input models.CanFrameInput
	if err := req.decode(&input); err != nil {
		logDecodeError(r, err)
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	id, err := h.services.CanFrameService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err, statusMessages{
			http.StatusBadRequest:          app.MsgInvalidDataProvided,
			http.StatusInternalServerError: msgDataCreateError,
		})
		return
	}

	utils.WriteJSON(w, models.IDResponse{Message: msgDataCreated, ID: id}, http.StatusCreated)
}

func (h *Handler) updateCanFrame(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	if !req.hasID() || !req.hasBody() {
		writeMessage(w, msgDataIDRequired, http.StatusBadRequest)
		return
	}

	var input models.CanFrameInput
	if err := req.decode(&input); err != nil {
		logDecodeError(r, err)
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.CanFrameService.Update(r.Context(), req.id, input); err != nil {
		writeError(w, r, err, statusMessages{
			http.StatusBadRequest:          app.MsgInvalidDataProvided,
			http.StatusNotFound:            msgDataNotFound,
			http.StatusInternalServerError: msgDataUpdateError,
		})
		return
	}

	utils.WriteJSON(w, models.IDResponse{Message: msgDataUpdated, ID: req.id}, http.StatusOK)
}

func (h *Handler) deleteCanFrame(w http.ResponseWriter, r *http.Request, req resourceRequest) {
	if !req.hasID() {
		writeMessage(w, msgDataDeleteNoID, http.StatusBadRequest)
		return
	}

	if err := h.services.CanFrameService.Delete(r.Context(), req.id); err != nil {
		writeError(w, r, err, statusMessages{
			http.StatusNotFound:            msgDataNotFound,
			http.StatusInternalServerError: msgDataDeleteError,
		})
		return
	}

	utils.WriteJSON(w, models.IDResponse{Message: msgDataRemoved, ID: req.id}, http.StatusOK)
}
