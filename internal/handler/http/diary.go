package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createDiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.DiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createDiary").Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, ErrInvalidJSON.Error())
		return
	}

	entry := models.DiaryEntry{UserID: userID}
	if req.Slot != nil {
		entry.Slot = *req.Slot
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}

	created, err := h.services.DiaryService.CreateEntry(r.Context(), entry)
	if err != nil {
		writeServiceError(w, r, err, "error creating diary entry")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getDiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	entryID, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}

	entry, err := h.services.DiaryService.GetEntry(r.Context(), userID, entryID)
	if err != nil {
		writeServiceError(w, r, err, "error getting diary entry")
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) listDiaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	h.writeDiaryList(w, r, models.DiaryFilter{UserID: userID})
}

func (h *Handler) listDiariesBySlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	slot := models.TimeSlot(chi.URLParam(r, "slot"))
	h.writeDiaryList(w, r, models.DiaryFilter{UserID: userID, Slot: slot})
}

func (h *Handler) listDiariesByPeriod(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	start, errStart := time.Parse(time.RFC3339, query.Get("start"))
	end, errEnd := time.Parse(time.RFC3339, query.Get("end"))
	if errStart != nil || errEnd != nil {
		logger.FromRequest(r).Warn().AnErr("start", errStart).AnErr("end", errEnd).Msg("invalid period")
		utils.WriteError(w, http.StatusBadRequest, ErrInvalidPeriodQuery.Error())
		return
	}

	h.writeDiaryList(w, r, models.DiaryFilter{UserID: userID, Start: start, End: end})
}

func (h *Handler) updateDiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	entryID, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}

	var req models.DiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateDiary").Msg("invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, ErrInvalidJSON.Error())
		return
	}

	updated, err := h.services.DiaryService.UpdateEntry(r.Context(), models.DiaryUpdate{
		ID:      entryID,
		UserID:  userID,
		Slot:    req.Slot,
		Content: req.Content,
	})
	if err != nil {
		writeServiceError(w, r, err, "error updating diary entry")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteDiary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}
	entryID, ok := entryIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.DiaryService.DeleteEntry(r.Context(), userID, entryID); err != nil {
		writeServiceError(w, r, err, "error deleting diary entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeDiaryList(w http.ResponseWriter, r *http.Request, filter models.DiaryFilter) {
	entries, err := h.services.DiaryService.ListEntries(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "error listing diary entries")
		return
	}
	if entries == nil {
		entries = []models.DiaryEntry{}
	}

	utils.WriteJSON(w, models.DiaryListResponse{Diaries: entries, Count: len(entries)}, http.StatusOK)
}

func entryIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || entryID <= 0 {
		utils.WriteError(w, http.StatusBadRequest, ErrInvalidEntryID.Error())
		return 0, false
	}
	return entryID, true
}
