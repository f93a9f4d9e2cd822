// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
)

// getMonthlyReport returns the stored report for ?year=&month=, generating it
// on first request. Both parameters default to the current month.
func (h *Handler) getMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	year, month, err := h.yearAndMonth(r)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.getMonthlyReport").Send()
		utils.WriteError(w, http.StatusBadRequest, ErrInvalidYearOrMonth.Error())
		return
	}

	report, err := h.services.ReportService.GetOrCreate(r.Context(), userID, year, month)
	if err != nil {
		writeServiceError(w, r, err, "error getting monthly report")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

// generateMonthlyReport regenerates the report for ?yearMonth=YYYY-MM and
// replaces the stored one.
func (h *Handler) generateMonthlyReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	period, err := time.Parse("2006-01", r.URL.Query().Get("yearMonth"))
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.generateMonthlyReport").Send()
		utils.WriteError(w, http.StatusBadRequest, ErrInvalidYearMonth.Error())
		return
	}

	report, err := h.services.ReportService.Generate(r.Context(), userID, period.Year(), int(period.Month()))
	if err != nil {
		writeServiceError(w, r, err, "error generating monthly report")
		return
	}

	utils.WriteJSON(w, report, http.StatusCreated)
}

func (h *Handler) yearAndMonth(r *http.Request) (int, int, error) {
	now := time.Now().In(h.loc)
	year, month := now.Year(), int(now.Month())

	query := r.URL.Query()
	if raw := query.Get("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		year = v
	}
	if raw := query.Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		month = v
	}

	return year, month, nil
}
