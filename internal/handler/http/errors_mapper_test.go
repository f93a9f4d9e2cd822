package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{fmt.Errorf("%w: emotion analysis: boom", service.ErrReportGenerationFailed), http.StatusBadRequest},
		{service.ErrWrongCredentials, http.StatusUnauthorized},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{fmt.Errorf("%w: %w", service.ErrUserNotFound, store.ErrNoUserWasFound), http.StatusNotFound},
		{service.ErrNoDiaryEntries, http.StatusNotFound},
		{store.ErrDiaryEntryNotFound, http.StatusNotFound},
		{store.ErrReportNotFound, http.StatusNotFound},
		{store.ErrLoginAlreadyExists, http.StatusConflict},
		{fmt.Errorf("%w: %w", store.ErrExecutingQuery, errors.New("eof")), http.StatusInternalServerError},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteServiceError_HidesServerErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeServiceError(rec, req, errors.New("dsn=postgres://secret"), "boom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestWriteServiceError_ExposesClientErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeServiceError(rec, req, service.ErrNoDiaryEntries, "boom")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrNoDiaryEntries.Error())
}
