package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/validators"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// ReportValidationService rejects report requests for months that are not
// real or have not started yet, before any storage or network call is made.
type ReportValidationService struct {
	inner     ReportService
	validator validators.Validator
}

func NewReportValidationService(loc *time.Location) ReportServiceWrapper {
	return &ReportValidationService{
		validator: validators.NewReportPeriodValidator(loc),
	}
}

func (v *ReportValidationService) GetOrCreate(ctx context.Context, userID int64, year, month int) (models.MonthlyReport, error) {
	if err := v.validate(ctx, userID, year, month); err != nil {
		return models.MonthlyReport{}, err
	}
	return v.inner.GetOrCreate(ctx, userID, year, month)
}

func (v *ReportValidationService) Generate(ctx context.Context, userID int64, year, month int) (models.MonthlyReport, error) {
	if err := v.validate(ctx, userID, year, month); err != nil {
		return models.MonthlyReport{}, err
	}
	return v.inner.Generate(ctx, userID, year, month)
}

func (v *ReportValidationService) Wrap(inner ReportService) ReportService {
	v.inner = inner
	return v
}

func (v *ReportValidationService) validate(ctx context.Context, userID int64, year, month int) error {
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	if err := v.validator.Validate(ctx, models.ReportPeriod{Year: year, Month: month}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
