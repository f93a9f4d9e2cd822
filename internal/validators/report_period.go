package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/models"
)

const (
	FieldYear   = "year"
	FieldMonth  = "month"
	FieldPassed = "passed"
)

// ReportPeriodValidator checks that a models.ReportPeriod names a real
// calendar month that is not in the future relative to now in loc.
type ReportPeriodValidator struct {
	loc *time.Location
	now func() time.Time
}

// NewReportPeriodValidator returns a Validator for report periods. A nil loc
// means UTC.
func NewReportPeriodValidator(loc *time.Location) Validator {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportPeriodValidator{loc: loc, now: time.Now}
}

func (v *ReportPeriodValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReportPeriod:
		return v.validatePeriod(value, fields...)
	case *models.ReportPeriod:
		return v.validatePeriod(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ReportPeriodValidator) validatePeriod(period models.ReportPeriod, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldYear, FieldMonth, FieldPassed}
	}

	for _, f := range fields {
		switch f {
		case FieldYear:
			if period.Year < 1 || period.Year > 9999 {
				return fmt.Errorf("%w: %d", ErrInvalidYear, period.Year)
			}
		case FieldMonth:
			if period.Month < 1 || period.Month > 12 {
				return fmt.Errorf("%w: got %d", ErrInvalidMonth, period.Month)
			}
		case FieldPassed:
			now := v.now().In(v.loc)
			if period.Year > now.Year() || (period.Year == now.Year() && period.Month > int(now.Month())) {
				return fmt.Errorf("%w: %04d-%02d", ErrFuturePeriod, period.Year, period.Month)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
