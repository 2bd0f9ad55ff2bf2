package attendance

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	var checkInValid, checkOutValid bool
	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, checkInValid = validator.IsValidDateTime(*r.CheckIn); !checkInValid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, checkOutValid = validator.IsValidDateTime(*r.CheckOut); !checkOutValid {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 timestamp",
			})
		}
	}

	if checkInValid && checkOutValid {
		checkIn, _ := validator.IsValidDateTime(*r.CheckIn)
		checkOut, _ := validator.IsValidDateTime(*r.CheckOut)
		if checkOut.Before(checkIn) {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must not be before check_in",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceView struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	WorkHours    float64 `json:"work_hours"`
	ExtraHours   float64 `json:"extra_hours"`
	CreatedAt    string  `json:"created_at"`
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *string `json:"month,omitempty"` // YYYY-MM
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && *f.Month != "" && !validator.IsValidMonth(*f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
