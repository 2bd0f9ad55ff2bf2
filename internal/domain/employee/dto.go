package employee

import (
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	Email             string           `json:"email"`
	Mobile            *string          `json:"mobile,omitempty"`
	JobPosition       *string          `json:"job_position,omitempty"`
	Department        *string          `json:"department,omitempty"`
	Manager           *string          `json:"manager,omitempty"`
	Location          *string          `json:"location,omitempty"`
	DateOfBirth       *string          `json:"date_of_birth,omitempty"`
	Address           *string          `json:"address,omitempty"`
	Nationality       *string          `json:"nationality,omitempty"`
	PersonalEmail     *string          `json:"personal_email,omitempty"`
	Gender            *string          `json:"gender,omitempty"`
	MaritalStatus     *string          `json:"marital_status,omitempty"`
	DateOfJoining     string           `json:"date_of_joining"`
	Role              string           `json:"role,omitempty"`
	MonthlyWage       *decimal.Decimal `json:"monthly_wage,omitempty"`
	BaseSalary        *decimal.Decimal `json:"base_salary,omitempty"`
	HRA               *decimal.Decimal `json:"hra,omitempty"`
	StandardAllowance *decimal.Decimal `json:"standard_allowance,omitempty"`
	PerformanceBonus  *decimal.Decimal `json:"performance_bonus,omitempty"`
	TravelAllowance   *decimal.Decimal `json:"travel_allowance,omitempty"`
	PFEmployeePercent *decimal.Decimal `json:"pf_employee_percent,omitempty"`
	PFEmployerPercent *decimal.Decimal `json:"pf_employer_percent,omitempty"`
	TaxDeductions     *decimal.Decimal `json:"tax_deductions,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	} else if len([]rune(r.FirstName)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must be at least 2 characters",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	} else if len([]rune(r.LastName)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must be at least 2 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining is required",
		})
	} else if _, valid := validator.IsValidDate(r.DateOfJoining); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, valid := validator.IsValidDate(*r.DateOfBirth); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if r.PersonalEmail != nil && *r.PersonalEmail != "" && !validator.IsValidEmail(*r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_email",
			Message: "personal_email must be a valid email address",
		})
	}

	if r.Role != "" {
		validRoles := []string{string(RoleAdmin), string(RoleHR), string(RoleEmployee)}
		if !validator.IsInSlice(r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: admin, hr, employee",
			})
		}
	}

	errs = append(errs, validateNonNegative("monthly_wage", r.MonthlyWage)...)
	errs = append(errs, validateNonNegative("base_salary", r.BaseSalary)...)
	errs = append(errs, validateNonNegative("hra", r.HRA)...)
	errs = append(errs, validateNonNegative("standard_allowance", r.StandardAllowance)...)
	errs = append(errs, validateNonNegative("performance_bonus", r.PerformanceBonus)...)
	errs = append(errs, validateNonNegative("travel_allowance", r.TravelAllowance)...)
	errs = append(errs, validateNonNegative("pf_employee_percent", r.PFEmployeePercent)...)
	errs = append(errs, validateNonNegative("pf_employer_percent", r.PFEmployerPercent)...)
	errs = append(errs, validateNonNegative("tax_deductions", r.TaxDeductions)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateNonNegative(field string, value *decimal.Decimal) validator.ValidationErrors {
	if value != nil && value.IsNegative() {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " must not be negative",
		}}
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FirstName         *string          `json:"first_name,omitempty"`
	LastName          *string          `json:"last_name,omitempty"`
	Email             *string          `json:"email,omitempty"`
	Mobile            *string          `json:"mobile,omitempty"`
	JobPosition       *string          `json:"job_position,omitempty"`
	Department        *string          `json:"department,omitempty"`
	Manager           *string          `json:"manager,omitempty"`
	Location          *string          `json:"location,omitempty"`
	DateOfBirth       *string          `json:"date_of_birth,omitempty"`
	Address           *string          `json:"address,omitempty"`
	Nationality       *string          `json:"nationality,omitempty"`
	PersonalEmail     *string          `json:"personal_email,omitempty"`
	Gender            *string          `json:"gender,omitempty"`
	MaritalStatus     *string          `json:"marital_status,omitempty"`
	DateOfJoining     *string          `json:"date_of_joining,omitempty"`
	Role              *string          `json:"role,omitempty"`
	ProfileImage      *string          `json:"profile_image,omitempty"`
	IsActive          *bool            `json:"is_active,omitempty"`
	MonthlyWage       *decimal.Decimal `json:"monthly_wage,omitempty"`
	BaseSalary        *decimal.Decimal `json:"base_salary,omitempty"`
	HRA               *decimal.Decimal `json:"hra,omitempty"`
	StandardAllowance *decimal.Decimal `json:"standard_allowance,omitempty"`
	PerformanceBonus  *decimal.Decimal `json:"performance_bonus,omitempty"`
	TravelAllowance   *decimal.Decimal `json:"travel_allowance,omitempty"`
	PFEmployeePercent *decimal.Decimal `json:"pf_employee_percent,omitempty"`
	PFEmployerPercent *decimal.Decimal `json:"pf_employer_percent,omitempty"`
	TaxDeductions     *decimal.Decimal `json:"tax_deductions,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && len([]rune(*r.FirstName)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must be at least 2 characters",
		})
	}

	if r.LastName != nil && len([]rune(*r.LastName)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must be at least 2 characters",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.PersonalEmail != nil && *r.PersonalEmail != "" && !validator.IsValidEmail(*r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_email",
			Message: "personal_email must be a valid email address",
		})
	}

	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, valid := validator.IsValidDate(*r.DateOfBirth); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}

	if r.DateOfJoining != nil {
		if _, valid := validator.IsValidDate(*r.DateOfJoining); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_joining",
				Message: "date_of_joining must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Role != nil {
		validRoles := []string{string(RoleAdmin), string(RoleHR), string(RoleEmployee)}
		if !validator.IsInSlice(*r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: admin, hr, employee",
			})
		}
	}

	errs = append(errs, validateNonNegative("monthly_wage", r.MonthlyWage)...)
	errs = append(errs, validateNonNegative("base_salary", r.BaseSalary)...)
	errs = append(errs, validateNonNegative("hra", r.HRA)...)
	errs = append(errs, validateNonNegative("standard_allowance", r.StandardAllowance)...)
	errs = append(errs, validateNonNegative("performance_bonus", r.PerformanceBonus)...)
	errs = append(errs, validateNonNegative("travel_allowance", r.TravelAllowance)...)
	errs = append(errs, validateNonNegative("pf_employee_percent", r.PFEmployeePercent)...)
	errs = append(errs, validateNonNegative("pf_employer_percent", r.PFEmployerPercent)...)
	errs = append(errs, validateNonNegative("tax_deductions", r.TaxDeductions)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ProvidedFields lists the JSON field names present in the request, so
// the access policy can be checked against exactly what the caller sent.
func (r *UpdateEmployeeRequest) ProvidedFields() []string {
	var fields []string

	if r.FirstName != nil {
		fields = append(fields, "first_name")
	}
	if r.LastName != nil {
		fields = append(fields, "last_name")
	}
	if r.Email != nil {
		fields = append(fields, "email")
	}
	if r.Mobile != nil {
		fields = append(fields, "mobile")
	}
	if r.JobPosition != nil {
		fields = append(fields, "job_position")
	}
	if r.Department != nil {
		fields = append(fields, "department")
	}
	if r.Manager != nil {
		fields = append(fields, "manager")
	}
	if r.Location != nil {
		fields = append(fields, "location")
	}
	if r.DateOfBirth != nil {
		fields = append(fields, "date_of_birth")
	}
	if r.Address != nil {
		fields = append(fields, "address")
	}
	if r.Nationality != nil {
		fields = append(fields, "nationality")
	}
	if r.PersonalEmail != nil {
		fields = append(fields, "personal_email")
	}
	if r.Gender != nil {
		fields = append(fields, "gender")
	}
	if r.MaritalStatus != nil {
		fields = append(fields, "marital_status")
	}
	if r.DateOfJoining != nil {
		fields = append(fields, "date_of_joining")
	}
	if r.Role != nil {
		fields = append(fields, "role")
	}
	if r.ProfileImage != nil {
		fields = append(fields, "profile_image")
	}
	if r.IsActive != nil {
		fields = append(fields, "is_active")
	}
	if r.MonthlyWage != nil {
		fields = append(fields, "monthly_wage")
	}
	if r.BaseSalary != nil {
		fields = append(fields, "base_salary")
	}
	if r.HRA != nil {
		fields = append(fields, "hra")
	}
	if r.StandardAllowance != nil {
		fields = append(fields, "standard_allowance")
	}
	if r.PerformanceBonus != nil {
		fields = append(fields, "performance_bonus")
	}
	if r.TravelAllowance != nil {
		fields = append(fields, "travel_allowance")
	}
	if r.PFEmployeePercent != nil {
		fields = append(fields, "pf_employee_percent")
	}
	if r.PFEmployerPercent != nil {
		fields = append(fields, "pf_employer_percent")
	}
	if r.TaxDeductions != nil {
		fields = append(fields, "tax_deductions")
	}

	return fields
}

type PreviewLoginIDRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Year      int    `json:"year"`
}

func (r *PreviewLoginIDRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	} else if len([]rune(r.FirstName)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must be at least 2 characters",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	} else if len([]rune(r.LastName)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must be at least 2 characters",
		})
	}

	if r.Year < 1000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit year",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginIDPreview struct {
	LoginID string `json:"login_id"`
}

// EmployeeView is the role-scoped projection of an employee record.
// Compensation fields are nil, and omitted from the JSON, when the
// caller is not allowed to see them.
type EmployeeView struct {
	ID                 string           `json:"id"`
	LoginID            string           `json:"login_id"`
	FirstName          string           `json:"first_name"`
	LastName           string           `json:"last_name"`
	Email              string           `json:"email"`
	Mobile             *string          `json:"mobile,omitempty"`
	JobPosition        *string          `json:"job_position,omitempty"`
	Department         *string          `json:"department,omitempty"`
	Manager            *string          `json:"manager,omitempty"`
	Location           *string          `json:"location,omitempty"`
	DateOfBirth        *string          `json:"date_of_birth,omitempty"`
	Address            *string          `json:"address,omitempty"`
	Nationality        *string          `json:"nationality,omitempty"`
	PersonalEmail      *string          `json:"personal_email,omitempty"`
	Gender             *string          `json:"gender,omitempty"`
	MaritalStatus      *string          `json:"marital_status,omitempty"`
	DateOfJoining      string           `json:"date_of_joining"`
	Role               string           `json:"role"`
	Status             string           `json:"status"`
	ProfileImage       *string          `json:"profile_image,omitempty"`
	IsActive           bool             `json:"is_active"`
	MustChangePassword bool             `json:"must_change_password"`
	MonthlyWage        *decimal.Decimal `json:"monthly_wage,omitempty"`
	YearlyWage         *decimal.Decimal `json:"yearly_wage,omitempty"`
	BaseSalary         *decimal.Decimal `json:"base_salary,omitempty"`
	HRA                *decimal.Decimal `json:"hra,omitempty"`
	StandardAllowance  *decimal.Decimal `json:"standard_allowance,omitempty"`
	PerformanceBonus   *decimal.Decimal `json:"performance_bonus,omitempty"`
	TravelAllowance    *decimal.Decimal `json:"travel_allowance,omitempty"`
	PFEmployeePercent  *decimal.Decimal `json:"pf_employee_percent,omitempty"`
	PFEmployerPercent  *decimal.Decimal `json:"pf_employer_percent,omitempty"`
	TaxDeductions      *decimal.Decimal `json:"tax_deductions,omitempty"`
	CreatedAt          string           `json:"created_at"`
}

// NewEmployeeView projects an employee record for a caller, attaching
// compensation fields only when the caller may see them.
func NewEmployeeView(emp Employee, includeCompensation bool) EmployeeView {
	view := EmployeeView{
		ID:                 emp.ID,
		LoginID:            emp.LoginID,
		FirstName:          emp.FirstName,
		LastName:           emp.LastName,
		Email:              emp.Email,
		Mobile:             emp.Mobile,
		JobPosition:        emp.JobPosition,
		Department:         emp.Department,
		Manager:            emp.Manager,
		Location:           emp.Location,
		DateOfBirth:        formatDatePtr(emp.DateOfBirth),
		Address:            emp.Address,
		Nationality:        emp.Nationality,
		PersonalEmail:      emp.PersonalEmail,
		Gender:             emp.Gender,
		MaritalStatus:      emp.MaritalStatus,
		DateOfJoining:      emp.DateOfJoining.Format("2006-01-02"),
		Role:               string(emp.Role),
		Status:             string(emp.Status),
		ProfileImage:       emp.ProfileImage,
		IsActive:           emp.IsActive,
		MustChangePassword: emp.MustChangePassword,
		CreatedAt:          emp.CreatedAt.Format(time.RFC3339),
	}

	if includeCompensation {
		view.MonthlyWage = &emp.MonthlyWage
		view.YearlyWage = &emp.YearlyWage
		view.BaseSalary = &emp.BaseSalary
		view.HRA = &emp.HRA
		view.StandardAllowance = &emp.StandardAllowance
		view.PerformanceBonus = &emp.PerformanceBonus
		view.TravelAllowance = &emp.TravelAllowance
		view.PFEmployeePercent = &emp.PFEmployeePercent
		view.PFEmployerPercent = &emp.PFEmployerPercent
		view.TaxDeductions = &emp.TaxDeductions
	}

	return view
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
