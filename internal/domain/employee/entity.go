package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                 string
	LoginID            string
	PasswordHash       string
	MustChangePassword bool
	IsActive           bool
	FirstName          string
	LastName           string
	Email              string
	Mobile             *string
	JobPosition        *string
	Department         *string
	Manager            *string
	Location           *string
	DateOfBirth        *time.Time
	Address            *string
	Nationality        *string
	PersonalEmail      *string
	Gender             *string
	MaritalStatus      *string
	DateOfJoining      time.Time
	Role               Role
	Status             Status
	ProfileImage       *string
	MonthlyWage        decimal.Decimal
	YearlyWage         decimal.Decimal
	BaseSalary         decimal.Decimal
	HRA                decimal.Decimal
	StandardAllowance  decimal.Decimal
	PerformanceBonus   decimal.Decimal
	TravelAllowance    decimal.Decimal
	PFEmployeePercent  decimal.Decimal
	PFEmployerPercent  decimal.Decimal
	TaxDeductions      decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName returns the display name used on attendance and leave records.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// Status tracks day-to-day presence. It is only moved by side effects:
// recording attendance marks an employee present, approving leave marks
// them on leave. Nothing moves it back automatically.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusOnLeave Status = "leave"
)
