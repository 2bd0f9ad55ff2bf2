// Package fixtures holds the demo dataset installed by cmd/seed. IDs are
// fixed so repeated runs stay idempotent and records can reference each
// other.
package fixtures

import (
	"time"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

const (
	AdminID = "0d9f2f66-5a4e-4c8a-9f01-2f6f6f1a0001"
	AliceID = "0d9f2f66-5a4e-4c8a-9f01-2f6f6f1a0002"
	BobID   = "0d9f2f66-5a4e-4c8a-9f01-2f6f6f1a0003"
	CarolID = "0d9f2f66-5a4e-4c8a-9f01-2f6f6f1a0004"
)

// SeedEmployee pairs an employee record with its initial plaintext
// password; the seeder hashes it before writing.
type SeedEmployee struct {
	employee.Employee
	Password string
}

func Employees() []SeedEmployee {
	return []SeedEmployee{
		{
			Employee: employee.Employee{
				ID:                 AdminID,
				LoginID:            "DFJODO20220001",
				MustChangePassword: false,
				IsActive:           true,
				FirstName:          "John",
				LastName:           "Doe",
				Email:              "john.doe@dayflow.com",
				Mobile:             ptr("+1234567890"),
				JobPosition:        ptr("HR Manager"),
				Department:         ptr("Human Resources"),
				Location:           ptr("New York"),
				DateOfBirth:        datePtr(1985, 5, 15),
				Address:            ptr("123 Main St, New York, NY"),
				Nationality:        ptr("USA"),
				PersonalEmail:      ptr("john.doe@gmail.com"),
				Gender:             ptr("Male"),
				MaritalStatus:      ptr("Married"),
				DateOfJoining:      date(2022, 1, 15),
				Role:               employee.RoleAdmin,
				Status:             employee.StatusPresent,
				MonthlyWage:        decimal.NewFromInt(80000),
				YearlyWage:         decimal.NewFromInt(960000),
				BaseSalary:         decimal.NewFromInt(60000),
				HRA:                decimal.NewFromInt(10000),
				StandardAllowance:  decimal.NewFromInt(5000),
				PerformanceBonus:   decimal.NewFromInt(3000),
				TravelAllowance:    decimal.NewFromInt(2000),
				PFEmployeePercent:  decimal.NewFromInt(12),
				PFEmployerPercent:  decimal.NewFromInt(12),
				TaxDeductions:      decimal.NewFromInt(15000),
			},
			Password: "admin123",
		},
		{
			Employee: employee.Employee{
				ID:                 AliceID,
				LoginID:            "DFALSM20230001",
				MustChangePassword: true,
				IsActive:           true,
				FirstName:          "Alice",
				LastName:           "Smith",
				Email:              "alice.smith@dayflow.com",
				Mobile:             ptr("+1234567891"),
				JobPosition:        ptr("Software Engineer"),
				Department:         ptr("Engineering"),
				Manager:            ptr("John Doe"),
				Location:           ptr("New York"),
				DateOfBirth:        datePtr(1990, 8, 20),
				Address:            ptr("456 Tech Ave, New York, NY"),
				Nationality:        ptr("USA"),
				PersonalEmail:      ptr("alice.smith@gmail.com"),
				Gender:             ptr("Female"),
				MaritalStatus:      ptr("Single"),
				DateOfJoining:      date(2023, 3, 10),
				Role:               employee.RoleEmployee,
				Status:             employee.StatusPresent,
				MonthlyWage:        decimal.NewFromInt(65000),
				YearlyWage:         decimal.NewFromInt(780000),
				BaseSalary:         decimal.NewFromInt(50000),
				HRA:                decimal.NewFromInt(8000),
				StandardAllowance:  decimal.NewFromInt(4000),
				PerformanceBonus:   decimal.NewFromInt(2000),
				TravelAllowance:    decimal.NewFromInt(1000),
				PFEmployeePercent:  decimal.NewFromInt(12),
				PFEmployerPercent:  decimal.NewFromInt(12),
				TaxDeductions:      decimal.NewFromInt(12000),
			},
			Password: "Dayflow@123",
		},
		{
			Employee: employee.Employee{
				ID:                 BobID,
				LoginID:            "DFBOJO20230002",
				MustChangePassword: true,
				IsActive:           true,
				FirstName:          "Bob",
				LastName:           "Johnson",
				Email:              "bob.johnson@dayflow.com",
				Mobile:             ptr("+1234567892"),
				JobPosition:        ptr("UI/UX Designer"),
				Department:         ptr("Design"),
				Manager:            ptr("John Doe"),
				Location:           ptr("San Francisco"),
				DateOfBirth:        datePtr(1992, 3, 12),
				Address:            ptr("789 Design Blvd, SF, CA"),
				Nationality:        ptr("USA"),
				PersonalEmail:      ptr("bob.johnson@gmail.com"),
				Gender:             ptr("Male"),
				MaritalStatus:      ptr("Single"),
				DateOfJoining:      date(2023, 6, 1),
				Role:               employee.RoleEmployee,
				Status:             employee.StatusOnLeave,
				MonthlyWage:        decimal.NewFromInt(55000),
				YearlyWage:         decimal.NewFromInt(660000),
				BaseSalary:         decimal.NewFromInt(45000),
				HRA:                decimal.NewFromInt(5000),
				StandardAllowance:  decimal.NewFromInt(3000),
				PerformanceBonus:   decimal.NewFromInt(1500),
				TravelAllowance:    decimal.NewFromInt(500),
				PFEmployeePercent:  decimal.NewFromInt(12),
				PFEmployerPercent:  decimal.NewFromInt(12),
				TaxDeductions:      decimal.NewFromInt(10000),
			},
			Password: "Dayflow@123",
		},
		{
			Employee: employee.Employee{
				ID:                 CarolID,
				LoginID:            "DFCAWI20240001",
				MustChangePassword: true,
				IsActive:           true,
				FirstName:          "Carol",
				LastName:           "Williams",
				Email:              "carol.williams@dayflow.com",
				Mobile:             ptr("+1234567893"),
				JobPosition:        ptr("Product Manager"),
				Department:         ptr("Product"),
				Manager:            ptr("John Doe"),
				Location:           ptr("New York"),
				DateOfBirth:        datePtr(1988, 11, 25),
				Address:            ptr("321 Product Lane, NY, NY"),
				Nationality:        ptr("USA"),
				PersonalEmail:      ptr("carol.williams@gmail.com"),
				Gender:             ptr("Female"),
				MaritalStatus:      ptr("Married"),
				DateOfJoining:      date(2024, 1, 15),
				Role:               employee.RoleEmployee,
				Status:             employee.StatusAbsent,
				MonthlyWage:        decimal.NewFromInt(75000),
				YearlyWage:         decimal.NewFromInt(900000),
				BaseSalary:         decimal.NewFromInt(60000),
				HRA:                decimal.NewFromInt(8000),
				StandardAllowance:  decimal.NewFromInt(4000),
				PerformanceBonus:   decimal.NewFromInt(2500),
				TravelAllowance:    decimal.NewFromInt(500),
				PFEmployeePercent:  decimal.NewFromInt(12),
				PFEmployerPercent:  decimal.NewFromInt(12),
				TaxDeductions:      decimal.NewFromInt(14000),
			},
			Password: "Dayflow@123",
		},
	}
}

func AttendanceRecords() []attendance.Attendance {
	return []attendance.Attendance{
		{
			ID:         "2b7e4d10-93c1-4e5f-8a02-3c7f7f2b0001",
			EmployeeID: AdminID,
			Date:       date(2025, 1, 15),
			CheckIn:    timePtr(2025, 1, 15, 9, 0),
			CheckOut:   timePtr(2025, 1, 15, 18, 0),
			WorkHours:  9.0,
			ExtraHours: 0.0,
		},
		{
			ID:         "2b7e4d10-93c1-4e5f-8a02-3c7f7f2b0002",
			EmployeeID: AliceID,
			Date:       date(2025, 1, 15),
			CheckIn:    timePtr(2025, 1, 15, 9, 30),
			CheckOut:   timePtr(2025, 1, 15, 19, 0),
			WorkHours:  9.0,
			ExtraHours: 0.5,
		},
	}
}

func LeaveRequests() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{
			ID:         "3c8f5e21-a4d2-4f60-9b13-4d808f3c0001",
			EmployeeID: BobID,
			LeaveType:  leave.TypePaidTimeOff,
			StartDate:  date(2025, 1, 20),
			EndDate:    date(2025, 1, 22),
			Allocation: 3,
			Status:     leave.LeaveRequestStatusApproved,
		},
		{
			ID:         "3c8f5e21-a4d2-4f60-9b13-4d808f3c0002",
			EmployeeID: AliceID,
			LeaveType:  leave.TypeSickLeave,
			StartDate:  date(2025, 1, 10),
			EndDate:    date(2025, 1, 11),
			Allocation: 2,
			Status:     leave.LeaveRequestStatusPending,
		},
	}
}

// CounterSeeds returns the issuance counters implied by the seeded login
// IDs, so future issuance continues after them instead of colliding.
func CounterSeeds() map[int]int {
	return map[int]int{
		2022: 1,
		2023: 2,
		2024: 1,
	}
}

func ptr(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func timePtr(year int, month time.Month, day, hour, minute int) *time.Time {
	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return &t
}
