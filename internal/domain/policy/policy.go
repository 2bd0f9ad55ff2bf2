// Package policy holds the access rules for employee data. Every rule
// is a pure function of the caller's role and the record involved, so
// the same decisions apply no matter which transport invokes them.
package policy

import (
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
)

// compensationFields are withheld from non-privileged callers.
var compensationFields = []string{
	"monthly_wage",
	"yearly_wage",
	"base_salary",
	"hra",
	"standard_allowance",
	"performance_bonus",
	"travel_allowance",
	"pf_employee_percent",
	"pf_employer_percent",
	"tax_deductions",
}

// selfEditableFields are the only fields an employee may change on
// their own record.
var selfEditableFields = []string{
	"mobile",
	"address",
	"date_of_birth",
	"nationality",
	"personal_email",
	"gender",
	"marital_status",
}

// CompensationFields returns the field names hidden from non-privileged views.
func CompensationFields() []string {
	return compensationFields
}

// SelfEditableFields returns the field names open to self-service updates.
func SelfEditableFields() []string {
	return selfEditableFields
}

// IsPrivileged reports whether a role may manage records for other
// employees and see compensation data.
func IsPrivileged(role employee.Role) bool {
	return role == employee.RoleAdmin || role == employee.RoleHR
}

// CanViewCompensation decides whether a single fetched record shows its
// compensation fields. Employees always see their own.
func CanViewCompensation(role employee.Role, callerID, targetID string) bool {
	return IsPrivileged(role) || callerID == targetID
}

// CanUpdateEmployee decides whether the caller may touch the target
// record at all. Which fields are then allowed is a separate check.
func CanUpdateEmployee(role employee.Role, callerID, targetID string) bool {
	return IsPrivileged(role) || callerID == targetID
}

// DisallowedUpdateFields returns the requested fields the caller may
// not change. Privileged callers may change everything; everyone else
// is limited to the self-editable set. A non-empty result means the
// whole update must be rejected, not silently filtered.
func DisallowedUpdateFields(role employee.Role, fields []string) []string {
	if IsPrivileged(role) {
		return nil
	}

	var denied []string
	for _, field := range fields {
		if !contains(selfEditableFields, field) {
			denied = append(denied, field)
		}
	}
	return denied
}

// CanRecordAttendance restricts attendance entry to privileged callers.
func CanRecordAttendance(role employee.Role) bool {
	return IsPrivileged(role)
}

// CanSubmitLeave allows privileged callers to file for anyone and
// employees to file for themselves.
func CanSubmitLeave(role employee.Role, callerID, targetID string) bool {
	return IsPrivileged(role) || callerID == targetID
}

// CanDecideLeave restricts approving or rejecting leave to privileged callers.
func CanDecideLeave(role employee.Role) bool {
	return IsPrivileged(role)
}

// CanViewLeaveBalance allows privileged callers and the employee themselves.
func CanViewLeaveBalance(role employee.Role, callerID, targetID string) bool {
	return IsPrivileged(role) || callerID == targetID
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
