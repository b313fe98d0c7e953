package dto

// EmployeeReportResponse is a read-only projection of every assignment for
// one employee, with questions populated on each entry.
type EmployeeReportResponse struct {
	EmployeeID  uint                 `json:"employee_id"`
	Assignments []AssignmentResponse `json:"assignments"`
}
