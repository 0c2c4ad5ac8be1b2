// Package employee models the employee directory records and the
// celebration buckets derived from them.
package employee

type Employee struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	JobRole     string `json:"jobRole,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`
	JoiningDate string `json:"joiningDate,omitempty"`
	Active      bool   `json:"active"`
}

func (e Employee) EntityID() string { return e.ID }
