package domain

import "time"

type ReportStatus string

const (
	ReportPending ReportStatus = "pending"
	ReportSolved  ReportStatus = "solved"
)

func (s ReportStatus) Valid() bool {
	return s == ReportPending || s == ReportSolved
}

// UserRef is the populated projection of a report's owner.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// DoctorRef is the populated projection of a report's assignee.
type DoctorRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Report is an OP record: a free-text health report a user files against a doctor.
// Severity is an unbounded numeric score used only for presentation ordering.
type Report struct {
	ID        string       `json:"id"`
	Report    string       `json:"report"`
	UserID    string       `json:"userId"`
	DoctorID  string       `json:"doctorId"`
	Status    ReportStatus `json:"status"`
	Severity  float64      `json:"severity"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`

	// Populated identity fields, present on read paths.
	User   *UserRef   `json:"user,omitempty"`
	Doctor *DoctorRef `json:"doctor,omitempty"`
}

// TriageView partitions a subject's reports for review: pending sorted by
// severity descending, solved in store order.
type TriageView struct {
	Pending []Report `json:"pending"`
	Solved  []Report `json:"solved"`
}
