package entity

import (
	"time"
)

// LeadStatus is the closed set of funnel stages. Anything else coming back
// from the record store is kept verbatim but never rendered meaningfully.
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQualified LeadStatus = "qualified"
	StatusProposal  LeadStatus = "proposal"
	StatusWon       LeadStatus = "won"
	StatusLost      LeadStatus = "lost"
)

// AllStatuses in funnel order. lost comes last and never shows on the board.
var AllStatuses = []LeadStatus{
	StatusNew,
	StatusContacted,
	StatusQualified,
	StatusProposal,
	StatusWon,
	StatusLost,
}

func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusProposal, StatusWon, StatusLost:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

const (
	DefaultSource   = "Website"
	DefaultPriority = PriorityMedium
)

type Lead struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	Company        string     `json:"company,omitempty"`
	Source         string     `json:"source,omitempty"`
	Package        string     `json:"package,omitempty"`
	Message        string     `json:"message,omitempty"`
	Budget         string     `json:"budget,omitempty"`
	EstimatedValue float64    `json:"estimated_value,omitempty"`
	Tags           string     `json:"tags,omitempty"`
	Status         LeadStatus `json:"status"`
	Priority       Priority   `json:"priority"`
	Notes          string     `json:"notes,omitempty"`
	NextFollowUp   *time.Time `json:"next_follow_up,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Normalize fills the defaults the record store is allowed to omit.
func (l *Lead) Normalize() {
	if l.Source == "" {
		l.Source = DefaultSource
	}
	if l.Priority == "" {
		l.Priority = DefaultPriority
	}
}

// LeadPatch is a partial update. Only non-nil fields are sent to the record
// store and merged into the cached entry.
type LeadPatch struct {
	Status *LeadStatus `json:"status,omitempty"`
	Notes  *string     `json:"notes,omitempty"`
}

// Apply merges the patch into a lead in place.
func (p LeadPatch) Apply(l *Lead) {
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
}

// StatusPatch builds the single-field patch used by quick moves and bulk
// mutation.
func StatusPatch(s LeadStatus) LeadPatch {
	return LeadPatch{Status: &s}
}
