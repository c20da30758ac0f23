package recordstore

// CreateLeadInput is what callers hand the client. Identifier, timestamps
// and status are the store's business.
type CreateLeadInput struct {
	Name           string
	Email          string
	Phone          string
	Company        string
	Source         string
	Package        string
	Message        string
	Budget         string
	EstimatedValue float64
	Tags           string
	Priority       string
	NextFollowUp   string
}

// createLeadRequest is the wire shape sent to POST /leads.
type createLeadRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	Company        string  `json:"company,omitempty"`
	Source         string  `json:"source,omitempty"`
	Package        string  `json:"package,omitempty"`
	Message        string  `json:"message,omitempty"`
	Budget         string  `json:"budget,omitempty"`
	EstimatedValue float64 `json:"estimated_value,omitempty"`
	Tags           string  `json:"tags,omitempty"`
	Priority       string  `json:"priority,omitempty"`
	NextFollowUp   string  `json:"next_follow_up,omitempty"`
	Status         string  `json:"status"`
}
