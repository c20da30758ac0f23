package entity

import "time"

// The record types below are read-mostly mirrors of remote collections. The
// console lists them; it never derives state from them.

type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Plan      string    `json:"plan,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Referral struct {
	ID            int64     `json:"id"`
	ReferrerName  string    `json:"referrer_name"`
	ReferrerEmail string    `json:"referrer_email"`
	LeadName      string    `json:"lead_name"`
	LeadEmail     string    `json:"lead_email"`
	Status        string    `json:"status"`
	RewardPaid    bool      `json:"reward_paid"`
	CreatedAt     time.Time `json:"created_at"`
}

type Subscriber struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Source       string    `json:"source,omitempty"`
	Unsubscribed bool      `json:"unsubscribed"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// AuditCheck is one website-audit result captured by the public audit tool.
type AuditCheck struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Email     string    `json:"email,omitempty"`
	Score     int       `json:"score"`
	Issues    []string  `json:"issues,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

type Notification struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Text      string    `json:"text"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats powers the dashboard counters and sidebar badges.
type Stats struct {
	TotalLeads          int `json:"total_leads"`
	NewLeads            int `json:"new_leads"`
	WonLeads            int `json:"won_leads"`
	Clients             int `json:"clients"`
	Subscribers         int `json:"subscribers"`
	Referrals           int `json:"referrals"`
	AuditChecks         int `json:"audit_checks"`
	UnreadNotifications int `json:"unread_notifications"`
}
