package catalog

import "github.com/botpilothq/console/internal/entity"

// DefaultBots is the built-in product listing used until the catalog gets
// its own remote collection.
func DefaultBots() []entity.Bot {
	return []entity.Bot{
		{
			ID:         "inbox-concierge",
			Name:       "Inbox Concierge",
			Tagline:    "Sorts, labels and drafts replies for your shared inbox",
			Category:   "Email",
			PriceCents: 4900,
			Features:   []string{"Auto-triage", "Reply drafts", "Daily digest"},
			Popular:    true,
		},
		{
			ID:         "review-radar",
			Name:       "Review Radar",
			Tagline:    "Watches review sites and alerts you before ratings dip",
			Category:   "Reputation",
			PriceCents: 3900,
			Features:   []string{"Multi-site monitoring", "Sentiment alerts", "Weekly report"},
		},
		{
			ID:         "booking-butler",
			Name:       "Booking Butler",
			Tagline:    "Handles appointment requests end to end",
			Category:   "Scheduling",
			PriceCents: 5900,
			Features:   []string{"Calendar sync", "Reminders", "No-show follow-up"},
			Popular:    true,
		},
		{
			ID:         "invoice-chaser",
			Name:       "Invoice Chaser",
			Tagline:    "Politely escalating payment reminders on autopilot",
			Category:   "Finance",
			PriceCents: 4500,
			Features:   []string{"Reminder ladder", "Payment links", "Aging report"},
		},
		{
			ID:         "social-sentry",
			Name:       "Social Sentry",
			Tagline:    "Queues, posts and recycles your social content",
			Category:   "Marketing",
			PriceCents: 3500,
			Features:   []string{"Content queue", "Best-time posting", "Evergreen recycling"},
		},
		{
			ID:         "quote-bot",
			Name:       "Quote Bot",
			Tagline:    "Turns website enquiries into priced quotes in minutes",
			Category:   "Sales",
			PriceCents: 6900,
			Features:   []string{"Price rules", "PDF quotes", "Follow-up nudges"},
			Popular:    true,
		},
		{
			ID:         "stock-scout",
			Name:       "Stock Scout",
			Tagline:    "Tracks supplier stock and reorders before you run out",
			Category:   "Operations",
			PriceCents: 5500,
			Features:   []string{"Supplier polling", "Reorder points", "Low-stock alerts"},
		},
		{
			ID:         "faq-frontdesk",
			Name:       "FAQ Frontdesk",
			Tagline:    "Answers the questions your customers ask every day",
			Category:   "Support",
			PriceCents: 2900,
			Features:   []string{"Site widget", "Answer analytics", "Handoff to email"},
		},
	}
}
