package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/botpilothq/console/internal/entity"
)

func followUpLead(id int64, status entity.LeadStatus, followUp *time.Time) entity.Lead {
	return entity.Lead{ID: id, Name: "x", Email: "x@example.com", Status: status, NextFollowUp: followUp}
}

func TestDueForFollowUp(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	laterToday := time.Date(2026, 8, 31, 17, 0, 0, 0, time.UTC)
	nextWeek := now.AddDate(0, 0, 7)

	leads := []entity.Lead{
		followUpLead(1, entity.StatusNew, &yesterday),       // overdue
		followUpLead(2, entity.StatusContacted, &laterToday), // due today
		followUpLead(3, entity.StatusQualified, &nextWeek),   // not yet
		followUpLead(4, entity.StatusWon, &yesterday),        // closed, no chasing
		followUpLead(5, entity.StatusLost, &yesterday),       // closed, no chasing
		followUpLead(6, entity.StatusNew, nil),               // no date set
	}

	due := DueForFollowUp(leads, now)

	ids := make([]int64, 0, len(due))
	for _, l := range due {
		ids = append(ids, l.ID)
	}
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestDueForFollowUpEmpty(t *testing.T) {
	assert.Empty(t, DueForFollowUp(nil, time.Now()))
}
