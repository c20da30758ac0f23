package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/botpilothq/console/internal/entity"
	"github.com/botpilothq/console/internal/pipeline"
)

type DigestSender interface {
	SendFollowUpDigest(to string, leads []entity.Lead) error
}

// FollowUpWorker mails the operator a digest of leads whose next follow-up
// date has arrived. It pulls a fresh list each tick instead of reading any
// mounted view; views stay private to their sessions.
type FollowUpWorker struct {
	svc          pipeline.LeadService
	sender       DigestSender
	to           string
	tickInterval time.Duration
	log          *zap.Logger

	lastSent string // YYYY-MM-DD of the last digest, one per day
}

func NewFollowUpWorker(svc pipeline.LeadService, sender DigestSender, to string, interval time.Duration, log *zap.Logger) *FollowUpWorker {
	return &FollowUpWorker{
		svc:          svc,
		sender:       sender,
		to:           to,
		tickInterval: interval,
		log:          log,
	}
}

func (w *FollowUpWorker) Start(ctx context.Context) {
	w.log.Info("follow-up worker started", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("follow-up worker stopped")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

func (w *FollowUpWorker) run(ctx context.Context) {
	today := time.Now().Format("2006-01-02")
	if w.lastSent == today {
		return
	}

	leads, err := w.svc.ListLeads(ctx)
	if err != nil {
		w.log.Warn("follow-up digest skipped, lead list failed", zap.Error(err))
		return
	}

	due := DueForFollowUp(leads, time.Now())
	if len(due) == 0 {
		w.lastSent = today
		return
	}

	if err := w.sender.SendFollowUpDigest(w.to, due); err != nil {
		w.log.Warn("follow-up digest send failed", zap.Error(err))
		return
	}

	w.lastSent = today
	w.log.Info("follow-up digest sent", zap.Int("leads", len(due)))
}

// DueForFollowUp keeps open leads whose follow-up date is today or earlier.
// Won and lost leads need no chasing.
func DueForFollowUp(leads []entity.Lead, now time.Time) []entity.Lead {
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	var due []entity.Lead
	for _, l := range leads {
		if l.NextFollowUp == nil {
			continue
		}
		if l.Status == entity.StatusWon || l.Status == entity.StatusLost {
			continue
		}
		if l.NextFollowUp.After(endOfDay) {
			continue
		}
		due = append(due, l)
	}
	return due
}
