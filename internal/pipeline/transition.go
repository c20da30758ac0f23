package pipeline

import (
	"github.com/botpilothq/console/internal/entity"
)

// TransitionPolicy decides whether a status move is allowed before it is
// sent to the record store. The console ships with AnyTransition: the funnel
// is a suggestion, operators correct mis-clicks by moving cards freely.
type TransitionPolicy interface {
	Allowed(from, to entity.LeadStatus) bool
}

type anyTransition struct{}

func (anyTransition) Allowed(_, _ entity.LeadStatus) bool { return true }

// AnyTransition permits every move, including backwards ones like won->new.
var AnyTransition TransitionPolicy = anyTransition{}

// AllowList is an explicit transition graph for deployments that want the
// funnel enforced. Moves to the same status are always allowed.
type AllowList map[entity.LeadStatus][]entity.LeadStatus

func (a AllowList) Allowed(from, to entity.LeadStatus) bool {
	if from == to {
		return true
	}
	for _, next := range a[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ForwardOnly is the strict variant: each stage may advance one or more
// steps toward won, and any open stage may drop to lost.
var ForwardOnly = AllowList{
	entity.StatusNew:       {entity.StatusContacted, entity.StatusQualified, entity.StatusProposal, entity.StatusWon, entity.StatusLost},
	entity.StatusContacted: {entity.StatusQualified, entity.StatusProposal, entity.StatusWon, entity.StatusLost},
	entity.StatusQualified: {entity.StatusProposal, entity.StatusWon, entity.StatusLost},
	entity.StatusProposal:  {entity.StatusWon, entity.StatusLost},
}
