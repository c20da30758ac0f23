package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/botpilothq/console/internal/entity"
)

func TestAnyTransitionPermitsEverything(t *testing.T) {
	for _, from := range entity.AllStatuses {
		for _, to := range entity.AllStatuses {
			assert.True(t, AnyTransition.Allowed(from, to), "%s -> %s", from, to)
		}
	}
}

func TestForwardOnly(t *testing.T) {
	assert.True(t, ForwardOnly.Allowed(entity.StatusNew, entity.StatusWon))
	assert.True(t, ForwardOnly.Allowed(entity.StatusProposal, entity.StatusLost))
	assert.True(t, ForwardOnly.Allowed(entity.StatusWon, entity.StatusWon), "same status always allowed")

	assert.False(t, ForwardOnly.Allowed(entity.StatusWon, entity.StatusNew))
	assert.False(t, ForwardOnly.Allowed(entity.StatusQualified, entity.StatusContacted))
	assert.False(t, ForwardOnly.Allowed(entity.StatusLost, entity.StatusContacted), "lost is terminal")
}
