package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wandererhq/wanderer-core/internal/models"
)

func TestTransitionForwardBlockedByRequiredStep(t *testing.T) {
	state := State{Index: 0}

	// No district answered yet: forward does not move.
	next := Transition(state, Next, &models.Preferences{})
	assert.Equal(t, 0, next.Index)

	// Answered: forward advances.
	next = Transition(state, Next, &models.Preferences{District: "1st District"})
	assert.Equal(t, 1, next.Index)
}

func TestTransitionBackwardAlwaysAllowed(t *testing.T) {
	state := State{Index: 3}
	back := Transition(state, Back, nil)
	assert.Equal(t, 2, back.Index)

	// Clamped at the first step.
	start := Transition(State{Index: 0}, Back, nil)
	assert.Equal(t, 0, start.Index)
}

func TestTransitionOptionalStepSkippable(t *testing.T) {
	// accessibility (index 6) is optional; empty answers still advance.
	state := State{Index: 6}
	next := Transition(state, Next, &models.Preferences{})
	assert.Equal(t, 7, next.Index)
}

func TestWizardWalkToCompletion(t *testing.T) {
	answers := &models.Preferences{
		District:        "2nd District",
		TravelerTypes:   []string{"Adventure"},
		Activities:      []string{"Hiking"},
		Scenery:         []string{"mountain"},
		BudgetRange:     "Moderate",
		PlacePreference: models.PlaceBoth,
	}

	state := State{}
	for i := 0; i < len(Steps); i++ {
		state = Transition(state, Next, answers)
	}
	assert.True(t, state.Done())
}

func TestCompleteReportsMissingSteps(t *testing.T) {
	ok, missing := Complete(&models.Preferences{District: "1st District"})
	assert.False(t, ok)
	assert.Contains(t, missing, "traveler_types")
	assert.Contains(t, missing, "budget_range")
	assert.NotContains(t, missing, "district")

	ok, missing = Complete(&models.Preferences{
		District:        "1st District",
		TravelerTypes:   []string{"Relaxed"},
		Activities:      []string{"Beaches"},
		Scenery:         []string{"beach"},
		BudgetRange:     "Premium",
		PlacePreference: models.PlacePopular,
	})
	assert.True(t, ok)
	assert.Empty(t, missing)
}
