package onboarding

import (
	"strings"

	"github.com/wandererhq/wanderer-core/internal/models"
)

// Step is one screen of the preference survey. Optional steps may be
// skipped; required steps block forward movement until answered.
type Step struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Required bool   `json:"required"`
	valid    func(p *models.Preferences) bool
}

// Steps is the fixed survey sequence. Order matters: the wizard walks it
// with an index, forward only past valid steps, backward unconditionally.
var Steps = []Step{
	{
		Key: "district", Title: "Which district do you want to explore?", Required: true,
		valid: func(p *models.Preferences) bool { return strings.TrimSpace(p.District) != "" },
	},
	{
		Key: "traveler_types", Title: "What kind of traveler are you?", Required: true,
		valid: func(p *models.Preferences) bool { return len(p.TravelerTypes) > 0 },
	},
	{
		Key: "activities", Title: "What do you like doing?", Required: true,
		valid: func(p *models.Preferences) bool { return len(p.Activities) > 0 },
	},
	{
		Key: "scenery", Title: "What scenery draws you in?", Required: true,
		valid: func(p *models.Preferences) bool { return len(p.Scenery) > 0 },
	},
	{
		Key: "budget_range", Title: "What is your budget?", Required: true,
		valid: func(p *models.Preferences) bool { return strings.TrimSpace(p.BudgetRange) != "" },
	},
	{
		Key: "place_preference", Title: "Hidden gems or popular places?", Required: true,
		valid: func(p *models.Preferences) bool { return p.PlacePreference != "" },
	},
	{
		Key: "accessibility", Title: "Do you need accessible places?", Required: false,
		valid: func(p *models.Preferences) bool { return true },
	},
	{
		Key: "travel_pace", Title: "What pace suits you?", Required: false,
		valid: func(p *models.Preferences) bool { return true },
	},
	{
		Key: "companions", Title: "Who are you traveling with?", Required: false,
		valid: func(p *models.Preferences) bool { return true },
	},
	{
		Key: "auto_recommendations", Title: "Want automatic recommendations?", Required: false,
		valid: func(p *models.Preferences) bool { return true },
	},
}

// Direction of a wizard transition.
type Direction int

const (
	Back Direction = -1
	Next Direction = 1
)

// State is the wizard position: an index into Steps.
type State struct {
	Index int `json:"index"`
}

// Done reports whether the state walked past the last step.
func (s State) Done() bool { return s.Index >= len(Steps) }

// Current returns the step at the state's position.
func (s State) Current() *Step {
	if s.Index < 0 || s.Index >= len(Steps) {
		return nil
	}
	return &Steps[s.Index]
}

// Transition advances or rewinds the wizard. Moving forward requires the
// current step's predicate to pass against the answers collected so far;
// moving backward always succeeds. Out-of-range states clamp.
func Transition(s State, dir Direction, answers *models.Preferences) State {
	switch dir {
	case Back:
		if s.Index > 0 {
			s.Index--
		}
	case Next:
		step := s.Current()
		if step == nil {
			break
		}
		if !step.Required || (answers != nil && step.valid(answers)) {
			s.Index++
		}
	}
	return s
}

// Complete reports whether every required step is satisfied, i.e. the
// survey can be persisted.
func Complete(answers *models.Preferences) (bool, []string) {
	if answers == nil {
		keys := make([]string, 0)
		for _, step := range Steps {
			if step.Required {
				keys = append(keys, step.Key)
			}
		}
		return false, keys
	}
	var missing []string
	for _, step := range Steps {
		if step.Required && !step.valid(answers) {
			missing = append(missing, step.Key)
		}
	}
	return len(missing) == 0, missing
}
