package recommend

import (
	"sort"
	"strings"

	"github.com/wandererhq/wanderer-core/internal/models"
)

// Weights is the single canonical scoring table. Every recommendation
// surface shares it; a call site never carries its own weights.
type Weights struct {
	District      float64
	TravelerType  float64 // per matching traveler type
	Activity      float64 // per matching activity
	Scenery       float64
	Budget        float64
	PlaceMatch    float64 // hidden-gem / popular preference satisfied
	PlaceBoth     float64 // "Both" place preference, always granted
	Accessibility float64
	RatingBoost   float64 // scaled by rating/5
}

// DefaultWeights returns the production scoring table.
func DefaultWeights() Weights {
	return Weights{
		District:      4,
		TravelerType:  2,
		Activity:      2,
		Scenery:       2,
		Budget:        2,
		PlaceMatch:    2,
		PlaceBoth:     1,
		Accessibility: 2,
		RatingBoost:   2,
	}
}

// budgetBuckets maps a survey budget choice to the entity-side values it
// may match, either on the spot budget level, the accommodation price
// range, or a category tag.
var budgetBuckets = map[string][]string{
	"Budget-friendly": {"budget"},
	"Moderate":        {"moderate", "mid-range"},
	"Premium":         {"premium", "luxury"},
}

// signal is one additive scoring rule. Multiplier returns 0 when the rule
// does not apply, 1 for a plain match, a count for per-item rules, or a
// fraction for the rating boost. Rules are independent and order-insensitive.
type signal struct {
	name       string
	weight     func(w Weights) float64
	multiplier func(p *models.Preferences, c *Candidate) float64
}

var signals = []signal{
	{
		name:   "district",
		weight: func(w Weights) float64 { return w.District },
		multiplier: func(p *models.Preferences, c *Candidate) float64 {
			if p.District == "" || p.District == AnyDistrict {
				return 0
			}
			if matchesDistrict(p.District, c.Municipality) || matchesDistrict(p.District, c.Location) {
				return 1
			}
			return 0
		},
	},
	{
		name:   "traveler_type",
		weight: func(w Weights) float64 { return w.TravelerType },
		multiplier: func(p *models.Preferences, c *Candidate) float64 {
			return float64(matchCount(p.TravelerTypes, c.Category))
		},
	},
	{
		name:   "activity",
		weight: func(w Weights) float64 { return w.Activity },
		multiplier: func(p *models.Preferences, c *Candidate) float64 {
			return float64(matchCount(p.Activities, c.Category))
		},
	},
	{
		name:   "scenery",
		weight: func(w Weights) float64 { return w.Scenery },
		multiplier: func(p *models.Preferences, c *Candidate) float64 {
			if tagsOverlap(p.Scenery, c.SceneryTypes) {
				return 1
			}
			return 0
		},
	},
	{
		name:   "budget",
		weight: func(w Weights) float64 { return w.Budget },
		multiplier: func(p *models.Preferences, c *Candidate) float64 {
			if matchesBudget(p.BudgetRange, c) {
				return 1
			}
			return 0
		},
	},
	{
		name:   "place_preference",
		weight: func(w Weights) float64 { return w.PlaceMatch },
		multiplier: func(p *models.Preferences, c *Candidate) float64 {
			switch p.PlacePreference {
			case models.PlaceHiddenGems:
				if c.IsHiddenGem {
					return 1
				}
			case models.PlacePopular:
				if !c.IsHiddenGem {
					return 1
				}
			}
			return 0
		},
	},
	{
		name:   "place_both",
		weight: func(w Weights) float64 { return w.PlaceBoth },
		multiplier: func(p *models.Preferences, c *Candidate) float64 {
			if p.PlacePreference == models.PlaceBoth {
				return 1
			}
			return 0
		},
	},
	{
		name:   "accessibility",
		weight: func(w Weights) float64 { return w.Accessibility },
		multiplier: func(p *models.Preferences, c *Candidate) float64 {
			if p.AccessibilityNeeded && c.AccessibilityFriendly {
				return 1
			}
			return 0
		},
	},
	{
		name:   "rating",
		weight: func(w Weights) float64 { return w.RatingBoost },
		multiplier: func(p *models.Preferences, c *Candidate) float64 {
			if c.Rating <= 0 {
				return 0
			}
			r := c.Rating
			if r > 5 {
				r = 5
			}
			return r / 5
		},
	},
}

// Score computes the additive preference score of one candidate. A nil or
// empty preference record always yields 0: the rating boost only fires
// once at least one preference is expressed.
func Score(w Weights, p *models.Preferences, c *Candidate) float64 {
	if p == nil || c == nil {
		return 0
	}
	if isEmptyPreferences(p) {
		return 0
	}
	var total float64
	for _, sig := range signals {
		total += sig.weight(w) * sig.multiplier(p, c)
	}
	return total
}

// Options controls ranking output per surface.
type Options struct {
	Limit          int  // top-N truncation, <=0 means no limit
	DropZeroScores bool // homepage feed hides entities with no signal at all
}

// Rank scores every candidate, sorts by score descending with a stable
// sort (first-seen wins ties), optionally drops zero scores, and truncates
// to Options.Limit.
func Rank(w Weights, p *models.Preferences, candidates []Candidate, opts Options) []Scored {
	scored := make([]Scored, 0, len(candidates))
	for i := range candidates {
		s := Score(w, p, &candidates[i])
		if opts.DropZeroScores && s == 0 {
			continue
		}
		scored = append(scored, Scored{Candidate: candidates[i], Score: s})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if opts.Limit > 0 && len(scored) > opts.Limit {
		scored = scored[:opts.Limit]
	}
	return scored
}

func isEmptyPreferences(p *models.Preferences) bool {
	return p.District == "" &&
		len(p.TravelerTypes) == 0 &&
		len(p.Activities) == 0 &&
		len(p.Scenery) == 0 &&
		p.BudgetRange == "" &&
		p.PlacePreference == "" &&
		!p.AccessibilityNeeded
}

// containsFold reports an either-direction, case-insensitive substring match.
func containsFold(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// matchCount counts how many of the preferred terms overlap a tag set.
func matchCount(terms, tags []string) int {
	n := 0
	for _, term := range terms {
		for _, tag := range tags {
			if containsFold(term, tag) {
				n++
				break
			}
		}
	}
	return n
}

func tagsOverlap(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if containsFold(x, y) {
				return true
			}
		}
	}
	return false
}

// matchesBudget applies the fixed bucket table against the candidate's
// budget level, price range and category tags.
func matchesBudget(budgetRange string, c *Candidate) bool {
	buckets, ok := budgetBuckets[strings.TrimSpace(budgetRange)]
	if !ok {
		return false
	}
	for _, bucket := range buckets {
		if strings.EqualFold(c.BudgetLevel, bucket) {
			return true
		}
		if c.PriceRange != "" && containsFold(c.PriceRange, bucket) {
			return true
		}
		for _, tag := range c.Category {
			if containsFold(tag, bucket) {
				return true
			}
		}
	}
	return false
}
