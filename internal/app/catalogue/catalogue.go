// Package catalogue holds the static programme catalogue and the quote
// price tiers.
//
// The catalogue is compiled in and read-only. Lookups never fail: an unknown
// slug or tier is reported through the boolean result and callers decide how
// to present "no match".
package catalogue

import (
	"errors"
	"slices"
	"sort"
	"strings"

	"github.com/empoderata/academy/internal/domain/models"
)

// Per-learner prices in whole rand, one per duration tier.
const (
	Price12Months int64 = 38900
	Price18Months int64 = 58350
	Price24Months int64 = 77800
)

// Learner count bounds accepted by the quote calculator.
const (
	MinLearners = 1
	MaxLearners = 500
)

// ErrLearnersOutOfRange is returned by Estimate when the learner count falls
// outside [MinLearners, MaxLearners].
var ErrLearnersOutOfRange = errors.New("learners must be between 1 and 500")

var tierPrices = map[models.PriceKey]int64{
	models.Price12Months: Price12Months,
	models.Price18Months: Price18Months,
	models.Price24Months: Price24Months,
}

var bySlug = func() map[string]int {
	m := make(map[string]int, len(learnerships))
	for i, p := range learnerships {
		m[p.ID] = i
	}
	return m
}()

// BySlug returns the programme with the given slug.
func BySlug(slug string) (models.Programme, bool) {
	i, ok := bySlug[slug]
	if !ok {
		return models.Programme{}, false
	}
	return clone(learnerships[i]), true
}

// clone copies p including its slice fields so callers cannot modify the
// compiled-in catalogue.
func clone(p models.Programme) models.Programme {
	p.KeyModules = slices.Clone(p.KeyModules)
	return p
}

// TierPrice returns the per-learner price for a tier key.
func TierPrice(key models.PriceKey) (int64, bool) {
	p, ok := tierPrices[key]
	return p, ok
}

// Featured returns the programmes in display order: programmes whose SETA
// name contains "TETA" first, then by SETA name, then by programme name.
// INSETA does not match, so it sorts with the other SETAs. When category is
// non-empty only that category is kept.
func Featured(category string) []models.Programme {
	out := make([]models.Programme, 0, len(learnerships))
	for _, p := range learnerships {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, clone(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		at, bt := strings.Contains(a.SETA, "TETA"), strings.Contains(b.SETA, "TETA")
		if at != bt {
			return at
		}
		if a.SETA != b.SETA {
			return a.SETA < b.SETA
		}
		return a.Name < b.Name
	})
	return out
}

// Estimate is an indicative quote for one programme.
type Estimate struct {
	ProgramID   string `json:"programId"`
	ProgramName string `json:"programName"`
	Learners    int    `json:"learners"`
	PerLearner  int64  `json:"perLearner"`
	Total       int64  `json:"total"`
}

// Quote prices a programme for the given learner count using the
// programme's tier. It returns ErrLearnersOutOfRange for counts outside the
// accepted bounds.
func Quote(p models.Programme, learners int) (Estimate, error) {
	if learners < MinLearners || learners > MaxLearners {
		return Estimate{}, ErrLearnersOutOfRange
	}
	unit, _ := TierPrice(p.PriceKey)
	return Estimate{
		ProgramID:   p.ID,
		ProgramName: p.Name,
		Learners:    learners,
		PerLearner:  unit,
		Total:       unit * int64(learners),
	}, nil
}
