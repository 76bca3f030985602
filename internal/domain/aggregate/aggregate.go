// Package aggregate computes grouped fill-rate statistics from job records.
//
// Every scope's metrics are accumulated directly from raw records; parent
// scopes are never derived from child rates, so rollups stay count-weighted
// and the borough/district round-trip property holds by construction.
package aggregate

import (
	"sort"

	"github.com/subcentral/fillrate/internal/domain/model"
)

// Default districts administered citywide rather than by a borough.
var defaultCitywideDistricts = []int{62, 97}

// CitywideBorough is the synthetic parent for citywide special districts.
const CitywideBorough = "Citywide"

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithCitywideDistricts replaces the set of citywide special districts.
func WithCitywideDistricts(districts []int) Option {
	return func(a *Aggregator) {
		a.citywide = make(map[int]struct{}, len(districts))
		for _, d := range districts {
			a.citywide[d] = struct{}{}
		}
	}
}

// Aggregator computes SummaryStats for every GroupKey.
type Aggregator struct {
	citywide map[int]struct{}
}

// New creates an Aggregator with configuration options.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{}
	WithCitywideDistricts(defaultCitywideDistricts)(a)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate folds the record collection into a Summary. Output is a pure
// function of the input: identical records produce identical numbers and
// identical ordering.
func (a *Aggregator) Aggregate(records []model.JobRecord) *Summary {
	s := &Summary{stats: make(map[model.GroupKey]model.Metrics)}

	boroughs := a.assignDistrictBoroughs(records)

	schools := make(map[int]map[string]struct{})
	for _, rec := range records {
		s.bump(model.CityKey(model.AllClassifications), rec)
		s.bump(model.CityKey(rec.Classification), rec)

		// Records without a usable district stay citywide-only.
		if !rec.HasDistrict() {
			continue
		}

		borough := boroughs[rec.District]
		s.bump(model.BoroughKey(borough, model.AllClassifications), rec)
		s.bump(model.BoroughKey(borough, rec.Classification), rec)
		s.bump(model.DistrictKey(rec.District, model.AllClassifications), rec)
		s.bump(model.DistrictKey(rec.District, rec.Classification), rec)
		s.bump(model.SchoolKey(rec.District, rec.Location, model.AllClassifications), rec)
		s.bump(model.SchoolKey(rec.District, rec.Location, rec.Classification), rec)

		if schools[rec.District] == nil {
			schools[rec.District] = make(map[string]struct{})
		}
		schools[rec.District][rec.Location] = struct{}{}
	}

	s.buildHierarchy(boroughs, schools)
	return s
}

// assignDistrictBoroughs gives every district exactly one parent borough: the
// borough of the majority of its records, ties broken alphabetically.
// Citywide special districts parent to the Citywide bucket.
func (a *Aggregator) assignDistrictBoroughs(records []model.JobRecord) map[int]string {
	votes := make(map[int]map[string]int)
	for _, rec := range records {
		if !rec.HasDistrict() {
			continue
		}
		if votes[rec.District] == nil {
			votes[rec.District] = make(map[string]int)
		}
		votes[rec.District][rec.Borough]++
	}

	assigned := make(map[int]string, len(votes))
	for district, byBorough := range votes {
		if _, ok := a.citywide[district]; ok {
			assigned[district] = CitywideBorough
			continue
		}
		best, bestCount := "", -1
		names := make([]string, 0, len(byBorough))
		for name := range byBorough {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if byBorough[name] > bestCount {
				best, bestCount = name, byBorough[name]
			}
		}
		assigned[district] = best
	}
	return assigned
}
