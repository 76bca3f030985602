package aggregate

import (
	"sort"

	"github.com/subcentral/fillrate/internal/domain/model"
)

// SchoolGroup is one school inside the scope hierarchy.
type SchoolGroup struct {
	Location string
	District int
}

// DistrictGroup is one district and its schools, alphabetical by location.
type DistrictGroup struct {
	Number  int
	Borough string
	Schools []SchoolGroup
}

// BoroughGroup is one borough and its districts, numeric ascending.
type BoroughGroup struct {
	Name      string
	Districts []DistrictGroup
}

// Summary holds the statistics table and the ordered scope hierarchy.
type Summary struct {
	stats map[model.GroupKey]model.Metrics

	// Boroughs is the full hierarchy, alphabetical, with the synthetic
	// Citywide bucket (if any) last.
	Boroughs []BoroughGroup
}

func (s *Summary) bump(key model.GroupKey, rec model.JobRecord) {
	s.stats[key] = s.stats[key].Count(rec.Type, rec.Fill)
}

// Metrics returns the metrics for a bucket; the zero value means no data.
func (s *Summary) Metrics(key model.GroupKey) model.Metrics {
	return s.stats[key]
}

// CityMetrics is the citywide all-classifications rollup.
func (s *Summary) CityMetrics() model.Metrics {
	return s.stats[model.CityKey(model.AllClassifications)]
}

// Classifications lists the classifications with data under a scope instance,
// sorted, excluding the All rollup.
func (s *Summary) Classifications(scope model.Scope, id string) []string {
	var names []string
	for key := range s.stats {
		if key.Scope != scope || key.ID != id || key.Classification == model.AllClassifications {
			continue
		}
		names = append(names, key.Classification)
	}
	sort.Strings(names)
	return names
}

// buildHierarchy freezes the borough/district/school tree in render order.
func (s *Summary) buildHierarchy(boroughs map[int]string, schools map[int]map[string]struct{}) {
	byBorough := make(map[string][]DistrictGroup)
	for district, borough := range boroughs {
		var kids []SchoolGroup
		for location := range schools[district] {
			kids = append(kids, SchoolGroup{Location: location, District: district})
		}
		sort.Slice(kids, func(i, j int) bool { return kids[i].Location < kids[j].Location })
		byBorough[borough] = append(byBorough[borough], DistrictGroup{
			Number:  district,
			Borough: borough,
			Schools: kids,
		})
	}

	names := make([]string, 0, len(byBorough))
	for name := range byBorough {
		if name != CitywideBorough {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := byBorough[CitywideBorough]; ok {
		names = append(names, CitywideBorough)
	}

	for _, name := range names {
		districts := byBorough[name]
		// District ordering must be numeric ascending, never lexicographic.
		sort.Slice(districts, func(i, j int) bool { return districts[i].Number < districts[j].Number })
		s.Boroughs = append(s.Boroughs, BoroughGroup{Name: name, Districts: districts})
	}
}
