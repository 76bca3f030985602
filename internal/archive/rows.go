package archive

import (
	"fmt"

	"github.com/subcentral/fillrate/internal/domain/aggregate"
	"github.com/subcentral/fillrate/internal/domain/model"
)

// Row is one flattened stat bucket ready for insertion.
type Row struct {
	Scope          string
	ScopeID        string
	Classification string
	Metrics        model.Metrics
}

// Flatten walks the summary in hierarchy order and returns every bucket,
// classification rollups first within each scope. Output order is a pure
// function of the summary, so repeated runs archive identical row sets.
func Flatten(sum *aggregate.Summary) []Row {
	var rows []Row

	add := func(scope model.Scope, id string, m model.Metrics) {
		rows = append(rows, scopeRows(sum, scope, id, m)...)
	}

	add(model.ScopeCity, "", sum.CityMetrics())
	for _, bg := range sum.Boroughs {
		add(model.ScopeBorough, bg.Name, sum.Metrics(model.BoroughKey(bg.Name, model.AllClassifications)))
		for _, dg := range bg.Districts {
			districtID := fmt.Sprintf("%d", dg.Number)
			add(model.ScopeDistrict, districtID, sum.Metrics(model.DistrictKey(dg.Number, model.AllClassifications)))
			for _, sg := range dg.Schools {
				schoolID := fmt.Sprintf("%d/%s", sg.District, sg.Location)
				add(model.ScopeSchool, schoolID, sum.Metrics(model.SchoolKey(sg.District, sg.Location, model.AllClassifications)))
			}
		}
	}
	return rows
}

func scopeRows(sum *aggregate.Summary, scope model.Scope, id string, rollup model.Metrics) []Row {
	rows := []Row{{
		Scope:          scope.String(),
		ScopeID:        id,
		Classification: model.AllClassifications,
		Metrics:        rollup,
	}}
	for _, name := range sum.Classifications(scope, id) {
		rows = append(rows, Row{
			Scope:          scope.String(),
			ScopeID:        id,
			Classification: name,
			Metrics:        sum.Metrics(model.GroupKey{Scope: scope, ID: id, Classification: name}),
		})
	}
	return rows
}
