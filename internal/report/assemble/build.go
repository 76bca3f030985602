package assemble

import (
	"fmt"
	"strings"

	"github.com/subcentral/fillrate/internal/domain/aggregate"
	"github.com/subcentral/fillrate/internal/domain/model"
	"github.com/subcentral/fillrate/internal/report/chart"
	"github.com/subcentral/fillrate/pkg/fsname"
)

// upLink climbs levels directories and lands on that ancestor's page.
func upLink(levels int) string {
	return strings.Repeat("../", levels) + pageFile
}

// dirName sanitizes a scope name into a directory component. Spaces become
// underscores first so "Staten Island" yields a single clean token.
func dirName(prefix, name string) string {
	return fsname.Clean(prefix + "_" + strings.ReplaceAll(name, " ", "_"))
}

// Build turns aggregation output into the report tree. The returned root is
// the citywide page; boroughs, districts, and schools hang off it in the
// hierarchy's render order.
func Build(sum *aggregate.Summary) *Node {
	root := &Node{
		Scope:   model.ScopeCity,
		Heading: "Citywide Summary",
		Label:   "Citywide",
		Depth:   0,
		Metrics: sum.CityMetrics(),
		Rows:    scopeRows(sum, model.ScopeCity, ""),
	}
	finishNode(root, "Jobs by Classification and Type - Citywide")

	for _, bg := range sum.Boroughs {
		root.Children = append(root.Children, buildBorough(sum, root, bg))
	}
	return root
}

func buildBorough(sum *aggregate.Summary, root *Node, bg aggregate.BoroughGroup) *Node {
	node := &Node{
		Scope:   model.ScopeBorough,
		Heading: "Borough: " + bg.Name,
		Label:   bg.Name,
		DirName: dirName("Borough", bg.Name),
		Depth:   1,
		Metrics: sum.Metrics(model.BoroughKey(bg.Name, model.AllClassifications)),
		Rows:    scopeRows(sum, model.ScopeBorough, bg.Name),
		Nav: []Link{
			{Href: upLink(1), Label: "Citywide Summary"},
		},
		Comparisons: []Comparison{
			{Label: "Citywide", Metrics: root.Metrics},
		},
	}
	finishNode(node, "Jobs by Classification and Type - "+bg.Name)

	for _, dg := range bg.Districts {
		node.Children = append(node.Children, buildDistrict(sum, root, node, dg))
	}
	return node
}

func buildDistrict(sum *aggregate.Summary, root, borough *Node, dg aggregate.DistrictGroup) *Node {
	label := fmt.Sprintf("District %d", dg.Number)
	node := &Node{
		Scope:   model.ScopeDistrict,
		Heading: label,
		Label:   label,
		DirName: dirName("District", fmt.Sprintf("%d", dg.Number)),
		Depth:   2,
		Metrics: sum.Metrics(model.DistrictKey(dg.Number, model.AllClassifications)),
		Rows:    scopeRows(sum, model.ScopeDistrict, fmt.Sprintf("%d", dg.Number)),
		Nav: []Link{
			{Href: upLink(2), Label: "Citywide Summary"},
			{Href: upLink(1), Label: borough.Label},
		},
		Comparisons: []Comparison{
			{Label: "Citywide", Metrics: root.Metrics},
			{Label: borough.Label, Metrics: borough.Metrics},
		},
	}
	finishNode(node, "Jobs by Classification and Type - "+label)

	for _, sg := range dg.Schools {
		node.Children = append(node.Children, buildSchool(sum, root, borough, node, sg))
	}
	return node
}

func buildSchool(sum *aggregate.Summary, root, borough, district *Node, sg aggregate.SchoolGroup) *Node {
	id := fmt.Sprintf("%d/%s", sg.District, sg.Location)
	node := &Node{
		Scope:   model.ScopeSchool,
		Heading: fmt.Sprintf("School: %s (%s)", sg.Location, district.Label),
		Label:   sg.Location,
		DirName: dirName("School", sg.Location),
		Depth:   3,
		Metrics: sum.Metrics(model.SchoolKey(sg.District, sg.Location, model.AllClassifications)),
		Rows:    scopeRows(sum, model.ScopeSchool, id),
		Nav: []Link{
			{Href: upLink(3), Label: "Citywide Summary"},
			{Href: upLink(2), Label: borough.Label},
			{Href: upLink(1), Label: district.Label},
		},
		Comparisons: []Comparison{
			{Label: "Citywide", Metrics: root.Metrics},
			{Label: borough.Label, Metrics: borough.Metrics},
			{Label: district.Label, Metrics: district.Metrics},
		},
	}
	finishNode(node, "Jobs by Classification and Type - "+sg.Location)
	return node
}

// finishNode appends the self comparison column and derives chart specs.
func finishNode(node *Node, barTitle string) {
	if node.Scope != model.ScopeCity {
		node.Comparisons = append(node.Comparisons, Comparison{Label: node.Label, Metrics: node.Metrics})
	}
	node.Bar = chart.BuildBar(barTitle, node.Rows)
	node.Pies = chart.BuildPies(node.Rows)
}

// scopeRows collects the per-classification breakdown for a scope instance.
func scopeRows(sum *aggregate.Summary, scope model.Scope, id string) []chart.Row {
	var rows []chart.Row
	for _, name := range sum.Classifications(scope, id) {
		rows = append(rows, chart.Row{
			Classification: name,
			Metrics:        sum.Metrics(model.GroupKey{Scope: scope, ID: id, Classification: name}),
		})
	}
	return rows
}
