// Package assemble builds the report tree and serializes it to a nested
// static HTML dashboard.
//
// The tree mirrors the scope hierarchy: the citywide index at the output
// root, one directory per borough, district directories nested inside their
// borough, school directories inside their district. Every page links only
// through depth-relative paths so the tree can be served from any document
// root.
package assemble

import (
	"github.com/subcentral/fillrate/internal/domain/model"
	"github.com/subcentral/fillrate/internal/report/chart"
)

// pageFile is the document written inside every node directory.
const pageFile = "index.html"

// barFile is the bar chart document written next to each page.
const barFile = "bar_chart.html"

// Link is one navigation entry on a page.
type Link struct {
	Href  string
	Label string
}

// Comparison is one ancestor-or-self column in a node's comparison block.
type Comparison struct {
	Label   string
	Metrics model.Metrics
}

// Node is one unit of output: the citywide index, a borough, a district, or
// a school. Built bottom-up from aggregation output, written exactly once.
type Node struct {
	Scope model.Scope

	// Heading is the page headline, e.g. "Borough: Queens".
	Heading string

	// Label names the node in parent listings and comparisons.
	Label string

	// DirName is the sanitized directory component; empty for the city root.
	DirName string

	// Depth below the output root; the city root is 0.
	Depth int

	// Metrics is the all-classifications rollup for this scope.
	Metrics model.Metrics

	// Rows holds the per-classification breakdown, sorted.
	Rows []chart.Row

	// Nav lists ancestor links, outermost first.
	Nav []Link

	// Comparisons holds citywide → ... → self, outermost first. Empty on
	// the city root.
	Comparisons []Comparison

	Bar  chart.BarSpec
	Pies []chart.PieSpec

	Children []*Node
}

// ChildLink is the relative link from this node to a child node's page.
func (n *Node) ChildLink(child *Node) string {
	return child.DirName + "/" + pageFile
}
