package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/mcncl/goadf/internal/config"
	"github.com/mcncl/goadf/internal/models"
	"github.com/mcncl/goadf/pkg/adf"
)

// Timestamp shapes accepted by date nodes
var (
	unixTimestampRegex = regexp.MustCompile(`^[0-9]{1,10}$`) // seconds since 1970
	unixMilliRegex     = regexp.MustCompile(`^1[0-9]{12}$`)  // milliseconds
	hexColorRegex      = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

var statusColors = map[string]bool{
	"neutral": true, "purple": true, "blue": true, "red": true, "yellow": true, "green": true,
}

// Analyzer walks decoded documents and collects statistics
type Analyzer struct {
	// config holds the inspect settings used by Report
	config *config.Config
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		config: config.NewConfig(), // Use default config if none provided
	}
}

// NewAnalyzerWithConfig creates a new Analyzer instance with custom configuration.
func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	return &Analyzer{config: cfg}
}

// Analyze visits every node under root and returns its statistics. Values that
// decode fine but look wrong to Jira, such as a date in the wrong unit, are
// reported as warnings.
func (a *Analyzer) Analyze(root adf.Node) models.Stats {
	stats := models.Stats{
		Nodes: make(map[string]int),
		Marks: make(map[string]int),
	}

	// The walk callback never fails
	_ = adf.Walk(root, func(n adf.Node, depth int) error {
		stats.Nodes[string(n.Kind())]++
		stats.TotalNodes++
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		for _, m := range adf.Marks(n) {
			stats.Marks[string(m.Kind())]++
			if w := checkMark(m); w != "" {
				stats.Warnings = append(stats.Warnings, w)
			}
		}
		if w := checkNode(n); w != "" {
			stats.Warnings = append(stats.Warnings, w)
		}
		if text, ok := n.(*adf.Text); ok {
			stats.TextLength += utf8.RuneCountInString(text.Text)
		}
		return nil
	})

	return stats
}

func checkNode(n adf.Node) string {
	switch n := n.(type) {
	case *adf.Date:
		ts := n.Attrs.Timestamp
		if unixMilliRegex.MatchString(ts) {
			return fmt.Sprintf("date timestamp %q looks like milliseconds", ts)
		}
		if !unixTimestampRegex.MatchString(ts) {
			return fmt.Sprintf("date timestamp %q is not a unix timestamp", ts)
		}
	case *adf.Status:
		if !statusColors[n.Attrs.Color] {
			return fmt.Sprintf("status color %q is not one of the standard colors", n.Attrs.Color)
		}
	case *adf.Heading:
		if n.Attrs.Level < 1 || n.Attrs.Level > 6 {
			return fmt.Sprintf("heading level %d is outside 1-6", n.Attrs.Level)
		}
	}
	return ""
}

func checkMark(m adf.Mark) string {
	switch m := m.(type) {
	case *adf.TextColor:
		if !hexColorRegex.MatchString(m.Attrs.Color) {
			return fmt.Sprintf("textColor %q is not a #rrggbb color", m.Attrs.Color)
		}
	case *adf.BackgroundColor:
		if !hexColorRegex.MatchString(m.Attrs.Color) {
			return fmt.Sprintf("backgroundColor %q is not a #rrggbb color", m.Attrs.Color)
		}
	}
	return ""
}

// Report turns stats into labelled rows, nodes before marks, each group ordered
// by descending count then kind. Kinds hidden by the config are left out.
func (a *Analyzer) Report(stats models.Stats) []models.ReportRow {
	rows := a.rows(stats.Nodes, false)
	return append(rows, a.rows(stats.Marks, true)...)
}

func (a *Analyzer) rows(counts map[string]int, mark bool) []models.ReportRow {
	rows := make([]models.ReportRow, 0, len(counts))
	for kind, count := range counts {
		if a.config.IsHidden(kind) {
			continue
		}
		rows = append(rows, models.ReportRow{
			Kind:  kind,
			Label: a.config.KindLabel(kind),
			Count: count,
			Mark:  mark,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Kind < rows[j].Kind
	})
	return rows
}
