// Package chart renders labeled multi-period numeric series as grouped
// horizontal bars. One engine serves both dashboard charts; the differences
// (signed vs. bounded values) are expressed through the scale policy.
package chart

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/vish0009/MWPL-NSE/internal/report"
)

// Period identifies one of the three sampled offsets, in declared render order.
type Period int

const (
	PeriodCurrent Period = iota
	PeriodOneWeekAgo
	PeriodTwoWeeksAgo
)

var periodOrder = [3]Period{PeriodCurrent, PeriodOneWeekAgo, PeriodTwoWeeksAgo}

func (p Period) Class() string {
	switch p {
	case PeriodCurrent:
		return "period-current"
	case PeriodOneWeekAgo:
		return "period-week"
	default:
		return "period-two-weeks"
	}
}

func (p Period) Label() string {
	switch p {
	case PeriodCurrent:
		return "Current"
	case PeriodOneWeekAgo:
		return "1 Week Ago"
	default:
		return "2 Weeks Ago"
	}
}

// Scale is the bar-magnitude policy: relative to the largest present value,
// or fixed against a constant domain ceiling.
type Scale struct {
	fixed   bool
	ceiling float64
}

// Relative scales bars against max(|v|) over all present values, floored at 1
// so an all-zero series does not divide by zero.
func Relative() Scale { return Scale{} }

// Fixed scales bars against a constant ceiling. Values above the ceiling are
// not clamped; such a bar may overflow its track.
func Fixed(ceiling float64) Scale { return Scale{fixed: true, ceiling: ceiling} }

// Item is one renderable series: a label, an optional reference URL and up to
// three period samples. A nil sample renders no bar for that period.
type Item struct {
	Label  string
	URL    string
	Values report.PeriodPerformance
}

// Chart is a reusable bar-group renderer for one series kind.
type Chart struct {
	Heading string
	Scale   Scale
	// SignColors adds positive/negative classes per bar, for signed series.
	SignColors bool
}

// Bar is one rendered sample. WidthPct is the final settled width; the markup
// starts it at zero and carries the target on a data attribute so the CSS
// transition can observe the change after attach.
type Bar struct {
	Classes  string
	Value    float64
	WidthPct float64
}

// BarGroup is the rendered form of one Item. An item with no present samples
// still yields a group with an empty Bars slice.
type BarGroup struct {
	Label string
	URL   string
	Bars  []Bar
}

// Build computes the bar geometry without touching markup.
func (c *Chart) Build(items []Item) []BarGroup {
	max := c.maxMagnitude(items)

	groups := make([]BarGroup, 0, len(items))
	for _, item := range items {
		group := BarGroup{Label: item.Label, URL: item.URL}
		for _, p := range periodOrder {
			v := periodValue(p, item.Values)
			if v == nil {
				continue
			}
			classes := []string{p.Class()}
			if c.SignColors {
				if *v < 0 {
					classes = append(classes, "negative")
				} else {
					classes = append(classes, "positive")
				}
			}
			group.Bars = append(group.Bars, Bar{
				Classes:  strings.Join(classes, " "),
				Value:    *v,
				WidthPct: math.Abs(*v) / max * 100,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// Render produces the chart fragment, or a wrapped template error.
func (c *Chart) Render(items []Item) (template.HTML, error) {
	var sb strings.Builder
	data := struct {
		Heading string
		Legend  []Period
		Groups  []BarGroup
	}{
		Heading: c.Heading,
		Legend:  periodOrder[:],
		Groups:  c.Build(items),
	}
	if err := chartTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render chart %q: %w", c.Heading, err)
	}
	return template.HTML(sb.String()), nil
}

func (c *Chart) maxMagnitude(items []Item) float64 {
	if c.Scale.fixed {
		return c.Scale.ceiling
	}
	max := 1.0
	for _, item := range items {
		for _, p := range periodOrder {
			if v := periodValue(p, item.Values); v != nil && math.Abs(*v) > max {
				max = math.Abs(*v)
			}
		}
	}
	return max
}

func periodValue(p Period, values report.PeriodPerformance) *float64 {
	switch p {
	case PeriodCurrent:
		return values.Current
	case PeriodOneWeekAgo:
		return values.OneWeekAgo
	default:
		return values.TwoWeeksAgo
	}
}

var chartTmpl = template.Must(template.New("chart").Parse(`<div class="chart">
<h2>{{.Heading}}</h2>
<div class="legend">{{range .Legend}}<span class="legend-item"><span class="swatch {{.Class}}"></span>{{.Label}}</span>{{end}}</div>
{{range .Groups}}<div class="bar-group">
<div class="bar-label">{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Label}}</a>{{else}}{{.Label}}{{end}}</div>
<div class="bars">{{range .Bars}}<div class="bar {{.Classes}}" style="width:0%" data-width="{{printf "%.2f" .WidthPct}}%" title="{{printf "%.2f" .Value}}%"></div>{{end}}</div>
</div>
{{end}}</div>
`))
