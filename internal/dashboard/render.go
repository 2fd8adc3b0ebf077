package dashboard

import (
	"html/template"
	"strings"

	"github.com/vish0009/MWPL-NSE/internal/ai"
	"github.com/vish0009/MWPL-NSE/internal/chart"
	"github.com/vish0009/MWPL-NSE/internal/report"
)

// View is one cycle's rendered output. An empty fragment means the section
// was absent from the response and its container stays hidden.
type View struct {
	Summary   template.HTML
	Sectors   template.HTML
	Stocks    template.HTML
	Citations template.HTML

	responseLength int
	citationCount  int
}

func (v *View) sections() []string {
	var names []string
	if v.Summary != "" {
		names = append(names, "summary")
	}
	if v.Sectors != "" {
		names = append(names, "sectors")
	}
	if v.Stocks != "" {
		names = append(names, "mwpl")
	}
	if v.Citations != "" {
		names = append(names, "citations")
	}
	return names
}

func renderView(rep *report.Report, citations []ai.Citation) (*View, error) {
	view := &View{}

	if rep.Summary != nil {
		var sb strings.Builder
		if err := summaryTmpl.Execute(&sb, rep.Summary); err != nil {
			return nil, &RenderError{Err: err}
		}
		view.Summary = template.HTML(sb.String())
	}

	if len(rep.Sectors) > 0 {
		c := chart.Chart{
			Heading:    "Sector Performance (%)",
			Scale:      chart.Relative(),
			SignColors: true,
		}
		html, err := c.Render(sectorItems(rep.Sectors))
		if err != nil {
			return nil, &RenderError{Err: err}
		}
		view.Sectors = html
	}

	if len(rep.Stocks) > 0 {
		c := chart.Chart{
			Heading: "MWPL Utilisation (%)",
			Scale:   chart.Fixed(100),
		}
		html, err := c.Render(stockItems(rep.Stocks))
		if err != nil {
			return nil, &RenderError{Err: err}
		}
		view.Stocks = html
	}

	html, err := chart.RenderCitations(citations)
	if err != nil {
		return nil, &RenderError{Err: err}
	}
	view.Citations = html

	return view, nil
}

func sectorItems(sectors []report.SectorPerformance) []chart.Item {
	items := make([]chart.Item, 0, len(sectors))
	for _, s := range sectors {
		items = append(items, chart.Item{Label: s.Sector, Values: s.Performance})
	}
	return items
}

func stockItems(stocks []report.StockPerformance) []chart.Item {
	items := make([]chart.Item, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, chart.Item{Label: s.Stock, URL: s.URL, Values: s.MWPL})
	}
	return items
}

var summaryTmpl = template.Must(template.New("summary").Parse(`<div class="summary">
<h2>Market Summary</h2>
<section><h3>Market Overview</h3><p>{{.MarketOverview}}</p></section>
<section><h3>Key Sector News</h3><p>{{.KeySectorNews}}</p></section>
<section><h3>Major Corporate Announcements</h3><p>{{.MajorCorporateAnnouncements}}</p></section>
<section><h3>Economic &amp; Policy Factors</h3><p>{{.EconomicPolicyFactors}}</p></section>
</div>
`))
