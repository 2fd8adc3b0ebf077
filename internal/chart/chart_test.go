package chart

import (
	"strings"
	"testing"

	"github.com/vish0009/MWPL-NSE/internal/report"
)

func f(v float64) *float64 { return &v }

func TestRelativeScaleWidths(t *testing.T) {
	c := Chart{Heading: "Sectors", Scale: Relative(), SignColors: true}

	groups := c.Build([]Item{
		{Label: "IT", Values: report.PeriodPerformance{Current: f(10)}},
		{Label: "Bank", Values: report.PeriodPerformance{Current: f(-20)}},
		{Label: "Auto", Values: report.PeriodPerformance{Current: f(5)}},
	})

	wantWidths := []float64{50, 100, 25}
	for i, want := range wantWidths {
		if len(groups[i].Bars) != 1 {
			t.Fatalf("group %d: expected 1 bar, got %d", i, len(groups[i].Bars))
		}
		if got := groups[i].Bars[0].WidthPct; got != want {
			t.Errorf("group %d: width = %v, want %v", i, got, want)
		}
	}

	if !strings.Contains(groups[0].Bars[0].Classes, "positive") {
		t.Errorf("positive value missing positive class: %q", groups[0].Bars[0].Classes)
	}
	if !strings.Contains(groups[1].Bars[0].Classes, "negative") {
		t.Errorf("negative value missing negative class: %q", groups[1].Bars[0].Classes)
	}
}

func TestRelativeScaleFloorsMaxAtOne(t *testing.T) {
	c := Chart{Scale: Relative()}
	groups := c.Build([]Item{
		{Label: "Flat", Values: report.PeriodPerformance{Current: f(0)}},
	})
	if got := groups[0].Bars[0].WidthPct; got != 0 {
		t.Errorf("zero value width = %v, want 0", got)
	}
}

func TestFixedScaleWidths(t *testing.T) {
	c := Chart{Heading: "MWPL", Scale: Fixed(100)}

	groups := c.Build([]Item{
		{Label: "RELIANCE", Values: report.PeriodPerformance{Current: f(45)}},
	})

	if got := groups[0].Bars[0].WidthPct; got != 45 {
		t.Errorf("width = %v, want 45", got)
	}
	if strings.Contains(groups[0].Bars[0].Classes, "positive") {
		t.Errorf("fixed scale must not sign-color: %q", groups[0].Bars[0].Classes)
	}
}

func TestFixedScaleDoesNotClamp(t *testing.T) {
	c := Chart{Scale: Fixed(100)}
	groups := c.Build([]Item{
		{Label: "HOT", Values: report.PeriodPerformance{Current: f(120)}},
	})
	if got := groups[0].Bars[0].WidthPct; got != 120 {
		t.Errorf("width = %v, want 120 (no clamping)", got)
	}
}

func TestAbsentSamplesProduceNoBars(t *testing.T) {
	c := Chart{Scale: Fixed(100)}

	groups := c.Build([]Item{
		{Label: "Partial", Values: report.PeriodPerformance{OneWeekAgo: f(30)}},
		{Label: "Empty"},
	})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0].Bars) != 1 {
		t.Fatalf("expected exactly 1 bar for the present sample, got %d", len(groups[0].Bars))
	}
	if !strings.Contains(groups[0].Bars[0].Classes, "period-week") {
		t.Errorf("bar should belong to the one-week period: %q", groups[0].Bars[0].Classes)
	}
	// An item with no samples still renders its group container, just with
	// zero bar elements.
	if len(groups[1].Bars) != 0 {
		t.Errorf("expected 0 bars for all-absent item, got %d", len(groups[1].Bars))
	}
}

func TestPeriodRenderOrder(t *testing.T) {
	c := Chart{Scale: Fixed(100)}
	groups := c.Build([]Item{
		{Label: "All", Values: report.PeriodPerformance{
			Current:     f(10),
			OneWeekAgo:  f(20),
			TwoWeeksAgo: f(30),
		}},
	})

	want := []string{"period-current", "period-week", "period-two-weeks"}
	if len(groups[0].Bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(groups[0].Bars))
	}
	for i, cls := range want {
		if groups[0].Bars[i].Classes != cls {
			t.Errorf("bar %d class = %q, want %q", i, groups[0].Bars[i].Classes, cls)
		}
	}
}

func TestRenderMarkup(t *testing.T) {
	c := Chart{Heading: "MWPL", Scale: Fixed(100)}

	html, err := c.Render([]Item{
		{Label: "RELIANCE", URL: "https://nse/reliance", Values: report.PeriodPerformance{Current: f(45)}},
		{Label: "TCS", Values: report.PeriodPerformance{Current: f(60)}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(html)

	// The settled width travels on data-width; the element itself attaches
	// at zero width so the transition has a change to observe.
	if !strings.Contains(out, `style="width:0%" data-width="45.00%"`) {
		t.Errorf("missing deferred width markup:\n%s", out)
	}
	if !strings.Contains(out, `<a href="https://nse/reliance" target="_blank" rel="noopener noreferrer">RELIANCE</a>`) {
		t.Errorf("missing safe label link:\n%s", out)
	}
	if strings.Contains(out, "<a href=\"\"") {
		t.Errorf("item without URL must render a plain label:\n%s", out)
	}
	if !strings.Contains(out, ">TCS<") {
		t.Errorf("plain label missing:\n%s", out)
	}
}
