package report

import (
	"encoding/json"
	"testing"
)

func parseDoc(t *testing.T, raw string) map[string]any {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("bad test fixture: %v", err)
	}
	return doc
}

const fullDoc = `{
  "summary": {
    "marketOverview": "flat",
    "keySectorNews": "it up",
    "majorCorporateAnnouncements": "results",
    "economicPolicyFactors": "rbi hold"
  },
  "sectorPerformance": [
    {"sector": "NIFTY IT", "performance": {"current": 1.2, "oneWeekAgo": -0.8, "twoWeeksAgo": 0.4}}
  ],
  "mwplPerformance": [
    {"stock": "RELIANCE", "url": "https://nse/reliance", "mwpl": {"current": 45.0}}
  ]
}`

func TestNormalizeFullDocument(t *testing.T) {
	rep := Normalize(parseDoc(t, fullDoc))

	if rep.Summary == nil {
		t.Fatal("expected summary")
	}
	if rep.Summary.MarketOverview != "flat" {
		t.Errorf("unexpected overview %q", rep.Summary.MarketOverview)
	}

	if len(rep.Sectors) != 1 {
		t.Fatalf("expected 1 sector, got %d", len(rep.Sectors))
	}
	perf := rep.Sectors[0].Performance
	if perf.Current == nil || *perf.Current != 1.2 {
		t.Errorf("unexpected current sample %v", perf.Current)
	}
	if perf.OneWeekAgo == nil || *perf.OneWeekAgo != -0.8 {
		t.Errorf("unexpected one-week sample %v", perf.OneWeekAgo)
	}

	if len(rep.Stocks) != 1 {
		t.Fatalf("expected 1 stock, got %d", len(rep.Stocks))
	}
	stock := rep.Stocks[0]
	if stock.URL != "https://nse/reliance" {
		t.Errorf("unexpected url %q", stock.URL)
	}
	if stock.MWPL.Current == nil || *stock.MWPL.Current != 45.0 {
		t.Errorf("unexpected mwpl current %v", stock.MWPL.Current)
	}
	if stock.MWPL.OneWeekAgo != nil {
		t.Error("absent sample must stay nil, not default to zero")
	}
}

func TestNormalizePartialAndMalformed(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantSummary bool
		wantSectors int
		wantStocks  int
	}{
		{
			name:        "summary only",
			raw:         `{"summary": {"marketOverview": "a", "keySectorNews": "b", "majorCorporateAnnouncements": "c", "economicPolicyFactors": "d"}}`,
			wantSummary: true,
		},
		{
			name: "summary missing one field is omitted",
			raw:  `{"summary": {"marketOverview": "a", "keySectorNews": "b", "majorCorporateAnnouncements": "c"}}`,
		},
		{
			name: "wrong-typed summary is omitted",
			raw:  `{"summary": "not an object"}`,
		},
		{
			name: "wrong-typed sector list is omitted",
			raw:  `{"sectorPerformance": {"sector": "NIFTY IT"}}`,
		},
		{
			name:        "sector entry without a name is skipped",
			raw:         `{"sectorPerformance": [{"performance": {"current": 1}}, {"sector": "NIFTY BANK"}]}`,
			wantSectors: 1,
		},
		{
			name:       "string-typed samples are omitted, item kept",
			raw:        `{"mwplPerformance": [{"stock": "TCS", "mwpl": {"current": "45", "oneWeekAgo": 40}}]}`,
			wantStocks: 1,
		},
		{
			name: "empty document",
			raw:  `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Normalize(parseDoc(t, tt.raw))
			if (rep.Summary != nil) != tt.wantSummary {
				t.Errorf("summary present = %v, want %v", rep.Summary != nil, tt.wantSummary)
			}
			if len(rep.Sectors) != tt.wantSectors {
				t.Errorf("got %d sectors, want %d", len(rep.Sectors), tt.wantSectors)
			}
			if len(rep.Stocks) != tt.wantStocks {
				t.Errorf("got %d stocks, want %d", len(rep.Stocks), tt.wantStocks)
			}
		})
	}
}

func TestNormalizeCoercesMixedSamples(t *testing.T) {
	raw := `{"mwplPerformance": [{"stock": "TCS", "mwpl": {"current": "45", "oneWeekAgo": 40}}]}`
	rep := Normalize(parseDoc(t, raw))

	mwpl := rep.Stocks[0].MWPL
	if mwpl.Current != nil {
		t.Error("string current should be treated as absent")
	}
	if mwpl.OneWeekAgo == nil || *mwpl.OneWeekAgo != 40 {
		t.Errorf("numeric one-week sample lost: %v", mwpl.OneWeekAgo)
	}
}
