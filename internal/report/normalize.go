package report

// Normalize walks a parsed response document and returns the sections it
// recognizes. Nothing here fails: a missing or wrong-typed field is treated
// as omitted, so a partially-shaped response degrades per section instead of
// discarding the whole report.
func Normalize(doc map[string]any) *Report {
	return &Report{
		Summary: normalizeSummary(doc["summary"]),
		Sectors: normalizeSectors(doc["sectorPerformance"]),
		Stocks:  normalizeStocks(doc["mwplPerformance"]),
	}
}

func normalizeSummary(v any) *MarketSummary {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	s := &MarketSummary{
		MarketOverview:              asString(obj["marketOverview"]),
		KeySectorNews:               asString(obj["keySectorNews"]),
		MajorCorporateAnnouncements: asString(obj["majorCorporateAnnouncements"]),
		EconomicPolicyFactors:       asString(obj["economicPolicyFactors"]),
	}
	if s.MarketOverview == "" || s.KeySectorNews == "" ||
		s.MajorCorporateAnnouncements == "" || s.EconomicPolicyFactors == "" {
		return nil
	}
	return s
}

func normalizeSectors(v any) []SectorPerformance {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	var sectors []SectorPerformance
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := asString(obj["sector"])
		if name == "" {
			continue
		}
		sectors = append(sectors, SectorPerformance{
			Sector:      name,
			Performance: normalizePeriods(obj["performance"]),
		})
	}
	return sectors
}

func normalizeStocks(v any) []StockPerformance {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	var stocks []StockPerformance
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ticker := asString(obj["stock"])
		if ticker == "" {
			continue
		}
		stocks = append(stocks, StockPerformance{
			Stock: ticker,
			URL:   asString(obj["url"]),
			MWPL:  normalizePeriods(obj["mwpl"]),
		})
	}
	return stocks
}

func normalizePeriods(v any) PeriodPerformance {
	obj, ok := v.(map[string]any)
	if !ok {
		return PeriodPerformance{}
	}
	return PeriodPerformance{
		Current:     asNumber(obj["current"]),
		OneWeekAgo:  asNumber(obj["oneWeekAgo"]),
		TwoWeeksAgo: asNumber(obj["twoWeeksAgo"]),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asNumber(v any) *float64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}
