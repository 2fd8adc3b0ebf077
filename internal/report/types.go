package report

// MarketSummary holds the four narrative sections of the report. The section
// is only rendered when all four are present in the payload.
type MarketSummary struct {
	MarketOverview              string
	KeySectorNews               string
	MajorCorporateAnnouncements string
	EconomicPolicyFactors       string
}

// PeriodPerformance is three samples at fixed offsets. Each is independently
// optional: a nil sample means "no data", which is not the same as zero.
type PeriodPerformance struct {
	Current     *float64
	OneWeekAgo  *float64
	TwoWeeksAgo *float64
}

// SectorPerformance is a signed percentage series for one sector index.
type SectorPerformance struct {
	Sector      string
	Performance PeriodPerformance
}

// StockPerformance is an MWPL utilisation series for one ticker. Values are
// percentages in [0,100] by domain convention; the renderer does not clamp.
type StockPerformance struct {
	Stock string
	URL   string
	MWPL  PeriodPerformance
}

// Report is one normalized model response. Every section is optional; a
// response carrying only some of them is still a valid report.
type Report struct {
	Summary *MarketSummary
	Sectors []SectorPerformance
	Stocks  []StockPerformance
}
