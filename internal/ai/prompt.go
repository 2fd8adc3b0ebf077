package ai

// marketSummaryPrompt is the fixed instruction sent on every refresh. The
// model is told to use live web search and to wrap a single JSON object in a
// fenced code block; the extractor downstream depends on exactly this framing.
const marketSummaryPrompt = `You are a financial market analyst covering the Indian stock market (NSE).
Using live web search, prepare today's market summary.

Cover:
1. Overall market overview (NIFTY 50, SENSEX, breadth, FII/DII activity).
2. Key sector news and sector index performance.
3. Major corporate announcements (results, orders, M&A, regulatory actions).
4. Economic and policy factors (RBI, inflation, global cues).
5. Sector performance percentages: current, one week ago, two weeks ago.
6. Market-Wide Position Limit (MWPL) utilisation percentages for the most
   active F&O stocks: current, one week ago, two weeks ago. Include an NSE or
   exchange reference URL per stock when one is available.

Respond with a SINGLE JSON object wrapped in a fenced code block, exactly:

` + "```json" + `
{
  "summary": {
    "marketOverview": "...",
    "keySectorNews": "...",
    "majorCorporateAnnouncements": "...",
    "economicPolicyFactors": "..."
  },
  "sectorPerformance": [
    {"sector": "NIFTY IT", "performance": {"current": 1.2, "oneWeekAgo": -0.8, "twoWeeksAgo": 0.4}}
  ],
  "mwplPerformance": [
    {"stock": "RELIANCE", "url": "https://...", "mwpl": {"current": 45.0, "oneWeekAgo": 42.1, "twoWeeksAgo": 39.7}}
  ]
}
` + "```" + `

Rules:
- Sector percentages are signed; MWPL values are percentages between 0 and 100.
- Omit a period value you cannot source rather than guessing it.
- No text outside the fenced block.`
