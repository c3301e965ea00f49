package domain

// LeaderboardEntry is one ranked participant. Badges holds badge keys.
type LeaderboardEntry struct {
	Rank       int      `json:"rank" yaml:"rank"`
	Name       string   `json:"name" yaml:"name"`
	PnL        float64  `json:"pnl" yaml:"pnl"`
	PnLPercent float64  `json:"pnlPercent" yaml:"pnlPercent"`
	Trades     int      `json:"trades,omitempty" yaml:"trades"`
	WinRate    float64  `json:"winRate,omitempty" yaml:"winRate"`
	Badges     []string `json:"badges,omitempty" yaml:"badges"`
}

// BadgeDefinition describes an achievement badge.
type BadgeDefinition struct {
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// FinalResults summarises the current user's performance at the end of a
// simulation.
type FinalResults struct {
	UserRank          int     `json:"userRank" yaml:"userRank"`
	TotalParticipants int     `json:"totalParticipants" yaml:"totalParticipants"`
	FinalPnL          float64 `json:"finalPnL" yaml:"finalPnL"`
	FinalPnLPercent   float64 `json:"finalPnLPercent" yaml:"finalPnLPercent"`
	TotalTrades       int     `json:"totalTrades" yaml:"totalTrades"`
	WinRate           float64 `json:"winRate" yaml:"winRate"`
	BestTrade         float64 `json:"bestTrade" yaml:"bestTrade"`
	WorstTrade        float64 `json:"worstTrade" yaml:"worstTrade"`
}

// Metric is a dashboard headline number.
type Metric struct {
	Label  string `json:"label" yaml:"label"`
	Value  string `json:"value" yaml:"value"`
	Trend  string `json:"trend" yaml:"trend"`
	Status string `json:"status" yaml:"status"`
}
