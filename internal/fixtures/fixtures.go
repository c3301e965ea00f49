// Package fixtures holds the sample datasets shown on the dashboards and
// trading screens. The data is embedded YAML and treated as read-only.
package fixtures

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/tradesim/platform/internal/core/domain"
)

//go:embed fixtures.yaml
var raw []byte

// CurrentUserName is the leaderboard name that marks the viewing participant.
const CurrentUserName = "You"

// Data is the full fixture set.
type Data struct {
	Simulations      []domain.Simulation       `yaml:"simulations"`
	Metrics          []domain.Metric           `yaml:"metrics"`
	Market           []domain.Quote            `yaml:"market"`
	Portfolio        domain.Portfolio          `yaml:"portfolio"`
	TimeRemaining    string                    `yaml:"timeRemaining"`
	LiveLeaderboard  []domain.LeaderboardEntry `yaml:"liveLeaderboard"`
	FinalResults     domain.FinalResults       `yaml:"finalResults"`
	FinalLeaderboard []domain.LeaderboardEntry `yaml:"finalLeaderboard"`
	Badges           []domain.BadgeDefinition  `yaml:"badges"`
}

// Load decodes the embedded fixture file.
func Load() (*Data, error) {
	return Parse(raw)
}

// Parse decodes a fixture document.
func Parse(b []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("fixtures: decode: %w", err)
	}
	return &d, nil
}

// MustLoad is Load for program start-up; it panics on a malformed file.
func MustLoad() *Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// SeedSimulations returns fresh copies of the seeded simulations so every
// workspace starts from the same registry contents.
func (d *Data) SeedSimulations() []domain.Simulation {
	out := make([]domain.Simulation, len(d.Simulations))
	for i, s := range d.Simulations {
		out[i] = s.Clone()
	}
	return out
}

// Quote looks up a market row by symbol.
func (d *Data) Quote(symbol string) (domain.Quote, bool) {
	i := slices.IndexFunc(d.Market, func(q domain.Quote) bool { return q.Symbol == symbol })
	if i < 0 {
		return domain.Quote{}, false
	}
	return d.Market[i], true
}

// Badge looks up a badge definition by key.
func (d *Data) Badge(key string) (domain.BadgeDefinition, bool) {
	i := slices.IndexFunc(d.Badges, func(b domain.BadgeDefinition) bool { return b.Key == key })
	if i < 0 {
		return domain.BadgeDefinition{}, false
	}
	return d.Badges[i], true
}

// CurrentUserBadges resolves the badge definitions earned by the viewing
// participant on the final leaderboard. Unknown keys are skipped.
func (d *Data) CurrentUserBadges() []domain.BadgeDefinition {
	var out []domain.BadgeDefinition
	for _, e := range d.FinalLeaderboard {
		if e.Name != CurrentUserName {
			continue
		}
		for _, key := range e.Badges {
			if b, ok := d.Badge(key); ok {
				out = append(out, b)
			}
		}
	}
	return out
}
