// Package export renders leaderboards as CSV.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tradesim/platform/internal/core/domain"
)

// Filename is the suggested download name for an exported leaderboard.
const Filename = "simulation_results.csv"

// ContentType is the media type of WriteLeaderboardCSV's output.
const ContentType = "text/csv"

// Header is the first record of every export.
var Header = []string{"Rank", "Name", "P&L", "P&L %", "Trades", "Win Rate", "Badges"}

// BadgeSeparator joins an entry's badges into one field.
const BadgeSeparator = "; "

// WriteLeaderboardCSV writes the header followed by one record per entry.
// Records are separated by a newline and the last one has no terminator.
// Fields containing commas, quotes or newlines are quoted.
func WriteLeaderboardCSV(w io.Writer, entries []domain.LeaderboardEntry) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(record(e)); err != nil {
			return fmt.Errorf("export: write rank %d: %w", e.Rank, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}

	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}

// LeaderboardCSV returns the export as a string.
func LeaderboardCSV(entries []domain.LeaderboardEntry) (string, error) {
	var b strings.Builder
	if err := WriteLeaderboardCSV(&b, entries); err != nil {
		return "", err
	}
	return b.String(), nil
}

func record(e domain.LeaderboardEntry) []string {
	return []string{
		strconv.Itoa(e.Rank),
		e.Name,
		formatNumber(e.PnL),
		formatNumber(e.PnLPercent),
		strconv.Itoa(e.Trades),
		formatNumber(e.WinRate),
		strings.Join(e.Badges, BadgeSeparator),
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
