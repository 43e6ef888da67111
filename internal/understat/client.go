// Package understat provides a minimal client for understat.com league
// pages. The site embeds its data as hex-escaped JSON inside script tags,
// so the client scrapes the page and decodes the teamsData payload.
package understat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/walauceh/Premier-League-Analytics-Project/internal/model"
)

// baseURL is the understat site root.
const baseURL = "https://understat.com"

// Client fetches and decodes understat league pages.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns an understat client with a 30s request timeout.
func NewClient() *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// teamSeason mirrors one entry of the embedded teamsData object.
type teamSeason struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	History []struct {
		HA          string    `json:"h_a"`
		XG          float64   `json:"xG"`
		XGA         float64   `json:"xGA"`
		PPDA        ppdaParts `json:"ppda"`
		PPDAAllowed ppdaParts `json:"ppda_allowed"`
		Deep        int       `json:"deep"`
		DeepAllowed int       `json:"deep_allowed"`
		Scored      int       `json:"scored"`
		Missed      int       `json:"missed"`
		Result      string    `json:"result"`
		Date        string    `json:"date"`
	} `json:"history"`
}

// ppdaParts is understat's raw PPDA representation: passes attempted over
// defensive actions.
type ppdaParts struct {
	Att float64 `json:"att"`
	Def float64 `json:"def"`
}

// ratio collapses the parts into the usual PPDA number; zero defensive
// actions yield 0 rather than a division fault.
func (p ppdaParts) ratio() float64 {
	if p.Def == 0 {
		return 0
	}
	return p.Att / p.Def
}

// LeagueTeamMatches fetches the league page (e.g. "EPL", "2024") and maps
// every team's match history to TeamMatchRecords. Understat does not
// publish shot counts on this page, so the shots columns stay zero and
// downstream consumers treat them as a data gap.
func (c *Client) LeagueTeamMatches(league, season string) ([]model.TeamMatchRecord, error) {
	url := fmt.Sprintf("%s/league/%s/%s", c.base, league, season)
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), "teamsData") {
			script = s.Text()
			return false
		}
		return true
	})
	if script == "" {
		return nil, fmt.Errorf("no teamsData script on %s", url)
	}

	payload, err := extractPayload(script, "teamsData")
	if err != nil {
		return nil, err
	}
	return decodeTeamMatches(payload, season)
}

// decodeTeamMatches unmarshals a teamsData JSON document into records.
func decodeTeamMatches(payload []byte, season string) ([]model.TeamMatchRecord, error) {
	var teams map[string]teamSeason
	if err := json.Unmarshal(payload, &teams); err != nil {
		return nil, fmt.Errorf("decode teamsData: %w", err)
	}

	var out []model.TeamMatchRecord
	for _, t := range teams {
		for _, h := range t.History {
			date, err := time.Parse("2006-01-02 15:04:05", h.Date)
			if err != nil {
				// Some dumps carry bare dates.
				if date, err = time.Parse("2006-01-02", h.Date); err != nil {
					return nil, fmt.Errorf("team %s: bad date %q: %w", t.Title, h.Date, err)
				}
			}
			out = append(out, model.TeamMatchRecord{
				Team:         t.Title,
				Date:         date.Truncate(24 * time.Hour),
				Venue:        h.HA,
				GoalsFor:     h.Scored,
				GoalsAgainst: h.Missed,
				XG:           h.XG,
				XGA:          h.XGA,
				PPDA:         h.PPDA.ratio(),
				PPDAAllowed:  h.PPDAAllowed.ratio(),
				DeepAllowed:  h.DeepAllowed,
				Season:       season,
				Result:       h.Result,
				Points:       resultPoints(h.Result),
			})
		}
	}
	return out, nil
}

func resultPoints(result string) int {
	switch result {
	case "w":
		return 3
	case "d":
		return 1
	default:
		return 0
	}
}

// extractPayload pulls the hex-escaped JSON string out of a
// `var <name> = JSON.parse('...')` assignment and decodes the escapes.
func extractPayload(script, name string) ([]byte, error) {
	idx := strings.Index(script, name)
	if idx < 0 {
		return nil, fmt.Errorf("variable %s not found", name)
	}
	rest := script[idx:]

	const open = "JSON.parse('"
	start := strings.Index(rest, open)
	if start < 0 {
		return nil, fmt.Errorf("no JSON.parse payload for %s", name)
	}
	rest = rest[start+len(open):]

	end := strings.Index(rest, "')")
	if end < 0 {
		return nil, fmt.Errorf("unterminated payload for %s", name)
	}
	return unescapeHex(rest[:end])
}

// unescapeHex decodes the \xNN escape sequences understat uses in its
// embedded payloads, leaving everything else as-is.
func unescapeHex(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+3 < len(s) && s[i+1] == 'x' {
			b, err := strconv.ParseUint(s[i+2:i+4], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad hex escape at %d: %w", i, err)
			}
			out = append(out, byte(b))
			i += 4
			continue
		}
		out = append(out, s[i])
		i++
	}
	return out, nil
}
