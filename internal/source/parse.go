package source

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/clanwatch/clanwatch/internal/roster"
)

// ParseRoster extracts (name, score) observations from a hiscores page.
//
// The page layout is a plain table: one row per member, name in the
// first cell, score in the last. Header rows, decorative rows and
// anything whose last cell is not numeric are skipped, so a page with
// no recognizable members yields an empty slice, not an error.
func ParseRoster(r io.Reader, observedAt time.Time) ([]roster.Observation, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var observations []roster.Observation
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if obs, ok := parseRow(n, observedAt); ok {
				observations = append(observations, obs)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return observations, nil
}

func parseRow(tr *html.Node, observedAt time.Time) (roster.Observation, bool) {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			if c.Data == "th" {
				return roster.Observation{}, false
			}
			cells = append(cells, nodeText(c))
		}
	}
	if len(cells) < 2 {
		return roster.Observation{}, false
	}

	name := cells[0]
	score, err := parseScore(cells[len(cells)-1])
	if name == "" || err != nil {
		return roster.Observation{}, false
	}

	return roster.Observation{Name: name, Score: score, ObservedAt: observedAt}, true
}

// parseScore handles the page's thousands formatting ("1,234,567").
func parseScore(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return strconv.Atoi(s)
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
