package arxiv

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"

	"github.com/corpuscan/corpuscan/internal/model"
)

// atomFeed mirrors the subset of the Atom response we consume.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string `xml:"id"`
	Title      string `xml:"title"`
	Summary    string `xml:"summary"`
	Published  string `xml:"published"`
	Updated    string `xml:"updated"`
	Authors    []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
}

// ParseFeed decodes an Atom response and returns one Paper per valid
// entry. An entry missing its ID, title, abstract or authors is logged
// and skipped rather than failing the batch; abstract statistics are not
// yet filled in.
func ParseFeed(data []byte, logger *slog.Logger) ([]model.Paper, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("invalid feed XML: %w", err)
	}

	papers := make([]model.Paper, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		if e.ID == "" {
			logger.Warn("skipping entry without id")
			continue
		}
		// The Atom id is a URL; the ArXiv identifier is its last segment.
		id := e.ID
		if i := strings.LastIndex(id, "/"); i >= 0 {
			id = id[i+1:]
		}

		title := strings.TrimSpace(e.Title)
		abstract := strings.TrimSpace(e.Summary)

		authors := make([]string, 0, len(e.Authors))
		for _, a := range e.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				authors = append(authors, name)
			}
		}

		if title == "" || abstract == "" || len(authors) == 0 {
			logger.Warn("skipping entry with missing fields", "arxivID", id)
			continue
		}

		categories := make([]string, 0, len(e.Categories))
		for _, c := range e.Categories {
			if c.Term != "" {
				categories = append(categories, c.Term)
			}
		}

		papers = append(papers, model.Paper{
			ArxivID:    id,
			Title:      title,
			Authors:    authors,
			Abstract:   abstract,
			Categories: categories,
			Published:  e.Published,
			Updated:    e.Updated,
		})
	}
	return papers, nil
}
