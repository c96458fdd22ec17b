package arxiv

import (
	"io"
	"log/slog"
	"testing"
)

// discardLogger returns a logger that drops everything.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2401.00001v1</id>
    <title>Deep Learning for Text</title>
    <summary>We study transformer-based models. Results are state-of-the-art.</summary>
    <published>2024-01-01T00:00:00Z</published>
    <updated>2024-01-02T00:00:00Z</updated>
    <author><name>Alice Smith</name></author>
    <author><name>Bob Jones</name></author>
    <category term="cs.LG"/>
    <category term="cs.CL"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2401.00002v1</id>
    <title>Missing Abstract Paper</title>
    <summary></summary>
    <author><name>Carol White</name></author>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2401.00003v1</id>
    <title>No Authors Paper</title>
    <summary>An abstract without authors.</summary>
  </entry>
</feed>`

// TestParseFeed tests Atom feed parsing and entry validation.
func TestParseFeed(t *testing.T) {
	t.Parallel()

	t.Run("parses valid entries and skips invalid ones", func(t *testing.T) {
		t.Parallel()

		papers, err := ParseFeed([]byte(sampleFeed), discardLogger())
		if err != nil {
			t.Fatalf("failed to parse feed: %v", err)
		}

		if len(papers) != 1 {
			t.Fatalf("expected 1 valid paper, got %d", len(papers))
		}

		p := papers[0]
		if p.ArxivID != "2401.00001v1" {
			t.Errorf("expected arxiv_id 2401.00001v1, got %q", p.ArxivID)
		}
		if p.Title != "Deep Learning for Text" {
			t.Errorf("unexpected title %q", p.Title)
		}
		if len(p.Authors) != 2 || p.Authors[0] != "Alice Smith" {
			t.Errorf("unexpected authors %v", p.Authors)
		}
		if len(p.Categories) != 2 || p.Categories[0] != "cs.LG" {
			t.Errorf("unexpected categories %v", p.Categories)
		}
		if p.Published != "2024-01-01T00:00:00Z" {
			t.Errorf("unexpected published %q", p.Published)
		}
	})

	t.Run("invalid XML returns an error", func(t *testing.T) {
		t.Parallel()

		if _, err := ParseFeed([]byte("<feed><entry>"), discardLogger()); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("empty feed yields empty non-nil slice", func(t *testing.T) {
		t.Parallel()

		papers, err := ParseFeed([]byte(`<feed xmlns="http://www.w3.org/2005/Atom"></feed>`), discardLogger())
		if err != nil {
			t.Fatalf("failed to parse feed: %v", err)
		}
		if papers == nil || len(papers) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", papers)
		}
	})
}
