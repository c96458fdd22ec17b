package extract

import (
	"reflect"
	"testing"
)

// TestExtract tests text, link and image extraction.
func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("strips tags and collapses whitespace", func(t *testing.T) {
		t.Parallel()

		text, _, _ := Extract("<html><body><h1>Title</h1>\n<p>Some   text</p></body></html>")
		if text != "Title Some text" {
			t.Errorf("expected 'Title Some text', got %q", text)
		}
	})

	t.Run("removes script content entirely", func(t *testing.T) {
		t.Parallel()

		text, _, _ := Extract(`<p>before</p><script type="text/javascript">var hidden = "secret";</script><p>after</p>`)
		if text != "before after" {
			t.Errorf("expected 'before after', got %q", text)
		}
	})

	t.Run("removes multiline style content", func(t *testing.T) {
		t.Parallel()

		text, _, _ := Extract("<style>\nbody {\n  color: red;\n}\n</style><p>visible</p>")
		if text != "visible" {
			t.Errorf("expected 'visible', got %q", text)
		}
	})

	t.Run("collects links in order with duplicates", func(t *testing.T) {
		t.Parallel()

		_, links, _ := Extract(`<a href="/one">1</a><a href='/two'>2</a><link href=/one>`)
		want := []string{"/one", "/two", "/one"}
		if !reflect.DeepEqual(links, want) {
			t.Errorf("expected %v, got %v", want, links)
		}
	})

	t.Run("collects image sources", func(t *testing.T) {
		t.Parallel()

		_, _, images := Extract(`<img src="a.png"><img src="b.jpg" alt="x">`)
		want := []string{"a.png", "b.jpg"}
		if !reflect.DeepEqual(images, want) {
			t.Errorf("expected %v, got %v", want, images)
		}
	})

	t.Run("attributes inside script blocks are not collected", func(t *testing.T) {
		t.Parallel()

		_, links, images := Extract(`<script>document.write('<a href="/evil">x</a><img src="e.png">');</script>`)
		if len(links) != 0 {
			t.Errorf("expected no links, got %v", links)
		}
		if len(images) != 0 {
			t.Errorf("expected no images, got %v", images)
		}
	})

	t.Run("unquoted attribute values are collected", func(t *testing.T) {
		t.Parallel()

		_, links, _ := Extract(`<a href=/bare>x</a>`)
		want := []string{"/bare"}
		if !reflect.DeepEqual(links, want) {
			t.Errorf("expected %v, got %v", want, links)
		}
	})

	t.Run("unbalanced markup degrades gracefully", func(t *testing.T) {
		t.Parallel()

		text, links, _ := Extract(`<p>open paragraph <a href="/x">link text`)
		if text != "open paragraph link text" {
			t.Errorf("expected 'open paragraph link text', got %q", text)
		}
		if !reflect.DeepEqual(links, []string{"/x"}) {
			t.Errorf("expected [/x], got %v", links)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		text, links, images := Extract("")
		if text != "" {
			t.Errorf("expected empty text, got %q", text)
		}
		if links == nil || images == nil {
			t.Error("expected non-nil slices")
		}
		if len(links) != 0 || len(images) != 0 {
			t.Errorf("expected no links or images, got %v %v", links, images)
		}
	})

	t.Run("plain text passes through", func(t *testing.T) {
		t.Parallel()

		text, _, _ := Extract("no markup at all")
		if text != "no markup at all" {
			t.Errorf("expected unchanged text, got %q", text)
		}
	})
}
