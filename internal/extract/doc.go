// Package extract converts raw HTML markup into plain text plus the link
// and image references found in it.
//
// Extraction is a pure function with best-effort regex matching rather than
// DOM parsing: malformed or unbalanced markup degrades to extra stripped
// spans instead of failing, and attribute extraction sees the markup exactly
// as written rather than a repaired parse tree. Script and style blocks are
// removed with their content before anything else, so nothing inside them
// can leak into the extracted references or the word counts.
package extract
