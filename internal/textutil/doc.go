// Package textutil provides the tokenization and counting primitives shared
// by the processor and analyzer stages.
//
// Both stages must segment text identically: a word is a maximal run of
// ASCII letters and digits, sentences split on '.', '!' and '?', and
// paragraphs split on runs of newlines. Centralizing the rules here keeps
// the two stages from drifting apart.
//
// The Counter type preserves insertion order for equal counts, which is the
// documented tie-break for the analyzer's top-K tables.
package textutil
