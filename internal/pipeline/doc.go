// Package pipeline runs corpuscan stages in sequence.
//
// Unlike an in-memory pipeline, stages here do not pass data to each other:
// every hand-off goes through the shared filesystem area and its completion
// markers, so the on-disk contract is identical whether stages run as
// separate processes or in-process via the Runner. The Runner exists for
// the convenience of executing processor and analyzer in one invocation;
// each stage still only trusts the marker protocol.
package pipeline
