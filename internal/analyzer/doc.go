// Package analyzer implements the corpus analysis stage of the pipeline.
//
// The analyzer waits for the processor's completion marker, loads every
// processed record from the shared area, aggregates corpus-wide statistics
// (frequency tables, pairwise document similarity, n-gram tables,
// readability scalars) and writes a single report into the analysis area.
// Its own completion marker is written strictly after the report so the
// marker's existence promises a complete report on disk.
package analyzer
