// Package hierarchy runs the complete dominance analysis of one or many
// interaction matrices: Eades ordering, Common/Dominant decomposition,
// transitivity of the dominant part, and every configured dominance score.
//
// Configuration is plain data (Config) that can be decoded from YAML and is
// validated before use. Analyzer is safe for concurrent use; AnalyzeBatch
// fans independent matrices out over a bounded worker group.
package hierarchy
