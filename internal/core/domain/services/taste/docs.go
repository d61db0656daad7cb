// Package taste implements the taste-based recommendation engine as pure
// functions over in-memory tables.
//
// A taste profile is one row per customer: the average per-line price followed by,
// for every catalog tag, the fraction of the customer's historical order lines whose
// dish carries that tag. The pipeline is:
//
//	BuildTable -> Normalize -> CosineSimilarity -> Matrix.Closest -> Rank
//
// Peers wraps the middle three steps. Nothing here touches storage; the
// persistence adapters produce the inputs and the recommendation query consumes
// the outputs.
package taste
