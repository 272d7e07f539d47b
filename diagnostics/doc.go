// Package diagnostics measures the properties a generated (or any other)
// column-major matrix is supposed to have: condition number, numerical rank,
// orthonormality of its columns and spectral norm.
//
// Every diagnostic works on an explicit copy or reads its input only; the
// caller's buffer is never modified. Results are plain values, computed
// fresh on each call.
//
// Storage format is always explicit: the condition-number family takes a
// Format tag (Full or PackedUpper) and never guesses the layout from the
// buffer length.
//
// Rank search policy: RankSearchBinary never reports a rank smaller than the
// smallest k whose trailing block passes the truncation test. Downstream code
// sizes workspaces from that rank, so an overestimate costs memory while an
// underestimate loses information.
package diagnostics
