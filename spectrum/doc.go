// Package spectrum produces the synthetic singular-value profiles that the
// generator embeds into test matrices.
//
// Every profile is a pure function of its arguments: no randomness enters
// here, it arrives later through the orthogonal factors. Profiles are
// normalized so that s[0] == 1 and, except where noted, the smallest entry
// equals 1/cond.
//
//	Polynomial   first ⌊0.1k⌋ entries 1, tail 1/i^t
//	Exponential  first max(⌊0.1k⌋, 1) entries 1, tail exp(-t·i)
//	Staircase    four bands at 1, 8/cond, 4/cond, 1/cond
//	BadCholQR    first k entries 1, tail exp(t)/floor·exp(-t·i)
//
// Errors: ErrInvalidRank, ErrInvalidCond.
package spectrum
