// Package match ranks known names by similarity to an unknown one.
//
// It backs the "did you mean" suggestions of definition checks.
//
// Key functions:
//   - NormalizeIdent: folds identifiers to a comparable form
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: orders known names by similarity
//   - Suggest: returns the few names worth proposing
package match
