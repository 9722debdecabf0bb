// Package match ranks names by edit distance so lookups that miss can say
// what the caller probably meant.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - LevenshteinNormalized: the same distance as a 0..1 similarity
//   - Closest: picks the most similar candidate above a threshold
package match
