// Package textutil provides the text canonicalization and similarity
// primitives used to reconcile noisy track titles.
//
// The primary use cases are:
//   - Normalizing raw titles into a comparable form (script folding, case
//     folding, accent stripping, punctuation pruning)
//   - Extracting the semantic core of a title by removing decorative
//     annotations (brackets, feat./remix/live tags, leading index numbers)
//   - Computing a layered similarity confidence between two titles
//
// Normalization is deterministic and idempotent, so normalized strings can be
// compared and re-normalized safely. Kana folding maps Katakana onto Hiragana
// before comparison so differently-scripted Japanese titles still match.
package textutil
