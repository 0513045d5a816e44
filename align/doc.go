// Package align computes minimum-cost global alignments between two symbol
// sequences under a cost.Model (substitution table + linear gap penalty).
//
// 🚀 Engines:
//
//   - Quadratic  - full (m+1)×(n+1) DP table with traceback. O(m·n) time and memory.
//   - PrefixCosts - linear-space score scanner: the last DP row only, computed
//     with two rolling rows. O(m·n) time, O(n) memory.
//   - Hirschberg - divide and conquer over the scanner. O(m·n) time,
//     O(m+n) auxiliary memory, same optimal cost as Quadratic.
//
// Recurrence (both engines):
//
//	dp[i][0] = i·δ,  dp[0][j] = j·δ
//	dp[i][j] = min( dp[i-1][j-1] + α(x[i-1], y[j-1]),
//	                dp[i-1][j]   + δ,                 // gap in y (up)
//	                dp[i][j-1]   + δ )                // gap in x (left)
//
// Determinism:
//
//   - Traceback priority on ties: diagonal > up (gap in y) > left (gap in x).
//   - Hirschberg split point: the smallest k minimising v1[k] + v2[n-k].
//
// Together these make every engine return one canonical alignment for a
// given input; the optimal cost itself does not depend on either rule.
//
// ⚙️ Usage:
//
//	m := cost.DNA()
//	res, err := align.Align(x, y, m) // Hirschberg by default
//	res, err = align.Align(x, y, m, align.WithMethod(align.Basic))
//	fmt.Println(res.Cost, string(res.A), string(res.B))
//
// Sequences are plain []byte. Gaps in results are cost.Gap ('_'). Subranges
// are passed down the recursion as sub-slices of the caller's buffers, so no
// input is ever copied.
package align
