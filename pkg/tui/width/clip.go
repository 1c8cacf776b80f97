// ABOUTME: ClipToWidth cuts plain text to a column budget on grapheme boundaries.
// ABOUTME: Wide clusters that would straddle the limit are dropped, never split.

package width

// ClipToWidth returns the longest prefix of s whose display width does
// not exceed cols, together with that width. s must not contain escape
// sequences; strip them first.
func ClipToWidth(s string, cols int) (string, int) {
	if cols <= 0 {
		return "", 0
	}
	if w := VisibleWidth(s); w <= cols {
		return s, w
	}
	if isPlainASCII(s) {
		return s[:cols], cols
	}

	end, w := 0, 0
	forEachCluster(s, func(cluster string, cw int) bool {
		if w+cw > cols {
			return false
		}
		end += len(cluster)
		w += cw
		return true
	})
	return s[:end], w
}
