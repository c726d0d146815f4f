package solver

// propagate places every forced move: any unplaced number hanging off a
// placed neighbor with exactly one consistent cell. Placements are
// recorded on the trail so the search can undo them. Returns false on a
// contradiction (an anchored number with no legal cell left).
func (st *state) propagate() bool {
	var buf []int
	for changed := true; changed; {
		changed = false
		for k := 1; k <= st.n; k++ {
			if st.cellOf[k] >= 0 || !st.anchored(k) {
				continue
			}
			buf = st.candidatesFor(k, buf[:0])
			switch len(buf) {
			case 0:
				return false
			case 1:
				st.place(k, buf[0])
				st.stats.ForcedMoves++
				changed = true
			}
		}
	}
	return true
}
