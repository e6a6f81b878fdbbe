package arbitration

// nextRequester finds the requesting client that is nearest to, and strictly
// after, the rotation pointer in circular order. Scanning the sequence
// pointer+1, pointer+2, ..., pointer+N (mod N) and stopping at the first
// requester makes the immediate next client in rotation order always win
// over farther ones, which keeps the rotation starvation free as long as
// requests persist.
func nextRequester(pointer int, requests []bool) (client int, found bool) {
	n := len(requests)

	for dist := 1; dist <= n; dist++ {
		c := (pointer + dist) % n
		if requests[c] {
			return c, true
		}
	}

	return 0, false
}
