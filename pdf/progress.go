package pdf

// ProcessingProgress is reported by long-running operations. Progress is a
// percentage in [0, 100].
type ProcessingProgress struct {
	Progress float64 `json:"progress"`
	Status   string  `json:"status"`
}

// ProgressFunc receives progress updates. A nil ProgressFunc is allowed.
type ProgressFunc func(ProcessingProgress)

func report(fn ProgressFunc, progress float64, status string) {
	if fn == nil {
		return
	}
	fn(ProcessingProgress{Progress: progress, Status: status})
}

// fraction returns the percentage reached before item i of n starts.
func fraction(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) / float64(n) * 100
}
