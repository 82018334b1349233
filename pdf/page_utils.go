package pdf

import (
	"sort"
	"strconv"
	"strings"
)

// SplitRange is an inclusive, 1-based span of pages. Start <= End always holds
// for ranges returned by ParseSplitRanges.
type SplitRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Pages returns every page index covered by the range in ascending order.
func (r SplitRange) Pages() []int {
	if r.Start < 1 || r.End < r.Start {
		return []int{}
	}
	pages := make([]int, 0, r.End-r.Start+1)
	for p := r.Start; p <= r.End; p++ {
		pages = append(pages, p)
	}
	return pages
}

func (r SplitRange) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}

// ParsePageNumbers parses a page selector such as "1,3,5-7" into a sorted,
// deduplicated list of page numbers. Invalid tokens (non-numeric, zero or
// negative, inverted ranges) are skipped, so the result may be empty but the
// call never fails.
func ParsePageNumbers(input string) []int {
	seen := make(map[int]struct{})
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, "-") {
			startStr, endStr, _ := splitSpan(token)
			start, err := strconv.Atoi(strings.TrimSpace(startStr))
			if err != nil {
				continue
			}
			end, err := strconv.Atoi(strings.TrimSpace(endStr))
			if err != nil {
				continue
			}
			if !validSpan(start, end) {
				continue
			}
			for p := start; p <= end; p++ {
				seen[p] = struct{}{}
			}
			continue
		}

		page, err := strconv.Atoi(token)
		if err != nil || page < 1 {
			continue
		}
		seen[page] = struct{}{}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// ParseSplitRanges parses a range selector such as "1-5,6-10" into split
// ranges, keeping the order in which they were written. A lone number n is
// the range n-n. Invalid tokens are skipped.
func ParseSplitRanges(input string) []SplitRange {
	ranges := []SplitRange{}
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		startStr, endStr, hasEnd := splitSpan(token)
		start, err := strconv.Atoi(strings.TrimSpace(startStr))
		if err != nil {
			continue
		}
		end := start
		if endStr = strings.TrimSpace(endStr); hasEnd && endStr != "" {
			if end, err = strconv.Atoi(endStr); err != nil {
				continue
			}
		}
		if !validSpan(start, end) {
			continue
		}
		ranges = append(ranges, SplitRange{Start: start, End: end})
	}
	return ranges
}

// FormatPageNumbers joins page numbers into a selector that ParsePageNumbers
// reads back to the same set.
func FormatPageNumbers(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// FilterPages drops page numbers outside [1, pageCount]. It returns
// ErrNoValidPages when nothing is left.
func FilterPages(pages []int, pageCount int) ([]int, error) {
	valid := make([]int, 0, len(pages))
	for _, p := range pages {
		if p >= 1 && p <= pageCount {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidPages
	}
	return valid, nil
}

// FilterRanges separates the ranges that fit in a document of pageCount pages
// from the ones that do not. Order is preserved in both results.
func FilterRanges(ranges []SplitRange, pageCount int) (kept, skipped []SplitRange) {
	kept = []SplitRange{}
	for _, r := range ranges {
		if r.Start >= 1 && r.End >= r.Start && r.End <= pageCount {
			kept = append(kept, r)
		} else {
			skipped = append(skipped, r)
		}
	}
	return kept, skipped
}

// PageSelection converts page numbers to the string form pdfcpu expects.
func PageSelection(pages []int) []string {
	selection := make([]string, len(pages))
	for i, p := range pages {
		selection[i] = strconv.Itoa(p)
	}
	return selection
}

// splitSpan reads "start-end" from a token. Fields after the second are ignored,
// so "1-2-3" reads as 1-2.
func splitSpan(token string) (start, end string, hasEnd bool) {
	fields := strings.Split(token, "-")
	if len(fields) == 1 {
		return fields[0], "", false
	}
	return fields[0], fields[1], true
}

// validSpan reports whether start-end is a usable span. Only spans that
// cover more than one page are held to MaxPageNumber.
func validSpan(start, end int) bool {
	if start < 1 || end < start {
		return false
	}
	return start == end || end <= MaxPageNumber
}
