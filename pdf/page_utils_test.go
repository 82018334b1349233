package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"singles", "1,3,5", []int{1, 3, 5}},
		{"range and single", "1-3,7", []int{1, 2, 3, 7}},
		{"unsorted", "5,1,3", []int{1, 3, 5}},
		{"duplicates", "3,3,3", []int{3}},
		{"overlapping ranges", "1-4,3-6", []int{1, 2, 3, 4, 5, 6}},
		{"all invalid", "0,-1,abc", []int{}},
		{"empty", "", []int{}},
		{"whitespace", "  2 , 4 - 5 ", []int{2, 4, 5}},
		{"inverted range dropped", "5-2,8", []int{8}},
		{"zero start dropped", "0-3", []int{}},
		{"trailing commas", "1,,2,", []int{1, 2}},
		{"garbage range sides", "a-3,2-b,4", []int{4}},
		{"extra range fields ignored", "1-2-3,9", []int{1, 2, 9}},
		{"huge range dropped", "1-999999999,2", []int{2}},
		{"huge single page kept", "100000,2", []int{2, 100000}},
		{"single page range", "4-4", []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePageNumbers(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePageNumbers_StrictlyAscendingPositive(t *testing.T) {
	inputs := []string{"9,1-4,2,7-8,3", "10-12,1,1,1", "100,50-52,51"}
	for _, in := range inputs {
		got := ParsePageNumbers(in)
		for i, p := range got {
			assert.Greater(t, p, 0, in)
			if i > 0 {
				assert.Greater(t, p, got[i-1], in)
			}
		}
	}
}

func TestParsePageNumbers_FormatRoundTrip(t *testing.T) {
	for _, in := range []string{"1,3,5", "1-5,8,10-12", "7,2,2,9-11", ""} {
		pages := ParsePageNumbers(in)
		assert.Equal(t, pages, ParsePageNumbers(FormatPageNumbers(pages)), in)
	}
}

func TestParseSplitRanges(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []SplitRange
	}{
		{"two ranges", "1-5,6-10", []SplitRange{{1, 5}, {6, 10}}},
		{"input order kept", "6-10,1-5", []SplitRange{{6, 10}, {1, 5}}},
		{"inverted dropped", "5-2", []SplitRange{}},
		{"single page", "3", []SplitRange{{3, 3}}},
		{"open end", "4-", []SplitRange{{4, 4}}},
		{"duplicates kept", "1-2,1-2", []SplitRange{{1, 2}, {1, 2}}},
		{"invalid tokens dropped", "0-2,x,2-3,-4", []SplitRange{{2, 3}}},
		{"whitespace", " 1 - 2 , 7 ", []SplitRange{{1, 2}, {7, 7}}},
		{"empty", "", []SplitRange{}},
		{"extra range fields ignored", "1-2-3,4-6-1", []SplitRange{{1, 2}, {4, 6}}},
		{"huge range dropped", "1-999999999,3", []SplitRange{{3, 3}}},
		{"huge single page kept", "100000", []SplitRange{{100000, 100000}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSplitRanges(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitRange(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5}, SplitRange{Start: 3, End: 5}.Pages())
	assert.Equal(t, []int{}, SplitRange{Start: 5, End: 3}.Pages())
	assert.Equal(t, "3-5", SplitRange{Start: 3, End: 5}.String())
	assert.Equal(t, "4", SplitRange{Start: 4, End: 4}.String())
}

func TestFilterPages(t *testing.T) {
	pages, err := FilterPages(ParsePageNumbers("1-5,8,10-12"), 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 8, 10}, pages)

	_, err = FilterPages(ParsePageNumbers("11-12"), 10)
	assert.ErrorIs(t, err, ErrNoValidPages)

	_, err = FilterPages(ParsePageNumbers("abc"), 10)
	assert.ErrorIs(t, err, ErrNoValidPages)
}

func TestFilterRanges(t *testing.T) {
	kept, skipped := FilterRanges(ParseSplitRanges("1-3,8-12,4-10,11"), 10)
	assert.Equal(t, []SplitRange{{1, 3}, {4, 10}}, kept)
	assert.Equal(t, []SplitRange{{8, 12}, {11, 11}}, skipped)

	kept, skipped = FilterRanges(nil, 10)
	assert.Empty(t, kept)
	assert.Empty(t, skipped)
}

func TestPageSelection(t *testing.T) {
	assert.Equal(t, []string{"1", "4", "9"}, PageSelection([]int{1, 4, 9}))
}
