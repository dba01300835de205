package presentation

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePicks reads row selections such as "1,3-5". Rows are 1-based, duplicates are dropped.
func ParsePicks(s string) ([]int, error) {
	picks := []int{}
	seen := map[int]bool{}
	add := func(n int) {
		if !seen[n] {
			seen[n] = true
			picks = append(picks, n)
		}
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if bounds := strings.SplitN(part, "-", 2); len(bounds) == 2 {
			from, err1 := strconv.Atoi(strings.TrimSpace(bounds[0]))
			to, err2 := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err1 != nil || err2 != nil || from < 1 || to < from {
				return nil, fmt.Errorf("invalid row range %q", part)
			}
			for n := from; n <= to; n++ {
				add(n)
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid row %q", part)
		}
		add(n)
	}
	return picks, nil
}
