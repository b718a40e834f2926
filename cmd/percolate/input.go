package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/percolation/percolation"
)

var (
	// errEmptyInput indicates the input has no grid size.
	errEmptyInput = errors.New("percolate: empty input")
	// errOddCoordinates indicates a trailing row without a column.
	errOddCoordinates = errors.New("percolate: unpaired row coordinate")
)

// readInput parses the classic percolation input: the grid size N followed by
// whitespace-separated "row col" pairs. Bounds are left to percolation.Grid.
func readInput(r io.Reader) (int, []percolation.Site, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var nums []int
	for pos := 1; sc.Scan(); pos++ {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, nil, fmt.Errorf("percolate: token %d %q: %w", pos, sc.Text(), err)
		}
		nums = append(nums, v)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, fmt.Errorf("percolate: read input: %w", err)
	}
	if len(nums) == 0 {
		return 0, nil, errEmptyInput
	}

	n, coords := nums[0], nums[1:]
	if len(coords)%2 != 0 {
		return 0, nil, fmt.Errorf("%w: token %d", errOddCoordinates, len(nums))
	}
	sites := make([]percolation.Site, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		sites = append(sites, percolation.Site{Row: coords[i], Col: coords[i+1]})
	}

	return n, sites, nil
}
