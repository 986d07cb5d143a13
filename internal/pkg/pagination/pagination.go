package pagination

import (
	"errors"
	"strconv"
	"strings"
)

const (
	FirstPage = 1
	// MaxPage is the highest page the media catalog serves.
	MaxPage = 100
)

var ErrInvalidPage = errors.New("page must be an integer between 1 and 100")

// ParsePage parses a 1-based page path parameter. Values outside
// FirstPage..MaxPage are rejected, not clamped.
func ParsePage(s string) (int, error) {
	page, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || page < FirstPage || page > MaxPage {
		return 0, ErrInvalidPage
	}
	return page, nil
}
