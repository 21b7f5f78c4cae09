// Package pagination computes page windows for list endpoints.
package pagination

import (
	"encoding/json"
	"math"
	"net/url"
	"strings"

	"github.com/spf13/cast"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100

	// MaxPage keeps Offset within an int32 at any limit.
	MaxPage = math.MaxInt32 / MaxLimit

	// radius is how many pages are shown on each side of the current one.
	radius = 2
)

// Item is one entry of a page strip: either a page number or an ellipsis.
type Item struct {
	Page     int
	Ellipsis bool
}

// Ellipsis marks a collapsed run of pages.
var Ellipsis = Item{Ellipsis: true}

// P returns the strip item for page n.
func P(n int) Item { return Item{Page: n} }

func (i Item) String() string {
	if i.Ellipsis {
		return "..."
	}
	return cast.ToString(i.Page)
}

// MarshalJSON renders page numbers as numbers and ellipses as "...".
func (i Item) MarshalJSON() ([]byte, error) {
	if i.Ellipsis {
		return json.Marshal("...")
	}
	return json.Marshal(i.Page)
}

// Strip returns the page numbers to render for current out of pages.
// Page 1, the last page and every page within radius of current are shown.
// A gap of exactly one page shows that page instead of an ellipsis.
func Strip(current, pages int) []Item {
	if pages <= 1 {
		return []Item{}
	}

	var shown []int
	for i := 1; i <= pages; i++ {
		if i == 1 || i == pages || (i >= current-radius && i <= current+radius) {
			shown = append(shown, i)
		}
	}

	out := make([]Item, 0, len(shown)+2)
	prev := 0
	for _, i := range shown {
		switch gap := i - prev; {
		case gap == 2:
			out = append(out, P(prev+1))
		case gap > 2:
			out = append(out, Ellipsis)
		}
		out = append(out, P(i))
		prev = i
	}
	return out
}

// Params is a requested page window.
type Params struct {
	Page  int
	Limit int
}

// ParseParams reads page and limit from a query string. Missing or invalid
// values fall back to page 1 and DefaultLimit; limit is capped at MaxLimit
// and page at MaxPage.
func ParseParams(q url.Values) Params {
	p := Params{Page: atoi(q.Get("page")), Limit: atoi(q.Get("limit"))}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// atoi parses a decimal query value. cast reads a leading zero as an octal
// prefix, so zeros are stripped first.
func atoi(v string) int {
	v = strings.TrimLeft(strings.TrimSpace(v), "0")
	if v == "" {
		return 0
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}

// Offset is the number of rows to skip.
func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// Meta describes a page of results for the client.
type Meta struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Total int    `json:"total"`
	Pages int    `json:"pages"`
	Strip []Item `json:"strip"`
}

// NewMeta builds the pagination block for total rows under p.
func NewMeta(p Params, total int) Meta {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return Meta{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
		Strip: Strip(p.Page, pages),
	}
}

// Page is the envelope returned by paginated list endpoints.
type Page[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}
