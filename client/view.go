package client

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/samir25141/SwiggyCloneBySamir/upstream"
)

// PageSize is how many restaurants one "page" of the list reveals.
const PageSize = 12

const (
	SortRelevance   = "relevance"
	SortRating      = "rating"
	SortDelivery    = "delivery"
	SortCostLowHigh = "costLowHigh"
	SortCostHighLow = "costHighLow"
)

// ViewOptions are the client-side-only filters and sorting applied on top of
// the server-filtered result set.
type ViewOptions struct {
	OnlyVeg       bool
	FavoritesOnly bool
	FavoriteIDs   []string
	SortBy        string
	Page          int // 1-based; page N reveals the first N*PageSize entries
}

// ApplyView filters, sorts and paginates an already-fetched restaurant list.
func ApplyView(restaurants []upstream.Restaurant, opts ViewOptions) []upstream.Restaurant {
	favs := map[string]bool{}
	for _, id := range opts.FavoriteIDs {
		favs[id] = true
	}

	filtered := []upstream.Restaurant{}
	for _, r := range restaurants {
		if opts.OnlyVeg && !r.Veg {
			continue
		}
		if opts.FavoritesOnly && !favs[r.ID] {
			continue
		}
		filtered = append(filtered, r)
	}

	switch opts.SortBy {
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].AvgRating > filtered[j].AvgRating
		})
	case SortDelivery:
		sort.SliceStable(filtered, func(i, j int) bool {
			return ParseDeliveryTime(filtered[i].SlaString) < ParseDeliveryTime(filtered[j].SlaString)
		})
	case SortCostLowHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return ParseCostForTwo(filtered[i].CostForTwo) < ParseCostForTwo(filtered[j].CostForTwo)
		})
	case SortCostHighLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return ParseCostForTwo(filtered[i].CostForTwo) > ParseCostForTwo(filtered[j].CostForTwo)
		})
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := page * PageSize
	if limit > len(filtered) {
		limit = len(filtered)
	}
	return filtered[:limit]
}

var firstNumber = regexp.MustCompile(`\d+`)

// ParseDeliveryTime pulls the first number out of "30-35 mins"; unknown goes
// to the bottom of an ascending sort.
func ParseDeliveryTime(slaString string) int {
	m := firstNumber.FindString(slaString)
	if m == "" {
		return 999
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		return 999
	}
	return n
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ParseCostForTwo turns "₹400 for two" into 400; unparseable becomes 0.
func ParseCostForTwo(costForTwo string) int {
	digits := nonDigits.ReplaceAllString(costForTwo, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
