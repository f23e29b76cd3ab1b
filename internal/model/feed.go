package model

import (
	"strings"
	"time"
)

type FeedTab string

const (
	TabAll      FeedTab = "All"
	TabToday    FeedTab = "Today"
	TabProblems FeedTab = "Problems"
	TabUpdates  FeedTab = "Updates"
	TabYours    FeedTab = "Yours"
)

var feedTabs = []FeedTab{TabAll, TabToday, TabProblems, TabUpdates, TabYours}

// ParseFeedTab matches case-insensitively against the five known tabs.
// An unknown tab is a validation error, never a silent default.
func ParseFeedTab(s string) (FeedTab, bool) {
	for _, t := range feedTabs {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

type FeedOrder string

const (
	OrderNewest FeedOrder = "newest"
	OrderHot    FeedOrder = "hot"
)

// FeedFilters is the candidate-set description a planner hands to the post
// repository: filters, ordering discipline and the decoded cursor position.
type FeedFilters struct {
	Pincode         *string
	Category        *PostCategory
	ExcludeCategory *PostCategory
	AuthorID        *int64
	CreatedOn       *time.Time // UTC calendar date match
	Order           FeedOrder

	// Cursor position of the last row of the previous page. All three are
	// set for OrderHot, AfterHotScore stays nil for OrderNewest.
	AfterHotScore  *float64
	AfterCreatedAt *time.Time
	AfterID        *int64

	Limit int
}

type FeedPage struct {
	Posts      []*PostDetailed `json:"posts"`
	NextCursor *string         `json:"nextCursor,omitempty"`
	Ads        []*PostDetailed `json:"ads"`
}
