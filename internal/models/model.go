package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing represents an item offered for auction
type Listing struct {
	ListingID   string              `json:"listing_id" db:"id"`
	Title       string              `json:"title" db:"title"`
	Description string              `json:"description" db:"description"`
	Category    string              `json:"category" db:"category"`
	StartingBid decimal.Decimal     `json:"starting_bid" db:"starting_bid"`
	CurrentBid  decimal.NullDecimal `json:"current_bid" db:"current_bid"`
	Owner       string              `json:"owner" db:"owner"`
	ImageURL    string              `json:"image_url,omitempty" db:"image_url"`
	Active      bool                `json:"active" db:"active"`
	CreatedAt   time.Time           `json:"created_at" db:"created_at"`
}

// Bid represents a user's offer on a listing
type Bid struct {
	BidID     string          `json:"bid_id" db:"id"`
	ListingID string          `json:"listing_id" db:"listing_id"`
	Bidder    string          `json:"bidder" db:"bidder"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// Comment is a note left on a listing
type Comment struct {
	CommentID string    `json:"comment_id" db:"id"`
	ListingID string    `json:"listing_id" db:"listing_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// WatchEntry records whether a user keeps a listing on their watch list
type WatchEntry struct {
	WatchID   string `json:"watch_id" db:"id"`
	ListingID string `json:"listing_id" db:"listing_id"`
	Username  string `json:"username" db:"username"`
	Watching  bool   `json:"watching" db:"watching"`
}

// NewListing holds the user-supplied fields of a listing submission
type NewListing struct {
	Title       string
	Description string
	Category    string
	StartingBid decimal.Decimal
	ImageURL    string
}

// HighestBid is the amount to beat on a listing. Bidder is empty when
// the amount is the starting bid.
type HighestBid struct {
	ListingID string          `json:"listing_id"`
	Amount    decimal.Decimal `json:"amount"`
	Bidder    string          `json:"bidder,omitempty"`
}

// HasBidder reports whether the amount comes from an actual bid.
func (h HighestBid) HasBidder() bool {
	return h.Bidder != ""
}

// ListingDetail is everything shown on a listing page
type ListingDetail struct {
	Listing  Listing    `json:"listing"`
	Highest  HighestBid `json:"highest"`
	Bids     []Bid      `json:"bids"`
	Comments []Comment  `json:"comments"`
	Watching bool       `json:"watching"`
	Winner   string     `json:"winner,omitempty"`
}
