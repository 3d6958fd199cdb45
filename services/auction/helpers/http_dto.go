package helpers

import "encoding/json"

// Request/Response DTOs

// Amounts are accepted as JSON numbers or numeric strings and parsed
// into decimals, never floats.
type PlaceBidRequest struct {
	Amount json.Number `json:"amount" binding:"required"`
}

type CreateListingRequest struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Category    string      `json:"category" binding:"required"`
	StartingBid json.Number `json:"starting_bid" binding:"required"`
	ImageURL    string      `json:"image_url"`
}

type AddCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

type BidResponse struct {
	BidID     string `json:"bid_id"`
	ListingID string `json:"listing_id"`
	Bidder    string `json:"bidder"`
	Amount    string `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type WatchResponse struct {
	ListingID string `json:"listing_id"`
	Username  string `json:"username"`
	Watching  bool   `json:"watching"`
}
