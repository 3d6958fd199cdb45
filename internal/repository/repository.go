package repository

import (
	"context"

	model "auction-house/internal/models"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// ListingFilter narrows ListListings. Zero value matches every listing.
type ListingFilter struct {
	ActiveOnly bool
	Category   string
}

// ListingStore persists auction listings
type ListingStore interface {
	CreateListing(ctx context.Context, listing model.Listing) error
	GetListing(ctx context.Context, listingID string) (model.Listing, error)
	// GetListingForUpdate reads a listing and holds it locked until the
	// enclosing transaction ends.
	GetListingForUpdate(ctx context.Context, listingID string) (model.Listing, error)
	UpdateCurrentBid(ctx context.Context, listingID string, amount decimal.Decimal) error
	SetActive(ctx context.Context, listingID string, active bool) error
	ListListings(ctx context.Context, filter ListingFilter) ([]model.Listing, error)
}

// BidStore is the append-only bid ledger
type BidStore interface {
	RecordBid(ctx context.Context, bid model.Bid) error
	GetBidsByListing(ctx context.Context, listingID string) ([]model.Bid, error)
	GetHighestBid(ctx context.Context, listingID string) (model.Bid, error)
}

// CommentStore is the append-only comment log
type CommentStore interface {
	AddComment(ctx context.Context, comment model.Comment) error
	GetCommentsByListing(ctx context.Context, listingID string) ([]model.Comment, error)
}

// WatchStore keeps one watch entry per (listing, user) pair
type WatchStore interface {
	GetWatch(ctx context.Context, listingID, username string) (model.WatchEntry, error)
	// SaveWatch inserts the entry or updates the flag of the existing
	// entry for the same (listing, user) pair.
	SaveWatch(ctx context.Context, entry model.WatchEntry) error
	GetWatchedListings(ctx context.Context, username string) ([]model.Listing, error)
}

// Stores groups the four typed stores
type Stores interface {
	Listings() ListingStore
	Bids() BidStore
	Comments() CommentStore
	Watches() WatchStore
}

// AuctionDB defines the storage interface for the auction system.
// WithTx runs fn against stores whose writes commit together when fn
// returns nil and are discarded otherwise.
type AuctionDB interface {
	Stores
	WithTx(ctx context.Context, fn func(ctx context.Context, tx Stores) error) error
}
