package auction

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/utils"

	"github.com/shopspring/decimal"
)

// AuctionService defines the business logic for listings, bids, comments and watch lists
type AuctionService struct {
	repo       repository.AuctionDB
	categories []string
	now        func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, categories []string) *AuctionService {
	return &AuctionService{
		repo:       repo,
		categories: slices.Clone(categories),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Categories returns the closed set of listing categories
func (s *AuctionService) Categories() []string {
	return slices.Clone(s.categories)
}

// CreateListing validates a submission and stores it as an active listing owned by owner
func (s *AuctionService) CreateListing(ctx context.Context, owner string, in models.NewListing) (models.Listing, error) {
	if owner == "" {
		return models.Listing{}, fmt.Errorf("service: %w - missing owner", auctionerrors.ErrValidation)
	}
	if err := ValidateNewListing(in, s.categories); err != nil {
		return models.Listing{}, fmt.Errorf("service: %w", err)
	}

	listing := models.Listing{
		ListingID:   utils.GenerateID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		StartingBid: in.StartingBid,
		Owner:       owner,
		ImageURL:    in.ImageURL,
		Active:      true,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Listings().CreateListing(ctx, listing); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing for %s: %w", owner, err)
	}
	return listing, nil
}

// PlaceBid validates and records a bid. The listing row is locked for the
// whole check-and-write, so concurrent bids on one listing are applied one
// at a time and the bid and the listing's current bid commit together.
// The amount is validated before the listing is read, so a malformed bid on
// a closed listing fails validation rather than reporting the closure.
func (s *AuctionService) PlaceBid(ctx context.Context, listingID, bidder string, amount decimal.Decimal) (models.Bid, error) {
	if err := validateBid(listingID, bidder, amount); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ListingID: listingID,
		Bidder:    bidder,
		Amount:    amount,
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Stores) error {
		listing, err := tx.Listings().GetListingForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if !listing.Active {
			return fmt.Errorf("%w - bidding is closed on listing %s", auctionerrors.ErrListingInactive, listingID)
		}

		highest, err := highestBid(ctx, tx, listing)
		if err != nil {
			return err
		}
		if !amount.GreaterThan(highest.Amount) {
			return fmt.Errorf("%w - current highest bid is %s", auctionerrors.ErrBidTooLow, highest.Amount.StringFixed(moneyPlaces))
		}

		bid.CreatedAt = s.now()
		if err := tx.Bids().RecordBid(ctx, bid); err != nil {
			return err
		}
		return tx.Listings().UpdateCurrentBid(ctx, listingID, amount)
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on listing %s by %s: %w", listingID, bidder, err)
	}

	return bid, nil
}

// validateBid checks input validity before any store access
func validateBid(listingID, bidder string, amount decimal.Decimal) error {
	if listingID == "" || bidder == "" {
		return fmt.Errorf("service: %w - missing listingID or bidder", auctionerrors.ErrValidation)
	}
	if err := ValidateBidAmount(amount); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// highestBid returns the largest recorded bid, or the starting bid with no
// bidder when nothing has been bid yet.
func highestBid(ctx context.Context, stores repository.Stores, listing models.Listing) (models.HighestBid, error) {
	bid, err := stores.Bids().GetHighestBid(ctx, listing.ListingID)
	switch {
	case err == nil:
		return models.HighestBid{ListingID: listing.ListingID, Amount: bid.Amount, Bidder: bid.Bidder}, nil
	case errors.Is(err, auctionerrors.ErrNoBids):
		return models.HighestBid{ListingID: listing.ListingID, Amount: listing.StartingBid}, nil
	default:
		return models.HighestBid{}, err
	}
}

// ToggleWatch flips the caller's watch flag on a listing, creating the
// entry with watching=true the first time.
func (s *AuctionService) ToggleWatch(ctx context.Context, listingID, user string) (models.WatchEntry, error) {
	if listingID == "" || user == "" {
		return models.WatchEntry{}, fmt.Errorf("service: %w - missing listingID or user", auctionerrors.ErrValidation)
	}

	var entry models.WatchEntry
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Stores) error {
		if _, err := tx.Listings().GetListingForUpdate(ctx, listingID); err != nil {
			return err
		}

		existing, err := tx.Watches().GetWatch(ctx, listingID, user)
		switch {
		case err == nil:
			entry = existing
			entry.Watching = !existing.Watching
		case errors.Is(err, auctionerrors.ErrWatchNotFound):
			entry = models.WatchEntry{
				WatchID:   utils.GenerateID(),
				ListingID: listingID,
				Username:  user,
				Watching:  true,
			}
		default:
			return err
		}
		return tx.Watches().SaveWatch(ctx, entry)
	})
	if err != nil {
		return models.WatchEntry{}, fmt.Errorf("service: failed to toggle watch on listing %s for %s: %w", listingID, user, err)
	}

	return entry, nil
}

// CloseAuction deactivates a listing. Only the owner may close it and a
// closed listing never reopens.
func (s *AuctionService) CloseAuction(ctx context.Context, listingID, requester string) (models.Listing, error) {
	if listingID == "" || requester == "" {
		return models.Listing{}, fmt.Errorf("service: %w - missing listingID or requester", auctionerrors.ErrValidation)
	}

	var closed models.Listing
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Stores) error {
		listing, err := tx.Listings().GetListingForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if listing.Owner != requester {
			return fmt.Errorf("%w - %s does not own listing %s", auctionerrors.ErrNotAuthorized, requester, listingID)
		}
		if !listing.Active {
			return fmt.Errorf("%w - listing %s is already closed", auctionerrors.ErrListingInactive, listingID)
		}
		if err := tx.Listings().SetActive(ctx, listingID, false); err != nil {
			return err
		}
		listing.Active = false
		closed = listing
		return nil
	})
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to close listing %s: %w", listingID, err)
	}

	return closed, nil
}

// AddComment appends a comment to an active listing
func (s *AuctionService) AddComment(ctx context.Context, listingID, author, body string) (models.Comment, error) {
	body = strings.TrimSpace(body)
	if listingID == "" || author == "" {
		return models.Comment{}, fmt.Errorf("service: %w - missing listingID or author", auctionerrors.ErrValidation)
	}
	if body == "" {
		verr := auctionerrors.NewValidationError()
		verr.Add("body", "is required")
		return models.Comment{}, fmt.Errorf("service: %w", verr)
	}

	comment := models.Comment{
		CommentID: utils.GenerateID(),
		ListingID: listingID,
		Author:    author,
		Body:      body,
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, tx repository.Stores) error {
		listing, err := tx.Listings().GetListingForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if !listing.Active {
			return fmt.Errorf("%w - comments are closed on listing %s", auctionerrors.ErrListingInactive, listingID)
		}
		comment.CreatedAt = s.now()
		return tx.Comments().AddComment(ctx, comment)
	})
	if err != nil {
		return models.Comment{}, fmt.Errorf("service: failed to add comment on listing %s by %s: %w", listingID, author, err)
	}

	return comment, nil
}

// ListActiveListings returns every open listing, oldest first
func (s *AuctionService) ListActiveListings(ctx context.Context) (iter.Seq[models.Listing], error) {
	listings, err := s.repo.Listings().ListListings(ctx, repository.ListingFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list active listings: %w", err)
	}
	return slices.Values(listings), nil
}

// ListByCategory returns every listing in category, open or closed, oldest first
func (s *AuctionService) ListByCategory(ctx context.Context, category string) (iter.Seq[models.Listing], error) {
	if !slices.Contains(s.categories, category) {
		verr := auctionerrors.NewValidationError()
		verr.Add("category", "unknown category "+category)
		return nil, fmt.Errorf("service: %w", verr)
	}

	listings, err := s.repo.Listings().ListListings(ctx, repository.ListingFilter{Category: category})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list category %s: %w", category, err)
	}
	return slices.Values(listings), nil
}

// ListWatchedBy returns the listings user is currently watching
func (s *AuctionService) ListWatchedBy(ctx context.Context, user string) (iter.Seq[models.Listing], error) {
	if user == "" {
		return nil, fmt.Errorf("service: %w - empty user", auctionerrors.ErrValidation)
	}

	listings, err := s.repo.Watches().GetWatchedListings(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get watch list for %s: %w", user, err)
	}
	return slices.Values(listings), nil
}

// CurrentHighestBid returns the amount to beat on a listing
func (s *AuctionService) CurrentHighestBid(ctx context.Context, listingID string) (models.HighestBid, error) {
	if listingID == "" {
		return models.HighestBid{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrValidation)
	}

	listing, err := s.repo.Listings().GetListing(ctx, listingID)
	if err != nil {
		return models.HighestBid{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}

	highest, err := highestBid(ctx, s.repo, listing)
	if err != nil {
		return models.HighestBid{}, fmt.Errorf("service: failed to get highest bid for listing %s: %w", listingID, err)
	}
	return highest, nil
}

// ListBids returns the bid history of a listing, oldest first
func (s *AuctionService) ListBids(ctx context.Context, listingID string) ([]models.Bid, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrValidation)
	}

	if _, err := s.repo.Listings().GetListing(ctx, listingID); err != nil {
		return nil, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}

	bids, err := s.repo.Bids().GetBidsByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}
	return bids, nil
}

// GetListingDetail assembles the listing page for viewer. viewer may be
// empty for anonymous callers.
func (s *AuctionService) GetListingDetail(ctx context.Context, listingID, viewer string) (models.ListingDetail, error) {
	if listingID == "" {
		return models.ListingDetail{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrValidation)
	}

	listing, err := s.repo.Listings().GetListing(ctx, listingID)
	if err != nil {
		return models.ListingDetail{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}

	detail := models.ListingDetail{Listing: listing}

	if detail.Bids, err = s.repo.Bids().GetBidsByListing(ctx, listingID); err != nil {
		return models.ListingDetail{}, fmt.Errorf("service: failed to get bids for listing %s: %w", listingID, err)
	}
	if detail.Comments, err = s.repo.Comments().GetCommentsByListing(ctx, listingID); err != nil {
		return models.ListingDetail{}, fmt.Errorf("service: failed to get comments for listing %s: %w", listingID, err)
	}
	if detail.Highest, err = highestBid(ctx, s.repo, listing); err != nil {
		return models.ListingDetail{}, fmt.Errorf("service: failed to get highest bid for listing %s: %w", listingID, err)
	}

	if viewer != "" {
		entry, err := s.repo.Watches().GetWatch(ctx, listingID, viewer)
		switch {
		case err == nil:
			detail.Watching = entry.Watching
		case !errors.Is(err, auctionerrors.ErrWatchNotFound):
			return models.ListingDetail{}, fmt.Errorf("service: failed to get watch for listing %s: %w", listingID, err)
		}
	}

	if !listing.Active {
		detail.Winner = detail.Highest.Bidder
	}

	return detail, nil
}
