package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"

	"github.com/shopspring/decimal"
)

type watchKey struct {
	listingID string
	username  string
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// Transactions hold the write lock for their whole duration, so they are
// serialized against each other and against single-call writes.
type MemoryRepo struct {
	mu           sync.RWMutex
	listings     map[string]model.Listing   // key: listingID -> value: listing
	listingOrder []string                   // listing IDs in insertion order
	bids         map[string][]model.Bid     // key: listingID -> value: bids in arrival order
	comments     map[string][]model.Comment // key: listingID -> value: comments in arrival order
	watches      map[watchKey]model.WatchEntry
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		listings: make(map[string]model.Listing),
		bids:     make(map[string][]model.Bid),
		comments: make(map[string][]model.Comment),
		watches:  make(map[watchKey]model.WatchEntry),
	}
}

func (r *MemoryRepo) Listings() ListingStore { return &memView{repo: r} }
func (r *MemoryRepo) Bids() BidStore         { return &memView{repo: r} }
func (r *MemoryRepo) Comments() CommentStore { return &memView{repo: r} }
func (r *MemoryRepo) Watches() WatchStore    { return &memView{repo: r} }

// WithTx runs fn under the repository write lock. Every write made through
// tx is journaled and undone in reverse order if fn fails or panics.
func (r *MemoryRepo) WithTx(ctx context.Context, fn func(ctx context.Context, tx Stores) error) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin tx: %w: %w", auctionerrors.ErrStoreUnavailable, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	view := &memView{repo: r, inTx: true}
	defer func() {
		if p := recover(); p != nil {
			view.rollback()
			panic(p)
		}
		if err != nil {
			view.rollback()
		}
	}()

	return fn(ctx, view)
}

// AddListing adds a listing to the repository. This method is intended for tests and demo seeding only.
func (r *MemoryRepo) AddListing(listing model.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.listings[listing.ListingID]; !ok {
		r.listingOrder = append(r.listingOrder, listing.ListingID)
	}
	r.listings[listing.ListingID] = listing
}

// memView implements every store on top of MemoryRepo. Outside a
// transaction each call takes the lock itself; inside one the lock is
// already held by WithTx and writes are journaled.
type memView struct {
	repo *MemoryRepo
	inTx bool
	undo []func()
}

func (v *memView) Listings() ListingStore { return v }
func (v *memView) Bids() BidStore         { return v }
func (v *memView) Comments() CommentStore { return v }
func (v *memView) Watches() WatchStore    { return v }

func (v *memView) read(fn func(r *MemoryRepo) error) error {
	if !v.inTx {
		v.repo.mu.RLock()
		defer v.repo.mu.RUnlock()
	}
	return fn(v.repo)
}

func (v *memView) write(fn func(r *MemoryRepo) (func(), error)) error {
	if !v.inTx {
		v.repo.mu.Lock()
		defer v.repo.mu.Unlock()
	}
	undo, err := fn(v.repo)
	if err != nil {
		return err
	}
	if v.inTx && undo != nil {
		v.undo = append(v.undo, undo)
	}
	return nil
}

func (v *memView) rollback() {
	for i := len(v.undo) - 1; i >= 0; i-- {
		v.undo[i]()
	}
	v.undo = nil
}

// CreateListing stores a new listing
func (v *memView) CreateListing(ctx context.Context, listing model.Listing) error {
	return v.write(func(r *MemoryRepo) (func(), error) {
		if _, ok := r.listings[listing.ListingID]; ok {
			return nil, fmt.Errorf("create listing %s: duplicate id", listing.ListingID)
		}
		r.listings[listing.ListingID] = listing
		r.listingOrder = append(r.listingOrder, listing.ListingID)
		return func() {
			delete(r.listings, listing.ListingID)
			r.listingOrder = r.listingOrder[:len(r.listingOrder)-1]
		}, nil
	})
}

// GetListing returns a listing by ID
func (v *memView) GetListing(ctx context.Context, listingID string) (model.Listing, error) {
	var listing model.Listing
	err := v.read(func(r *MemoryRepo) error {
		l, ok := r.listings[listingID]
		if !ok {
			return fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
		}
		listing = l
		return nil
	})
	return listing, err
}

// GetListingForUpdate returns a listing by ID. The repository lock held by
// WithTx already excludes every other writer.
func (v *memView) GetListingForUpdate(ctx context.Context, listingID string) (model.Listing, error) {
	return v.GetListing(ctx, listingID)
}

// UpdateCurrentBid sets the listing's current bid
func (v *memView) UpdateCurrentBid(ctx context.Context, listingID string, amount decimal.Decimal) error {
	return v.updateListing(listingID, "update current bid", func(l *model.Listing) {
		l.CurrentBid = decimal.NewNullDecimal(amount)
	})
}

// SetActive sets the listing's active flag
func (v *memView) SetActive(ctx context.Context, listingID string, active bool) error {
	return v.updateListing(listingID, "set active", func(l *model.Listing) {
		l.Active = active
	})
}

func (v *memView) updateListing(listingID, op string, mutate func(l *model.Listing)) error {
	return v.write(func(r *MemoryRepo) (func(), error) {
		prev, ok := r.listings[listingID]
		if !ok {
			return nil, fmt.Errorf("%s for listing %s: %w", op, listingID, auctionerrors.ErrListingNotFound)
		}
		next := prev
		mutate(&next)
		r.listings[listingID] = next
		return func() { r.listings[listingID] = prev }, nil
	})
}

// ListListings returns listings matching filter, oldest first
func (v *memView) ListListings(ctx context.Context, filter ListingFilter) ([]model.Listing, error) {
	listings := []model.Listing{}
	err := v.read(func(r *MemoryRepo) error {
		for _, id := range r.listingOrder {
			l := r.listings[id]
			if filter.ActiveOnly && !l.Active {
				continue
			}
			if filter.Category != "" && l.Category != filter.Category {
				continue
			}
			listings = append(listings, l)
		}
		return nil
	})
	sortListings(listings)
	return listings, err
}

// RecordBid appends a bid to the listing's ledger
func (v *memView) RecordBid(ctx context.Context, bid model.Bid) error {
	return v.write(func(r *MemoryRepo) (func(), error) {
		if _, ok := r.listings[bid.ListingID]; !ok {
			return nil, fmt.Errorf("record bid for listing %s: %w", bid.ListingID, auctionerrors.ErrListingNotFound)
		}
		n := len(r.bids[bid.ListingID])
		r.bids[bid.ListingID] = append(r.bids[bid.ListingID], bid)
		return func() { r.bids[bid.ListingID] = r.bids[bid.ListingID][:n] }, nil
	})
}

// GetBidsByListing returns all bids for a listing in arrival order
func (v *memView) GetBidsByListing(ctx context.Context, listingID string) ([]model.Bid, error) {
	bids := []model.Bid{}
	err := v.read(func(r *MemoryRepo) error {
		bids = append(bids, r.bids[listingID]...)
		return nil
	})
	return bids, err
}

// GetHighestBid returns the highest bid for a listing
func (v *memView) GetHighestBid(ctx context.Context, listingID string) (model.Bid, error) {
	var winning model.Bid
	err := v.read(func(r *MemoryRepo) error {
		bids := r.bids[listingID]
		if len(bids) == 0 {
			return fmt.Errorf("get highest bid for listing %s: %w", listingID, auctionerrors.ErrNoBids)
		}

		winning = bids[0]
		for _, b := range bids[1:] {
			if b.Amount.GreaterThan(winning.Amount) || (b.Amount.Equal(winning.Amount) && b.CreatedAt.Before(winning.CreatedAt)) {
				winning = b
			}
		}
		return nil
	})
	return winning, err
}

// AddComment appends a comment to the listing's log
func (v *memView) AddComment(ctx context.Context, comment model.Comment) error {
	return v.write(func(r *MemoryRepo) (func(), error) {
		if _, ok := r.listings[comment.ListingID]; !ok {
			return nil, fmt.Errorf("add comment for listing %s: %w", comment.ListingID, auctionerrors.ErrListingNotFound)
		}
		n := len(r.comments[comment.ListingID])
		r.comments[comment.ListingID] = append(r.comments[comment.ListingID], comment)
		return func() { r.comments[comment.ListingID] = r.comments[comment.ListingID][:n] }, nil
	})
}

// GetCommentsByListing returns all comments for a listing in arrival order
func (v *memView) GetCommentsByListing(ctx context.Context, listingID string) ([]model.Comment, error) {
	comments := []model.Comment{}
	err := v.read(func(r *MemoryRepo) error {
		comments = append(comments, r.comments[listingID]...)
		return nil
	})
	return comments, err
}

// GetWatch returns the watch entry for a (listing, user) pair
func (v *memView) GetWatch(ctx context.Context, listingID, username string) (model.WatchEntry, error) {
	var entry model.WatchEntry
	err := v.read(func(r *MemoryRepo) error {
		e, ok := r.watches[watchKey{listingID, username}]
		if !ok {
			return fmt.Errorf("get watch for listing %s and user %s: %w", listingID, username, auctionerrors.ErrWatchNotFound)
		}
		entry = e
		return nil
	})
	return entry, err
}

// SaveWatch inserts or updates the entry keyed by (listing, user). The
// first stored ID is kept on update.
func (v *memView) SaveWatch(ctx context.Context, entry model.WatchEntry) error {
	return v.write(func(r *MemoryRepo) (func(), error) {
		if _, ok := r.listings[entry.ListingID]; !ok {
			return nil, fmt.Errorf("save watch for listing %s: %w", entry.ListingID, auctionerrors.ErrListingNotFound)
		}
		key := watchKey{entry.ListingID, entry.Username}
		prev, existed := r.watches[key]
		if existed {
			entry.WatchID = prev.WatchID
		}
		r.watches[key] = entry
		return func() {
			if existed {
				r.watches[key] = prev
				return
			}
			delete(r.watches, key)
		}, nil
	})
}

// GetWatchedListings returns the listings a user is currently watching, oldest first
func (v *memView) GetWatchedListings(ctx context.Context, username string) ([]model.Listing, error) {
	listings := []model.Listing{}
	err := v.read(func(r *MemoryRepo) error {
		for key, e := range r.watches {
			if key.username != username || !e.Watching {
				continue
			}
			if l, ok := r.listings[key.listingID]; ok {
				listings = append(listings, l)
			}
		}
		return nil
	})
	sortListings(listings)
	return listings, err
}

func sortListings(listings []model.Listing) {
	sort.SliceStable(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ListingID < listings[j].ListingID
		}
		return listings[i].CreatedAt.Before(listings[j].CreatedAt)
	})
}
