package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository/migrations"
	"auction-house/utils"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
)

const listingColumns = `id, title, description, category, starting_bid, current_bid, owner, image_url, active, created_at`

// PostgresRepo implements AuctionDB on PostgreSQL through sqlx.
// Read-modify-write units lock the listing row with SELECT ... FOR UPDATE,
// so contention is scoped to a single listing.
type PostgresRepo struct {
	db *sqlx.DB
}

// NewPostgresRepo wraps an open database handle
func NewPostgresRepo(db *sqlx.DB) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// OpenPostgres connects to dsn and verifies the connection
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepo, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return NewPostgresRepo(db), nil
}

// RunMigrations applies the embedded goose migrations
func (r *PostgresRepo) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, r.db.DB, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable
func (r *PostgresRepo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return dbError("ping", err)
	}
	return nil
}

// Close releases the connection pool
func (r *PostgresRepo) Close() error {
	return r.db.Close()
}

func (r *PostgresRepo) Listings() ListingStore { return &pgView{q: r.db} }
func (r *PostgresRepo) Bids() BidStore         { return &pgView{q: r.db} }
func (r *PostgresRepo) Comments() CommentStore { return &pgView{q: r.db} }
func (r *PostgresRepo) Watches() WatchStore    { return &pgView{q: r.db} }

// WithTx begins a transaction, runs fn with stores bound to it, and commits
// on success or rolls back on error or panic. Panics are rethrown.
func (r *PostgresRepo) WithTx(ctx context.Context, fn func(ctx context.Context, tx Stores) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return dbError("begin tx", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = dbError("commit tx", cerr)
		}
	}()

	return fn(ctx, &pgView{q: tx})
}

// pgView runs the store queries on either *sqlx.DB or *sqlx.Tx.
type pgView struct {
	q sqlx.ExtContext
}

func (v *pgView) Listings() ListingStore { return v }
func (v *pgView) Bids() BidStore         { return v }
func (v *pgView) Comments() CommentStore { return v }
func (v *pgView) Watches() WatchStore    { return v }

func dbError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, auctionerrors.ErrStoreUnavailable, err)
}

// CreateListing inserts a new listing
func (v *pgView) CreateListing(ctx context.Context, listing model.Listing) error {
	query := `
        INSERT INTO listings
            (id, title, description, category, starting_bid, current_bid, owner, image_url, active, created_at)
        VALUES
            (:id, :title, :description, :category, :starting_bid, :current_bid, :owner, :image_url, :active, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, v.q, query, listing); err != nil {
		return dbError("create listing", err)
	}
	return nil
}

// GetListing returns a listing by ID
func (v *pgView) GetListing(ctx context.Context, listingID string) (model.Listing, error) {
	return v.getListing(ctx, listingID, `SELECT `+listingColumns+` FROM listings WHERE id = $1`)
}

// GetListingForUpdate returns a listing by ID and locks its row
func (v *pgView) GetListingForUpdate(ctx context.Context, listingID string) (model.Listing, error) {
	return v.getListing(ctx, listingID, `SELECT `+listingColumns+` FROM listings WHERE id = $1 FOR UPDATE`)
}

func (v *pgView) getListing(ctx context.Context, listingID, query string) (model.Listing, error) {
	if !utils.IsID(listingID) {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
	}

	var listing model.Listing
	if err := sqlx.GetContext(ctx, v.q, &listing, query, listingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, auctionerrors.ErrListingNotFound)
		}
		return model.Listing{}, dbError("get listing", err)
	}
	return listing, nil
}

// UpdateCurrentBid sets the listing's current bid
func (v *pgView) UpdateCurrentBid(ctx context.Context, listingID string, amount decimal.Decimal) error {
	return v.updateListing(ctx, "update current bid", listingID,
		`UPDATE listings SET current_bid = $1 WHERE id = $2`, amount)
}

// SetActive sets the listing's active flag
func (v *pgView) SetActive(ctx context.Context, listingID string, active bool) error {
	return v.updateListing(ctx, "set active", listingID,
		`UPDATE listings SET active = $1 WHERE id = $2`, active)
}

func (v *pgView) updateListing(ctx context.Context, op, listingID, query string, value any) error {
	if !utils.IsID(listingID) {
		return fmt.Errorf("%s for listing %s: %w", op, listingID, auctionerrors.ErrListingNotFound)
	}

	res, err := v.q.ExecContext(ctx, query, value, listingID)
	if err != nil {
		return dbError(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbError(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s for listing %s: %w", op, listingID, auctionerrors.ErrListingNotFound)
	}
	return nil
}

// ListListings returns listings matching filter, oldest first
func (v *pgView) ListListings(ctx context.Context, filter ListingFilter) ([]model.Listing, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ActiveOnly {
		conds = append(conds, "active = TRUE")
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at ASC, id ASC"

	listings := []model.Listing{}
	if err := sqlx.SelectContext(ctx, v.q, &listings, query, args...); err != nil {
		return nil, dbError("list listings", err)
	}
	return listings, nil
}

// RecordBid appends a bid to the ledger
func (v *pgView) RecordBid(ctx context.Context, bid model.Bid) error {
	query := `
        INSERT INTO bids (id, listing_id, bidder, amount, created_at)
        VALUES (:id, :listing_id, :bidder, :amount, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, v.q, query, bid); err != nil {
		return dbError("record bid", err)
	}
	return nil
}

// GetBidsByListing returns all bids for a listing, oldest first
func (v *pgView) GetBidsByListing(ctx context.Context, listingID string) ([]model.Bid, error) {
	bids := []model.Bid{}
	if !utils.IsID(listingID) {
		return bids, nil
	}

	query := `
        SELECT id, listing_id, bidder, amount, created_at
        FROM bids
        WHERE listing_id = $1
        ORDER BY created_at ASC, id ASC`
	if err := sqlx.SelectContext(ctx, v.q, &bids, query, listingID); err != nil {
		return nil, dbError("get bids", err)
	}
	return bids, nil
}

// GetHighestBid returns the highest bid for a listing, earliest first on ties
func (v *pgView) GetHighestBid(ctx context.Context, listingID string) (model.Bid, error) {
	if !utils.IsID(listingID) {
		return model.Bid{}, fmt.Errorf("get highest bid for listing %s: %w", listingID, auctionerrors.ErrNoBids)
	}

	query := `
        SELECT id, listing_id, bidder, amount, created_at
        FROM bids
        WHERE listing_id = $1
        ORDER BY amount DESC, created_at ASC
        LIMIT 1`
	var bid model.Bid
	if err := sqlx.GetContext(ctx, v.q, &bid, query, listingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Bid{}, fmt.Errorf("get highest bid for listing %s: %w", listingID, auctionerrors.ErrNoBids)
		}
		return model.Bid{}, dbError("get highest bid", err)
	}
	return bid, nil
}

// AddComment appends a comment to the log
func (v *pgView) AddComment(ctx context.Context, comment model.Comment) error {
	query := `
        INSERT INTO comments (id, listing_id, author, body, created_at)
        VALUES (:id, :listing_id, :author, :body, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, v.q, query, comment); err != nil {
		return dbError("add comment", err)
	}
	return nil
}

// GetCommentsByListing returns all comments for a listing, oldest first
func (v *pgView) GetCommentsByListing(ctx context.Context, listingID string) ([]model.Comment, error) {
	comments := []model.Comment{}
	if !utils.IsID(listingID) {
		return comments, nil
	}

	query := `
        SELECT id, listing_id, author, body, created_at
        FROM comments
        WHERE listing_id = $1
        ORDER BY created_at ASC, id ASC`
	if err := sqlx.SelectContext(ctx, v.q, &comments, query, listingID); err != nil {
		return nil, dbError("get comments", err)
	}
	return comments, nil
}

// GetWatch returns the watch entry for a (listing, user) pair
func (v *pgView) GetWatch(ctx context.Context, listingID, username string) (model.WatchEntry, error) {
	if !utils.IsID(listingID) {
		return model.WatchEntry{}, fmt.Errorf("get watch for listing %s: %w", listingID, auctionerrors.ErrWatchNotFound)
	}

	query := `
        SELECT id, listing_id, username, watching
        FROM watch_entries
        WHERE listing_id = $1 AND username = $2`
	var entry model.WatchEntry
	if err := sqlx.GetContext(ctx, v.q, &entry, query, listingID, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WatchEntry{}, fmt.Errorf("get watch for listing %s and user %s: %w", listingID, username, auctionerrors.ErrWatchNotFound)
		}
		return model.WatchEntry{}, dbError("get watch", err)
	}
	return entry, nil
}

// SaveWatch upserts the entry keyed by (listing, user)
func (v *pgView) SaveWatch(ctx context.Context, entry model.WatchEntry) error {
	query := `
        INSERT INTO watch_entries (id, listing_id, username, watching)
        VALUES (:id, :listing_id, :username, :watching)
        ON CONFLICT (listing_id, username) DO UPDATE SET watching = EXCLUDED.watching`
	if _, err := sqlx.NamedExecContext(ctx, v.q, query, entry); err != nil {
		return dbError("save watch", err)
	}
	return nil
}

// GetWatchedListings returns the listings a user is watching, oldest first
func (v *pgView) GetWatchedListings(ctx context.Context, username string) ([]model.Listing, error) {
	query := `
        SELECT l.id, l.title, l.description, l.category, l.starting_bid, l.current_bid,
               l.owner, l.image_url, l.active, l.created_at
        FROM listings l
        JOIN watch_entries w ON w.listing_id = l.id
        WHERE w.username = $1 AND w.watching = TRUE
        ORDER BY l.created_at ASC, l.id ASC`
	listings := []model.Listing{}
	if err := sqlx.SelectContext(ctx, v.q, &listings, query, username); err != nil {
		return nil, dbError("get watched listings", err)
	}
	return listings, nil
}
