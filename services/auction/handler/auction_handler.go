package handler

import (
	"context"
	"errors"
	"iter"
	"net/http"
	"slices"
	"time"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_service.go -package=handler

type AuctionServiceInterface interface {
	CreateListing(ctx context.Context, owner string, in model.NewListing) (model.Listing, error)
	PlaceBid(ctx context.Context, listingID, bidder string, amount decimal.Decimal) (model.Bid, error)
	ToggleWatch(ctx context.Context, listingID, user string) (model.WatchEntry, error)
	CloseAuction(ctx context.Context, listingID, requester string) (model.Listing, error)
	AddComment(ctx context.Context, listingID, author, body string) (model.Comment, error)
	ListActiveListings(ctx context.Context) (iter.Seq[model.Listing], error)
	ListByCategory(ctx context.Context, category string) (iter.Seq[model.Listing], error)
	ListWatchedBy(ctx context.Context, user string) (iter.Seq[model.Listing], error)
	CurrentHighestBid(ctx context.Context, listingID string) (model.HighestBid, error)
	ListBids(ctx context.Context, listingID string) ([]model.Bid, error)
	GetListingDetail(ctx context.Context, listingID, viewer string) (model.ListingDetail, error)
	Categories() []string
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

var errNoCaller = errors.New("missing caller identity")

// requireCaller returns the authenticated username or answers 401
func requireCaller(c *gin.Context, handlerName string) (string, bool) {
	user, ok := helpers.Caller(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, errNoCaller, "authentication required")
		utils.Warn(handlerName+": unauthenticated request", map[string]any{"path": c.Request.URL.Path})
	}
	return user, ok
}

func toBidResponse(bid model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     bid.BidID,
		ListingID: bid.ListingID,
		Bidder:    bid.Bidder,
		Amount:    bid.Amount.StringFixed(2),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func collectListings(seq iter.Seq[model.Listing]) []model.Listing {
	listings := slices.Collect(seq)
	if listings == nil {
		listings = []model.Listing{}
	}
	return listings
}

// ListActiveListingsHandler handles GET /listings
func (h *AuctionHandler) ListActiveListingsHandler(c *gin.Context) {
	seq, err := h.service.ListActiveListings(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListActiveListingsHandler", "list active listings", err, nil)
		return
	}

	listings := collectListings(seq)
	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
	helpers.LogSuccess("ListActiveListingsHandler", "listings retrieved successfully", map[string]any{
		"count": len(listings),
	})
}

// CategoriesHandler handles GET /categories
func (h *AuctionHandler) CategoriesHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.Categories(), "categories retrieved successfully")
}

// ListByCategoryHandler handles GET /categories/:category/listings
func (h *AuctionHandler) ListByCategoryHandler(c *gin.Context) {
	category := c.Param("category")
	seq, err := h.service.ListByCategory(c.Request.Context(), category)
	if err != nil {
		helpers.HandleServiceError(c, "ListByCategoryHandler", "list category", err, map[string]any{"category": category})
		return
	}

	listings := collectListings(seq)
	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
	helpers.LogSuccess("ListByCategoryHandler", "listings retrieved successfully", map[string]any{
		"category": category,
		"count":    len(listings),
	})
}

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	owner, ok := requireCaller(c, "CreateListingHandler")
	if !ok {
		return
	}

	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	in, err := helpers.ParseCreateListing(req, h.service.Categories())
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", "validate listing", err, map[string]any{"owner": owner})
		return
	}

	listing, err := h.service.CreateListing(c.Request.Context(), owner, in)
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", "create listing", err, map[string]any{"owner": owner})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"owner":      owner,
		"category":   listing.Category,
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	viewer, _ := helpers.Caller(c)

	detail, err := h.service.GetListingDetail(c.Request.Context(), listingID, viewer)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", "get listing", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, detail, "listing retrieved successfully")
	helpers.LogSuccess("GetListingHandler", "listing retrieved successfully", map[string]any{
		"listing_id": listingID,
		"viewer":     viewer,
	})
}

// GetBidsHandler handles GET /listings/:listing_id/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	bids, err := h.service.ListBids(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidsHandler", "get bids", err, map[string]any{"listing_id": listingID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, toBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(resp),
	})
}

// GetHighestBidHandler handles GET /listings/:listing_id/highest
func (h *AuctionHandler) GetHighestBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	highest, err := h.service.CurrentHighestBid(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetHighestBidHandler", "get highest bid", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, highest, "highest bid retrieved successfully")
}

// PlaceBidHandler handles POST /listings/:listing_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	bidder, ok := requireCaller(c, "PlaceBidHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	amount, err := helpers.ParsePlaceBid(req)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", "validate bid", err, map[string]any{"listing_id": listingID})
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), listingID, bidder, amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", "place bid", err, map[string]any{
			"listing_id": listingID,
			"bidder":     bidder,
			"amount":     amount.String(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, toBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.BidID,
		"listing_id": listingID,
		"bidder":     bidder,
		"amount":     bid.Amount.String(),
	})
}

// AddCommentHandler handles POST /listings/:listing_id/comments
func (h *AuctionHandler) AddCommentHandler(c *gin.Context) {
	author, ok := requireCaller(c, "AddCommentHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")

	var req helpers.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCommentHandler", err)
		return
	}

	body, err := helpers.ParseComment(req)
	if err != nil {
		helpers.HandleServiceError(c, "AddCommentHandler", "validate comment", err, map[string]any{"listing_id": listingID})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), listingID, author, body)
	if err != nil {
		helpers.HandleServiceError(c, "AddCommentHandler", "add comment", err, map[string]any{
			"listing_id": listingID,
			"author":     author,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, comment, "comment added successfully")
	helpers.LogSuccess("AddCommentHandler", "comment added successfully", map[string]any{
		"comment_id": comment.CommentID,
		"listing_id": listingID,
		"author":     author,
	})
}

// ToggleWatchHandler handles POST /listings/:listing_id/watch
func (h *AuctionHandler) ToggleWatchHandler(c *gin.Context) {
	user, ok := requireCaller(c, "ToggleWatchHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")

	entry, err := h.service.ToggleWatch(c.Request.Context(), listingID, user)
	if err != nil {
		helpers.HandleServiceError(c, "ToggleWatchHandler", "toggle watch", err, map[string]any{
			"listing_id": listingID,
			"user":       user,
		})
		return
	}

	resp := helpers.WatchResponse{ListingID: entry.ListingID, Username: entry.Username, Watching: entry.Watching}
	utils.JSONResponse(c, http.StatusOK, resp, "watch list updated")
	helpers.LogSuccess("ToggleWatchHandler", "watch list updated", map[string]any{
		"listing_id": listingID,
		"user":       user,
		"watching":   entry.Watching,
	})
}

// CloseAuctionHandler handles POST /listings/:listing_id/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	requester, ok := requireCaller(c, "CloseAuctionHandler")
	if !ok {
		return
	}
	listingID := c.Param("listing_id")

	listing, err := h.service.CloseAuction(c.Request.Context(), listingID, requester)
	if err != nil {
		helpers.HandleServiceError(c, "CloseAuctionHandler", "close auction", err, map[string]any{
			"listing_id": listingID,
			"requester":  requester,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "auction closed")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed", map[string]any{
		"listing_id": listingID,
		"owner":      requester,
	})
}

// GetWatchlistHandler handles GET /users/:username/watchlist
func (h *AuctionHandler) GetWatchlistHandler(c *gin.Context) {
	username := c.Param("username")
	seq, err := h.service.ListWatchedBy(c.Request.Context(), username)
	if err != nil {
		helpers.HandleServiceError(c, "GetWatchlistHandler", "get watch list", err, map[string]any{"username": username})
		return
	}

	listings := collectListings(seq)
	utils.JSONResponse(c, http.StatusOK, listings, "watch list retrieved successfully")
	helpers.LogSuccess("GetWatchlistHandler", "watch list retrieved successfully", map[string]any{
		"username": username,
		"count":    len(listings),
	})
}
