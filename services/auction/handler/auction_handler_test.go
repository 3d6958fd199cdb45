package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testCategories = []string{"Books", "Home", "Toys"}

// decimalEq matches a decimal.Decimal argument by value
type decimalEq struct{ want decimal.Decimal }

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string { return "is equal to " + m.want.String() }

func amountOf(s string) gomock.Matcher {
	return decimalEq{want: decimal.RequireFromString(s)}
}

// newTestRouter registers every handler behind a stub identity middleware
// that trusts the X-Test-User header.
func newTestRouter(h *AuctionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if user := c.GetHeader("X-Test-User"); user != "" {
			c.Set(helpers.CallerKey, user)
		}
		c.Next()
	})

	router.GET("/listings", h.ListActiveListingsHandler)
	router.POST("/listings", h.CreateListingHandler)
	router.GET("/listings/:listing_id", h.GetListingHandler)
	router.GET("/listings/:listing_id/bids", h.GetBidsHandler)
	router.POST("/listings/:listing_id/bids", h.PlaceBidHandler)
	router.GET("/listings/:listing_id/highest", h.GetHighestBidHandler)
	router.POST("/listings/:listing_id/comments", h.AddCommentHandler)
	router.POST("/listings/:listing_id/watch", h.ToggleWatchHandler)
	router.POST("/listings/:listing_id/close", h.CloseAuctionHandler)
	router.GET("/categories", h.CategoriesHandler)
	router.GET("/categories/:category/listings", h.ListByCategoryHandler)
	router.GET("/users/:username/watchlist", h.GetWatchlistHandler)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, user string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func sampleListing(id string) model.Listing {
	return model.Listing{
		ListingID:   id,
		Title:       "Lamp",
		Description: "Brass desk lamp",
		Category:    "Home",
		StartingBid: decimal.RequireFromString("10"),
		Owner:       "olivia",
		Active:      true,
		CreatedAt:   time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name           string
		user           string
		requestBody    any
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateResp   func(t *testing.T, resp map[string]any)
	}{
		{
			name:        "success_valid_bid",
			user:        "alice",
			requestBody: map[string]any{"amount": 10.01},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "l1", "alice", amountOf("10.01")).
					Return(model.Bid{
						BidID:     uuid.NewString(),
						ListingID: "l1",
						Bidder:    "alice",
						Amount:    decimal.RequireFromString("10.01"),
						CreatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				data := resp["data"].(map[string]any)
				_, parseErr := uuid.Parse(data["bid_id"].(string))
				require.NoError(t, parseErr, "BidID should be a valid UUID")
				require.Equal(t, "l1", data["listing_id"])
				require.Equal(t, "alice", data["bidder"])
				require.Equal(t, "10.01", data["amount"])
			},
		},
		{
			name:        "amount_as_string",
			user:        "alice",
			requestBody: `{"amount": "15"}`,
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "l1", "alice", amountOf("15")).
					Return(model.Bid{ListingID: "l1", Bidder: "alice", Amount: decimal.RequireFromString("15"), CreatedAt: now}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.Equal(t, "15.00", resp["data"].(map[string]any)["amount"])
			},
		},
		{
			name:           "unauthenticated",
			requestBody:    map[string]any{"amount": 20},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "authentication required",
		},
		{
			name:           "invalid_json",
			user:           "alice",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_amount",
			user:           "alice",
			requestBody:    `{}`,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "non_numeric_amount",
			user:           "alice",
			requestBody:    `{"amount": "ten"}`,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "three_decimal_places",
			user:           "alice",
			requestBody:    `{"amount": 10.005}`,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.Contains(t, resp["fields"], "amount")
			},
		},
		{
			name:           "tiny_exponent_amount",
			user:           "alice",
			requestBody:    `{"amount": 1e-20000000}`,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.Contains(t, resp["fields"], "amount")
			},
		},
		{
			name:           "huge_exponent_amount_as_string",
			user:           "alice",
			requestBody:    `{"amount": "1e20000000"}`,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:           "negative_amount",
			user:           "alice",
			requestBody:    `{"amount": -5}`,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:        "service_bid_too_low",
			user:        "bob",
			requestBody: map[string]any{"amount": 10},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "l1", "bob", amountOf("10")).
					Return(model.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrBidTooLow))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid too low",
		},
		{
			name:        "service_listing_closed",
			user:        "carol",
			requestBody: map[string]any{"amount": 100},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "l1", "carol", amountOf("100")).
					Return(model.Bid{}, auctionerrors.ErrListingInactive)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing is closed",
		},
		{
			name:        "service_listing_not_found",
			user:        "carol",
			requestBody: map[string]any{"amount": 100},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "l1", "carol", gomock.Any()).
					Return(model.Bid{}, auctionerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "listing not found",
		},
		{
			name:        "service_generic_error",
			user:        "alice",
			requestBody: map[string]any{"amount": 100},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "l1", "alice", gomock.Any()).
					Return(model.Bid{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.NotContains(t, resp["error"], "database failure")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockAuctionServiceInterface(ctrl)
			tc.mockSetup(mockService)
			router := newTestRouter(NewAuctionHandler(mockService))

			w, resp := doRequest(t, router, http.MethodPost, "/listings/l1/bids", tc.user, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])
			if tc.validateResp != nil {
				tc.validateResp(t, resp)
			}
		})
	}
}

// Test CreateListingHandler
func TestCreateListingHandler(t *testing.T) {
	t.Parallel()

	validBody := map[string]any{
		"title":        "Lamp",
		"description":  "Brass desk lamp",
		"category":     "Home",
		"starting_bid": "10.00",
		"image_url":    "https://img.example.com/lamp.png",
	}

	tests := []struct {
		name           string
		user           string
		requestBody    any
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
		wantFields     []string
	}{
		{
			name:        "success",
			user:        "olivia",
			requestBody: validBody,
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().Categories().Return(testCategories)
				m.EXPECT().CreateListing(gomock.Any(), "olivia", gomock.Any()).
					DoAndReturn(func(_ any, owner string, in model.NewListing) (model.Listing, error) {
						l := sampleListing("l1")
						l.Owner = owner
						l.ImageURL = in.ImageURL
						return l, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "listing created successfully",
		},
		{
			name:           "unauthenticated",
			requestBody:    validBody,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "authentication required",
		},
		{
			name:           "missing_title",
			user:           "olivia",
			requestBody:    map[string]any{"description": "x", "category": "Home", "starting_bid": 1},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "field_errors",
			user: "olivia",
			requestBody: map[string]any{
				"title":        "Lamp",
				"description":  "Brass desk lamp",
				"category":     "Cars",
				"starting_bid": "1.999",
				"image_url":    "not a url",
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().Categories().Return(testCategories)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
			wantFields:     []string{"category", "image_url", "starting_bid"},
		},
		{
			name: "starting_bid_tiny_exponent",
			user: "olivia",
			requestBody: map[string]any{
				"title":        "Lamp",
				"description":  "Brass desk lamp",
				"category":     "Home",
				"starting_bid": "1e-20000000",
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().Categories().Return(testCategories)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
			wantFields:     []string{"starting_bid"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockAuctionServiceInterface(ctrl)
			tc.mockSetup(mockService)
			router := newTestRouter(NewAuctionHandler(mockService))

			w, resp := doRequest(t, router, http.MethodPost, "/listings", tc.user, tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])
			if tc.wantFields != nil {
				fields := resp["fields"].(map[string]any)
				var got []string
				for f := range fields {
					got = append(got, f)
				}
				slices.Sort(got)
				require.Equal(t, tc.wantFields, got)
			}
		})
	}
}

// Test the remaining routes
func TestAuctionHandler_Routes(t *testing.T) {
	t.Parallel()

	listings := []model.Listing{sampleListing("l1"), sampleListing("l2")}

	tests := []struct {
		name           string
		method         string
		path           string
		user           string
		body           any
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateResp   func(t *testing.T, resp map[string]any)
	}{
		{
			name:   "list_active",
			method: http.MethodGet,
			path:   "/listings",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListActiveListings(gomock.Any()).Return(slices.Values(listings), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listings retrieved successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.Len(t, resp["data"], 2)
			},
		},
		{
			name:   "list_active_empty",
			method: http.MethodGet,
			path:   "/listings",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListActiveListings(gomock.Any()).Return(slices.Values([]model.Listing(nil)), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listings retrieved successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.Equal(t, []any{}, resp["data"])
			},
		},
		{
			name:   "categories",
			method: http.MethodGet,
			path:   "/categories",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().Categories().Return(testCategories)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "categories retrieved successfully",
		},
		{
			name:   "category_unknown",
			method: http.MethodGet,
			path:   "/categories/Cars/listings",
			mockSetup: func(m *MockAuctionServiceInterface) {
				verr := auctionerrors.NewValidationError()
				verr.Add("category", "unknown category Cars")
				m.EXPECT().ListByCategory(gomock.Any(), "Cars").Return(nil, fmt.Errorf("service: %w", verr))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:   "category_listings",
			method: http.MethodGet,
			path:   "/categories/Home/listings",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListByCategory(gomock.Any(), "Home").Return(slices.Values(listings[:1]), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listings retrieved successfully",
		},
		{
			name:   "detail_anonymous",
			method: http.MethodGet,
			path:   "/listings/l1",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().GetListingDetail(gomock.Any(), "l1", "").Return(model.ListingDetail{Listing: listings[0]}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listing retrieved successfully",
		},
		{
			name:   "detail_with_viewer",
			method: http.MethodGet,
			path:   "/listings/l1",
			user:   "dave",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().GetListingDetail(gomock.Any(), "l1", "dave").Return(model.ListingDetail{Listing: listings[0], Watching: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listing retrieved successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.Equal(t, true, resp["data"].(map[string]any)["watching"])
			},
		},
		{
			name:   "detail_not_found",
			method: http.MethodGet,
			path:   "/listings/missing",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().GetListingDetail(gomock.Any(), "missing", "").Return(model.ListingDetail{}, auctionerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "listing not found",
		},
		{
			name:   "bids",
			method: http.MethodGet,
			path:   "/listings/l1/bids",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListBids(gomock.Any(), "l1").Return([]model.Bid{
					{BidID: "b1", ListingID: "l1", Bidder: "alice", Amount: decimal.RequireFromString("10.5")},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				bids := resp["data"].([]any)
				require.Len(t, bids, 1)
				require.Equal(t, "10.50", bids[0].(map[string]any)["amount"])
			},
		},
		{
			name:   "highest_without_bids",
			method: http.MethodGet,
			path:   "/listings/l1/highest",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().CurrentHighestBid(gomock.Any(), "l1").
					Return(model.HighestBid{ListingID: "l1", Amount: decimal.RequireFromString("10")}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "highest bid retrieved successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				data := resp["data"].(map[string]any)
				require.Equal(t, "10", data["amount"])
				require.NotContains(t, data, "bidder")
			},
		},
		{
			name:   "comment_added",
			method: http.MethodPost,
			path:   "/listings/l1/comments",
			user:   "alice",
			body:   map[string]any{"body": "  nice lamp "},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().AddComment(gomock.Any(), "l1", "alice", "nice lamp").
					Return(model.Comment{CommentID: "c1", ListingID: "l1", Author: "alice", Body: "nice lamp"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "comment added successfully",
		},
		{
			name:           "comment_blank",
			method:         http.MethodPost,
			path:           "/listings/l1/comments",
			user:           "alice",
			body:           map[string]any{"body": "   "},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:           "comment_unauthenticated",
			method:         http.MethodPost,
			path:           "/listings/l1/comments",
			body:           map[string]any{"body": "hi"},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "authentication required",
		},
		{
			name:   "watch_toggled",
			method: http.MethodPost,
			path:   "/listings/l1/watch",
			user:   "dave",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ToggleWatch(gomock.Any(), "l1", "dave").
					Return(model.WatchEntry{WatchID: "w1", ListingID: "l1", Username: "dave", Watching: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "watch list updated",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.Equal(t, true, resp["data"].(map[string]any)["watching"])
			},
		},
		{
			name:   "close_by_owner",
			method: http.MethodPost,
			path:   "/listings/l1/close",
			user:   "olivia",
			mockSetup: func(m *MockAuctionServiceInterface) {
				closed := listings[0]
				closed.Active = false
				m.EXPECT().CloseAuction(gomock.Any(), "l1", "olivia").Return(closed, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction closed",
		},
		{
			name:   "close_by_stranger",
			method: http.MethodPost,
			path:   "/listings/l1/close",
			user:   "mallory",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().CloseAuction(gomock.Any(), "l1", "mallory").
					Return(model.Listing{}, fmt.Errorf("service: %w", auctionerrors.ErrNotAuthorized))
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not authorized",
		},
		{
			name:   "close_twice",
			method: http.MethodPost,
			path:   "/listings/l1/close",
			user:   "olivia",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().CloseAuction(gomock.Any(), "l1", "olivia").Return(model.Listing{}, auctionerrors.ErrListingInactive)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing is closed",
		},
		{
			name:   "watchlist",
			method: http.MethodGet,
			path:   "/users/dave/watchlist",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListWatchedBy(gomock.Any(), "dave").Return(slices.Values(listings[1:]), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "watch list retrieved successfully",
			validateResp: func(t *testing.T, resp map[string]any) {
				require.Len(t, resp["data"], 1)
			},
		},
		{
			name:   "watchlist_store_down",
			method: http.MethodGet,
			path:   "/users/dave/watchlist",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListWatchedBy(gomock.Any(), "dave").Return(nil, auctionerrors.ErrStoreUnavailable)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockService := NewMockAuctionServiceInterface(ctrl)
			tc.mockSetup(mockService)
			router := newTestRouter(NewAuctionHandler(mockService))

			w, resp := doRequest(t, router, tc.method, tc.path, tc.user, tc.body)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])
			if tc.validateResp != nil {
				tc.validateResp(t, resp)
			}
		})
	}
}
