package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/auth"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testCategories = []string{"Books", "Home", "Toys"}

// testEnv is a full router over an in-memory repository with real token checks
type testEnv struct {
	router *gin.Engine
	repo   *repository.MemoryRepo
	tokens *auth.TokenManager
}

// SetupTestEnv initializes the router and seeds the repo with listings.
func SetupTestEnv(t *testing.T, listings ...model.Listing) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, listing := range listings {
		repo.AddListing(listing)
	}

	tokens := auth.NewTokenManager("integration-secret", "auction-house")
	service := auction.NewAuctionService(repo, testCategories)
	router := server.SetupRouter(service, server.Options{Tokens: tokens})
	return &testEnv{router: router, repo: repo, tokens: tokens}
}

// Token returns a bearer header value for user
func (e *testEnv) Token(t *testing.T, user string) string {
	t.Helper()
	token, err := e.tokens.GenerateToken(user, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

// Do executes an HTTP request on the router and parses the JSON envelope
func (e *testEnv) Do(t *testing.T, method, url, authorization string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	e.router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// NewTestListing builds an active listing owned by owner
func NewTestListing(owner, category, startingBid string) model.Listing {
	return model.Listing{
		ListingID:   uuid.NewString(),
		Title:       "Listing by " + owner,
		Description: "Integration test listing",
		Category:    category,
		StartingBid: decimal.RequireFromString(startingBid),
		Owner:       owner,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
}

// data returns the "data" member of a response envelope as an object
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response data is not an object: %v", resp)
	return d
}

// requireAmount compares a decimal serialized as a JSON string
func requireAmount(t *testing.T, want string, got any) {
	t.Helper()
	s, ok := got.(string)
	require.True(t, ok, "amount %v is not a string", got)
	require.True(t, decimal.RequireFromString(want).Equal(decimal.RequireFromString(s)), "want %s, got %s", want, s)
}
