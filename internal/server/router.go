package server

import (
	"net/http"

	handler "auction-house/services/auction/handler"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// Options carries the collaborators the router needs besides the service.
// BidLimiter may be nil, which disables bid rate limiting.
type Options struct {
	Tokens     TokenParser
	BidLimiter Limiter
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService handler.AuctionServiceInterface, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)
	authed := RequireCaller(opts.Tokens)

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"}, "healthy")
	})

	listings := router.Group("/listings")
	{
		listings.GET("", auctionHandler.ListActiveListingsHandler)
		listings.POST("", authed, auctionHandler.CreateListingHandler)
		listings.GET("/:listing_id", OptionalCaller(opts.Tokens), auctionHandler.GetListingHandler)
		listings.GET("/:listing_id/bids", auctionHandler.GetBidsHandler)
		listings.GET("/:listing_id/highest", auctionHandler.GetHighestBidHandler)

		bidChain := []gin.HandlerFunc{authed}
		if opts.BidLimiter != nil {
			bidChain = append(bidChain, BidRateLimit(opts.BidLimiter))
		}
		bidChain = append(bidChain, auctionHandler.PlaceBidHandler)
		listings.POST("/:listing_id/bids", bidChain...)

		listings.POST("/:listing_id/comments", authed, auctionHandler.AddCommentHandler)
		listings.POST("/:listing_id/watch", authed, auctionHandler.ToggleWatchHandler)
		listings.POST("/:listing_id/close", authed, auctionHandler.CloseAuctionHandler)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", auctionHandler.CategoriesHandler)
		categories.GET("/:category/listings", auctionHandler.ListByCategoryHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:username/watchlist", auctionHandler.GetWatchlistHandler)
	}

	return router
}
