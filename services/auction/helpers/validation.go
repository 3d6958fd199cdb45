package helpers

import (
	"strings"

	"auction-house/internal/auctionerrors"
	auction "auction-house/internal/auctionService"
	model "auction-house/internal/models"

	"github.com/shopspring/decimal"
)

// maxMoneyLength bounds the raw text of an amount; "-99999999.99" needs 12
const maxMoneyLength = 32

// parseMoney parses a request amount, recording a field error on failure
func parseMoney(verr *auctionerrors.ValidationError, field, raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if len(raw) > maxMoneyLength {
		verr.Add(field, "must be a decimal number")
		return decimal.Decimal{}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		verr.Add(field, "must be a decimal number")
	}
	return amount
}

// ParsePlaceBid turns a bid request into a validated amount
func ParsePlaceBid(req PlaceBidRequest) (decimal.Decimal, error) {
	verr := auctionerrors.NewValidationError()
	amount := parseMoney(verr, "amount", req.Amount.String())
	if !verr.Empty() {
		return decimal.Decimal{}, verr
	}
	if err := auction.ValidateBidAmount(amount); err != nil {
		return decimal.Decimal{}, err
	}
	return amount, nil
}

// ParseCreateListing turns a listing request into a validated submission
func ParseCreateListing(req CreateListingRequest, categories []string) (model.NewListing, error) {
	verr := auctionerrors.NewValidationError()
	startingBid := parseMoney(verr, "starting_bid", req.StartingBid.String())
	if !verr.Empty() {
		return model.NewListing{}, verr
	}

	in := model.NewListing{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartingBid: startingBid,
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}
	if err := auction.ValidateNewListing(in, categories); err != nil {
		return model.NewListing{}, err
	}
	return in, nil
}

// ParseComment trims a comment body and rejects blank ones
func ParseComment(req AddCommentRequest) (string, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		verr := auctionerrors.NewValidationError()
		verr.Add("body", "is required")
		return "", verr
	}
	return body, nil
}
