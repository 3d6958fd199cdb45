package auction

import (
	"net/url"
	"slices"
	"strings"
	"unicode/utf8"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"

	"github.com/shopspring/decimal"
)

const (
	maxTitleLength = 64
	moneyPlaces    = 2

	// Exponent bounds checked before any arithmetic. Rescaling a decimal
	// costs time proportional to 10^|exp|, so "1e-999999999" must never
	// reach Truncate or a comparison.
	minMoneyExponent = -20
	maxMoneyExponent = 8
)

// maxAmount is the first value that no longer fits NUMERIC(10,2)
var maxAmount = decimal.New(1, 8)

// checkAmount reports a message describing why amount is not a valid
// money value, or "" when it is.
func checkAmount(amount decimal.Decimal, allowZero bool) string {
	switch {
	case amount.IsNegative():
		return "must not be negative"
	case amount.IsZero() && !allowZero:
		return "must be greater than zero"
	case amount.IsZero():
		return ""
	case amount.Exponent() < minMoneyExponent:
		return "must have at most two decimal places"
	case amount.Exponent() > maxMoneyExponent:
		return "must be less than 100000000"
	case !amount.Equal(amount.Truncate(moneyPlaces)):
		return "must have at most two decimal places"
	case amount.GreaterThanOrEqual(maxAmount):
		return "must be less than 100000000"
	}
	return ""
}

// ValidateNewListing checks a listing submission against the field rules
// and the allowed categories.
func ValidateNewListing(in models.NewListing, categories []string) error {
	verr := auctionerrors.NewValidationError()

	title := strings.TrimSpace(in.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		verr.Add("title", "is required")
	case n > maxTitleLength:
		verr.Add("title", "must be at most 64 characters")
	}

	if strings.TrimSpace(in.Description) == "" {
		verr.Add("description", "is required")
	}

	if !slices.Contains(categories, in.Category) {
		verr.Add("category", "must be one of "+strings.Join(categories, ", "))
	}

	if msg := checkAmount(in.StartingBid, true); msg != "" {
		verr.Add("starting_bid", msg)
	}

	if in.ImageURL != "" {
		u, err := url.Parse(in.ImageURL)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			verr.Add("image_url", "must be an absolute http or https URL")
		}
	}

	return verr.OrNil()
}

// ValidateBidAmount checks that amount is a positive money value
func ValidateBidAmount(amount decimal.Decimal) error {
	if msg := checkAmount(amount, false); msg != "" {
		verr := auctionerrors.NewValidationError()
		verr.Add("amount", msg)
		return verr
	}
	return nil
}
