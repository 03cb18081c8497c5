package handlers

import "errors"

var (
	// common error code
	ErrInternalServer = errors.New("INTERNAL_SERVER_ERROR")
	ErrInvalidRequest = errors.New("VALIDATION_FAILED")
	ErrInvalidJson    = errors.New("INVALID_JSON_FORMAT")
	ErrMissingParam   = errors.New("MISSING_PARAM")
	ErrDb             = errors.New("DB_ERROR")

	// auth error code
	ErrMissingToken  = errors.New("MISSING_TOKEN")
	ErrInvalidToken  = errors.New("INVALID_TOKEN")
	ErrTokenMismatch = errors.New("TOKEN_MISMATCH")

	// bid error code
	ErrMissingFields  = errors.New("MISSING_FIELDS")
	ErrInvalidAmount  = errors.New("INVALID_AMOUNT")
	ErrBidLow         = errors.New("BID_TOO_LOW")
	ErrSelfBidding    = errors.New("SELF_BIDDING_NOT_ALLOWED")
	ErrAlreadyHighest = errors.New("ALREADY_HIGHEST_BIDDER")
	ErrExpired        = errors.New("AUCTION_EXPIRED")

	// auction error code
	ErrAuctionNotFound = errors.New("AUCTION_NOT_FOUND")
	ErrInvalidState    = errors.New("INVALID_AUCTION_STATE")
	ErrNoBuyNow        = errors.New("BUY_NOW_UNAVAILABLE")
	ErrSelfPurchase    = errors.New("SELF_PURCHASE_NOT_ALLOWED")
)
