package auction

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFields       = errors.New("auction id, bidder id and amount are required")
	ErrInvalidAmount       = errors.New("amount must be a positive whole number")
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrInvalidAuctionState = errors.New("auction is not open for bidding")
	ErrSelfBid             = errors.New("sellers cannot bid on their own auction")
	ErrAuctionExpired      = errors.New("auction has already ended")
	ErrAlreadyHighest      = errors.New("you already hold the highest bid")
	ErrMissingBuyNowPrice  = errors.New("auction has no buy-now price")
	ErrMissingToken        = errors.New("a session token or buyer id is required")
	ErrTokenMismatch       = errors.New("session token does not match the supplied buyer id")
)

// MinBidError rejects a bid below the ladder minimum. It carries the
// smallest acceptable amount so a client can correct and resubmit without
// another round trip.
type MinBidError struct {
	MinNextBid int64
}

func (e *MinBidError) Error() string {
	return fmt.Sprintf("bid is below the minimum next bid of %d", e.MinNextBid)
}
