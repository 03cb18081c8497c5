package model

import (
	"time"

	"github.com/gobid/auctionhouse/internal/auction"
)

// Metadata for the response
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
}

// Error details
type ErrorDetails struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details []ErrorDetails `json:"details,omitempty"`
	// MinNextBid accompanies BID_TOO_LOW so the client can self-correct
	// without another round trip.
	MinNextBid int64 `json:"min_next_bid,omitempty"`
}

type APIResponse[T any] struct {
	Status   string    `json:"status"`
	Message  string    `json:"message,omitempty"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
	Data     T         `json:"data,omitempty"`
}

// BidResult is the payload returned by both mutation paths.
type BidResult struct {
	Success           bool           `json:"success"`
	AntiSnipeExtended bool           `json:"anti_snipe_extended"`
	AuctionState      *auction.State `json:"auction_state"`
}
