package auction

import (
	"time"

	"github.com/google/uuid"
)

// BidEntry is one resolved row of the recent-bid list.
type BidEntry struct {
	ID         uuid.UUID `json:"id"`
	BidderID   uuid.UUID `json:"bidder_id"`
	BidderName string    `json:"bidder_name"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// State is the assembled read-only view returned to every caller, whichever
// path produced the mutation.
type State struct {
	AuctionID         uuid.UUID  `json:"auction_id"`
	Status            string     `json:"status"`
	StartPrice        int64      `json:"start_price"`
	BuyNowPrice       *int64     `json:"buy_now_price,omitempty"`
	CurrentHighestBid int64      `json:"current_highest_bid"`
	HighestBidderID   *uuid.UUID `json:"highest_bidder_id,omitempty"`
	HighestBidderName string     `json:"highest_bidder_name,omitempty"`
	BidCount          int64      `json:"bid_count"`
	MinIncrement      int64      `json:"min_increment"`
	MinNextBid        int64      `json:"min_next_bid"`
	EndAt             time.Time  `json:"end_at"`
	OriginalEndAt     time.Time  `json:"original_end_at"`
	RecentBids        []BidEntry `json:"recent_bids"`
	WinnerID          *uuid.UUID `json:"winner_id,omitempty"`
	WinnerName        string     `json:"winner_name,omitempty"`
	AntiSnipeExtended bool       `json:"anti_snipe_extended"`
}
