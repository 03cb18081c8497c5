package auction

import (
	"time"

	"github.com/gobid/auctionhouse/internal/store"
)

const (
	// AntiSnipeThreshold is the window before the deadline in which a bid
	// resets the remaining time to exactly this duration.
	AntiSnipeThreshold = 5 * time.Minute

	// Default increment: 2% of the current price, rounded up, never below
	// the floor. Amounts are minor currency units.
	incrementRatePct = 2
	incrementFloor   = 50

	recentBidLimit = 20
)

func currentPrice(a store.Auction, highest *store.Bid) int64 {
	if highest != nil {
		return highest.Amount
	}
	return a.StartPrice
}

// minIncrement prefers the seller-defined increment when one is set.
func minIncrement(a store.Auction, price int64) int64 {
	if a.MinIncrement > 0 {
		return a.MinIncrement
	}
	inc := (price*incrementRatePct + 99) / 100
	if inc < incrementFloor {
		inc = incrementFloor
	}
	return inc
}

func minNextBid(a store.Auction, highest *store.Bid) int64 {
	price := currentPrice(a, highest)
	return price + minIncrement(a, price)
}
