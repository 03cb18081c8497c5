package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Auction statuses. Every status other than active is terminal.
const (
	StatusActive    = "active"
	StatusBoughtNow = "bought_now"
	StatusEnded     = "ended"
	StatusCancelled = "cancelled"
)

// Listing modes and overall listing statuses.
const (
	ModeAuction = "auction"
	ModeFixed   = "fixed"

	ListingOpen = "open"
	ListingSold = "sold"
)

var (
	ErrAuctionNotFound = errors.New("auction not found")
	// ErrAuctionNotActive is returned when a conditional update matched no
	// active auction row, e.g. a buy-now against an already settled auction.
	ErrAuctionNotActive = errors.New("auction is not active")
)

// Auction is a listing in auction mode. Rows are validated into this type
// once at the store boundary; nothing above this layer touches raw rows.
type Auction struct {
	ID            uuid.UUID
	SellerID      uuid.UUID
	Mode          string
	Status        string
	ListingStatus string
	StartPrice    int64
	BuyNowPrice   *int64
	MinIncrement  int64
	EndAt         time.Time
	OriginalEndAt time.Time
	WinnerID      *uuid.UUID
	CreatedAt     time.Time
}

func (a Auction) IsAuctionMode() bool { return a.Mode == ModeAuction }
func (a Auction) IsActive() bool      { return a.Status == StatusActive }

// Bid is one row in the append-only bid ledger. Amounts are minor currency
// units.
type Bid struct {
	ID        uuid.UUID
	AuctionID uuid.UUID
	BidderID  uuid.UUID
	Amount    int64
	CreatedAt time.Time
}

// Profile is the slice of a user record the engine needs for display names.
type Profile struct {
	ID          uuid.UUID
	DisplayName string
}

type Store interface {
	GetAuction(ctx context.Context, id uuid.UUID) (Auction, error)
	// GetAuctionForUpdate locks the auction row for the rest of the
	// transaction. Only meaningful inside InTx.
	GetAuctionForUpdate(ctx context.Context, id uuid.UUID) (Auction, error)
	// GetHighestBid returns the max-amount bid, or nil when the ledger is
	// empty for this auction.
	GetHighestBid(ctx context.Context, auctionID uuid.UUID) (*Bid, error)
	InsertBid(ctx context.Context, b Bid) error
	UpdateAuctionEndAt(ctx context.Context, id uuid.UUID, endAt time.Time) error
	// SettleBuyNow atomically marks the auction bought_now, records the
	// winner and flips the listing to sold. Fails with ErrAuctionNotActive
	// when the auction left the active state in the meantime.
	SettleBuyNow(ctx context.Context, id uuid.UUID, buyerID uuid.UUID) error
	ListRecentBids(ctx context.Context, auctionID uuid.UUID, limit int) ([]Bid, error)
	CountBids(ctx context.Context, auctionID uuid.UUID) (int64, error)
	GetProfiles(ctx context.Context, ids []uuid.UUID) ([]Profile, error)
	// InTx runs fn against a transactional view of the store, committing on
	// nil and rolling back on error.
	InTx(ctx context.Context, fn func(Store) error) error
}
