package auction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gobid/auctionhouse/internal/notify"
	"github.com/gobid/auctionhouse/internal/profile"
	"github.com/gobid/auctionhouse/internal/store"
	"github.com/gobid/auctionhouse/pkg/logger"
	"github.com/google/uuid"
)

// NameResolver batch-resolves user ids to display names. It must not fail a
// request; unknown ids map to a fallback label.
type NameResolver interface {
	ResolveNames(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string
}

// Dispatcher hands notification events off without ever surfacing delivery
// failures into the request.
type Dispatcher interface {
	Dispatch(eventType string, payload any)
}

type Servicer interface {
	PlaceBid(ctx context.Context, in PlaceBidInput) (*State, error)
	BuyNow(ctx context.Context, in BuyNowInput) (*State, error)
	GetState(ctx context.Context, auctionID string) (*State, error)
}

// PlaceBidInput carries the raw bid request. Amount stays a json.Number so
// the validator, not the decoder, decides what a usable amount is.
type PlaceBidInput struct {
	AuctionID   string
	BidderID    string
	DisplayName string
	Amount      json.Number
}

// BuyNowInput carries the buy-now request. AuthedBuyerID is set when a
// verified session token accompanied the request; BuyerID is the trusted
// caller-supplied fallback.
type BuyNowInput struct {
	AuctionID     string
	BuyerID       string
	DisplayName   string
	AuthedBuyerID *uuid.UUID
}

type Service struct {
	store    store.Store
	names    NameResolver
	notifier Dispatcher
	clock    Clock
	log      *logger.Logger
}

func NewService(s store.Store, names NameResolver, notifier Dispatcher, clock Clock, log *logger.Logger) (*Service, error) {
	if clock == nil {
		clock = SystemClock()
	}
	return &Service{
		store:    s,
		names:    names,
		notifier: notifier,
		clock:    clock,
		log:      log,
	}, nil
}

// PlaceBid runs the ordered validation ladder and appends a qualifying bid.
// The load-validate-insert sequence runs in one transaction with the auction
// row locked, so two racing bidders never both validate against the same
// stale highest bid. The anti-snipe reset and the notification happen after
// commit: a failed reset is logged and the bid stands.
func (s *Service) PlaceBid(ctx context.Context, in PlaceBidInput) (*State, error) {
	if in.AuctionID == "" || in.BidderID == "" || in.Amount == "" {
		return nil, ErrMissingFields
	}
	amount, err := in.Amount.Int64()
	if err != nil || amount <= 0 {
		return nil, ErrInvalidAmount
	}
	bidderID, err := uuid.Parse(in.BidderID)
	if err != nil {
		return nil, ErrMissingFields
	}
	auctionID, err := uuid.Parse(in.AuctionID)
	if err != nil {
		return nil, ErrAuctionNotFound
	}

	now := s.clock.Now()

	var auction store.Auction
	err = s.store.InTx(ctx, func(tx store.Store) error {
		a, err := tx.GetAuctionForUpdate(ctx, auctionID)
		if err != nil {
			if errors.Is(err, store.ErrAuctionNotFound) {
				return ErrAuctionNotFound
			}
			return fmt.Errorf("load auction: %w", err)
		}
		if !a.IsAuctionMode() || !a.IsActive() {
			return ErrInvalidAuctionState
		}
		if a.SellerID == bidderID {
			return ErrSelfBid
		}
		if !now.Before(a.EndAt) {
			return ErrAuctionExpired
		}

		highest, err := tx.GetHighestBid(ctx, auctionID)
		if err != nil {
			return fmt.Errorf("load highest bid: %w", err)
		}
		if highest != nil && highest.BidderID == bidderID {
			return ErrAlreadyHighest
		}
		if min := minNextBid(a, highest); amount < min {
			return &MinBidError{MinNextBid: min}
		}

		auction = a
		return tx.InsertBid(ctx, store.Bid{
			ID:        uuid.New(),
			AuctionID: auctionID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	extended := false
	if auction.EndAt.Sub(now) <= AntiSnipeThreshold {
		newEnd := now.Add(AntiSnipeThreshold)
		if err := s.store.UpdateAuctionEndAt(ctx, auctionID, newEnd); err != nil {
			// The bid is already committed; a lost extension never voids it.
			s.log.Errorw("[AUCTION] end-time extension failed",
				"auction_id", auctionID, "error", err)
		} else {
			auction.EndAt = newEnd
			extended = true
		}
	}

	s.notifier.Dispatch(notify.EventBidPlaced, notify.BidPlaced{
		AuctionID:        auctionID,
		BidderID:         bidderID,
		BidderName:       displayNameOrFallback(in.DisplayName),
		Amount:           amount,
		DeadlineExtended: extended,
	})

	return s.assembleState(ctx, auction, extended)
}

// BuyNow settles the auction immediately at the fixed price. The bid ladder
// is never consulted.
func (s *Service) BuyNow(ctx context.Context, in BuyNowInput) (*State, error) {
	if in.AuctionID == "" {
		return nil, ErrMissingFields
	}
	buyerID, err := s.resolveBuyer(in)
	if err != nil {
		return nil, err
	}
	auctionID, err := uuid.Parse(in.AuctionID)
	if err != nil {
		return nil, ErrAuctionNotFound
	}

	a, err := s.store.GetAuction(ctx, auctionID)
	if err != nil {
		if errors.Is(err, store.ErrAuctionNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, fmt.Errorf("load auction: %w", err)
	}
	if !a.IsAuctionMode() || !a.IsActive() {
		return nil, ErrInvalidAuctionState
	}
	if a.BuyNowPrice == nil || *a.BuyNowPrice <= 0 {
		return nil, ErrMissingBuyNowPrice
	}
	if a.SellerID == buyerID {
		return nil, ErrSelfBid
	}

	if err := s.store.SettleBuyNow(ctx, auctionID, buyerID); err != nil {
		if errors.Is(err, store.ErrAuctionNotActive) {
			// lost the race against another settlement or sweep
			return nil, ErrInvalidAuctionState
		}
		return nil, fmt.Errorf("settle buy-now: %w", err)
	}
	a.Status = store.StatusBoughtNow
	a.ListingStatus = store.ListingSold
	a.WinnerID = &buyerID

	s.notifier.Dispatch(notify.EventBoughtNow, notify.BoughtNow{
		AuctionID: auctionID,
		BuyerID:   buyerID,
		BuyerName: displayNameOrFallback(in.DisplayName),
		Price:     *a.BuyNowPrice,
	})

	return s.assembleState(ctx, a, false)
}

// GetState assembles the current snapshot without mutating anything.
// Terminal auctions stay readable.
func (s *Service) GetState(ctx context.Context, auctionID string) (*State, error) {
	id, err := uuid.Parse(auctionID)
	if err != nil {
		return nil, ErrAuctionNotFound
	}
	a, err := s.store.GetAuction(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrAuctionNotFound) {
			return nil, ErrAuctionNotFound
		}
		return nil, fmt.Errorf("load auction: %w", err)
	}
	return s.assembleState(ctx, a, false)
}

// resolveBuyer prefers a verified session identity; a caller-supplied buyer
// id is accepted as a trusted fallback. When both are present they must
// agree.
func (s *Service) resolveBuyer(in BuyNowInput) (uuid.UUID, error) {
	switch {
	case in.AuthedBuyerID != nil:
		if in.BuyerID != "" && in.BuyerID != in.AuthedBuyerID.String() {
			return uuid.Nil, ErrTokenMismatch
		}
		return *in.AuthedBuyerID, nil
	case in.BuyerID != "":
		id, err := uuid.Parse(in.BuyerID)
		if err != nil {
			return uuid.Nil, ErrMissingFields
		}
		return id, nil
	default:
		return uuid.Nil, ErrMissingToken
	}
}

func (s *Service) assembleState(ctx context.Context, a store.Auction, extended bool) (*State, error) {
	bids, err := s.store.ListRecentBids(ctx, a.ID, recentBidLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent bids: %w", err)
	}
	count, err := s.store.CountBids(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("count bids: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(bids)+1)
	for _, b := range bids {
		ids = append(ids, b.BidderID)
	}
	if a.WinnerID != nil {
		ids = append(ids, *a.WinnerID)
	}
	names := s.names.ResolveNames(ctx, ids)

	entries := make([]BidEntry, 0, len(bids))
	for _, b := range bids {
		entries = append(entries, BidEntry{
			ID:         b.ID,
			BidderID:   b.BidderID,
			BidderName: names[b.BidderID],
			Amount:     b.Amount,
			CreatedAt:  b.CreatedAt,
		})
	}

	var highest *store.Bid
	if len(bids) > 0 {
		highest = &bids[0]
	}
	price := currentPrice(a, highest)
	inc := minIncrement(a, price)

	st := &State{
		AuctionID:         a.ID,
		Status:            a.Status,
		StartPrice:        a.StartPrice,
		BuyNowPrice:       a.BuyNowPrice,
		CurrentHighestBid: price,
		BidCount:          count,
		MinIncrement:      inc,
		MinNextBid:        price + inc,
		EndAt:             a.EndAt,
		OriginalEndAt:     a.OriginalEndAt,
		RecentBids:        entries,
		AntiSnipeExtended: extended,
	}
	if a.Status == store.StatusBoughtNow && a.BuyNowPrice != nil {
		st.CurrentHighestBid = *a.BuyNowPrice
	}
	if highest != nil {
		st.HighestBidderID = &highest.BidderID
		st.HighestBidderName = names[highest.BidderID]
	}
	if a.WinnerID != nil {
		st.WinnerID = a.WinnerID
		st.WinnerName = names[*a.WinnerID]
	}
	return st, nil
}

func displayNameOrFallback(name string) string {
	if name == "" {
		return profile.FallbackName
	}
	return name
}
