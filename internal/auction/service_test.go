package auction

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/gobid/auctionhouse/internal/notify"
	"github.com/gobid/auctionhouse/internal/store"
	"github.com/gobid/auctionhouse/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// fakeStore keeps an in-memory ledger so the assembled state reflects
// inserted bids, plus error injectors per operation.
type fakeStore struct {
	auction    store.Auction
	auctionErr error
	bids       []store.Bid
	profiles   map[uuid.UUID]string

	insertErr error
	updateErr error
	settleErr error
	listErr   error

	endAtUpdates []time.Time
	settledBy    []uuid.UUID
	txStarted    int
}

func (f *fakeStore) GetAuction(ctx context.Context, id uuid.UUID) (store.Auction, error) {
	if f.auctionErr != nil {
		return store.Auction{}, f.auctionErr
	}
	if id != f.auction.ID {
		return store.Auction{}, store.ErrAuctionNotFound
	}
	return f.auction, nil
}

func (f *fakeStore) GetAuctionForUpdate(ctx context.Context, id uuid.UUID) (store.Auction, error) {
	return f.GetAuction(ctx, id)
}

func (f *fakeStore) GetHighestBid(ctx context.Context, auctionID uuid.UUID) (*store.Bid, error) {
	var highest *store.Bid
	for i := range f.bids {
		if f.bids[i].AuctionID != auctionID {
			continue
		}
		if highest == nil || f.bids[i].Amount > highest.Amount {
			highest = &f.bids[i]
		}
	}
	return highest, nil
}

func (f *fakeStore) InsertBid(ctx context.Context, b store.Bid) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.bids = append(f.bids, b)
	return nil
}

func (f *fakeStore) UpdateAuctionEndAt(ctx context.Context, id uuid.UUID, endAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.endAtUpdates = append(f.endAtUpdates, endAt)
	f.auction.EndAt = endAt
	return nil
}

func (f *fakeStore) SettleBuyNow(ctx context.Context, id uuid.UUID, buyerID uuid.UUID) error {
	if f.settleErr != nil {
		return f.settleErr
	}
	if f.auction.Status != store.StatusActive {
		return store.ErrAuctionNotActive
	}
	f.auction.Status = store.StatusBoughtNow
	f.auction.ListingStatus = store.ListingSold
	f.auction.WinnerID = &buyerID
	f.settledBy = append(f.settledBy, buyerID)
	return nil
}

func (f *fakeStore) ListRecentBids(ctx context.Context, auctionID uuid.UUID, limit int) ([]store.Bid, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []store.Bid
	for _, b := range f.bids {
		if b.AuctionID == auctionID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) CountBids(ctx context.Context, auctionID uuid.UUID) (int64, error) {
	var n int64
	for _, b := range f.bids {
		if b.AuctionID == auctionID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) GetProfiles(ctx context.Context, ids []uuid.UUID) ([]store.Profile, error) {
	var out []store.Profile
	for _, id := range ids {
		if name, ok := f.profiles[id]; ok {
			out = append(out, store.Profile{ID: id, DisplayName: name})
		}
	}
	return out, nil
}

func (f *fakeStore) InTx(ctx context.Context, fn func(store.Store) error) error {
	f.txStarted++
	return fn(f)
}

type stubResolver struct {
	names map[uuid.UUID]string
}

func (r *stubResolver) ResolveNames(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string {
	out := make(map[uuid.UUID]string, len(ids))
	for _, id := range ids {
		if name, ok := r.names[id]; ok {
			out[id] = name
		} else {
			out[id] = "Anonymous bidder"
		}
	}
	return out
}

type capturedEvent struct {
	Type    string
	Payload any
}

type captureDispatcher struct {
	events []capturedEvent
}

func (d *captureDispatcher) Dispatch(eventType string, payload any) {
	d.events = append(d.events, capturedEvent{Type: eventType, Payload: payload})
}

var (
	sellerID = uuid.MustParse("9d9a7337-45c1-4fcb-ae56-c606e107a3f1")
	bidderA  = uuid.MustParse("3f9c3c65-51a9-4f2f-857d-315c0efadbc7")
	bidderB  = uuid.MustParse("b0d12be5-76b6-4f51-8eb0-bf22aa0d03b5")
)

func testAuction(now time.Time) store.Auction {
	return store.Auction{
		ID:            uuid.New(),
		SellerID:      sellerID,
		Mode:          store.ModeAuction,
		Status:        store.StatusActive,
		ListingStatus: store.ListingOpen,
		StartPrice:    10000,
		EndAt:         now.Add(time.Hour),
		OriginalEndAt: now.Add(time.Hour),
		CreatedAt:     now.Add(-time.Hour),
	}
}

func newTestService(t *testing.T, fs *fakeStore, now time.Time) (*Service, *captureDispatcher) {
	t.Helper()
	disp := &captureDispatcher{}
	resolver := &stubResolver{names: map[uuid.UUID]string{
		bidderA: "Alice",
		bidderB: "Bob",
	}}
	svc, err := NewService(fs, resolver, disp, &fakeClock{now: now}, logger.NewNop())
	require.NoError(t, err)
	return svc, disp
}

func bidInput(auctionID uuid.UUID, bidderID uuid.UUID, amount string) PlaceBidInput {
	return PlaceBidInput{
		AuctionID: auctionID.String(),
		BidderID:  bidderID.String(),
		Amount:    json.Number(amount),
	}
}

func TestPlaceBidMinimumNextBid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fs := &fakeStore{auction: testAuction(now)}
	svc, _ := newTestService(t, fs, now)
	ctx := context.Background()

	// 10000 start price, default increment: max(ceil(2%), 50) = 200
	_, err := svc.PlaceBid(ctx, bidInput(fs.auction.ID, bidderA, "10199"))
	var minErr *MinBidError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, int64(10200), minErr.MinNextBid)
	assert.Empty(t, fs.bids, "rejected bid must never reach the ledger")

	state, err := svc.PlaceBid(ctx, bidInput(fs.auction.ID, bidderA, "10200"))
	require.NoError(t, err)
	require.Len(t, fs.bids, 1)
	assert.Equal(t, int64(10200), state.CurrentHighestBid)
	assert.Equal(t, "Alice", state.HighestBidderName)
	assert.Equal(t, int64(1), state.BidCount)
	assert.False(t, state.AntiSnipeExtended)
	assert.Equal(t, fs.auction.OriginalEndAt, state.EndAt, "early bid must not move the deadline")
}

func TestPlaceBidSellerDefinedIncrement(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := testAuction(now)
	a.MinIncrement = 500
	fs := &fakeStore{auction: a}
	svc, _ := newTestService(t, fs, now)

	_, err := svc.PlaceBid(context.Background(), bidInput(a.ID, bidderA, "10499"))
	var minErr *MinBidError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, int64(10500), minErr.MinNextBid)

	_, err = svc.PlaceBid(context.Background(), bidInput(a.ID, bidderA, "10500"))
	require.NoError(t, err)
}

func TestPlaceBidLadderIsStrictlyIncreasing(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fs := &fakeStore{auction: testAuction(now)}
	svc, _ := newTestService(t, fs, now)
	ctx := context.Background()

	bidders := []uuid.UUID{bidderA, bidderB}
	amounts := []string{"10200", "10500", "10800", "11100"}
	var prev int64
	for i, amount := range amounts {
		state, err := svc.PlaceBid(ctx, bidInput(fs.auction.ID, bidders[i%2], amount))
		require.NoError(t, err)
		assert.Greater(t, state.CurrentHighestBid, prev)
		prev = state.CurrentHighestBid
	}
	assert.Len(t, fs.bids, len(amounts))

	// below the ladder minimum now in effect
	_, err := svc.PlaceBid(ctx, bidInput(fs.auction.ID, bidders[len(amounts)%2], "11200"))
	var minErr *MinBidError
	require.ErrorAs(t, err, &minErr)
	assert.Len(t, fs.bids, len(amounts), "ledger unchanged on rejection")
}

func TestPlaceBidValidationLadder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		prep    func(fs *fakeStore)
		input   func(fs *fakeStore) PlaceBidInput
		wantErr error
	}{
		{
			name:    "missing bidder id",
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, bidderA, "10200").withBidder("") },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing amount",
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, bidderA, "") },
			wantErr: ErrMissingFields,
		},
		{
			name:    "non-numeric amount",
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, bidderA, "abc") },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "fractional amount",
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, bidderA, "10200.5") },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, bidderA, "-10") },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "unknown auction",
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(uuid.New(), bidderA, "10200") },
			wantErr: ErrAuctionNotFound,
		},
		{
			name:    "fixed price listing",
			prep:    func(fs *fakeStore) { fs.auction.Mode = store.ModeFixed },
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, bidderA, "10200") },
			wantErr: ErrInvalidAuctionState,
		},
		{
			name:    "already settled",
			prep:    func(fs *fakeStore) { fs.auction.Status = store.StatusBoughtNow },
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, bidderA, "10200") },
			wantErr: ErrInvalidAuctionState,
		},
		{
			name:    "seller bids on own auction",
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, sellerID, "10200") },
			wantErr: ErrSelfBid,
		},
		{
			name:    "deadline passed",
			prep:    func(fs *fakeStore) { fs.auction.EndAt = now.Add(-time.Second) },
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, bidderA, "10200") },
			wantErr: ErrAuctionExpired,
		},
		{
			name: "bidder already highest",
			prep: func(fs *fakeStore) {
				fs.bids = []store.Bid{{
					ID: uuid.New(), AuctionID: fs.auction.ID,
					BidderID: bidderA, Amount: 10200, CreatedAt: now,
				}}
			},
			input:   func(fs *fakeStore) PlaceBidInput { return bidInput(fs.auction.ID, bidderA, "10500") },
			wantErr: ErrAlreadyHighest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := &fakeStore{auction: testAuction(now)}
			if tc.prep != nil {
				tc.prep(fs)
			}
			svc, disp := newTestService(t, fs, now)

			before := len(fs.bids)
			_, err := svc.PlaceBid(context.Background(), tc.input(fs))
			require.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, fs.bids, before, "ledger unchanged on rejection")
			assert.Empty(t, disp.events, "no notification on rejection")
		})
	}
}

// withBidder tweaks a prebuilt input in table tests.
func (in PlaceBidInput) withBidder(id string) PlaceBidInput {
	in.BidderID = id
	return in
}

func TestPlaceBidOutbidAfterAlreadyHighest(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fs := &fakeStore{auction: testAuction(now)}
	svc, _ := newTestService(t, fs, now)
	ctx := context.Background()

	_, err := svc.PlaceBid(ctx, bidInput(fs.auction.ID, bidderA, "10200"))
	require.NoError(t, err)

	_, err = svc.PlaceBid(ctx, bidInput(fs.auction.ID, bidderA, "10500"))
	require.ErrorIs(t, err, ErrAlreadyHighest)

	// once outbid, A may bid again
	_, err = svc.PlaceBid(ctx, bidInput(fs.auction.ID, bidderB, "10500"))
	require.NoError(t, err)
	state, err := svc.PlaceBid(ctx, bidInput(fs.auction.ID, bidderA, "10800"))
	require.NoError(t, err)
	assert.Equal(t, int64(10800), state.CurrentHighestBid)
}

func TestPlaceBidAntiSnipeReset(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := testAuction(now)
	a.EndAt = now.Add(2 * time.Minute)
	fs := &fakeStore{auction: a}
	svc, _ := newTestService(t, fs, now)

	state, err := svc.PlaceBid(context.Background(), bidInput(a.ID, bidderA, "10200"))
	require.NoError(t, err)
	assert.True(t, state.AntiSnipeExtended)
	assert.Equal(t, now.Add(AntiSnipeThreshold), state.EndAt, "window is reset, not added")
	assert.Equal(t, a.OriginalEndAt, state.OriginalEndAt)
	require.Len(t, fs.endAtUpdates, 1)
	assert.Equal(t, now.Add(AntiSnipeThreshold), fs.endAtUpdates[0])
}

func TestPlaceBidAntiSnipeBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// exactly at the threshold qualifies; one second beyond does not
	for _, tc := range []struct {
		name      string
		remaining time.Duration
		extended  bool
	}{
		{"exactly threshold", AntiSnipeThreshold, true},
		{"just outside", AntiSnipeThreshold + time.Second, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := testAuction(now)
			a.EndAt = now.Add(tc.remaining)
			a.OriginalEndAt = a.EndAt
			fs := &fakeStore{auction: a}
			svc, _ := newTestService(t, fs, now)

			state, err := svc.PlaceBid(context.Background(), bidInput(a.ID, bidderA, "10200"))
			require.NoError(t, err)
			assert.Equal(t, tc.extended, state.AntiSnipeExtended)
		})
	}
}

func TestPlaceBidExtensionFailureDoesNotVoidBid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := testAuction(now)
	a.EndAt = now.Add(time.Minute)
	fs := &fakeStore{auction: a, updateErr: errors.New("connection reset")}
	svc, disp := newTestService(t, fs, now)

	state, err := svc.PlaceBid(context.Background(), bidInput(a.ID, bidderA, "10200"))
	require.NoError(t, err, "the committed bid stands even if the extension fails")
	assert.Len(t, fs.bids, 1)
	assert.False(t, state.AntiSnipeExtended)
	assert.Equal(t, a.EndAt, state.EndAt)
	require.Len(t, disp.events, 1)
}

func TestPlaceBidInsertFailureCommitsNothing(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fs := &fakeStore{auction: testAuction(now), insertErr: errors.New("disk full")}
	svc, disp := newTestService(t, fs, now)

	_, err := svc.PlaceBid(context.Background(), bidInput(fs.auction.ID, bidderA, "10200"))
	require.Error(t, err)
	assert.Empty(t, fs.bids)
	assert.Empty(t, fs.endAtUpdates)
	assert.Empty(t, disp.events)
}

func TestPlaceBidDispatchesNotification(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fs := &fakeStore{auction: testAuction(now)}
	svc, disp := newTestService(t, fs, now)

	_, err := svc.PlaceBid(context.Background(), PlaceBidInput{
		AuctionID:   fs.auction.ID.String(),
		BidderID:    bidderA.String(),
		DisplayName: "Alice",
		Amount:      json.Number("10200"),
	})
	require.NoError(t, err)

	require.Len(t, disp.events, 1)
	assert.Equal(t, notify.EventBidPlaced, disp.events[0].Type)
	payload, ok := disp.events[0].Payload.(notify.BidPlaced)
	require.True(t, ok)
	assert.Equal(t, bidderA, payload.BidderID)
	assert.Equal(t, int64(10200), payload.Amount)
	assert.Equal(t, "Alice", payload.BidderName)
}

func buyNowPrice(v int64) *int64 { return &v }

func TestBuyNowSettlesRegardlessOfLadder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := testAuction(now)
	a.BuyNowPrice = buyNowPrice(50000)
	fs := &fakeStore{auction: a}
	svc, disp := newTestService(t, fs, now)
	ctx := context.Background()

	// an existing ladder does not matter
	_, err := svc.PlaceBid(ctx, bidInput(a.ID, bidderA, "10200"))
	require.NoError(t, err)

	state, err := svc.BuyNow(ctx, BuyNowInput{
		AuctionID: a.ID.String(),
		BuyerID:   bidderB.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, store.StatusBoughtNow, state.Status)
	require.NotNil(t, state.WinnerID)
	assert.Equal(t, bidderB, *state.WinnerID)
	assert.Equal(t, "Bob", state.WinnerName)
	assert.Equal(t, int64(50000), state.CurrentHighestBid)
	require.Len(t, fs.settledBy, 1)

	require.Len(t, disp.events, 2)
	assert.Equal(t, notify.EventBoughtNow, disp.events[1].Type)

	// terminal: any further mutation fails
	_, err = svc.PlaceBid(ctx, bidInput(a.ID, bidderA, "60000"))
	require.ErrorIs(t, err, ErrInvalidAuctionState)
	_, err = svc.BuyNow(ctx, BuyNowInput{AuctionID: a.ID.String(), BuyerID: bidderA.String()})
	require.ErrorIs(t, err, ErrInvalidAuctionState)
}

func TestBuyNowPreconditions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		prep    func(fs *fakeStore)
		input   func(fs *fakeStore) BuyNowInput
		wantErr error
	}{
		{
			name:    "no buy-now price",
			prep:    func(fs *fakeStore) { fs.auction.BuyNowPrice = nil },
			input:   func(fs *fakeStore) BuyNowInput { return BuyNowInput{AuctionID: fs.auction.ID.String(), BuyerID: bidderA.String()} },
			wantErr: ErrMissingBuyNowPrice,
		},
		{
			name:    "seller buys own auction",
			input:   func(fs *fakeStore) BuyNowInput { return BuyNowInput{AuctionID: fs.auction.ID.String(), BuyerID: sellerID.String()} },
			wantErr: ErrSelfBid,
		},
		{
			name:    "neither token nor buyer id",
			input:   func(fs *fakeStore) BuyNowInput { return BuyNowInput{AuctionID: fs.auction.ID.String()} },
			wantErr: ErrMissingToken,
		},
		{
			name: "token and buyer id disagree",
			input: func(fs *fakeStore) BuyNowInput {
				return BuyNowInput{
					AuctionID:     fs.auction.ID.String(),
					BuyerID:       bidderB.String(),
					AuthedBuyerID: &bidderA,
				}
			},
			wantErr: ErrTokenMismatch,
		},
		{
			name:    "unknown auction",
			input:   func(fs *fakeStore) BuyNowInput { return BuyNowInput{AuctionID: uuid.NewString(), BuyerID: bidderA.String()} },
			wantErr: ErrAuctionNotFound,
		},
		{
			name:    "not active",
			prep:    func(fs *fakeStore) { fs.auction.Status = store.StatusCancelled },
			input:   func(fs *fakeStore) BuyNowInput { return BuyNowInput{AuctionID: fs.auction.ID.String(), BuyerID: bidderA.String()} },
			wantErr: ErrInvalidAuctionState,
		},
		{
			name:    "lost settle race",
			prep:    func(fs *fakeStore) { fs.settleErr = store.ErrAuctionNotActive },
			input:   func(fs *fakeStore) BuyNowInput { return BuyNowInput{AuctionID: fs.auction.ID.String(), BuyerID: bidderA.String()} },
			wantErr: ErrInvalidAuctionState,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := testAuction(now)
			a.BuyNowPrice = buyNowPrice(50000)
			fs := &fakeStore{auction: a}
			if tc.prep != nil {
				tc.prep(fs)
			}
			svc, disp := newTestService(t, fs, now)

			_, err := svc.BuyNow(context.Background(), tc.input(fs))
			require.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, disp.events)
		})
	}
}

func TestBuyNowWithVerifiedToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := testAuction(now)
	a.BuyNowPrice = buyNowPrice(50000)
	fs := &fakeStore{auction: a}
	svc, _ := newTestService(t, fs, now)

	// matching buyer id alongside the token is allowed
	state, err := svc.BuyNow(context.Background(), BuyNowInput{
		AuctionID:     a.ID.String(),
		BuyerID:       bidderA.String(),
		AuthedBuyerID: &bidderA,
	})
	require.NoError(t, err)
	require.NotNil(t, state.WinnerID)
	assert.Equal(t, bidderA, *state.WinnerID)
}

func TestGetStateOnTerminalAuction(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := testAuction(now)
	a.BuyNowPrice = buyNowPrice(50000)
	a.Status = store.StatusBoughtNow
	a.WinnerID = &bidderB
	fs := &fakeStore{auction: a}
	svc, _ := newTestService(t, fs, now)

	state, err := svc.GetState(context.Background(), a.ID.String())
	require.NoError(t, err)
	assert.Equal(t, store.StatusBoughtNow, state.Status)
	assert.Equal(t, int64(50000), state.CurrentHighestBid)
	assert.Equal(t, "Bob", state.WinnerName)
	assert.False(t, state.AntiSnipeExtended)
}

func TestAssembledStateRecentBidsOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fs := &fakeStore{auction: testAuction(now)}
	svc, _ := newTestService(t, fs, now)
	ctx := context.Background()

	amounts := []string{"10200", "10500", "10800"}
	bidders := []uuid.UUID{bidderA, bidderB, bidderA}
	for i := range amounts {
		_, err := svc.PlaceBid(ctx, bidInput(fs.auction.ID, bidders[i], amounts[i]))
		require.NoError(t, err)
	}

	state, err := svc.GetState(ctx, fs.auction.ID.String())
	require.NoError(t, err)
	require.Len(t, state.RecentBids, 3)
	assert.Equal(t, int64(10800), state.RecentBids[0].Amount)
	assert.Equal(t, int64(10500), state.RecentBids[1].Amount)
	assert.Equal(t, int64(10200), state.RecentBids[2].Amount)
	assert.Equal(t, int64(3), state.BidCount)
	assert.Equal(t, "Alice", state.RecentBids[0].BidderName)
}
