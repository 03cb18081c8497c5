package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gobid/auctionhouse/pkg/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same query
// methods serve the pooled store and its transactional view.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PGStore struct {
	q    querier
	pool *pgxpool.Pool
	log  *logger.Logger
}

func NewPGStore(ctx context.Context, dsn string, log *logger.Logger) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("[DB] connection established...")

	return &PGStore{q: pool, pool: pool, log: log}, nil
}

func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const auctionColumns = `id, seller_id, mode, status, listing_status, start_price,
	buy_now_price, min_increment, end_at, original_end_at, winner_id, created_at`

func scanAuction(row pgx.Row) (Auction, error) {
	var a Auction
	err := row.Scan(
		&a.ID, &a.SellerID, &a.Mode, &a.Status, &a.ListingStatus,
		&a.StartPrice, &a.BuyNowPrice, &a.MinIncrement,
		&a.EndAt, &a.OriginalEndAt, &a.WinnerID, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Auction{}, ErrAuctionNotFound
	}
	if err != nil {
		return Auction{}, fmt.Errorf("scan auction: %w", err)
	}
	return a, nil
}

func (s *PGStore) GetAuction(ctx context.Context, id uuid.UUID) (Auction, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+auctionColumns+` FROM auctions WHERE id = $1`, id)
	return scanAuction(row)
}

func (s *PGStore) GetAuctionForUpdate(ctx context.Context, id uuid.UUID) (Auction, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+auctionColumns+` FROM auctions WHERE id = $1 FOR UPDATE`, id)
	return scanAuction(row)
}

func (s *PGStore) GetHighestBid(ctx context.Context, auctionID uuid.UUID) (*Bid, error) {
	var b Bid
	err := s.q.QueryRow(ctx,
		`SELECT id, auction_id, bidder_id, amount, created_at
		 FROM bids WHERE auction_id = $1
		 ORDER BY amount DESC LIMIT 1`, auctionID).
		Scan(&b.ID, &b.AuctionID, &b.BidderID, &b.Amount, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get highest bid: %w", err)
	}
	return &b, nil
}

func (s *PGStore) InsertBid(ctx context.Context, b Bid) error {
	_, err := s.q.Exec(ctx,
		`INSERT INTO bids (id, auction_id, bidder_id, amount, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.AuctionID, b.BidderID, b.Amount, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert bid: %w", err)
	}
	return nil
}

func (s *PGStore) UpdateAuctionEndAt(ctx context.Context, id uuid.UUID, endAt time.Time) error {
	// endAt only ever moves forward while the auction is active.
	tag, err := s.q.Exec(ctx,
		`UPDATE auctions SET end_at = $2
		 WHERE id = $1 AND status = $3 AND end_at <= $2`,
		id, endAt, StatusActive)
	if err != nil {
		return fmt.Errorf("update auction end_at: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAuctionNotActive
	}
	return nil
}

func (s *PGStore) SettleBuyNow(ctx context.Context, id uuid.UUID, buyerID uuid.UUID) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE auctions
		 SET status = $3, winner_id = $2, listing_status = $4
		 WHERE id = $1 AND status = $5 AND mode = $6`,
		id, buyerID, StatusBoughtNow, ListingSold, StatusActive, ModeAuction)
	if err != nil {
		return fmt.Errorf("settle buy-now: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAuctionNotActive
	}
	return nil
}

func (s *PGStore) ListRecentBids(ctx context.Context, auctionID uuid.UUID, limit int) ([]Bid, error) {
	rows, err := s.q.Query(ctx,
		`SELECT id, auction_id, bidder_id, amount, created_at
		 FROM bids WHERE auction_id = $1
		 ORDER BY amount DESC LIMIT $2`, auctionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent bids: %w", err)
	}
	defer rows.Close()

	var bids []Bid
	for rows.Next() {
		var b Bid
		if err := rows.Scan(&b.ID, &b.AuctionID, &b.BidderID, &b.Amount, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bids: %w", err)
	}
	return bids, nil
}

func (s *PGStore) CountBids(ctx context.Context, auctionID uuid.UUID) (int64, error) {
	var n int64
	err := s.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM bids WHERE auction_id = $1`, auctionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bids: %w", err)
	}
	return n, nil
}

func (s *PGStore) GetProfiles(ctx context.Context, ids []uuid.UUID) ([]Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.q.Query(ctx,
		`SELECT id, display_name FROM profiles WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.DisplayName); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}

func (s *PGStore) InTx(ctx context.Context, fn func(Store) error) error {
	if s.pool == nil {
		// already inside a transaction
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	txStore := &PGStore{q: tx, log: s.log}
	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			s.log.Errorw("[DB] rollback failed", "error", rbErr)
		}
		return err
	}
	return tx.Commit(ctx)
}
