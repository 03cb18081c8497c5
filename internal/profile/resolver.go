package profile

import (
	"context"
	"time"

	"github.com/gobid/auctionhouse/internal/cache"
	"github.com/gobid/auctionhouse/internal/store"
	"github.com/gobid/auctionhouse/pkg/logger"
	"github.com/google/uuid"
)

// FallbackName labels bidders whose profile is missing or unreadable.
const FallbackName = "Anonymous bidder"

const (
	nameKeyPrefix = "profile:name:"
	nameTTL       = 10 * time.Minute
)

// ProfileGetter is the slice of the store the resolver needs.
type ProfileGetter interface {
	GetProfiles(ctx context.Context, ids []uuid.UUID) ([]store.Profile, error)
}

// Resolver batch-resolves user ids to display names, fronted by the cache.
// Resolution never fails a request: lookups that error degrade to the
// fallback label.
type Resolver struct {
	store ProfileGetter
	cache cache.Cacher
	log   *logger.Logger
}

func NewResolver(s ProfileGetter, c cache.Cacher, log *logger.Logger) *Resolver {
	return &Resolver{store: s, cache: c, log: log}
}

func (r *Resolver) ResolveNames(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(ids))

	var misses []uuid.UUID
	for _, id := range ids {
		if _, seen := names[id]; seen {
			continue
		}
		if r.cache != nil {
			if val, ok, err := r.cache.Get(ctx, nameKeyPrefix+id.String()); err == nil && ok {
				names[id] = val
				continue
			}
		}
		names[id] = FallbackName
		misses = append(misses, id)
	}

	if len(misses) == 0 {
		return names
	}

	profiles, err := r.store.GetProfiles(ctx, misses)
	if err != nil {
		r.log.Warnw("[PROFILE] name lookup failed, using fallback", "error", err)
		return names
	}
	for _, p := range profiles {
		names[p.ID] = p.DisplayName
		if r.cache != nil {
			if err := r.cache.Set(ctx, nameKeyPrefix+p.ID.String(), p.DisplayName, nameTTL); err != nil {
				r.log.Debugw("[PROFILE] name cache write failed", "user_id", p.ID, "error", err)
			}
		}
	}
	return names
}
