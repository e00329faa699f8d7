package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
	basecache "github.com/riskibarqy/football-career/internal/platform/cache"
)

const listKey = "list"

// lookup remembers misses as well as hits so unknown ids do not reach the
// database on every scouting request.
type lookup[T any] struct {
	value  T
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	lists *basecache.Store[[]player.Player]
	byID  *basecache.Store[lookup[player.Player]]
}

func NewPlayerRepository(next player.Repository, ttl time.Duration) *PlayerRepository {
	return &PlayerRepository{
		next:  next,
		lists: basecache.NewStore[[]player.Player](ttl),
		byID:  basecache.NewStore[lookup[player.Player]](ttl),
	}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	items, err := r.lists.GetOrLoad(ctx, listKey, r.next.List)
	if err != nil {
		return nil, err
	}
	return clonePlayers(items), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := r.byID.GetOrLoad(ctx, playerID, func(ctx context.Context) (lookup[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		return lookup[player.Player]{value: item, exists: exists}, err
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return v.value.Clone(), v.exists, nil
}

type ClubRepository struct {
	next  club.Repository
	lists *basecache.Store[[]club.Club]
	byID  *basecache.Store[lookup[club.Club]]
}

func NewClubRepository(next club.Repository, ttl time.Duration) *ClubRepository {
	return &ClubRepository{
		next:  next,
		lists: basecache.NewStore[[]club.Club](ttl),
		byID:  basecache.NewStore[lookup[club.Club]](ttl),
	}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	items, err := r.lists.GetOrLoad(ctx, listKey, r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]club.Club(nil), items...), nil
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	v, err := r.byID.GetOrLoad(ctx, clubID, func(ctx context.Context) (lookup[club.Club], error) {
		item, exists, err := r.next.GetByID(ctx, clubID)
		return lookup[club.Club]{value: item, exists: exists}, err
	})
	if err != nil {
		return club.Club{}, false, err
	}
	return v.value, v.exists, nil
}

func clonePlayers(items []player.Player) []player.Player {
	out := make([]player.Player, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}
