package rediscache

import (
	"context"

	"github.com/riskibarqy/football-career/internal/domain/club"
	"github.com/riskibarqy/football-career/internal/domain/player"
)

// lookup is stored for single-id reads so unknown ids are remembered too.
type lookup[T any] struct {
	Value  T    `json:"value"`
	Exists bool `json:"exists"`
}

type PlayerRepository struct {
	next  player.Repository
	store *Store
}

func NewPlayerRepository(next player.Repository, store *Store) *PlayerRepository {
	return &PlayerRepository{next: next, store: store}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return readThrough(ctx, r.store, r.store.key("players", "list"), r.next.List)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := readThrough(ctx, r.store, r.store.key("players", "id", playerID), func(ctx context.Context) (lookup[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		return lookup[player.Player]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return v.Value, v.Exists, nil
}

type ClubRepository struct {
	next  club.Repository
	store *Store
}

func NewClubRepository(next club.Repository, store *Store) *ClubRepository {
	return &ClubRepository{next: next, store: store}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	return readThrough(ctx, r.store, r.store.key("clubs", "list"), r.next.List)
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	v, err := readThrough(ctx, r.store, r.store.key("clubs", "id", clubID), func(ctx context.Context) (lookup[club.Club], error) {
		item, exists, err := r.next.GetByID(ctx, clubID)
		return lookup[club.Club]{Value: item, Exists: exists}, err
	})
	if err != nil {
		return club.Club{}, false, err
	}
	return v.Value, v.Exists, nil
}
