package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-career/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	index   map[string]int
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make([]player.Player, 0, len(players))
	index := make(map[string]int, len(players))
	for _, p := range players {
		if _, dup := index[p.ID]; dup {
			continue
		}
		index[p.ID] = len(items)
		items = append(items, p.Clone())
	}

	return &PlayerRepository{players: items, index: index}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p.Clone())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[playerID]
	if !ok {
		return player.Player{}, false, nil
	}

	return r.players[idx].Clone(), true, nil
}
