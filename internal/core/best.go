package core

import "sync"

// BestScores is the key-value store holding one best score per key.
type BestScores interface {
	Get(key string) (int, error)
	Set(key string, value int) error
}

// MemoryBestScores keeps best scores in memory.
type MemoryBestScores struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryBestScores creates an empty in-memory store.
func NewMemoryBestScores() *MemoryBestScores {
	return &MemoryBestScores{values: make(map[string]int)}
}

// Get returns the stored value, or 0 when the key is unknown.
func (m *MemoryBestScores) Get(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// Set stores value under key.
func (m *MemoryBestScores) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]int)
	}
	m.values[key] = value
	return nil
}

// UpdateBest stores score under key when it beats the stored value and
// returns the resulting best. A nil store keeps nothing and returns score.
func UpdateBest(store BestScores, key string, score int) (int, error) {
	if store == nil {
		return score, nil
	}
	best, err := store.Get(key)
	if err != nil {
		return score, err
	}
	if score <= best {
		return best, nil
	}
	if err := store.Set(key, score); err != nil {
		return score, err
	}
	return score, nil
}
