// Package cache es una caché en memoria del lado cliente, separada por regiones.
package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultRegion es la región que limpia Clear(false).
const DefaultRegion = "shelters"

type entry struct {
	value     any
	expiresAt time.Time // zero => no expira
}

type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	regions map[string]map[string]entry
}

// New crea un Store; ttl <= 0 => las entradas no expiran.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		regions: make(map[string]map[string]entry),
	}
}

func (s *Store) Get(region, key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.regions[normalize(region)][key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (s *Store) Set(region, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	region = normalize(region)
	r, ok := s.regions[region]
	if !ok {
		r = make(map[string]entry)
		s.regions[region] = r
	}

	e := entry{value: value}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	r[key] = e
}

// Clear invalida la región por defecto; con all=true invalida todas.
func (s *Store) Clear(all bool) {
	if all {
		s.mu.Lock()
		s.regions = make(map[string]map[string]entry)
		s.mu.Unlock()
		return
	}
	s.ClearRegion(DefaultRegion)
}

func (s *Store) ClearRegion(region string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.regions, normalize(region))
}

func normalize(region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		return DefaultRegion
	}
	return region
}
