// internal/app/registry.go
package app

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry keeps at most one live session per level.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Game
	log      *logrus.Entry
}

func NewRegistry(log *logrus.Entry) *Registry {
	return &Registry{
		sessions: make(map[string]*Game),
		log:      log,
	}
}

// Register makes g the session of its level and returns the session in charge. When the
// level already has a live session the newcomer is closed and the existing one returned.
func (r *Registry) Register(g *Game) *Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.sessions[g.Level.Name]; ok && cur != g {
		r.log.WithFields(logrus.Fields{
			"level":     g.Level.Name,
			"session":   cur.ID.String(),
			"discarded": g.ID.String(),
		}).Warn("level already has a session, discarding the new one")
		g.Close()
		return cur
	}
	r.sessions[g.Level.Name] = g
	return g
}

// Get returns the live session of a level.
func (r *Registry) Get(level string) (*Game, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.sessions[level]
	return g, ok
}

// Release closes the session and forgets it.
func (r *Registry) Release(g *Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.sessions[g.Level.Name]; ok && cur == g {
		delete(r.sessions, g.Level.Name)
	}
	g.Close()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
