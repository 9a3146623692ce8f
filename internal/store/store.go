package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/dori/folio/internal/model"
)

// PortfoliosKey is the storage key holding the serialized collection
const PortfoliosKey = "portfolios"

// ErrNotFound is returned when an operation targets an id that matches no
// document
var ErrNotFound = errors.New("portfolio not found")

// ErrPersist wraps storage write failures. The in-memory state stays
// authoritative; the caller decides whether to retry or warn.
var ErrPersist = errors.New("persist portfolios")

// Debug logging (enable by setting FOLIO_DEBUG=1)
var debugLog *os.File

func init() {
	if os.Getenv("FOLIO_DEBUG") == "1" {
		debugLog, _ = os.OpenFile("/tmp/folio-store-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func debugf(format string, args ...interface{}) {
	if debugLog != nil {
		fmt.Fprintf(debugLog, format+"\n", args...)
		debugLog.Sync()
	}
}

// Backend is the key-value medium the store persists to
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store owns the portfolio collection and the current selection. It is the
// single source of truth the admin shell reads from and writes through.
// Every mutation rewrites the full collection to the backend immediately.
type Store struct {
	mu         sync.Mutex
	backend    Backend
	portfolios []model.Portfolio
	current    *model.Portfolio

	// now is swappable for tests
	now func() time.Time
}

// New creates a store over the given backend. Call Load before use.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Load reads the persisted collection. A missing, unparseable, or
// shape-invalid blob seeds a single default document and persists it
// immediately; only backend read failures are fatal.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.backend.Get(PortfoliosKey)
	if err != nil {
		return fmt.Errorf("load portfolios: %w", err)
	}

	if ok {
		var portfolios []model.Portfolio
		if err := json.Unmarshal([]byte(raw), &portfolios); err != nil {
			debugf("discarding unparseable portfolios blob: %v", err)
		} else if err := model.ValidatePortfolios(portfolios); err != nil {
			debugf("discarding shape-invalid portfolios blob: %v", err)
		} else {
			s.portfolios = portfolios
			return nil
		}
	}

	s.portfolios = []model.Portfolio{model.DefaultPortfolio(s.now())}
	return s.persist()
}

// Create appends a new portfolio seeded from the default content template
// and returns its id. Names are not checked for uniqueness; duplicate names
// produce duplicate slugs.
func (s *Store) Create(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := model.Portfolio{
		ID:        s.newID(now),
		Name:      name,
		Slug:      model.Slugify(name),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		Data:      model.DefaultData(),
	}
	s.portfolios = append(s.portfolios, p)

	return p.ID, s.persist()
}

// Update replaces each section carried by the patch on the document with the
// given id and refreshes its updatedAt. Sections absent from the patch are
// untouched. Returns ErrNotFound when no document matches.
func (s *Store) Update(id string, patch model.DataPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("update %q: %w", id, ErrNotFound)
	}

	s.portfolios[i].Data = patch.Apply(s.portfolios[i].Data)
	s.portfolios[i].UpdatedAt = s.now()

	// Refresh the selection so observers see the updated content
	if s.current != nil && s.current.ID == id {
		updated := s.portfolios[i]
		s.current = &updated
	}

	return s.persist()
}

// Delete removes the document with the given id and clears the current
// selection when it was the deleted document. Returns ErrNotFound when no
// document matches.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}

	s.portfolios = append(s.portfolios[:i], s.portfolios[i+1:]...)
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}

	return s.persist()
}

// Get returns a copy of the document with the given id, or nil
func (s *Store) Get(id string) *model.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	p := s.portfolios[i]
	return &p
}

// Portfolios returns a snapshot of the collection in creation order
func (s *Store) Portfolios() []model.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Portfolio(nil), s.portfolios...)
}

// Current returns the current selection, or nil when none is selected
func (s *Store) Current() *model.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// SetCurrent sets the current selection directly. Membership is not checked.
func (s *Store) SetCurrent(p *model.Portfolio) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = p
}

// indexOf returns the position of id in the collection, or -1.
// Callers must hold mu.
func (s *Store) indexOf(id string) int {
	for i := range s.portfolios {
		if s.portfolios[i].ID == id {
			return i
		}
	}
	return -1
}

// newID derives an id from the current time in milliseconds, bumping until
// unique so back-to-back creates never collide. Callers must hold mu.
func (s *Store) newID(now time.Time) string {
	ms := now.UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for s.indexOf(id) >= 0 {
		ms++
		id = strconv.FormatInt(ms, 10)
	}
	return id
}

// persist serializes the full collection and overwrites the backing blob.
// Callers must hold mu.
func (s *Store) persist() error {
	data, err := json.Marshal(s.portfolios)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := s.backend.Set(PortfoliosKey, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}
