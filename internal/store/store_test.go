package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dori/folio/internal/model"
	"github.com/dori/folio/internal/storage"
)

// memBackend is an in-memory Backend for tests
type memBackend struct {
	m map[string]string
}

func newMemBackend() *memBackend {
	return &memBackend{m: make(map[string]string)}
}

func (b *memBackend) Get(key string) (string, bool, error) {
	v, ok := b.m[key]
	return v, ok, nil
}

func (b *memBackend) Set(key, value string) error {
	b.m[key] = value
	return nil
}

// failBackend reads fine but rejects every write
type failBackend struct {
	memBackend
}

func (b *failBackend) Set(key, value string) error {
	return errors.New("disk full")
}

// fixedClock pins the store clock to a deterministic sequence. Using
// time.Date keeps the values free of monotonic readings so they survive a
// JSON round trip unchanged.
func fixedClock(s *Store) {
	t := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T, backend Backend) *Store {
	t.Helper()

	s := New(backend)
	fixedClock(s)
	require.NoError(t, s.Load())
	return s
}

func TestLoadSeedsDefaultPortfolio(t *testing.T) {
	backend := newMemBackend()
	s := newTestStore(t, backend)

	got := s.Portfolios()
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "Default Portfolio", got[0].Name)
	assert.Equal(t, "default", got[0].Slug)
	assert.True(t, got[0].IsActive)

	// Seeding persists immediately
	_, ok, err := backend.Get(PortfoliosKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoadDiscardsUnparseableBlob(t *testing.T) {
	backend := newMemBackend()
	backend.m[PortfoliosKey] = "{not json"

	s := newTestStore(t, backend)

	got := s.Portfolios()
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestLoadDiscardsShapeInvalidBlob(t *testing.T) {
	backend := newMemBackend()
	// Parseable, but documents are missing ids, slugs, and themes
	backend.m[PortfoliosKey] = `[{"name":"ghost"}]`

	s := newTestStore(t, backend)

	got := s.Portfolios()
	require.Len(t, got, 1)
	assert.Equal(t, "Default Portfolio", got[0].Name)
}

func TestCreateSlugs(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	id, err := s.Create("My Site")
	require.NoError(t, err)
	assert.Equal(t, "my-site", s.Get(id).Slug)

	id, err = s.Create("  A/B Test!! ")
	require.NoError(t, err)
	assert.Equal(t, "ab-test", s.Get(id).Slug)
}

func TestCreateDuplicateNames(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	first, err := s.Create("X")
	require.NoError(t, err)
	second, err := s.Create("X")
	require.NoError(t, err)

	// No uniqueness enforcement: distinct ids, identical slugs
	assert.NotEqual(t, first, second)
	assert.Equal(t, s.Get(first).Slug, s.Get(second).Slug)
}

func TestCreateSeedsIndependentData(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	a, err := s.Create("A")
	require.NoError(t, err)
	b, err := s.Create("B")
	require.NoError(t, err)

	skills := []model.Skill{{Name: "Go", Level: 80, Category: "Backend"}}
	require.NoError(t, s.Update(a, model.DataPatch{Skills: &skills}))

	assert.Equal(t, "JavaScript", s.Get(b).Data.Skills[0].Name)
	assert.Equal(t, "Go", s.Get(a).Data.Skills[0].Name)
}

func TestUpdateReplacesSectionPreservesRest(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	id, err := s.Create("Site")
	require.NoError(t, err)
	before := s.Get(id)

	personal := model.Personal{Name: "Jane Roe", Title: "Engineer"}
	require.NoError(t, s.Update(id, model.DataPatch{Personal: &personal}))

	after := s.Get(id)
	assert.Equal(t, personal, after.Data.Personal, "personal replaced wholesale")
	assert.Empty(t, after.Data.Personal.Email, "no field-level merge within personal")

	assert.Equal(t, before.Data.About, after.Data.About)
	assert.Equal(t, before.Data.Skills, after.Data.Skills)
	assert.Equal(t, before.Data.Projects, after.Data.Projects)
	assert.Equal(t, before.Data.Social, after.Data.Social)
	assert.Equal(t, before.Data.Theme, after.Data.Theme)

	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUpdateRefreshesCurrentSelection(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	id, err := s.Create("Site")
	require.NoError(t, err)
	s.SetCurrent(s.Get(id))

	personal := model.Personal{Name: "Jane Roe"}
	require.NoError(t, s.Update(id, model.DataPatch{Personal: &personal}))

	require.NotNil(t, s.Current())
	assert.Equal(t, "Jane Roe", s.Current().Data.Personal.Name)
}

func TestUpdateUnknownID(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	err := s.Update("nope", model.DataPatch{Personal: &model.Personal{}})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteClearsMatchingSelection(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	id, err := s.Create("Doomed")
	require.NoError(t, err)
	s.SetCurrent(s.Get(id))

	require.NoError(t, s.Delete(id))
	assert.Nil(t, s.Current())
	assert.Nil(t, s.Get(id))
}

func TestDeleteLeavesOtherSelection(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	keep, err := s.Create("Keep")
	require.NoError(t, err)
	drop, err := s.Create("Drop")
	require.NoError(t, err)
	s.SetCurrent(s.Get(keep))

	require.NoError(t, s.Delete(drop))
	require.NotNil(t, s.Current())
	assert.Equal(t, keep, s.Current().ID)
}

func TestDeleteUnknownID(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	assert.ErrorIs(t, s.Delete("nope"), ErrNotFound)
}

func TestGetUnknownIDReturnsNil(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	assert.Nil(t, s.Get("nope"))
}

func TestRoundTripLaw(t *testing.T) {
	backend := newMemBackend()
	s := newTestStore(t, backend)

	id, err := s.Create("My Site")
	require.NoError(t, err)
	_, err = s.Create("Scratch")
	require.NoError(t, err)
	social := model.Social{Github: "https://github.com/janeroe"}
	require.NoError(t, s.Update(id, model.DataPatch{Social: &social}))
	require.NoError(t, s.Delete("1"))

	// A fresh store over the same backend reproduces the collection exactly
	reloaded := New(backend)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, s.Portfolios(), reloaded.Portfolios())
}

func TestRoundTripLawOverSQLite(t *testing.T) {
	kv, err := storage.Open(filepath.Join(t.TempDir(), "folio.db"))
	require.NoError(t, err)
	defer kv.Close()

	s := New(kv)
	fixedClock(s)
	require.NoError(t, s.Load())

	id, err := s.Create("Persisted")
	require.NoError(t, err)
	skills := []model.Skill{{Name: "Go", Level: 90, Category: "Backend"}}
	require.NoError(t, s.Update(id, model.DataPatch{Skills: &skills}))

	reloaded := New(kv)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, s.Portfolios(), reloaded.Portfolios())
}

func TestPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	good := newMemBackend()
	s := newTestStore(t, good)

	// Swap in a backend whose writes fail
	bad := &failBackend{}
	bad.m = good.m
	s.backend = bad

	id, err := s.Create("Unsaved")
	assert.ErrorIs(t, err, ErrPersist)
	require.NotNil(t, s.Get(id), "in-memory state stays authoritative")

	err = s.Delete(id)
	assert.ErrorIs(t, err, ErrPersist)
	assert.Nil(t, s.Get(id))
}

func TestPortfoliosReturnsSnapshot(t *testing.T) {
	s := newTestStore(t, newMemBackend())

	snap := s.Portfolios()
	snap[0].Name = "mutated"

	assert.Equal(t, "Default Portfolio", s.Portfolios()[0].Name)
}
