package engine

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/travelbuddy/internal/attractions"
	"github.com/danieljhkim/travelbuddy/internal/clock"
	"github.com/danieljhkim/travelbuddy/internal/fsops"
	"github.com/danieljhkim/travelbuddy/internal/itinerary"
	"github.com/danieljhkim/travelbuddy/internal/memory"
)

var testNow = time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)

// mockStore is an in-memory memory.Store.
type mockStore struct {
	profiles map[string]*memory.UserProfile
	loadErr  error
	saveErr  error
	saves    int
}

func newMockStore() *mockStore {
	return &mockStore{profiles: make(map[string]*memory.UserProfile)}
}

func (m *mockStore) Load(userID string) (*memory.UserProfile, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	p, ok := m.profiles[userID]
	if !ok {
		return memory.NewUserProfile(userID), nil
	}
	cp := *p
	cp.Preferences = memory.MergePreferences(p.Preferences, nil)
	cp.Trips = append([]memory.Trip{}, p.Trips...)
	return &cp, nil
}

func (m *mockStore) Save(profile *memory.UserProfile) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockStore) Users() ([]string, error) {
	users := make([]string, 0, len(m.profiles))
	for id := range m.profiles {
		users = append(users, id)
	}
	return users, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEngine wires an engine around store and source with a fixed clock
// and sequential trip IDs.
func newTestEngine(t *testing.T, store memory.Store, source attractions.Source) *Engine {
	t.Helper()

	builder, err := itinerary.NewBuilder(itinerary.DefaultPolicy())
	require.NoError(t, err)

	eng := New(
		store,
		attractions.NewFinder(source, 0, discardLogger()),
		builder,
		clock.NewFakeClock(testNow),
		discardLogger(),
	)
	n := 0
	eng.newID = func() string {
		n++
		return fmt.Sprintf("trip-%d", n)
	}
	return eng
}

func newFileStore(t *testing.T) (*memory.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memory", "memory_bank.json")
	return memory.NewFileStore(fsops.NewRealFS(), path), path
}

func builtinCatalog() *attractions.CatalogSource {
	return attractions.NewCatalogSource(fsops.NewRealFS(), "")
}
