package backup

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commitflow/internal/dateutil"
	"commitflow/internal/storage"
	"commitflow/internal/tracker"
)

func newTestManager(t *testing.T) (*Manager, *tracker.Tracker, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	tr := tracker.New(store)
	return NewManager(store, tr), tr, store
}

func TestExportImportRoundTrip(t *testing.T) {
	src, srcTracker, _ := newTestManager(t)

	today := dateutil.Today()
	_, err := srcTracker.SaveCommit(today, "Shipped the export", "details", "notes")
	require.NoError(t, err)
	_, err = srcTracker.SaveCommit(dateutil.Yesterday(), "Earlier work", "d", "")
	require.NoError(t, err)
	_, err = srcTracker.AddTask("write tests")
	require.NoError(t, err)
	require.NoError(t, srcTracker.Playlists.Add("https://example.com/focus"))
	require.NoError(t, srcTracker.Settings.SetUsername("Ada"))

	data, err := src.Export()
	require.NoError(t, err)

	dst, dstTracker, _ := newTestManager(t)
	require.NoError(t, dst.Import(data))

	srcActive, err := srcTracker.Activity()
	require.NoError(t, err)
	dstActive, err := dstTracker.Activity()
	require.NoError(t, err)
	assert.Equal(t, srcActive, dstActive)

	srcCommits, err := srcTracker.Commits.All()
	require.NoError(t, err)
	dstCommits, err := dstTracker.Commits.All()
	require.NoError(t, err)
	assert.Equal(t, srcCommits, dstCommits)

	dstTasks, err := dstTracker.Tasks.List()
	require.NoError(t, err)
	require.Len(t, dstTasks, 1)
	assert.Equal(t, "write tests", dstTasks[0].Text)

	playlists, err := dstTracker.Playlists.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/focus"}, playlists)

	assert.Equal(t, "Ada", dstTracker.Settings.Username())
	assert.Equal(t, srcTracker.Streak().Count, dstTracker.Streak().Count)
}

func TestExportBundleShape(t *testing.T) {
	src, srcTracker, _ := newTestManager(t)
	_, err := srcTracker.SaveCommit(dateutil.Today(), "t", "d", "")
	require.NoError(t, err)

	data, err := src.Export()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"commits", "streak", "activity", "username", "theme", "exportDate"} {
		assert.Contains(t, raw, key)
	}
}

func TestPartialImportLeavesOtherKeysAlone(t *testing.T) {
	mgr, tr, _ := newTestManager(t)

	_, err := tr.SaveCommit(dateutil.Today(), "keep me", "d", "")
	require.NoError(t, err)
	require.NoError(t, tr.Settings.SetUsername("Ada"))

	// A bundle carrying only a username must not disturb commits.
	require.NoError(t, mgr.Import([]byte(`{"username":"Grace","exportDate":"2025-01-01T00:00:00Z"}`)))

	assert.Equal(t, "Grace", tr.Settings.Username())
	commits, err := tr.Commits.All()
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "keep me", commits[dateutil.Today()].Title)
}

func TestImportRejectsMalformedBundle(t *testing.T) {
	mgr, tr, _ := newTestManager(t)

	err := mgr.Import([]byte("not json at all"))
	require.Error(t, err)

	// Nothing was rebuilt or emitted on failure.
	commits, err2 := tr.Commits.All()
	require.NoError(t, err2)
	assert.Empty(t, commits)
}

func TestImportRebuildsDerivedState(t *testing.T) {
	mgr, tr, _ := newTestManager(t)

	today := dateutil.Today()
	bundle := `{"commits":{"` + today + `":{"title":"imported","description":"d","notes":"","timestamp":"2025-01-01T00:00:00Z"}},"exportDate":"2025-01-01T00:00:00Z"}`
	require.NoError(t, mgr.Import([]byte(bundle)))

	active, err := tr.Activity()
	require.NoError(t, err)
	assert.True(t, active[today])
	assert.Equal(t, 1, tr.Streak().Count)
}

func TestImportNotifiesSubscribers(t *testing.T) {
	mgr, tr, _ := newTestManager(t)

	var events []tracker.Event
	tr.Subscribe(func(ev tracker.Event) {
		events = append(events, ev)
	})

	require.NoError(t, mgr.Import([]byte(`{"exportDate":"2025-01-01T00:00:00Z"}`)))
	assert.Equal(t, []tracker.Event{tracker.DataImported}, events)
}

func TestResetClearsDataKeepsIdentity(t *testing.T) {
	mgr, tr, store := newTestManager(t)

	_, err := tr.SaveCommit(dateutil.Today(), "t", "d", "")
	require.NoError(t, err)
	_, err = tr.AddTask("task")
	require.NoError(t, err)
	require.NoError(t, tr.Playlists.Add("https://example.com/mix"))
	require.NoError(t, tr.Settings.SetUsername("Ada"))
	_, err = tr.Settings.ToggleTheme()
	require.NoError(t, err)

	var events []tracker.Event
	tr.Subscribe(func(ev tracker.Event) {
		events = append(events, ev)
	})

	require.NoError(t, mgr.Reset())

	commits, err := tr.Commits.All()
	require.NoError(t, err)
	assert.Empty(t, commits)
	tasks, err := tr.Tasks.List()
	require.NoError(t, err)
	assert.Empty(t, tasks)
	playlists, err := tr.Playlists.List()
	require.NoError(t, err)
	assert.Empty(t, playlists)
	assert.Equal(t, 0, tr.Streak().Count)

	assert.Equal(t, "Ada", tr.Settings.Username())
	assert.Equal(t, "dark", tr.Settings.Theme())

	_, ok, err := store.Get(storage.KeyLastDate)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []tracker.Event{tracker.DataReset}, events)
}
