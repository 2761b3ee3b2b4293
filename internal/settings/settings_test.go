package settings

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tabnote/tabnote/internal/db/controller/setting"
	"github.com/tabnote/tabnote/internal/db/models"
)

const testKey = "tabnote.settings"

func setupTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Setting{})
	require.NoError(t, err, "failed to migrate test database")

	return New(db, testKey), db
}

func TestGetDefaults(t *testing.T) {
	testCases := []struct {
		name   string
		stored []byte // nil means nothing stored
	}{
		{name: "empty store"},
		{name: "corrupt json", stored: []byte(`{"enabled":`)},
		{name: "stored null", stored: []byte(`null`)},
		{name: "stored array", stored: []byte(`[1,2,3]`)},
		{name: "stored scalar", stored: []byte(`"on"`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, db := setupTestStore(t)

			if tc.stored != nil {
				_, err := setting.Set(db, testKey, tc.stored)
				require.NoError(t, err)
			}

			assert.Equal(t, Record{EnabledField: false}, store.Get())
			assert.False(t, store.Enabled())
		})
	}
}

func TestGetStorageFailure(t *testing.T) {
	// a nil db makes every read fail; the accessor must mask it
	store := New(nil, testKey)

	assert.Equal(t, Record{EnabledField: false}, store.Get())
	assert.False(t, store.Enabled())
}

func TestSaveRejectsNonObjects(t *testing.T) {
	testCases := []struct {
		name      string
		candidate any
	}{
		{name: "nil", candidate: nil},
		{name: "string", candidate: "enabled"},
		{name: "number", candidate: float64(1)},
		{name: "bool", candidate: true},
		{name: "array", candidate: []any{map[string]any{"enabled": true}}},
		{name: "typed nil map", candidate: (map[string]any)(nil)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, db := setupTestStore(t)

			res := store.Save(tc.candidate)

			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Error)

			// stored state must be untouched
			_, err := setting.Get(db, testKey)
			require.ErrorIs(t, err, setting.ErrSettingNotFound)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	testCases := []struct {
		name      string
		candidate Record
	}{
		{name: "enabled only", candidate: Record{"enabled": true}},
		{name: "disabled", candidate: Record{"enabled": false}},
		{
			name: "unknown fields survive",
			candidate: Record{
				"enabled": true,
				"theme":   "dark",
				"limits":  map[string]any{"perTab": float64(3)},
				"tags":    []any{"a", "b"},
			},
		},
		{name: "empty object", candidate: Record{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := setupTestStore(t)

			res := store.Save(tc.candidate)
			require.True(t, res.Success, "save failed: %s", res.Error)
			assert.Empty(t, res.Error)

			assert.Equal(t, tc.candidate, store.Get())
		})
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	store, _ := setupTestStore(t)

	require.True(t, store.Save(Record{"enabled": true, "theme": "dark"}).Success)
	require.True(t, store.Save(Record{"enabled": false}).Success)

	// no partial merge: the first record's extra field is gone
	assert.Equal(t, Record{"enabled": false}, store.Get())
	assert.False(t, store.Enabled())
}

func TestSaveStorageFailure(t *testing.T) {
	store := New(nil, testKey)

	res := store.Save(Record{"enabled": true})

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestEnabled(t *testing.T) {
	store, _ := setupTestStore(t)

	require.True(t, store.Save(Record{"enabled": true}).Success)
	assert.True(t, store.Enabled())

	// non-boolean enabled values read as disabled
	require.True(t, store.Save(Record{"enabled": "yes"}).Success)
	assert.False(t, store.Enabled())
}
