package cleaner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/handiism/tagtidy/internal/audio"
	"github.com/handiism/tagtidy/internal/config"
	"github.com/handiism/tagtidy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tags = map[string]model.Values

// newTestStore puts one tag set per path, named 01.flac, 02.flac, ...
func newTestStore(sets ...tags) (*audio.MemoryStore, []string) {
	store := audio.NewMemoryStore()
	paths := make([]string, len(sets))
	for i, set := range sets {
		paths[i] = fmt.Sprintf("%02d.flac", i+1)
		store.Put(paths[i], set)
	}
	return store, paths
}

func newTestCleaner(store audio.Store, events *[]ProgressEvent) *Cleaner {
	settings := config.DefaultSettings()
	settings.CheckDiscs = false
	return NewCleaner(store, settings, func(e ProgressEvent) {
		if events != nil {
			*events = append(*events, e)
		}
	})
}

func mustAlbum(t *testing.T, paths []string) *model.Album {
	t.Helper()
	album, err := model.NewAlbum(paths)
	require.NoError(t, err)
	return album
}

func TestClean_NoInputFiles(t *testing.T) {
	store := audio.NewMemoryStore()
	var events []ProgressEvent
	c := NewCleaner(store, nil, func(e ProgressEvent) { events = append(events, e) })

	report, err := c.Clean(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNoInputFiles)
	assert.Nil(t, report)
	assert.Empty(t, events)
	assert.Zero(t, store.TotalOpens())
}

func TestClean_EndToEnd(t *testing.T) {
	store, paths := newTestStore(
		tags{"artist": {"Band X"}, "albumartist": {"Band X"}, "disctotal": {"1"}, "discnumber": {"1"}},
		tags{"artist": {"Band X"}, "albumartist": {"Band X"}},
		tags{"artist": {"Band X"}, "albumartist": {"Band X"}},
	)
	var events []ProgressEvent
	c := newTestCleaner(store, &events)

	report, err := c.Clean(context.Background(), paths)
	require.NoError(t, err)

	for _, path := range paths {
		assert.NotContains(t, store.Tags(path), model.FieldAlbumArtist, path)
		assert.Equal(t, model.Values{"Band X"}, store.Tags(path)[model.FieldArtist], path)
	}
	assert.NotContains(t, store.Tags(paths[0]), model.FieldDiscTotal)
	assert.NotContains(t, store.Tags(paths[0]), model.FieldDiscNumber)

	// One save per pass for every file.
	for _, path := range paths {
		assert.Equal(t, 2, store.Saves(path), path)
	}
	assert.Equal(t, tags{"artist": {"Band X"}}, store.Tags(paths[1]))
	assert.Equal(t, tags{"artist": {"Band X"}}, store.Tags(paths[2]))

	messages := make([]string, len(events))
	for i, e := range events {
		messages[i] = e.Message
	}
	assert.Equal(t, []string{
		"Cleaning album artist tags...",
		"Album artist tags cleaned!",
		"Cleaning disc total tags...",
		"Disc total tags cleaned!",
		"Operations complete.",
	}, messages)
	assert.Equal(t, LevelSuccess, events[len(events)-1].Level)

	files := report.Files()
	require.Len(t, files, 3)
	assert.Equal(t, []string{model.FieldAlbumArtist, model.FieldDiscTotal, model.FieldDiscNumber}, files[0].Removed)
	assert.Equal(t, []string{model.FieldAlbumArtist}, files[1].Removed)
	assert.Equal(t, 5, report.Removed())
}

func TestClean_Idempotent(t *testing.T) {
	store, paths := newTestStore(
		tags{"artist": {"A"}, "albumartist": {"A"}, "totaldiscs": {"1"}, "discnumber": {"1/1"}},
		tags{"artist": {"A"}, "albumartist": {"A"}, "disctotal": {"2"}, "discnumber": {"1/2"}},
	)
	c := newTestCleaner(store, nil)

	_, err := c.Clean(context.Background(), paths)
	require.NoError(t, err)
	after := map[string]tags{}
	for _, path := range paths {
		after[path] = store.Tags(path)
	}

	report, err := c.Clean(context.Background(), paths)
	require.NoError(t, err)

	for _, path := range paths {
		assert.Equal(t, after[path], store.Tags(path), path)
	}
	assert.Zero(t, report.Removed())
}

func TestClean_MissingArtistStopsRun(t *testing.T) {
	store, paths := newTestStore(
		tags{"artist": {"A"}, "disctotal": {"1"}},
		tags{"title": {"no artist"}, "disctotal": {"1"}},
	)
	var events []ProgressEvent
	c := newTestCleaner(store, &events)

	_, err := c.Clean(context.Background(), paths)

	assert.ErrorIs(t, err, ErrMissingField)
	assert.ErrorContains(t, err, paths[1])
	// The disc pass never ran.
	for _, path := range paths {
		assert.Zero(t, store.Saves(path))
		assert.Contains(t, store.Tags(path), model.FieldDiscTotal)
	}
	require.Len(t, events, 1)
}

func TestClean_OpenFailure(t *testing.T) {
	store, paths := newTestStore(tags{"artist": {"A"}})
	paths = append(paths, "missing.flac")
	c := newTestCleaner(store, nil)

	_, err := c.Clean(context.Background(), paths)
	assert.Error(t, err)
	assert.ErrorContains(t, err, "missing.flac")
}

func TestClean_SaveFailureKeepsEarlierSaves(t *testing.T) {
	store, paths := newTestStore(
		tags{"artist": {"A"}, "disctotal": {"1"}},
		tags{"artist": {"B"}, "disctotal": {"1"}},
		tags{"artist": {"C"}, "disctotal": {"1"}},
	)
	boom := errors.New("read-only file system")
	store.FailSave(paths[1], boom)
	c := newTestCleaner(store, nil)

	report, err := c.Clean(context.Background(), paths)

	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, store.Tags(paths[0]), model.FieldDiscTotal)
	assert.Contains(t, store.Tags(paths[1]), model.FieldDiscTotal)
	assert.Contains(t, store.Tags(paths[2]), model.FieldDiscTotal)
	// The artist pass stopped at the second file and the disc pass at the
	// failed save, so the third file was never opened.
	assert.Zero(t, store.Opens(paths[2]))
	assert.Equal(t, 1, report.Files()[0].Saves)
}

func TestClean_UnreadableFileWithDiscCheck(t *testing.T) {
	store, paths := newTestStore(
		tags{"artist": {"A"}, "disctotal": {"1"}},
		tags{"artist": {"B"}, "disctotal": {"1"}},
	)
	paths = append(paths, "missing.flac")
	settings := config.DefaultSettings()
	require.True(t, settings.CheckDiscs)
	c := NewCleaner(store, settings, nil)

	_, err := c.Clean(context.Background(), paths)

	// The disc pass fails at the missing file, after saving the others.
	assert.ErrorContains(t, err, "missing.flac")
	assert.Equal(t, 1, store.Saves(paths[0]))
	assert.Equal(t, 1, store.Saves(paths[1]))
	assert.NotContains(t, store.Tags(paths[0]), model.FieldDiscTotal)
	assert.NotContains(t, store.Tags(paths[1]), model.FieldDiscTotal)
}

func TestClean_DiscCheckDoesNotChangeSaves(t *testing.T) {
	sets := []tags{
		{"artist": {"A"}, "albumartist": {"A"}, "disctotal": {"1"}, "discnumber": {"1"}},
		{"artist": {"A"}, "albumartist": {"A"}, "discnumber": {"2"}},
	}

	run := func(checkDiscs bool) *audio.MemoryStore {
		store, paths := newTestStore(sets...)
		settings := config.DefaultSettings()
		settings.CheckDiscs = checkDiscs
		_, err := NewCleaner(store, settings, nil).Clean(context.Background(), paths)
		require.NoError(t, err)
		return store
	}

	with, without := run(true), run(false)
	for _, path := range []string{"01.flac", "02.flac"} {
		assert.Equal(t, without.Saves(path), with.Saves(path), path)
		assert.Equal(t, without.Tags(path), with.Tags(path), path)
	}
}

func TestClean_Cancelled(t *testing.T) {
	store, paths := newTestStore(
		tags{"artist": {"A"}},
		tags{"artist": {"A"}},
	)
	c := newTestCleaner(store, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Clean(ctx, paths)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.Saves(paths[0]))
}

func TestClean_DiscConsistencyWarning(t *testing.T) {
	store, paths := newTestStore(
		tags{"artist": {"A"}, "discnumber": {"1/2"}},
		tags{"artist": {"A"}, "discnumber": {"2/2"}},
	)
	var events []ProgressEvent
	c := NewCleaner(store, config.DefaultSettings(), func(e ProgressEvent) { events = append(events, e) })

	_, err := c.Clean(context.Background(), paths)
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.Equal(t, LevelWarning, events[0].Level)
	assert.Contains(t, events[0].Message, "[1 2]")
	// The warning does not change what the passes do.
	assert.Equal(t, model.Values{"1/2"}, store.Tags(paths[0])[model.FieldDiscNumber])
}

func TestCheckDiscConsistency(t *testing.T) {
	tests := []struct {
		name string
		sets []tags
		want []int
	}{
		{"none", []tags{{"artist": {"A"}}, {"artist": {"A"}}}, nil},
		{"single", []tags{{"discnumber": {"1"}}, {"discnumber": {"1/1"}}, {}}, []int{1}},
		{"several", []tags{{"discnumber": {"3/3"}}, {"discnumber": {"1"}}, {"discnumber": {"3"}}}, []int{1, 3}},
		{"unparseable", []tags{{"discnumber": {"A"}}, {"discnumber": {"2"}}}, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, paths := newTestStore(tt.sets...)
			c := newTestCleaner(store, nil)

			got, err := c.CheckDiscConsistency(context.Background(), mustAlbum(t, paths))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, path := range paths {
				assert.Zero(t, store.Saves(path))
			}
		})
	}
}
