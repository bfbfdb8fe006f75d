package cleaner

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/tagtidy/internal/audio"
	"github.com/handiism/tagtidy/internal/config"
	"github.com/handiism/tagtidy/internal/model"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrNoInputFiles is returned by Clean when it is given no paths.
	ErrNoInputFiles = errors.New("no input files")

	// ErrMissingField is returned when a field the album artist pass
	// compares on is absent from a file.
	ErrMissingField = errors.New("missing required field")
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a cleaning progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Cleaner removes redundant album artist and disc tags.
type Cleaner struct {
	store      audio.Store
	checkDiscs bool
	logger     *log.Entry
	onProgress func(ProgressEvent)
}

// NewCleaner creates a new Cleaner reading and writing tags through store.
//
// If settings is nil, config.DefaultSettings() is used. onProgress may be
// nil.
func NewCleaner(store audio.Store, settings *config.Settings, onProgress func(ProgressEvent)) *Cleaner {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	return &Cleaner{
		store:      store,
		checkDiscs: settings.CheckDiscs,
		logger:     log.WithField("module", "cleaner"),
		onProgress: onProgress,
	}
}

// Clean runs the album artist pass followed by the disc total pass over
// paths, which are treated as one disc of one album.
//
// The second pass runs whatever the first one decided. Returns
// ErrNoInputFiles without opening anything if paths is empty. The report
// covers all work done up to the point of any error.
func (c *Cleaner) Clean(ctx context.Context, paths []string) (*Report, error) {
	album, err := model.NewAlbum(paths)
	if err != nil {
		return nil, ErrNoInputFiles
	}

	report := NewReport(album)

	if c.checkDiscs {
		discs, err := c.CheckDiscConsistency(ctx, album)
		if err != nil {
			return report, err
		}
		if len(discs) > 1 {
			c.progress(ProgressEvent{
				Message: fmt.Sprintf("Files carry %d different disc numbers %v; treating them as one disc", len(discs), discs),
				Level:   LevelWarning,
			})
		}
	}

	c.progress(ProgressEvent{Message: "Cleaning album artist tags...", Level: LevelInfo})
	if err := c.CleanAlbumArtist(ctx, album, report); err != nil {
		return report, err
	}
	c.progress(ProgressEvent{Message: "Album artist tags cleaned!", Level: LevelInfo})

	c.progress(ProgressEvent{Message: "Cleaning disc total tags...", Level: LevelInfo})
	if err := c.CleanDiscTotal(ctx, album, report); err != nil {
		return report, err
	}
	c.progress(ProgressEvent{Message: "Disc total tags cleaned!", Level: LevelInfo})

	c.progress(ProgressEvent{Message: "Operations complete.", Level: LevelSuccess})
	return report, nil
}

func (c *Cleaner) open(path string) (audio.File, error) {
	f, err := c.store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	c.logger.WithField("file", path).Debug("opened")
	return f, nil
}

func (c *Cleaner) save(f audio.File, report *Report) error {
	if err := f.Save(); err != nil {
		return fmt.Errorf("save %s: %w", f.Path(), err)
	}
	c.logger.WithField("file", f.Path()).Debug("saved")
	report.recordSave(f.Path())
	return nil
}

func (c *Cleaner) close(f audio.File) {
	if err := f.Close(); err != nil {
		c.logger.WithField("file", f.Path()).Warnf("close failed: %v", err)
	}
}

func (c *Cleaner) delete(f audio.File, name string, report *Report) bool {
	if !f.Delete(name) {
		return false
	}
	c.logger.WithFields(log.Fields{"file": f.Path(), "field": name}).Debug("deleted")
	report.recordRemoval(f.Path(), name)
	return true
}

func (c *Cleaner) progress(event ProgressEvent) {
	if c.onProgress != nil {
		c.onProgress(event)
	}
}

// requireField returns the values of name, failing with ErrMissingField
// if f does not have it.
func requireField(f audio.File, name string) (model.Values, error) {
	v, ok := f.Get(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", f.Path(), ErrMissingField, name)
	}
	return v, nil
}
