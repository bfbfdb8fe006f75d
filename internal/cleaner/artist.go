package cleaner

import (
	"context"

	"github.com/handiism/tagtidy/internal/audio"
	"github.com/handiism/tagtidy/internal/model"
)

// CleanAlbumArtist deletes albumartist from every file when it is redundant.
//
// The first file's artist is the reference. The scan over the remaining
// files stops at the first differing artist, leaving the rest unopened.
// When all artists agree, only the first file's albumartist is compared
// with the reference; if it matches, albumartist is deleted from every
// file that has it and each of those files is saved. Nothing is saved
// otherwise.
//
// A file without an artist field fails the pass with ErrMissingField.
func (c *Cleaner) CleanAlbumArtist(ctx context.Context, album *model.Album, report *Report) error {
	files := make([]audio.File, 0, album.Len())
	defer func() {
		for _, f := range files {
			c.close(f)
		}
	}()

	first, err := c.open(album.First())
	if err != nil {
		return err
	}
	files = append(files, first)

	reference, err := requireField(first, model.FieldArtist)
	if err != nil {
		return err
	}

	for _, path := range album.Rest() {
		if err := ctx.Err(); err != nil {
			return err
		}

		f, err := c.open(path)
		if err != nil {
			return err
		}
		files = append(files, f)

		artist, err := requireField(f, model.FieldArtist)
		if err != nil {
			return err
		}
		if !artist.Equal(reference) {
			c.logger.WithField("file", path).Debugf("artist %v differs from %v, keeping album artist", artist, reference)
			return nil
		}
	}

	albumArtist, ok := first.Get(model.FieldAlbumArtist)
	if !ok || !albumArtist.Equal(reference) {
		return nil
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.delete(f, model.FieldAlbumArtist, report) {
			continue
		}
		if err := c.save(f, report); err != nil {
			return err
		}
	}

	return nil
}
