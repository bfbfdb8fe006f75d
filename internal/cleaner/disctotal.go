package cleaner

import (
	"context"

	"github.com/handiism/tagtidy/internal/model"
)

// singleDisc is the disc total that marks a release as single-disc.
const singleDisc = "1"

// CleanDiscTotal deletes disc numbering from every file that says it
// belongs to a single-disc release.
//
// Each file is handled on its own: a disctotal or totaldiscs whose first
// value is "1" is deleted, and if either was, discnumber goes too. Every
// file is saved whether or not anything changed.
func (c *Cleaner) CleanDiscTotal(ctx context.Context, album *model.Album, report *Report) error {
	for _, path := range album.Paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.cleanDiscTotalFile(path, report); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cleaner) cleanDiscTotalFile(path string, report *Report) error {
	f, err := c.open(path)
	if err != nil {
		return err
	}
	defer c.close(f)

	single := false
	for _, name := range []string{model.FieldDiscTotal, model.FieldTotalDiscs} {
		total, ok := f.Get(name)
		if !ok || total.First() != singleDisc {
			continue
		}
		single = true
		c.delete(f, name, report)
	}

	if single {
		c.delete(f, model.FieldDiscNumber, report)
	}

	return c.save(f, report)
}
