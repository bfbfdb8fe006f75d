package cleaner

import (
	"context"
	"slices"

	"github.com/handiism/tagtidy/internal/model"
)

// CheckDiscConsistency returns the distinct disc numbers found across the
// album's files, in ascending order.
//
// Files without a parseable discnumber are skipped, and so are files that
// cannot be opened: the passes report those at the point they reach them.
// More than one result means the files are not a single disc, which the
// passes assume but never verify. Nothing is modified or saved.
func (c *Cleaner) CheckDiscConsistency(ctx context.Context, album *model.Album) ([]int, error) {
	var discs []int
	for _, path := range album.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f, err := c.open(path)
		if err != nil {
			c.logger.WithField("file", path).Debugf("skipping disc check: %v", err)
			continue
		}
		v, ok := f.Get(model.FieldDiscNumber)
		c.close(f)
		if !ok {
			continue
		}

		num, _ := model.ParseNumberPair(v.First())
		if num > 0 && !slices.Contains(discs, num) {
			discs = append(discs, num)
		}
	}

	slices.Sort(discs)
	return discs, nil
}
