package cleaner

import (
	"github.com/handiism/tagtidy/internal/model"
)

// FileResult describes what a run did to one file.
type FileResult struct {
	// Path is the file path.
	Path string

	// Removed lists the fields deleted from the file, in deletion order.
	Removed []string

	// Saves counts how many times the file was written.
	Saves int
}

// Report collects per-file results of a run in album order.
//
// A nil *Report discards everything recorded into it.
type Report struct {
	order []string
	files map[string]*FileResult
}

// NewReport creates an empty Report for album.
func NewReport(album *model.Album) *Report {
	r := &Report{files: make(map[string]*FileResult, album.Len())}
	for _, path := range album.Paths {
		if _, ok := r.files[path]; ok {
			continue
		}
		r.order = append(r.order, path)
		r.files[path] = &FileResult{Path: path}
	}
	return r
}

// Files returns the per-file results in album order.
func (r *Report) Files() []FileResult {
	if r == nil {
		return nil
	}
	out := make([]FileResult, 0, len(r.order))
	for _, path := range r.order {
		res := *r.files[path]
		res.Removed = append([]string(nil), res.Removed...)
		out = append(out, res)
	}
	return out
}

// Removed returns the total number of deleted fields.
func (r *Report) Removed() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, res := range r.files {
		n += len(res.Removed)
	}
	return n
}

func (r *Report) result(path string) *FileResult {
	res, ok := r.files[path]
	if !ok {
		res = &FileResult{Path: path}
		r.files[path] = res
		r.order = append(r.order, path)
	}
	return res
}

func (r *Report) recordRemoval(path, field string) {
	if r == nil {
		return
	}
	res := r.result(path)
	res.Removed = append(res.Removed, field)
}

func (r *Report) recordSave(path string) {
	if r == nil {
		return
	}
	r.result(path).Saves++
}
