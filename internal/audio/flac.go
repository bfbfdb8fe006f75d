package audio

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/handiism/tagtidy/internal/model"
)

// flacFile is a FLAC tag set backed by the file's Vorbis comment block.
type flacFile struct {
	path    string
	file    *flac.File
	comment *flacvorbis.MetaDataBlockVorbisComment

	// index of the Vorbis comment block in file.Meta, -1 if the file had none.
	index int
}

func openFLAC(path string) (*flacFile, error) {
	f, err := parseFLAC(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	ff := &flacFile{path: path, file: f, index: -1}
	for i, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		comment, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse Vorbis comment: %w", ErrMalformedFile, err)
		}
		ff.comment = comment
		ff.index = i
		break
	}

	if ff.comment == nil {
		ff.comment = flacvorbis.New()
	}

	return ff, nil
}

// parseFLAC reads the file at path, turning a go-flac panic on a
// truncated stream (metadata but no frames) into an error.
func parseFLAC(path string) (f *flac.File, err error) {
	defer func() {
		if r := recover(); r != nil {
			f = nil
			err = fmt.Errorf("%w: %v", ErrMalformedFile, r)
		}
	}()
	f, err = flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}
	return f, nil
}

func (f *flacFile) Path() string {
	return f.path
}

func (f *flacFile) Get(name string) (model.Values, bool) {
	var values model.Values
	found := false
	for _, c := range f.comment.Comments {
		key, value, ok := strings.Cut(c, "=")
		if ok && strings.EqualFold(key, name) {
			values = append(values, value)
			found = true
		}
	}
	return values, found
}

func (f *flacFile) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}

func (f *flacFile) Delete(name string) bool {
	kept := f.comment.Comments[:0]
	deleted := false
	for _, c := range f.comment.Comments {
		key, _, ok := strings.Cut(c, "=")
		if ok && strings.EqualFold(key, name) {
			deleted = true
			continue
		}
		kept = append(kept, c)
	}
	f.comment.Comments = kept
	return deleted
}

func (f *flacFile) Save() error {
	block := f.comment.Marshal()
	switch {
	case f.index >= 0:
		f.file.Meta[f.index] = &block
	case len(f.comment.Comments) > 0:
		f.file.Meta = append(f.file.Meta, &block)
		f.index = len(f.file.Meta) - 1
	}
	return f.file.Save(f.path)
}

// Close is a no-op: the whole file is read into memory on open.
func (f *flacFile) Close() error {
	return nil
}
