package model

import (
	"errors"
	"path/filepath"
)

// ErrEmptyAlbum is returned by NewAlbum when no paths are given.
var ErrEmptyAlbum = errors.New("album has no files")

// Album represents the files of a single disc of one album.
//
// The files are kept in the order the caller gave them; the cleaner treats
// the first file as the reference for album-wide decisions. Nothing checks
// that the files really belong together.
//
// Example:
//
//	album, err := NewAlbum([]string{"01.flac", "02.flac"})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(album.First()) // "01.flac"
type Album struct {
	// Paths contains the audio file paths in caller order.
	Paths []string
}

// NewAlbum creates an Album from a list of file paths.
//
// Paths are cleaned but not resolved or checked for existence.
// Returns ErrEmptyAlbum if paths is empty.
func NewAlbum(paths []string) (*Album, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyAlbum
	}

	cleaned := make([]string, len(paths))
	for i, p := range paths {
		cleaned[i] = filepath.Clean(p)
	}

	return &Album{Paths: cleaned}, nil
}

// Len returns the number of files in the album.
func (a *Album) Len() int {
	return len(a.Paths)
}

// First returns the path of the reference file.
func (a *Album) First() string {
	return a.Paths[0]
}

// Rest returns every path after the reference file.
func (a *Album) Rest() []string {
	return a.Paths[1:]
}
