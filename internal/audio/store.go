package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/handiism/tagtidy/internal/model"
	log "github.com/sirupsen/logrus"
)

// ErrUnsupportedFormat is returned when a file is not a container the
// store can write.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// ErrMalformedFile is returned when a file has the right magic but its
// contents cannot be parsed.
var ErrMalformedFile = errors.New("malformed audio file")

// File is an open tag set belonging to one audio file.
//
// Changes made with Delete are kept in memory until Save is called.
type File interface {
	// Path returns the file the tag set was read from.
	Path() string

	// Get returns the values stored under name.
	Get(name string) (model.Values, bool)

	// Has reports whether name is present.
	Has(name string) bool

	// Delete removes name and reports whether it was present.
	Delete(name string) bool

	// Save writes the tag set back to the file.
	Save() error

	// Close releases the underlying file.
	Close() error
}

// Store opens tag sets by path.
type Store interface {
	Open(path string) (File, error)
}

// FileStore opens tag sets from the local filesystem.
//
// The container is identified from its magic bytes; untagged files fall
// back to the file extension.
type FileStore struct {
	logger *log.Entry
}

// NewFileStore creates a new FileStore.
//
// If logger is nil, the standard logrus logger is used.
func NewFileStore(logger *log.Entry) *FileStore {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &FileStore{
		logger: logger.WithField("module", "audio-store"),
	}
}

// Open opens the tag set of the file at path.
func (s *FileStore) Open(path string) (File, error) {
	fileType, err := s.identify(path)
	if err != nil {
		return nil, err
	}

	s.logger.Debugf("opening %s as %s", path, fileType)

	var (
		f       File
		openErr error
	)
	switch fileType {
	case tag.MP3:
		f, openErr = openID3(path)
	case tag.FLAC:
		f, openErr = openFLAC(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if openErr != nil {
		return nil, openErr
	}
	return f, nil
}

// identify detects the container type of the file at path.
func (s *FileStore) identify(path string) (tag.FileType, error) {
	f, err := os.Open(path)
	if err != nil {
		return tag.UnknownFileType, err
	}
	defer f.Close()

	_, fileType, err := tag.Identify(f)
	if err == nil && fileType != tag.UnknownFileType {
		return fileType, nil
	}

	// Files without any tag yet carry no magic we can rely on.
	s.logger.Debugf("could not identify %s from contents: %v", path, err)
	return fileTypeFromExt(path), nil
}

func fileTypeFromExt(path string) tag.FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return tag.MP3
	case ".flac":
		return tag.FLAC
	default:
		return tag.UnknownFileType
	}
}
