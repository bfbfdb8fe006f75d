package audio

import (
	"strings"

	"github.com/bogem/id3v2"
	"github.com/handiism/tagtidy/internal/model"
)

// id3TextFrames maps field names to the ID3 text frames that hold them.
var id3TextFrames = map[string]string{
	model.FieldArtist:      "TPE1", // Lead artist
	model.FieldAlbumArtist: "TPE2", // Band/orchestra/accompaniment
	model.FieldDiscNumber:  "TPOS", // Part of a set
}

// id3File is an MP3 tag set backed by an ID3v2 tag.
//
// Fields without a dedicated text frame (disctotal, totaldiscs, ...) are
// stored as TXXX frames whose description is the upper-case field name,
// which is where most taggers put them.
type id3File struct {
	path string
	tag  *id3v2.Tag
}

func openID3(path string) (*id3File, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	return &id3File{path: path, tag: tag}, nil
}

func (f *id3File) Path() string {
	return f.path
}

func (f *id3File) Get(name string) (model.Values, bool) {
	name = model.NormalizeField(name)

	if id, ok := id3TextFrames[name]; ok {
		frames := f.tag.GetFrames(id)
		if len(frames) == 0 {
			return nil, false
		}
		tf, ok := frames[0].(id3v2.TextFrame)
		if !ok {
			return nil, false
		}
		return splitID3Text(tf.Text), true
	}

	var values model.Values
	found := false
	for _, udtf := range f.userFrames() {
		if strings.EqualFold(udtf.Description, name) {
			values = append(values, splitID3Text(udtf.Value)...)
			found = true
		}
	}
	return values, found
}

func (f *id3File) Has(name string) bool {
	_, ok := f.Get(name)
	return ok
}

func (f *id3File) Delete(name string) bool {
	name = model.NormalizeField(name)

	if id, ok := id3TextFrames[name]; ok {
		if len(f.tag.GetFrames(id)) == 0 {
			return false
		}
		f.tag.DeleteFrames(id)
		return true
	}

	// TXXX frames share one ID, so drop them all and put back the others.
	frames := f.userFrames()
	deleted := false
	kept := frames[:0]
	for _, udtf := range frames {
		if strings.EqualFold(udtf.Description, name) {
			deleted = true
			continue
		}
		kept = append(kept, udtf)
	}
	if !deleted {
		return false
	}

	f.tag.DeleteFrames(f.userFrameID())
	for _, udtf := range kept {
		f.tag.AddUserDefinedTextFrame(udtf)
	}
	return true
}

func (f *id3File) Save() error {
	return f.tag.Save()
}

func (f *id3File) Close() error {
	return f.tag.Close()
}

func (f *id3File) userFrameID() string {
	return f.tag.CommonID("User defined text information frame")
}

func (f *id3File) userFrames() []id3v2.UserDefinedTextFrame {
	var frames []id3v2.UserDefinedTextFrame
	for _, framer := range f.tag.GetFrames(f.userFrameID()) {
		if udtf, ok := framer.(id3v2.UserDefinedTextFrame); ok {
			frames = append(frames, udtf)
		}
	}
	return frames
}

// splitID3Text splits an ID3v2.4 multi-value string on its NUL separators.
func splitID3Text(text string) model.Values {
	text = strings.TrimRight(text, "\x00")
	return model.Values(strings.Split(text, "\x00"))
}
