// Package audio provides read and write access to the tags embedded in
// audio files.
//
// # Opening Files
//
// Use a FileStore to open a file's tag set; the container format is
// detected from the file contents:
//
//	store := audio.NewFileStore(nil)
//	f, err := store.Open("01 Intro.flac")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
// # Reading and Writing Tags
//
// Fields are addressed by lower-case name regardless of format:
//
//	artist, ok := f.Get(model.FieldArtist)
//	f.Delete(model.FieldAlbumArtist)
//	err := f.Save()
//
// Supported containers:
//   - MP3 (ID3v2.3 / ID3v2.4)
//   - FLAC (Vorbis comments)
//
// # Testing
//
// MemoryStore implements Store without touching the filesystem and counts
// opens and saves per path.
package audio
