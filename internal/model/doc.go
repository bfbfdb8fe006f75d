// Package model defines the core data structures shared by the tag
// store and the cleaner.
//
// # Fields
//
// Tag fields are addressed by their lower-case names:
//
//	model.FieldArtist      // "artist"
//	model.FieldAlbumArtist // "albumartist"
//	model.FieldDiscNumber  // "discnumber"
//
// # Values
//
// A tag may carry several values, so every lookup returns Values:
//
//	v := model.Values{"Band X"}
//	v.Equal(model.Values{"Band X"}) // true
//	v.First()                       // "Band X"
//
// # Album
//
// Album is the ordered set of files the cleaner works on:
//
//	album, err := model.NewAlbum(os.Args[1:])
//	fmt.Println(album.Len())
package model
