// Package cleaner removes redundant tags from the files of a single
// album disc.
//
// # Passes
//
// The Cleaner runs two independent passes over the same files:
//
//  1. Album artist: if every file has the same artist and the first
//     file's albumartist equals it, albumartist is deleted everywhere.
//  2. Disc total: every file whose disctotal or totaldiscs is "1" loses
//     that field and its discnumber. Every file is saved.
//
// # Basic Usage
//
//	c := cleaner.NewCleaner(audio.NewFileStore(nil), settings, func(e cleaner.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//
//	report, err := c.Clean(ctx, paths)
//	if errors.Is(err, cleaner.ErrNoInputFiles) {
//	    fmt.Println("No input files!")
//	}
//
// # Failure Behaviour
//
// Every error stops the run at the file that caused it. Files saved
// before the failure keep their changes.
package cleaner
