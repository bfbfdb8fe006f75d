// Package config provides configuration management for tagtidy.
//
// The command takes no flags, so every option comes from the environment.
// A .env file in the working directory is read first when present;
// variables already set in the environment win over it.
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Log level "warn"
//	// Disc consistency check enabled
//	// Summary table enabled
//
// # Loading
//
//	settings, err := config.Load(".env")
//	if err != nil {
//	    // An invalid value was set
//	}
//
// # Configuration Options
//
//   - TAGTIDY_LOG_LEVEL: logrus level name (panic ... trace)
//   - TAGTIDY_NO_COLOR: disable coloured output
//   - TAGTIDY_CHECK_DISCS: warn when files span several discs
//   - TAGTIDY_SUMMARY: print a table of changes after the run
package config
