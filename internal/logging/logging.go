// Package logging builds the logrus logger used across tagtidy.
package logging

import (
	"io"
	"os"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/handiism/tagtidy/internal/config"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// Configure sets up the standard logrus logger to write to out at the
// level named in settings.
//
// Colours are used only when out is a terminal and NoColor is unset.
func Configure(settings *config.Settings, out io.Writer) error {
	level, err := settings.Level()
	if err != nil {
		return err
	}

	logger := log.StandardLogger()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(NewFormatter(!settings.NoColor && IsTerminal(out)))
	return nil
}

// NewFormatter returns the nested formatter with module and file fields
// printed first.
func NewFormatter(colors bool) log.Formatter {
	return &nested.Formatter{
		FieldsOrder:     []string{"module", "file", "field"},
		TimestampFormat: time.TimeOnly,
		HideKeys:        true,
		NoColors:        !colors,
		NoFieldsColors:  !colors,
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
