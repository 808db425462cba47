package fontmatch

import (
	"fmt"

	"github.com/go-text/typesetting/fontscan"

	"github.com/gogpu/glyphcache"
)

// scanLogger forwards fontscan warnings to the package logger.
type scanLogger struct{}

func (scanLogger) Printf(format string, args ...interface{}) {
	glyphcache.Logger().Debug("fontmatch: " + fmt.Sprintf(format, args...))
}

// systemFontDirs returns the existing font directories of the platform,
// including those configured for fontconfig.
func systemFontDirs() ([]string, error) {
	return fontscan.DefaultFontDirectories(scanLogger{})
}
