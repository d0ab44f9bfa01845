package session

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ytget/image-converter/internal/model"
)

// OutputPath returns the source path with its extension replaced by the
// target format's extension. The directory is kept.
func OutputPath(sourcePath string, format model.TargetFormat) string {
	base := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath))
	return base + "." + format.Extension()
}

// AlternatePath appends _1, _2, ... to the base name of candidate until
// exists reports an unused path.
func AlternatePath(candidate string, exists func(string) bool) string {
	ext := filepath.Ext(candidate)
	base := strings.TrimSuffix(candidate, ext)
	for n := 1; ; n++ {
		alternate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if !exists(alternate) {
			return alternate
		}
	}
}
