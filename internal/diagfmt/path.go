package diagfmt

import (
	"fmt"
	"strings"

	"concatident/internal/source"
)

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	}
	if f.Flags&source.FileVirtual != 0 {
		return f.Path
	}
	rel := f.FormatPath("relative", fs.BaseDir())
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return f.Path
	}
	return rel
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs != nil {
		start, end := fs.Resolve(span)
		return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
	}
	return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
}
