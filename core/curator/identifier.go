package curator

import "strings"

// ExtractIdentifier returns the brace-delimited identifier embedded in a path-like
// string, braces included: "images/{abc}.jpg" yields "{abc}".
//
// The opening brace is the leftmost '{' that is followed by at least one character
// with no further '{' after that character; the match extends to the last '}' of
// the string. Inputs carrying several independent pairs resolve to the rightmost
// opening brace, which callers should treat as undefined input.
func ExtractIdentifier(pathLike string) (string, bool) {
	if pathLike == "" {
		return "", false
	}

	end := strings.LastIndexByte(pathLike, '}')
	if end < 0 {
		return "", false
	}

	for i := 0; i < len(pathLike); i++ {
		if pathLike[i] != '{' {
			continue
		}
		// Need at least one character between '{' and the closing brace.
		if i+2 > end {
			break
		}
		if strings.IndexByte(pathLike[i+2:], '{') >= 0 {
			continue
		}
		return pathLike[i : end+1], true
	}

	return "", false
}

// ThumbnailPath derives the companion thumbnail of a packaged widget: braces are
// stripped and the widget suffix is swapped for the thumbnail suffix.
func ThumbnailPath(widgetPath, widgetSuffix, thumbSuffix string) string {
	if widgetPath == "" {
		return ""
	}
	p := strings.NewReplacer("{", "", "}", "").Replace(widgetPath)
	return strings.ReplaceAll(p, widgetSuffix, thumbSuffix)
}
