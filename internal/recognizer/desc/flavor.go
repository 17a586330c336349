package desc

import (
	"regexp"
	"strings"

	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

var flavorComment = regexp.MustCompile(`(?m)^\s*#\s*flavor\s*:\s*(\w+)\s*$`)

// SplitFlavorComment looks for a leading "# flavor: dfa|ctr|dpda" comment
// line (SPEC_FULL.md 6) and, if present, returns the named flavor and the
// remaining text with that line removed. It never touches anything that
// isn't the comment line itself, so clause text is unaffected.
func SplitFlavorComment(text string) (flavor model.Flavor, rest string, found bool) {
	loc := flavorComment.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", text, false
	}

	name := strings.ToLower(text[loc[2]:loc[3]])
	f, ok := model.ParseFlavor(name)
	if !ok {
		return "", text, false
	}

	rest = text[:loc[0]] + text[loc[1]:]
	return f, rest, true
}
