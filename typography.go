package pelican

import "regexp"

// Typographer is the post-processing typography filter applied to rendered
// content and titles when the TYPOGRIFY setting is enabled.
type Typographer interface {
	Filter(s string) string
}

// Precompiled typography patterns.
var (
	// Bare ampersands between spaces, also in entity form.
	bareAmpersand = regexp.MustCompile(`(\s)&(?:amp;|#38;)?(\s)`)

	// Last inter-word space before a block close tag or the end of the
	// string. Replacing it prevents a widowed final word.
	widowSpace = regexp.MustCompile(`(\S)[ \t]+(\S+\s*(?:</(?:p|h[1-6]|li|dd|dt)>|$))`)
)

// typographyFilter applies ampersand wrapping and widow prevention, the
// transforms a typogrify-style collaborator performs on final output.
type typographyFilter struct{}

// defaultTypographer is the process-wide typography filter.
var defaultTypographer Typographer = typographyFilter{}

func (typographyFilter) Filter(s string) string {
	s = bareAmpersand.ReplaceAllString(s, `$1<span class="amp">&amp;</span>$2`)
	return widowSpace.ReplaceAllString(s, "$1&nbsp;$2")
}
