package render

import (
	"strings"

	"golang.org/x/net/html"
)

// attrWhitespace covers the characters html.EscapeString leaves alone but
// that attribute values must not carry literally.
var attrWhitespace = strings.NewReplacer("\n", "&#10;", "\t", "&#9;")

func escapeHTML(s string) string {
	return html.EscapeString(s)
}

func escapeAttr(s string) string {
	return attrWhitespace.Replace(html.EscapeString(s))
}
