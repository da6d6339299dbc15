package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Body properties. They set element content instead of an attribute.
const (
	PropTextContent = "textContent"
	PropInnerText   = "innerText"
	PropInnerHTML   = "innerHTML"
)

// AttrName maps a DOM property name to its HTML attribute name. ok is false
// for properties that are not written as attributes.
func AttrName(prop string) (name string, ok bool) {
	switch prop {
	case "", PropTextContent, PropInnerText, PropInnerHTML:
		return "", false
	case "className":
		return "class", true
	case "htmlFor":
		return "for", true
	}
	if strings.HasPrefix(prop, "_") || !validAttrName(prop) {
		return "", false
	}
	return strings.ToLower(prop), true
}

// validAttrName limits attribute names to [A-Za-z0-9_:.-].
func validAttrName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '_', c == ':', c == '.', c == '-':
		default:
			return false
		}
	}
	return true
}

// FormatValue converts a property or style value to its text form. ok is
// false for nil and function values.
func FormatValue(value any) (s string, ok bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	case int:
		return fmt.Sprintf("%d", v), true
	case int64:
		return fmt.Sprintf("%d", v), true
	case float64:
		return fmt.Sprintf("%g", v), true
	}
	if strings.HasPrefix(fmt.Sprintf("%T", value), "func") {
		return "", false
	}
	return fmt.Sprintf("%v", value), true
}

// CSSName converts a style property name to its CSS form.
//
//	backgroundColor → background-color
//	webkitTransform → -webkit-transform
//	cssFloat        → float
//	--brand-color   → --brand-color
func CSSName(name string) string {
	if strings.HasPrefix(name, "--") || strings.ContainsRune(name, '-') {
		return name
	}
	if name == "cssFloat" {
		return "float"
	}
	var b strings.Builder
	for _, prefix := range []string{"webkit", "moz", "ms"} {
		if len(name) > len(prefix) && strings.HasPrefix(name, prefix) && unicode.IsUpper(rune(name[len(prefix)])) {
			b.WriteByte('-')
			break
		}
	}
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StyleDecl serializes style entries as a CSS declaration list, sorted by
// name. Entries whose value cannot be formatted or is empty are skipped.
func StyleDecl(style map[string]any) string {
	names := make([]string, 0, len(style))
	for k := range style {
		names = append(names, k)
	}
	sort.Strings(names)

	decls := make([]string, 0, len(names))
	for _, k := range names {
		v, ok := FormatValue(style[k])
		if !ok || v == "" {
			continue
		}
		decls = append(decls, CSSName(k)+": "+v)
	}
	return strings.Join(decls, "; ")
}
