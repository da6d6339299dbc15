package render

import "testing"

func TestAttrName(t *testing.T) {
	tests := []struct {
		prop string
		want string
		ok   bool
	}{
		{"className", "class", true},
		{"htmlFor", "for", true},
		{"readOnly", "readonly", true},
		{"data-id", "data-id", true},
		{"textContent", "", false},
		{"innerHTML", "", false},
		{"_key", "", false},
		{"", "", false},
		{"xlink:href", "xlink:href", true},
		{"x onmouseover=alert(1) y", "", false},
		{`a"b`, "", false},
		{"a>b", "", false},
		{"dätä", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			got, ok := AttrName(tt.prop)
			if got != tt.want || ok != tt.ok {
				t.Errorf("AttrName(%q) = %q, %v; want %q, %v", tt.prop, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCSSName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"color", "color"},
		{"backgroundColor", "background-color"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"webkitTransform", "-webkit-transform"},
		{"msFlex", "-ms-flex"},
		{"cssFloat", "float"},
		{"--brand-color", "--brand-color"},
		{"font-size", "font-size"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CSSName(tt.in); got != tt.want {
				t.Errorf("CSSName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStyleDecl(t *testing.T) {
	got := StyleDecl(map[string]any{
		"zIndex":   3,
		"width":    "100%",
		"opacity":  0.5,
		"empty":    "",
		"callback": func() {},
	})
	want := "opacity: 0.5; width: 100%; z-index: 3"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"nil", nil, "", false},
		{"string", "x", "x", true},
		{"bool", true, "true", true},
		{"int", 42, "42", true},
		{"float", 1.5, "1.5", true},
		{"func", func() {}, "", false},
		{"slice", []int{1}, "[1]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatValue(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("FormatValue(%v) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
