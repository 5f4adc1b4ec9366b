package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Name identifies a style
type Name string

const (
	Debug   Name = "debug"
	Info    Name = "info"
	Warning Name = "warning"
	Error   Name = "error"
	Success Name = "success"
	Failure Name = "failure"
	Strong  Name = "strong"
	Mojo    Name = "mojo"
	Project Name = "project"
)

// defaultSpecs holds the built-in style for every name
var defaultSpecs = map[Name]string{
	Debug:   "bold,cyan",
	Info:    "bold,blue",
	Warning: "bold,yellow",
	Error:   "bold,red",
	Success: "bold,green",
	Failure: "bold,red",
	Strong:  "bold",
	Mojo:    "green",
	Project: "cyan",
}

// Names returns all known style names in sorted order
func Names() []Name {
	names := make([]Name, 0, len(defaultSpecs))
	for n := range defaultSpecs {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Palette renders named styles
type Palette struct {
	enabled bool
	styles  map[Name]*color.Color
}

// NewPalette builds a palette from the defaults plus overrides keyed by
// style name. Unknown names and malformed specs are reported as errors.
func NewPalette(enabled bool, overrides map[string]string) (*Palette, error) {
	normalized := make(map[Name]string, len(overrides))
	for name, spec := range overrides {
		n := Name(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := defaultSpecs[n]; !ok {
			return nil, fmt.Errorf("unknown style %q", name)
		}
		normalized[n] = spec
	}

	p := &Palette{
		enabled: enabled,
		styles:  make(map[Name]*color.Color, len(defaultSpecs)),
	}
	for name, spec := range defaultSpecs {
		if ov, ok := normalized[name]; ok {
			spec = ov
		}
		attrs, err := ParseSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		p.styles[name] = c
	}
	return p, nil
}

// Plain returns a disabled palette with the default styles
func Plain() *Palette {
	p, _ := NewPalette(false, nil)
	return p
}

// Enabled reports whether Render emits escape sequences
func (p *Palette) Enabled() bool {
	return p != nil && p.enabled
}

// Render styles text with the named style. Unknown names and disabled
// palettes return text unchanged.
func (p *Palette) Render(text string, name Name) string {
	if !p.Enabled() || text == "" {
		return text
	}
	c, ok := p.styles[name]
	if !ok {
		return text
	}
	return c.Sprint(text)
}
