package style

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var attributeNames = map[string]color.Attribute{
	"bold":      color.Bold,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
}

var colorOffsets = map[string]color.Attribute{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ParseSpec parses a comma separated style spec such as "bold,red" or
// "underline,bgbrightblue" into color attributes. An empty spec means
// no styling.
func ParseSpec(spec string) ([]color.Attribute, error) {
	var attrs []color.Attribute
	for _, part := range strings.Split(spec, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		if a, ok := attributeNames[token]; ok {
			attrs = append(attrs, a)
			continue
		}
		a, err := parseColor(token)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

func parseColor(token string) (color.Attribute, error) {
	name := token
	base := color.FgBlack
	bright := color.FgHiBlack
	if strings.HasPrefix(name, "bg") {
		name = strings.TrimPrefix(name, "bg")
		base = color.BgBlack
		bright = color.BgHiBlack
	}
	if strings.HasPrefix(name, "bright") {
		name = strings.TrimPrefix(name, "bright")
		base = bright
	}
	offset, ok := colorOffsets[name]
	if !ok {
		return 0, fmt.Errorf("unknown style token %q", token)
	}
	return base + offset, nil
}
