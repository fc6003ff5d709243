package palette

import (
	"sort"
	"strings"
)

const DefaultColorName = "gris"

var defaultEntries = map[string]string{
	"bleu":  "#2D6CDF",
	"rouge": "#D64541",
	"rose":  "#E85D9E",
	"vert":  "#2ECC71",
	"jaune": "#F1C40F",
	"blanc": "#FFFFFF",
	"gris":  "#B3B3B3",

	"blue":   "#2D6CDF",
	"red":    "#D64541",
	"pink":   "#E85D9E",
	"green":  "#2ECC71",
	"yellow": "#F1C40F",
	"white":  "#FFFFFF",
	"gray":   "#B3B3B3",
	"grey":   "#B3B3B3",
}

type Palette struct {
	entries map[string]Color
}

func Default() *Palette {
	p := &Palette{entries: make(map[string]Color, len(defaultEntries))}
	for name, hex := range defaultEntries {
		p.entries[name] = MustHex(hex)
	}
	return p
}

// With returns a copy of p with the given entries added or replaced.
// Entries whose value is not a hex code are returned as rejected.
func (p *Palette) With(entries map[string]string) (*Palette, []string) {
	out := &Palette{entries: make(map[string]Color, len(p.entries)+len(entries))}
	for name, c := range p.entries {
		out.entries[name] = c
	}
	var rejected []string
	for name, hex := range entries {
		c, ok := ParseHex(hex)
		if !ok {
			rejected = append(rejected, name)
			continue
		}
		out.entries[normalizeName(name)] = c
	}
	sort.Strings(rejected)
	return out, rejected
}

func (p *Palette) Lookup(name string) (Color, bool) {
	c, ok := p.entries[normalizeName(name)]
	return c, ok
}

func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.entries))
	for name := range p.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type Source int

const (
	SourceDefault Source = iota
	SourcePalette
	SourceHex
)

func (s Source) String() string {
	switch s {
	case SourcePalette:
		return "palette"
	case SourceHex:
		return "hex"
	default:
		return "default"
	}
}

// Resolution records which branch produced a color. Token is the input as
// given; Unrecognized is set when a non-empty token fell back to the default.
type Resolution struct {
	Color        Color
	Source       Source
	Token        string
	Unrecognized bool
}

// Resolve maps a palette name or hex code to a color. It never fails: empty
// and unrecognized tokens yield def.
func (p *Palette) Resolve(token string, def Color) Resolution {
	res := Resolution{Color: def, Source: SourceDefault, Token: token}
	if strings.TrimSpace(token) == "" {
		return res
	}
	if c, ok := p.Lookup(token); ok {
		res.Color, res.Source = c, SourcePalette
		return res
	}
	if c, ok := ParseHex(token); ok {
		res.Color, res.Source = c, SourceHex
		return res
	}
	res.Unrecognized = true
	return res
}
