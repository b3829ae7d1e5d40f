// Package typography maps symbolic text sizes and fonts to concrete styles.
//
// Sizes and fonts are closed enumerations. A Variant can only be built from
// valid members, so resolving one always yields a complete Style.
package typography

import (
	"fmt"
	"strings"
)

// Size is a symbolic text size
type Size int

const (
	SizeSmall Size = iota + 1
	SizeMedium
	SizeLarge
	SizeTitle
)

// Font is a symbolic font weight
type Font int

const (
	FontBold Font = iota + 1
	FontMedium
	FontRegular
)

var (
	sizeNames  = map[Size]string{SizeSmall: "small", SizeMedium: "medium", SizeLarge: "large", SizeTitle: "title"}
	sizePixels = map[Size]int{SizeSmall: 15, SizeMedium: 25, SizeLarge: 35, SizeTitle: 45}

	fontNames    = map[Font]string{FontBold: "bold", FontMedium: "medium", FontRegular: "regular"}
	fontFamilies = map[Font]string{FontBold: "JetBrains Mono", FontMedium: "JetBrains Mono Medium", FontRegular: "JetBrains Mono"}
	fontWeights  = map[Font]int{FontBold: 700, FontMedium: 500, FontRegular: 400}
)

// Sizes lists every size, smallest first
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeTitle}
}

// Fonts lists every font
func Fonts() []Font {
	return []Font{FontBold, FontMedium, FontRegular}
}

// UnknownSymbolError is returned when parsing a name that isn't in the table
type UnknownSymbolError struct {
	Kind  string
	Value string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

// Valid reports whether s is one of the declared sizes
func (s Size) Valid() bool {
	_, ok := sizeNames[s]
	return ok
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// Pixels returns the font size in CSS pixels
func (s Size) Pixels() int {
	return sizePixels[s]
}

// ParseSize resolves a symbolic size name
func ParseSize(name string) (Size, error) {
	for s, n := range sizeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, &UnknownSymbolError{Kind: "size", Value: name}
}

// Valid reports whether f is one of the declared fonts
func (f Font) Valid() bool {
	_, ok := fontNames[f]
	return ok
}

func (f Font) String() string {
	if name, ok := fontNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Font(%d)", int(f))
}

// Family returns the CSS font family
func (f Font) Family() string {
	return fontFamilies[f]
}

// Weight returns the CSS font weight
func (f Font) Weight() int {
	return fontWeights[f]
}

// ParseFont resolves a symbolic font name
func ParseFont(name string) (Font, error) {
	for f, n := range fontNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return 0, &UnknownSymbolError{Kind: "font", Value: name}
}

// Variant is a validated size and font pair
type Variant struct {
	size Size
	font Font
}

// NewVariant checks both members and returns the pair
func NewVariant(size Size, font Font) (Variant, error) {
	if !size.Valid() {
		return Variant{}, &UnknownSymbolError{Kind: "size", Value: size.String()}
	}
	if !font.Valid() {
		return Variant{}, &UnknownSymbolError{Kind: "font", Value: font.String()}
	}
	return Variant{size: size, font: font}, nil
}

// MustVariant is NewVariant for package-level declarations
func MustVariant(size Size, font Font) Variant {
	v, err := NewVariant(size, font)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseVariant builds a Variant from symbolic names such as "title" and "medium"
func ParseVariant(size, font string) (Variant, error) {
	s, err := ParseSize(size)
	if err != nil {
		return Variant{}, err
	}
	f, err := ParseFont(font)
	if err != nil {
		return Variant{}, err
	}
	return NewVariant(s, f)
}

// Variants lists every size and font combination
func Variants() []Variant {
	out := make([]Variant, 0, len(sizeNames)*len(fontNames))
	for _, s := range Sizes() {
		for _, f := range Fonts() {
			out = append(out, Variant{size: s, font: f})
		}
	}
	return out
}

// Size returns the variant's size
func (v Variant) Size() Size { return v.size }

// Font returns the variant's font
func (v Variant) Font() Font { return v.font }

// IsZero reports whether v was declared without a constructor
func (v Variant) IsZero() bool {
	return v.size == 0 && v.font == 0
}

// Class is the stylesheet class for the variant, e.g. "typo-title-medium"
func (v Variant) Class() string {
	return "typo-" + v.size.String() + "-" + v.font.String()
}

// Style is the resolved presentation of a variant
type Style struct {
	Size       string `json:"size"`
	Font       string `json:"font"`
	FontFamily string `json:"font_family"`
	FontSize   string `json:"font_size"`
	FontWeight int    `json:"font_weight"`
}

// Style resolves the variant through the lookup table. It panics on a zero
// Variant, which no constructor returns.
func (v Variant) Style() Style {
	if v.IsZero() {
		panic(ErrZeroVariant)
	}
	return Style{
		Size:       v.size.String(),
		Font:       v.font.String(),
		FontFamily: v.font.Family(),
		FontSize:   fmt.Sprintf("%dpx", v.size.Pixels()),
		FontWeight: v.font.Weight(),
	}
}

// Table resolves every variant, in Variants order
func Table() []Style {
	variants := Variants()
	out := make([]Style, len(variants))
	for i, v := range variants {
		out[i] = v.Style()
	}
	return out
}
