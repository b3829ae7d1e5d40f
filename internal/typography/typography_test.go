package typography

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleMatchesTable(t *testing.T) {
	pixels := map[string]string{"small": "15px", "medium": "25px", "large": "35px", "title": "45px"}
	families := map[string]string{"bold": "JetBrains Mono", "medium": "JetBrains Mono Medium", "regular": "JetBrains Mono"}

	for size, px := range pixels {
		for font, family := range families {
			v, err := ParseVariant(size, font)
			require.NoError(t, err)

			style := v.Style()
			assert.Equal(t, px, style.FontSize, "%s/%s", size, font)
			assert.Equal(t, family, style.FontFamily, "%s/%s", size, font)

			// resolution is deterministic
			assert.Equal(t, style, v.Style())
		}
	}
}

func TestVariantsCoverEveryPair(t *testing.T) {
	variants := Variants()
	assert.Len(t, variants, 12)

	seen := map[string]bool{}
	for _, v := range variants {
		seen[v.Class()] = true
	}
	assert.Len(t, seen, 12)
	assert.True(t, seen["typo-title-medium"])
	assert.Len(t, Table(), 12)
}

func TestUnknownSymbolsAreRejected(t *testing.T) {
	_, err := ParseVariant("huge", "bold")
	var unknown *UnknownSymbolError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "size", unknown.Kind)
	assert.Equal(t, "huge", unknown.Value)

	_, err = ParseVariant("small", "italic")
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "font", unknown.Kind)

	_, err = NewVariant(Size(99), FontBold)
	assert.Error(t, err)

	_, err = NewVariant(SizeSmall, Font(0))
	assert.Error(t, err)

	assert.Panics(t, func() { MustVariant(0, 0) })
}

func TestParseIsCaseInsensitive(t *testing.T) {
	s, err := ParseSize(" Title ")
	require.NoError(t, err)
	assert.Equal(t, SizeTitle, s)

	f, err := ParseFont("BOLD")
	require.NoError(t, err)
	assert.Equal(t, FontBold, f)
}

func TestTextHTML(t *testing.T) {
	v := MustVariant(SizeTitle, FontMedium)

	got, err := New(v, "black", "About me").Aligned(AlignCenter).HTML()
	require.NoError(t, err)
	assert.Equal(t, `<label class="typo typo-title-medium" style="color:black;text-align:center">About me</label>`, string(got))
}

func TestTextHTMLEscapesContent(t *testing.T) {
	got, err := New(MustVariant(SizeSmall, FontRegular), "", "<script>").HTML()
	require.NoError(t, err)
	assert.Equal(t, `<label class="typo typo-small-regular">&lt;script&gt;</label>`, string(got))
}

func TestTextHTMLRejectsUnresolvableText(t *testing.T) {
	v := MustVariant(SizeSmall, FontRegular)

	_, err := Text{Content: "x"}.HTML()
	assert.ErrorIs(t, err, ErrZeroVariant)

	_, err = New(v, "red;background:url(x)", "x").HTML()
	assert.ErrorContains(t, err, "invalid color")

	_, err = New(v, "black", "x").Aligned("sideways").HTML()
	assert.ErrorContains(t, err, "invalid alignment")
}

func TestZeroVariantStylePanics(t *testing.T) {
	assert.PanicsWithValue(t, ErrZeroVariant, func() { Variant{}.Style() })
}

func TestColorValid(t *testing.T) {
	for _, ok := range []Color{"white", "#fff", "#18181b", "rgba(0, 0, 0, 0.5)"} {
		assert.True(t, ok.Valid(), ok)
	}
	for _, bad := range []Color{"", "red;x", "url(x)", "#12"} {
		assert.False(t, bad.Valid(), bad)
	}
}

func TestStylesheetDeclaresEveryVariant(t *testing.T) {
	css := DefaultTheme().Stylesheet()

	assert.True(t, strings.HasPrefix(css, "@import url('"+DefaultFontImport+"');"))
	assert.Contains(t, css, ".typo-title-medium { font-family: 'JetBrains Mono Medium'; font-size: 45px; font-weight: 500; }")
	assert.Contains(t, css, ".typo-small-bold { font-family: 'JetBrains Mono'; font-size: 15px; font-weight: 700; }")
	assert.Contains(t, css, ".highlight-bg")
}

func TestThemeValidate(t *testing.T) {
	require.NoError(t, DefaultTheme().Validate())

	th := DefaultTheme()
	th.Accent = "purple;}"
	assert.Error(t, th.Validate())

	th = DefaultTheme()
	th.FontImport = "x'); body{display:none"
	assert.Error(t, th.Validate())
}

func TestTerminalColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ffffff"), TerminalColor("white"))
	assert.Equal(t, lipgloss.Color("#18181b"), TerminalColor("#18181B"))
	assert.Equal(t, lipgloss.NoColor{}, TerminalColor("rgba(0,0,0,1)"))
}

func TestTerminalKeepsContent(t *testing.T) {
	out := New(MustVariant(SizeLarge, FontBold), "white", "Lucas Araujo").Terminal()
	assert.Contains(t, out, "Lucas Araujo")
}
