package deck

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseColor accepts "#RRGGBB", "RRGGBB" or the 8-digit "AARRGGBB" form used by
// GoPPT. Alpha is ignored.
func ParseColor(s string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) == 8 {
		v = v[2:]
	}
	if len(v) != 6 {
		return Color{}, fmt.Errorf("%w: bad color %q", ErrInvalidStyle, s)
	}
	b, err := hex.DecodeString(v)
	if err != nil {
		return Color{}, fmt.Errorf("%w: bad color %q", ErrInvalidStyle, s)
	}
	return Color{R: b[0], G: b[1], B: b[2]}, nil
}

// Hex returns "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB returns the fully opaque "FFRRGGBB" form.
func (c Color) ARGB() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// StyleConfig carries every visual constant a build needs. It is passed by
// value into each builder call and never mutated during a build.
type StyleConfig struct {
	Accent     Color  `json:"accent" yaml:"accent"`
	Text       Color  `json:"text" yaml:"text"`
	Background Color  `json:"background" yaml:"background"`
	FontFamily string `json:"fontFamily" yaml:"fontFamily"`

	// 字号 (pt)
	TitleSize    int `json:"titleSize" yaml:"titleSize"`
	SubtitleSize int `json:"subtitleSize" yaml:"subtitleSize"`
	BodySize     int `json:"bodySize" yaml:"bodySize"`
	TableSize    int `json:"tableSize" yaml:"tableSize"`

	// Points of space after each body paragraph.
	ParagraphSpacing int `json:"paragraphSpacing" yaml:"paragraphSpacing"`

	CellFill    Color `json:"cellFill" yaml:"cellFill"`
	CellAltFill Color `json:"cellAltFill" yaml:"cellAltFill"`
}

// DefaultStyle returns the bronze-on-paper palette of the lesson report.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		Accent:           RGB(140, 120, 83), // 古铜色
		Text:             RGB(50, 50, 50),
		Background:       RGB(250, 250, 245), // 仿纸张米色
		FontFamily:       "微软雅黑",
		TitleSize:        40,
		SubtitleSize:     24,
		BodySize:         20,
		TableSize:        16,
		ParagraphSpacing: 14,
		CellFill:         RGB(240, 236, 226),
		CellAltFill:      RGB(250, 250, 245),
	}
}

// Validate reports the first unusable field.
func (s StyleConfig) Validate() error {
	if strings.TrimSpace(s.FontFamily) == "" {
		return fmt.Errorf("%w: font family is empty", ErrInvalidStyle)
	}
	sizes := []struct {
		name string
		v    int
	}{
		{"titleSize", s.TitleSize},
		{"subtitleSize", s.SubtitleSize},
		{"bodySize", s.BodySize},
		{"tableSize", s.TableSize},
	}
	for _, sz := range sizes {
		if sz.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidStyle, sz.name, sz.v)
		}
	}
	if s.ParagraphSpacing < 0 {
		return fmt.Errorf("%w: paragraphSpacing must not be negative", ErrInvalidStyle)
	}
	return nil
}

func (s StyleConfig) headingFont(bold bool) Font {
	return Font{Family: s.FontFamily, Size: s.TitleSize, Color: s.Accent, Bold: bold}
}

func (s StyleConfig) subtitleFont() Font {
	return Font{Family: s.FontFamily, Size: s.SubtitleSize, Color: s.Text}
}

func (s StyleConfig) bodyFont() Font {
	return Font{Family: s.FontFamily, Size: s.BodySize, Color: s.Text}
}

func (s StyleConfig) cellFont() Font {
	return Font{Family: s.FontFamily, Size: s.TableSize, Color: s.Text}
}
