package spatial

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/hollowgrove/spatial/scalar"
)

// Color represents a color with R, G, B, and A components, each usually ranging from 0 to 1.
// Values above 1 are allowed for overbright colors (HDR).
type Color struct {
	R Float // The red component of the color
	G Float // The green component of the color
	B Float // The blue component of the color
	A Float // The alpha (opacity) component of the color; 0 is transparent, 1 is opaque
}

// NewColor creates a new Color from RGB values, with alpha set to 1.
func NewColor(r, g, b Float) Color {
	return NewColorRGBA(r, g, b, 1)
}

// NewColorRGBA creates a new Color from RGBA values.
func NewColorRGBA(r, g, b, a Float) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NewColorFromHSV creates a Color from an HSV profile; hue, saturation, and value are usually
// between 0 and 1.
func NewColorFromHSV(h, s, v Float) Color {
	return NewColorFromHSVA(h, s, v, 1)
}

// NewColorFromHSVA creates a Color from an HSV profile plus an alpha value.
func NewColorFromHSVA(h, s, v, a Float) Color {
	if s == 0 {
		// Achromatic (gray)
		return NewColorRGBA(v, v, v, a)
	}

	h *= 6
	h = scalar.Mod(h, 6)
	i := int(scalar.Floor(h))

	f := h - Float(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch i {
	case 0:
		// Red is the dominant color
		return NewColorRGBA(v, t, p, a)
	case 1:
		// Green is the dominant color
		return NewColorRGBA(q, v, p, a)
	case 2:
		return NewColorRGBA(p, v, t, a)
	case 3:
		// Blue is the dominant color
		return NewColorRGBA(p, q, v, a)
	case 4:
		return NewColorRGBA(t, p, v, a)
	default:
		// (5) Red is the dominant color
		return NewColorRGBA(v, p, q, a)
	}
}

// NewColorFromHex creates a Color from a 32-bit integer in RGBA format (8 bits per channel);
// the inverse of ToRGBA32. Best visualized in hexadecimal notation: 0xRRGGBBAA.
func NewColorFromHex(hex uint32) Color {
	a := Float(hex&0xff) / 255
	hex >>= 8
	b := Float(hex&0xff) / 255
	hex >>= 8
	g := Float(hex&0xff) / 255
	hex >>= 8
	r := Float(hex&0xff) / 255

	return NewColorRGBA(r, g, b, a)
}

// NewColorFromHex64 creates a Color from a 64-bit integer in RGBA format (16 bits per
// channel); the inverse of ToRGBA64. Best visualized in hexadecimal notation:
// 0xRRRRGGGGBBBBAAAA.
func NewColorFromHex64(hex uint64) Color {
	a := Float(hex&0xffff) / 65535
	hex >>= 16
	b := Float(hex&0xffff) / 65535
	hex >>= 16
	g := Float(hex&0xffff) / 65535
	hex >>= 16
	r := Float(hex&0xffff) / 65535

	return NewColorRGBA(r, g, b, a)
}

// NewColorFromRGBE9995 decodes a Color from an RGBE9995 format integer; three 9-bit mantissas
// sharing a single 5-bit exponent, the packing used by HDR texture formats.
func NewColorFromRGBE9995(rgbe uint32) Color {
	r := Float(rgbe & 0x1ff)
	g := Float((rgbe >> 9) & 0x1ff)
	b := Float((rgbe >> 18) & 0x1ff)
	e := Float(rgbe >> 27)
	m := scalar.Pow(2, e-15-9)

	return NewColor(r*m, g*m, b*m)
}

// NewColorFromHTML creates a Color from an HTML hexadecimal color string. The string isn't
// case-sensitive, may be prefixed by a hash sign (#), and must be 3, 4, 6, or 8 hex digits;
// the 4 and 8 digit forms carry an alpha channel, the others get an alpha of 1. An invalid
// string returns an error along with an empty color.
func NewColorFromHTML(rgba string) (Color, error) {
	color := strings.TrimPrefix(rgba, "#")
	if len(color) == 0 {
		return Color{}, fmt.Errorf("empty color code")
	}

	// One hex digit per channel instead of 2. Other sizes aren't in the HTML/CSS spec.
	isShorthand := len(color) < 5

	var alpha bool
	switch len(color) {
	case 8, 4:
		alpha = true
	case 6, 3:
		alpha = false
	default:
		return Color{}, fmt.Errorf("invalid color code: #%s", color)
	}

	digits := 2
	max := Float(255)
	if isShorthand {
		digits = 1
		max = 15
	}

	var channels [4]Float
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(color[i*digits:(i+1)*digits], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color code: #%s", color)
		}
		channels[i] = Float(v) / max
	}
	channels[3] = 1
	if alpha {
		v, err := strconv.ParseUint(color[3*digits:4*digits], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color code: #%s", color)
		}
		channels[3] = Float(v) / max
	}

	return NewColorRGBA(channels[0], channels[1], channels[2], channels[3]), nil
}

// HTMLIsValid returns true if the string is a valid HTML hexadecimal color string; 3, 4, 6,
// or 8 hex digits (case-insensitive), optionally prefixed by a hash sign (#).
func HTMLIsValid(color string) bool {
	color = strings.TrimPrefix(color, "#")

	switch len(color) {
	case 3, 4, 6, 8:
	default:
		return false
	}

	for _, c := range color {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NewColorFromName creates a Color from a standard color name, like "red" or "alice blue"
// (case-insensitive, spaces and underscores ignored). Unrecognized names return fallback.
func NewColorFromName(name string, fallback Color) Color {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "")
	c, ok := colornames.Map[key]
	if !ok {
		return fallback
	}
	return NewColorRGBA(Float(c.R)/255, Float(c.G)/255, Float(c.B)/255, Float(c.A)/255)
}

// NewColorFromString creates a Color from a string, which can be either an HTML color code or
// a color name (case-insensitive). Returns fallback if the color can't be inferred from the
// string.
func NewColorFromString(str string, fallback Color) Color {
	if HTMLIsValid(str) {
		c, err := NewColorFromHTML(str)
		if err != nil {
			return fallback
		}
		return c
	}
	return NewColorFromName(str, fallback)
}

// Add returns a copy of the calling Color with the other Color's components added to it.
func (color Color) Add(other Color) Color {
	color.R += other.R
	color.G += other.G
	color.B += other.B
	color.A += other.A
	return color
}

// Sub returns a copy of the calling Color with the other Color's components subtracted from
// it.
func (color Color) Sub(other Color) Color {
	color.R -= other.R
	color.G -= other.G
	color.B -= other.B
	color.A -= other.A
	return color
}

// Mul returns a copy of the calling Color, multiplied component-wise by the other Color.
func (color Color) Mul(other Color) Color {
	color.R *= other.R
	color.G *= other.G
	color.B *= other.B
	color.A *= other.A
	return color
}

// Scale returns a copy of the calling Color with all components multiplied by the factor
// provided.
func (color Color) Scale(factor Float) Color {
	color.R *= factor
	color.G *= factor
	color.B *= factor
	color.A *= factor
	return color
}

// Blend returns a new color resulting from overlaying the over color onto this color. In a
// painting program, you can imagine it as the over color painted over this one, alpha
// included.
func (color Color) Blend(over Color) Color {
	var res Color
	sa := 1 - over.A
	res.A = color.A*sa + over.A
	if res.A == 0 {
		return NewColorRGBA(0, 0, 0, 0)
	}
	res.R = (color.R*color.A*sa + over.R*over.A) / res.A
	res.G = (color.G*color.A*sa + over.G*over.A) / res.A
	res.B = (color.B*color.A*sa + over.B*over.A) / res.A
	return res
}

// Clamp returns a copy of this color with all components clamped between the components of
// min and max.
func (color Color) Clamp(min, max Color) Color {
	return NewColorRGBA(
		scalar.Clamp(color.R, min.R, max.R),
		scalar.Clamp(color.G, min.G, max.G),
		scalar.Clamp(color.B, min.B, max.B),
		scalar.Clamp(color.A, min.A, max.A),
	)
}

// Darkened returns a copy of this color made darker by the given amount, a ratio from 0 to 1.
// See also Lightened.
func (color Color) Darkened(amount Float) Color {
	color.R *= 1 - amount
	color.G *= 1 - amount
	color.B *= 1 - amount
	return color
}

// Lightened returns a copy of this color made lighter by the given amount, a ratio from 0 to
// 1. See also Darkened.
func (color Color) Lightened(amount Float) Color {
	color.R += (1 - color.R) * amount
	color.G += (1 - color.G) * amount
	color.B += (1 - color.B) * amount
	return color
}

// Inverted returns this color with its R, G, and B components inverted; (1-R, 1-G, 1-B, A).
func (color Color) Inverted() Color {
	return NewColorRGBA(1-color.R, 1-color.G, 1-color.B, color.A)
}

// Lerp returns the linear interpolation between this color's components and to's components
// by weight.
func (color Color) Lerp(to Color, weight Float) Color {
	return NewColorRGBA(
		scalar.Lerp(color.R, to.R, weight),
		scalar.Lerp(color.G, to.G, weight),
		scalar.Lerp(color.B, to.B, weight),
		scalar.Lerp(color.A, to.A, weight),
	)
}

// Luminance returns the light intensity of the color between 0 and 1; colors with a luminance
// below 0.5 can generally be considered dark. This relies on the color being in the linear
// color space; convert an sRGB color with SRGBToLinear first.
func (color Color) Luminance() Float {
	return 0.2126*color.R + 0.7152*color.G + 0.0722*color.B
}

// LinearToSRGB returns the color converted to the sRGB color space, assuming it's currently
// linear. See also SRGBToLinear, which performs the opposite operation.
func (color Color) LinearToSRGB() Color {
	conv := func(c Float) Float {
		if c < 0.0031308 {
			return 12.92 * c
		}
		return (1+0.055)*scalar.Pow(c, 1/2.4) - 0.055
	}
	return NewColorRGBA(conv(color.R), conv(color.G), conv(color.B), color.A)
}

// SRGBToLinear returns the color converted to the linear color space, assuming it's currently
// sRGB. See also LinearToSRGB, which performs the opposite operation.
func (color Color) SRGBToLinear() Color {
	conv := func(c Float) Float {
		if c < 0.04045 {
			return c * (1.0 / 12.92)
		}
		return scalar.Pow((c+0.055)*(1.0/(1+0.055)), 2.4)
	}
	return NewColorRGBA(conv(color.R), conv(color.G), conv(color.B), color.A)
}

// IsEqualApprox returns true if this color and to are approximately equal, comparing each
// component.
func (color Color) IsEqualApprox(to Color) bool {
	return scalar.IsEqualApprox(color.R, to.R) &&
		scalar.IsEqualApprox(color.G, to.G) &&
		scalar.IsEqualApprox(color.B, to.B) &&
		scalar.IsEqualApprox(color.A, to.A)
}

// H returns the hue of the color, between 0 and 1.
func (color Color) H() Float {
	min := scalar.Min(scalar.Min(color.R, color.G), color.B)
	max := scalar.Max(scalar.Max(color.R, color.G), color.B)

	delta := max - min
	if delta == 0 {
		return 0
	}

	var h Float
	switch {
	case color.R == max:
		h = (color.G - color.B) / delta // between yellow & magenta
	case color.G == max:
		h = 2 + (color.B-color.R)/delta // between cyan & yellow
	default:
		h = 4 + (color.R-color.G)/delta // between magenta & cyan
	}

	h /= 6
	if h < 0 {
		h++
	}
	return h
}

// S returns the saturation of the color, between 0 and 1.
func (color Color) S() Float {
	min := scalar.Min(scalar.Min(color.R, color.G), color.B)
	max := scalar.Max(scalar.Max(color.R, color.G), color.B)

	delta := max - min
	if max != 0 {
		return delta / max
	}
	return 0
}

// V returns the value (brightness) of the color, between 0 and 1.
func (color Color) V() Float {
	return scalar.Max(scalar.Max(color.R, color.G), color.B)
}

// SetH returns a copy of the color with its hue changed, keeping the saturation and value.
func (color Color) SetH(h Float) Color {
	return NewColorFromHSVA(h, color.S(), color.V(), color.A)
}

// SetS returns a copy of the color with its saturation changed, keeping the hue and value.
func (color Color) SetS(s Float) Color {
	return NewColorFromHSVA(color.H(), s, color.V(), color.A)
}

// SetV returns a copy of the color with its value (brightness) changed, keeping the hue and
// saturation.
func (color Color) SetV(v Float) Color {
	return NewColorFromHSVA(color.H(), color.S(), v, color.A)
}

// R8 returns the red component as a byte, from 0 to 255.
func (color Color) R8() uint8 {
	return uint8(scalar.Round(color.R * 255))
}

// G8 returns the green component as a byte, from 0 to 255.
func (color Color) G8() uint8 {
	return uint8(scalar.Round(color.G * 255))
}

// B8 returns the blue component as a byte, from 0 to 255.
func (color Color) B8() uint8 {
	return uint8(scalar.Round(color.B * 255))
}

// A8 returns the alpha component as a byte, from 0 to 255.
func (color Color) A8() uint8 {
	return uint8(scalar.Round(color.A * 255))
}

// ToRGBA32 returns the color converted to a 32-bit integer in RGBA format (8 bits per
// component); the inverse of NewColorFromHex.
func (color Color) ToRGBA32() uint32 {
	c := uint32(scalar.Round(color.R * 255))
	c <<= 8
	c |= uint32(scalar.Round(color.G * 255))
	c <<= 8
	c |= uint32(scalar.Round(color.B * 255))
	c <<= 8
	c |= uint32(scalar.Round(color.A * 255))
	return c
}

// ToRGBA64 returns the color converted to a 64-bit integer in RGBA format (16 bits per
// component); the inverse of NewColorFromHex64.
func (color Color) ToRGBA64() uint64 {
	c := uint64(scalar.Round(color.R * 65535))
	c <<= 16
	c |= uint64(scalar.Round(color.G * 65535))
	c <<= 16
	c |= uint64(scalar.Round(color.B * 65535))
	c <<= 16
	c |= uint64(scalar.Round(color.A * 65535))
	return c
}

// ToARGB32 returns the color converted to a 32-bit integer in ARGB format (8 bits per
// component), the format more compatible with DirectX.
func (color Color) ToARGB32() uint32 {
	c := uint32(scalar.Round(color.A * 255))
	c <<= 8
	c |= uint32(scalar.Round(color.R * 255))
	c <<= 8
	c |= uint32(scalar.Round(color.G * 255))
	c <<= 8
	c |= uint32(scalar.Round(color.B * 255))
	return c
}

// ToARGB64 returns the color converted to a 64-bit integer in ARGB format (16 bits per
// component).
func (color Color) ToARGB64() uint64 {
	c := uint64(scalar.Round(color.A * 65535))
	c <<= 16
	c |= uint64(scalar.Round(color.R * 65535))
	c <<= 16
	c |= uint64(scalar.Round(color.G * 65535))
	c <<= 16
	c |= uint64(scalar.Round(color.B * 65535))
	return c
}

// ToABGR32 returns the color converted to a 32-bit integer in ABGR format (8 bits per
// component), the reversed version of the default RGBA format.
func (color Color) ToABGR32() uint32 {
	c := uint32(scalar.Round(color.A * 255))
	c <<= 8
	c |= uint32(scalar.Round(color.B * 255))
	c <<= 8
	c |= uint32(scalar.Round(color.G * 255))
	c <<= 8
	c |= uint32(scalar.Round(color.R * 255))
	return c
}

// ToABGR64 returns the color converted to a 64-bit integer in ABGR format (16 bits per
// component).
func (color Color) ToABGR64() uint64 {
	c := uint64(scalar.Round(color.A * 65535))
	c <<= 16
	c |= uint64(scalar.Round(color.B * 65535))
	c <<= 16
	c |= uint64(scalar.Round(color.G * 65535))
	c <<= 16
	c |= uint64(scalar.Round(color.R * 65535))
	return c
}

// ToHTML returns the color converted to an HTML hexadecimal color string in RGBA format,
// without the hash (#) prefix.
func (color Color) ToHTML() string {
	return fmt.Sprintf("%02x%02x%02x%02x", color.R8(), color.G8(), color.B8(), color.A8())
}

// ToHTMLWithoutAlpha returns the color converted to an HTML hexadecimal color string in RGB
// format, without the hash (#) prefix.
func (color Color) ToHTMLWithoutAlpha() string {
	return fmt.Sprintf("%02x%02x%02x", color.R8(), color.G8(), color.B8())
}

func (color Color) String() string {
	return fmt.Sprintf("Color(%.3f, %.3f, %.3f, %.3f)", color.R, color.G, color.B, color.A)
}
