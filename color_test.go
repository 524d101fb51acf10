package spatial

import (
	"testing"
)

func colorNear(a, b Color, tolerance Float) bool {
	return floatNear(a.R, b.R, tolerance) && floatNear(a.G, b.G, tolerance) &&
		floatNear(a.B, b.B, tolerance) && floatNear(a.A, b.A, tolerance)
}

func TestColorHTML(t *testing.T) {

	valid := []string{"#ff3366", "ff3366", "#FF3366", "f36", "#f36a", "ff3366aa"}
	for _, code := range valid {
		if !HTMLIsValid(code) {
			t.Fatal("color code should be valid:", code)
		}
	}

	invalid := []string{"", "#", "ff336", "#ff33666", "gg3366", "#ff 366"}
	for _, code := range invalid {
		if HTMLIsValid(code) {
			t.Fatal("color code should be invalid:", code)
		}
	}

	c, err := NewColorFromHTML("#ff8000")
	if err != nil {
		t.Fatal("parsing a valid color code should not error:", err)
	}
	if !colorNear(c, NewColorRGBA(1, Float(0x80)/255, 0, 1), 0.001) {
		t.Fatal("parsed color is wrong, got", c)
	}

	// Shorthand digits scale by 15 instead of 255.
	c, _ = NewColorFromHTML("f80")
	if !colorNear(c, NewColorRGBA(1, Float(8)/15, 0, 1), 0.001) {
		t.Fatal("shorthand parsed color is wrong, got", c)
	}

	// 8 digits carry alpha.
	c, _ = NewColorFromHTML("ff800080")
	if !floatNear(c.A, Float(0x80)/255, 0.001) {
		t.Fatal("alpha should come from the last pair of digits, got", c.A)
	}

	if _, err := NewColorFromHTML("notacolor"); err == nil {
		t.Fatal("parsing an invalid color code should error")
	}

}

func TestColorHTMLRoundTrip(t *testing.T) {

	c := NewColorRGBA(1, 0.5, 0.25, 0.75)

	back, err := NewColorFromHTML(c.ToHTML())
	if err != nil {
		t.Fatal("a generated color code should parse:", err)
	}
	if !colorNear(back, c, 0.01) {
		t.Fatal("HTML round-trip failed:", c, "became", back)
	}

	if len(c.ToHTMLWithoutAlpha()) != 6 {
		t.Fatal("the alpha-less code should have 6 digits")
	}

}

func TestColorHexRoundTrip(t *testing.T) {

	c := NewColorRGBA(0.2, 0.4, 0.6, 0.8)

	if !colorNear(NewColorFromHex(c.ToRGBA32()), c, 0.01) {
		t.Fatal("32-bit hex round-trip failed")
	}
	if !colorNear(NewColorFromHex64(c.ToRGBA64()), c, 0.001) {
		t.Fatal("64-bit hex round-trip failed")
	}

	// Spot-check the channel order; 0xRRGGBBAA.
	red := NewColorFromHex(0xff0000ff)
	if !colorNear(red, NewColorRGBA(1, 0, 0, 1), 0.001) {
		t.Fatal("hex red is wrong, got", red)
	}

	if NewColor(1, 0, 0).ToARGB32() != 0xffff0000 {
		t.Fatal("ARGB packing is wrong")
	}
	if NewColor(1, 0, 0).ToABGR32() != 0xff0000ff {
		t.Fatal("ABGR packing is wrong")
	}

}

func TestColorHSV(t *testing.T) {

	red := NewColorFromHSV(0, 1, 1)
	if !colorNear(red, NewColor(1, 0, 0), 0.001) {
		t.Fatal("HSV red is wrong, got", red)
	}

	green := NewColorFromHSV(1.0/3.0, 1, 1)
	if !colorNear(green, NewColor(0, 1, 0), 0.001) {
		t.Fatal("HSV green is wrong, got", green)
	}

	// Zero saturation is gray no matter the hue.
	gray := NewColorFromHSV(0.7, 0, 0.5)
	if !colorNear(gray, NewColor(0.5, 0.5, 0.5), 0.001) {
		t.Fatal("desaturated HSV should be gray, got", gray)
	}

	// Getter round-trip.
	c := NewColorFromHSV(0.6, 0.4, 0.8)
	if !floatNear(c.H(), 0.6, 0.001) || !floatNear(c.S(), 0.4, 0.001) || !floatNear(c.V(), 0.8, 0.001) {
		t.Fatal("HSV getters failed:", c.H(), c.S(), c.V())
	}

	// Setters change one channel and keep the others.
	shifted := c.SetH(0.1)
	if !floatNear(shifted.H(), 0.1, 0.001) || !floatNear(shifted.S(), 0.4, 0.001) || !floatNear(shifted.V(), 0.8, 0.001) {
		t.Fatal("SetH should keep the saturation and value:", shifted.H(), shifted.S(), shifted.V())
	}
	brighter := c.SetV(1)
	if !floatNear(brighter.H(), 0.6, 0.001) || !floatNear(brighter.V(), 1, 0.001) {
		t.Fatal("SetV should keep the hue:", brighter.H(), brighter.V())
	}

}

func TestColorBlend(t *testing.T) {

	bg := NewColor(1, 0, 0)
	fg := NewColorRGBA(0, 0, 1, 0.5)

	blended := bg.Blend(fg)
	if !colorNear(blended, NewColorRGBA(0.5, 0, 0.5, 1), 0.001) {
		t.Fatal("blend result is wrong, got", blended)
	}

	// An opaque overlay wins completely.
	if !colorNear(bg.Blend(NewColor(0, 1, 0)), NewColor(0, 1, 0), 0.001) {
		t.Fatal("an opaque overlay should replace the base color")
	}

	// Two fully transparent colors blend to transparent.
	clear := NewColorRGBA(0.3, 0.4, 0.5, 0)
	if bg.Scale(0).Blend(clear) != NewColorRGBA(0, 0, 0, 0) {
		t.Fatal("blending transparent colors should give transparent black")
	}

}

func TestColorLightenDarken(t *testing.T) {

	c := NewColor(0.4, 0.6, 0.8)

	darker := c.Darkened(0.5)
	if !colorNear(darker, NewColor(0.2, 0.3, 0.4), 0.001) {
		t.Fatal("darkening failed, got", darker)
	}

	lighter := c.Lightened(0.5)
	if !colorNear(lighter, NewColor(0.7, 0.8, 0.9), 0.001) {
		t.Fatal("lightening failed, got", lighter)
	}

	inverted := c.Inverted()
	if !colorNear(inverted, NewColor(0.6, 0.4, 0.2), 0.001) {
		t.Fatal("inversion failed, got", inverted)
	}
	if inverted.A != c.A {
		t.Fatal("inversion should leave alpha alone")
	}

}

func TestColorSRGBRoundTrip(t *testing.T) {

	colors := []Color{
		NewColor(0, 0, 0),
		NewColor(1, 1, 1),
		NewColor(0.5, 0.25, 0.75),
		NewColor(0.001, 0.002, 0.003), // below the linear-segment threshold
	}

	for i, c := range colors {
		back := c.LinearToSRGB().SRGBToLinear()
		if !colorNear(back, c, 0.001) {
			t.Fatal("sRGB round-trip failed on color #", i, ":", c, "became", back)
		}
	}

	// White is brighter than mid-gray, which is brighter than black.
	if NewColor(1, 1, 1).Luminance() != 1 {
		t.Fatal("white should have a luminance of 1")
	}
	if NewColor(0, 0, 0).Luminance() != 0 {
		t.Fatal("black should have a luminance of 0")
	}
	if NewColor(0, 1, 0).Luminance() <= NewColor(0, 0, 1).Luminance() {
		t.Fatal("green should contribute more luminance than blue")
	}

}

func TestColorNamed(t *testing.T) {

	fallback := NewColor(0.1, 0.2, 0.3)

	red := NewColorFromName("red", fallback)
	if !colorNear(red, NewColor(1, 0, 0), 0.001) {
		t.Fatal("named red is wrong, got", red)
	}

	// Case, spaces, and underscores don't matter.
	a := NewColorFromName("ALICE BLUE", fallback)
	b := NewColorFromName("alice_blue", fallback)
	if a != b || a == fallback {
		t.Fatal("name normalization failed")
	}

	if NewColorFromName("not a real color", fallback) != fallback {
		t.Fatal("an unknown name should return the fallback")
	}

	// From-string tries HTML first, then names.
	if !colorNear(NewColorFromString("#ff0000", fallback), NewColor(1, 0, 0), 0.001) {
		t.Fatal("string parsing should accept color codes")
	}
	if !colorNear(NewColorFromString("blue", fallback), NewColor(0, 0, 1), 0.001) {
		t.Fatal("string parsing should accept names")
	}

}

func TestColorRGBE9995(t *testing.T) {

	// A color with all mantissas at 256 and the exponent at 15 decodes to 0.5 per channel;
	// 256 * 2^(15-15-9) = 0.5.
	packed := uint32(256) | uint32(256)<<9 | uint32(256)<<18 | uint32(15)<<27
	c := NewColorFromRGBE9995(packed)
	if !colorNear(c, NewColor(0.5, 0.5, 0.5), 0.001) {
		t.Fatal("RGBE9995 decoding failed, got", c)
	}

	if NewColorFromRGBE9995(0) != NewColor(0, 0, 0) {
		t.Fatal("a zero RGBE9995 value should decode to black")
	}

}

func TestColorLerp(t *testing.T) {

	from := NewColorRGBA(0, 0, 0, 0)
	to := NewColorRGBA(1, 0.5, 0, 1)

	mid := from.Lerp(to, 0.5)
	if !colorNear(mid, NewColorRGBA(0.5, 0.25, 0, 0.5), 0.001) {
		t.Fatal("color lerp failed, got", mid)
	}

	clamped := NewColor(2, -1, 0.5).Clamp(NewColorRGBA(0, 0, 0, 0), NewColorRGBA(1, 1, 1, 1))
	if clamped != NewColorRGBA(1, 0, 0.5, 1) {
		t.Fatal("color clamping failed, got", clamped)
	}

}
