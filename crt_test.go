package main

import "testing"

func TestCRTUpdatePixelsIgnoresBlanking(t *testing.T) {
	c := NewCRT()
	c.UpdatePixels(0, 0, 0xFF, 0x07) // line 0 is in the top blanking region
	for y := 0; y < CRT_LINES; y++ {
		for x := 0; x < CRT_TOTAL_WIDTH; x++ {
			if c.pixels[y][x] != 0 {
				t.Fatalf("blanking-region write leaked into pixel (%d,%d): 0x%08X", x, y, c.pixels[y][x])
			}
		}
	}
}

func TestCRTUpdatePixelsPaintsInkAndPaper(t *testing.T) {
	c := NewCRT()
	// attrByte: paper=black(0), ink=white(7), bright off, flash off.
	c.UpdatePixels(CRT_TOP_BLANKING, 0, 0x80, 0x07)

	y := 0 // first visible line, even field
	// bit 7 (MSB, leftmost pixel) is set -> ink (white); rest paper (black).
	inkPixel := c.pixels[y][0]
	paperPixel := c.pixels[y][1]
	if byte(inkPixel) == 0 {
		t.Fatalf("ink pixel alpha channel should be opaque, got 0x%08X", inkPixel)
	}
	if inkPixel>>24 == 0 {
		t.Fatalf("ink pixel should be lit (white), got 0x%08X", inkPixel)
	}
	if paperPixel>>24 != 0 {
		t.Fatalf("paper pixel should be black, got 0x%08X", paperPixel)
	}
}

func TestCRTFlashInversionSwapsInkAndPaper(t *testing.T) {
	c := NewCRT()
	c.ToggleFlash()
	c.UpdatePixels(CRT_TOP_BLANKING, 0, 0x80, 0x87) // flash bit set, paper black, ink white

	y := 0
	// With flash active, ink/paper should have swapped: bit set now shows paper (black).
	pixel := c.pixels[y][0]
	if pixel>>24 != 0 {
		t.Fatalf("flashed pixel should render as the swapped (black) colour, got 0x%08X", pixel)
	}
}

func TestCRTToggleFieldAlternatesTargetLine(t *testing.T) {
	c := NewCRT()
	c.UpdatePixels(CRT_TOP_BLANKING, 0, 0x80, 0x07)
	evenFieldHit := c.pixels[0][0] != 0

	c2 := NewCRT()
	c2.ToggleField()
	c2.UpdatePixels(CRT_TOP_BLANKING, 0, 0x80, 0x07)
	oddFieldHit := c2.pixels[1][0] != 0

	if !evenFieldHit || !oddFieldHit {
		t.Fatalf("expected even field to paint line 0 and odd field to paint line 1")
	}
}

func TestCRTRGBALength(t *testing.T) {
	c := NewCRT()
	out := c.RGBA()
	want := CRT_LINES * CRT_TOTAL_WIDTH * 4
	if len(out) != want {
		t.Fatalf("RGBA length = %d, want %d", len(out), want)
	}
}
