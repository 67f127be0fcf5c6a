package graphics

import "testing"

func TestBakeMonoGlyphs(t *testing.T) {
	a, err := BakeMonoGlyphs(16)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(a.Characters), int(lastGlyph-firstGlyph)+1; got != want {
		t.Errorf("baked %d glyphs, want %d", got, want)
	}

	space, ok := a.Characters[' ']
	if !ok || space.Width != 0 || space.Advance <= 0 {
		t.Errorf("space glyph = %+v", space)
	}

	bounds := a.Image.Rect
	for r, fc := range a.Characters {
		if fc.AtlasX+fc.Width > float32(bounds.Dx()) || fc.AtlasY+fc.Height > float32(bounds.Dy()) {
			t.Errorf("glyph %q outside atlas: %+v", r, fc)
		}
	}
}

func TestBakeGlyphsRejectsGarbage(t *testing.T) {
	if _, err := BakeGlyphs([]byte("not a font"), 16); err == nil {
		t.Error("expected parse error")
	}
}

func newLayoutRenderer(t *testing.T) *FontRenderer {
	t.Helper()
	a, err := BakeMonoGlyphs(16)
	if err != nil {
		t.Fatal(err)
	}
	info := &FontAtlasInfo{
		AtlasW:     a.Image.Rect.Dx(),
		AtlasH:     a.Image.Rect.Dy(),
		Characters: a.Characters,
	}
	return &FontRenderer{atlas: info}
}

func TestMeasureMonospace(t *testing.T) {
	fr := newLayoutRenderer(t)

	w1, _ := fr.Measure("i", 1)
	w4, h := fr.Measure("iWmX", 1)
	if w4 != 4*w1 {
		t.Errorf("monospace width: %v for 4 runes, %v for one", w4, w1)
	}
	if h <= 0 {
		t.Errorf("height = %v", h)
	}

	w2, _ := fr.Measure("iWmX", 2)
	if w2 != 2*w4 {
		t.Errorf("scale 2 width = %v, want %v", w2, 2*w4)
	}
}

func TestLayoutLinesSkipsBlanks(t *testing.T) {
	fr := newLayoutRenderer(t)

	verts := fr.LayoutLines([]string{"a b", "", "c"}, 0, 20, 18, 1)
	// three visible glyphs, six vertices each, four floats per vertex
	if got, want := len(verts), 3*6*4; got != want {
		t.Errorf("got %d floats, want %d", got, want)
	}
}
