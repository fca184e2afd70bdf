package render

import "testing"

func TestCameraShowsWholeSmallMap(t *testing.T) {
	c := NewCamera(100, 60, 80, 50)
	c.Center(70, 40)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Fatalf("offset = (%d,%d), want (0,0) when the map fits", c.OffsetX, c.OffsetY)
	}
}

func TestCameraClampsToMapEdges(t *testing.T) {
	c := NewCamera(40, 20, 80, 50)
	cases := []struct {
		cx, cy, ox, oy int
	}{
		{0, 0, 0, 0},
		{79, 49, 40, 30},
		{40, 25, 20, 15},
	}
	for _, tc := range cases {
		c.Center(tc.cx, tc.cy)
		if c.OffsetX != tc.ox || c.OffsetY != tc.oy {
			t.Errorf("Center(%d,%d) offset = (%d,%d), want (%d,%d)",
				tc.cx, tc.cy, c.OffsetX, c.OffsetY, tc.ox, tc.oy)
		}
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(40, 20, 80, 50)
	c.Center(50, 30)
	sx, sy, visible := c.WorldToScreen(50, 30)
	if !visible {
		t.Fatal("centre should be visible")
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	if wx != 50 || wy != 30 {
		t.Fatalf("round trip = (%d,%d), want (50,30)", wx, wy)
	}
	if _, _, visible := c.WorldToScreen(0, 0); visible {
		t.Fatal("(0,0) should be scrolled out of view")
	}
}

func TestCameraResizeKeepsOffsetValid(t *testing.T) {
	c := NewCamera(40, 20, 80, 50)
	c.Center(79, 49)
	c.Resize(80, 50)
	if c.OffsetX != 0 || c.OffsetY != 0 {
		t.Fatalf("offset = (%d,%d) after growing to fit", c.OffsetX, c.OffsetY)
	}
}
