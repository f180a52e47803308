package render

import "testing"

func TestGlowFallsOffFromCenter(t *testing.T) {
	const radius = 8
	buf := make([]byte, 4*2*radius*2*radius)
	glowRGBA(buf, radius, 80, 255, 100)

	alphaAt := func(x, y int) byte {
		return buf[4*(y*2*radius+x)+3]
	}

	center := alphaAt(radius, radius)
	mid := alphaAt(radius+radius/2, radius)
	corner := alphaAt(0, 0)
	if center == 0 {
		t.Fatal("glow center is transparent")
	}
	if mid >= center {
		t.Fatalf("glow does not fall off: mid %d >= center %d", mid, center)
	}
	if corner != 0 {
		t.Fatalf("glow corner alpha %d, want 0 outside the rim", corner)
	}
}

func TestGlowIsPremultiplied(t *testing.T) {
	const radius = 4
	buf := make([]byte, 4*2*radius*2*radius)
	glowRGBA(buf, radius, 80, 255, 100)
	for i := 0; i < len(buf); i += 4 {
		a := buf[i+3]
		for c := 0; c < 3; c++ {
			if buf[i+c] > a {
				t.Fatalf("pixel %d channel %d = %d exceeds alpha %d", i/4, c, buf[i+c], a)
			}
		}
	}
}
