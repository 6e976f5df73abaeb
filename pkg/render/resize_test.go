package render

import (
	"math"
	"testing"
)

func TestShouldResize(t *testing.T) {
	tests := []struct {
		name      string
		forced    bool
		container Dimensions
		surface   Dimensions
		want      bool
	}{
		{"forced", true, Dimensions{640, 360}, Dimensions{640, 360}, true},
		{"identical", false, Dimensions{640, 360}, Dimensions{640, 360}, false},
		{"both within tolerance", false, Dimensions{645, 355}, Dimensions{640, 360}, false},
		{"width drifted", false, Dimensions{700, 360}, Dimensions{640, 360}, true},
		{"height drifted", false, Dimensions{640, 400}, Dimensions{640, 360}, true},
		{"just over tolerance", false, Dimensions{646, 360}, Dimensions{640, 360}, true},
		{"unsized surface", false, Dimensions{640, 360}, Dimensions{0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldResize(tt.forced, tt.container, tt.surface, DefaultTolerance)
			if got != tt.want {
				t.Errorf("ShouldResize(%v, %+v, %+v) = %v, want %v",
					tt.forced, tt.container, tt.surface, got, tt.want)
			}
		})
	}
}

func TestComputeSize(t *testing.T) {
	tests := []struct {
		name                   string
		videoW, videoH         int
		containerW, containerH int
		wantW, wantH           int
	}{
		{"exact fit", 1280, 720, 640, 360, 640, 360},
		{"4:3 in 16:9 fits height", 640, 480, 640, 360, 480, 360},
		{"16:9 in 4:3 fits width", 1280, 720, 640, 480, 640, 360},
		{"portrait video", 360, 640, 640, 360, 202, 360},
		{"fractional width dropped", 100, 33, 200, 200, 200, 66},
		{"zero video height", 640, 0, 640, 360, 0, 0},
		{"zero container", 640, 480, 0, 360, 0, 0},
		{"negative video", -640, 480, 640, 360, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ComputeSize(tt.videoW, tt.videoH, tt.containerW, tt.containerH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ComputeSize(%d, %d, %d, %d) = %dx%d, want %dx%d",
					tt.videoW, tt.videoH, tt.containerW, tt.containerH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestComputeSize_PreservesAspectAndFits(t *testing.T) {
	videos := []Dimensions{{1920, 1080}, {640, 480}, {720, 576}, {1080, 1920}, {352, 288}}
	containers := []Dimensions{{640, 360}, {800, 600}, {300, 1000}, {1000, 300}, {517, 293}}

	for _, v := range videos {
		for _, c := range containers {
			w, h := ComputeSize(v.Width, v.Height, c.Width, c.Height)
			if w <= 0 || h <= 0 {
				t.Fatalf("video %+v in %+v: got %dx%d", v, c, w, h)
			}
			if w > c.Width || h > c.Height {
				t.Errorf("video %+v in %+v: %dx%d exceeds container", v, c, w, h)
			}
			if w != c.Width && h != c.Height {
				t.Errorf("video %+v in %+v: %dx%d touches neither axis", v, c, w, h)
			}

			// Dropping the fractional pixel moves the ratio by less than one
			// pixel on the computed axis.
			want := float64(v.Width) / float64(v.Height)
			var diff float64
			if h == c.Height {
				diff = math.Abs(float64(w) - float64(h)*want)
			} else {
				diff = math.Abs(float64(h) - float64(w)/want)
			}
			if diff >= 1 {
				t.Errorf("video %+v in %+v: %dx%d off aspect by %.3f px", v, c, w, h, diff)
			}
		}
	}
}
