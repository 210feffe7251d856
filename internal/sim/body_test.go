package sim

import (
	"math"
	"testing"

	"github.com/iburimskiy/solar-visualization/internal/config"
)

func TestBuildSystem(t *testing.T) {
	bodies := BuildSystem(config.Planets)
	if len(bodies) != len(config.Planets) {
		t.Fatalf("Expected %d bodies, got %d", len(config.Planets), len(bodies))
	}

	for i, b := range bodies {
		wantRadius := config.BaseOrbitRadius + float64(i)*config.OrbitSpacing
		if b.OrbitRadius != wantRadius {
			t.Errorf("Body %d: expected orbit radius %v, got %v", i, wantRadius, b.OrbitRadius)
		}

		wantSpeed := config.BaseOrbitSpeed / math.Sqrt(wantRadius/config.BaseOrbitRadius)
		if math.Abs(b.AngularSpeed-wantSpeed) > 1e-12 {
			t.Errorf("Body %d: expected angular speed %v, got %v", i, wantSpeed, b.AngularSpeed)
		}

		if b.Angle < 0 || b.Angle >= 2*math.Pi {
			t.Errorf("Body %d: initial angle %v outside [0, 2pi)", i, b.Angle)
		}

		if i > 0 && b.AngularSpeed >= bodies[i-1].AngularSpeed {
			t.Errorf("Body %d: expected outer orbit slower than inner (%v >= %v)",
				i, b.AngularSpeed, bodies[i-1].AngularSpeed)
		}
	}

	if bodies[0].Name != "Mercury" || bodies[len(bodies)-1].Name != "Neptune" {
		t.Errorf("Expected table order preserved, got %s .. %s",
			bodies[0].Name, bodies[len(bodies)-1].Name)
	}
}
