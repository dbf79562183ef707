package flow

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/drainsim/internal/fluid"
)

func TestNewModel_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		outlet  float64
		cd      float64
		wantErr error
	}{
		{"zero outlet", 0, 1.0, ErrOutlet},
		{"negative outlet", -0.01, 1.0, ErrOutlet},
		{"zero cd", 0.01, 0, ErrCoefficient},
		{"negative cd", 0.01, -0.5, ErrCoefficient},
		{"cd above one", 0.01, 1.2, ErrCoefficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewModel(tt.outlet, tt.cd, fluid.Water())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestOutletArea(t *testing.T) {
	m, err := NewModel(0.01, 1.0, fluid.Water())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := math.Pi * 0.005 * 0.005 // ~7.854e-5
	if math.Abs(m.OutletArea()-want) > 1e-18 {
		t.Errorf("outlet area: got %g, want %g", m.OutletArea(), want)
	}
	if math.Abs(m.OutletArea()-7.854e-5) > 1e-8 {
		t.Errorf("outlet area should be ~7.854e-5 m², got %g", m.OutletArea())
	}
}

func TestRate_Ideal(t *testing.T) {
	// Cd = 1 is pure Torricelli, independent of the fluid.
	heights := []float64{0.001, 0.05, 0.2010, 1.0, 5.0}

	for _, name := range []string{"water", "honey"} {
		f, err := fluid.Lookup(name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m, err := NewModel(0.01, 1.0, f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, h := range heights {
			want := m.OutletArea() * math.Sqrt(2*Gravity*h)
			if got := m.Rate(h); got != want {
				t.Errorf("%s Rate(%g): got %g, want %g", name, h, got, want)
			}
		}
	}
}

func TestRate_ZeroAtAndBelowOutlet(t *testing.T) {
	m, _ := NewModel(0.01, 0.8, fluid.Water())

	for _, h := range []float64{0, -0.1, -1e-9} {
		if got := m.Rate(h); got != 0 {
			t.Errorf("Rate(%g): got %g, want 0", h, got)
		}
	}
}

func TestRate_Monotonic(t *testing.T) {
	// Viscous cases stay laminar across the whole height range; water
	// at Cd < 1 would cross the Re = 4000 boundary, where the factor
	// table steps down (see TestViscosityFactor).
	cases := []struct {
		name  string
		cd    float64
		fluid string
	}{
		{"ideal water", 1.0, "water"},
		{"realistic honey", 0.6, "honey"},
		{"realistic motor oil", 0.85, "motor_oil"},
		{"realistic treacle", 0.7, "treacle"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := fluid.Lookup(tc.fluid)
			m, err := NewModel(0.01, tc.cd, f)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			prev := 0.0
			for h := 0.0; h <= 2.0; h += 0.001 {
				q := m.Rate(h)
				if q < prev {
					t.Fatalf("rate decreased at h=%g: %g < %g", h, q, prev)
				}
				prev = q
			}
		})
	}
}

func TestViscosityFactor(t *testing.T) {
	tests := []struct {
		name string
		re   float64
		want float64
	}{
		{"deep laminar", 100, 0.7},
		{"laminar just below boundary", 2299.99, 0.7},
		{"transitional at boundary", 2300, 0.85},
		{"transitional", 3000, 0.85},
		{"transitional just below turbulent", 3999.99, 0.85},
		// 1 - 1000/4000: the known discontinuity against the 0.85
		// transitional factor.
		{"turbulent at boundary", 4000, 0.75},
		{"turbulent", 8000, 0.875},
		{"deep turbulent", 1e6, 0.999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := viscosityFactor(tt.re)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("viscosityFactor(%g): got %g, want %g", tt.re, got, tt.want)
			}
		})
	}
}

func TestRate_CorrectionOnlyBelowIdeal(t *testing.T) {
	ideal, _ := NewModel(0.01, 1.0, fluid.Water())
	corrected, _ := NewModel(0.01, 0.9, fluid.Water())

	for h := 0.01; h <= 1.0; h += 0.01 {
		if corrected.Rate(h) >= ideal.Rate(h) {
			t.Fatalf("corrected rate should be below ideal at h=%g: %g >= %g",
				h, corrected.Rate(h), ideal.Rate(h))
		}
	}
}

func TestRate_ViscousFluidSlower(t *testing.T) {
	// Same Cd < 1; the more viscous fluid lands in a lower-factor
	// Reynolds regime and must not outflow faster.
	water, _ := fluid.Lookup("water")
	oil, _ := fluid.Lookup("motor_oil")

	mw, _ := NewModel(0.01, 0.8, water)
	mo, _ := NewModel(0.01, 0.8, oil)

	for h := 0.01; h <= 1.0; h += 0.01 {
		if mo.Rate(h) > mw.Rate(h) {
			t.Fatalf("oil outflow exceeds water at h=%g: %g > %g", h, mo.Rate(h), mw.Rate(h))
		}
	}
}
