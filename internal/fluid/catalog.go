package fluid

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknown indicates a fluid name not present in the catalog.
var ErrUnknown = errors.New("fluid: unknown fluid")

// Properties describes an incompressible working fluid. Values are
// plain value types with no identity beyond their fields; copies are
// safe to pass around and never mutate catalog state.
type Properties struct {
	Name               string
	Density            float64 // kg/m^3
	DynamicViscosity   float64 // Pa.s
	KinematicViscosity float64 // m^2/s
}

func newProperties(name string, density, dynamicViscosity float64) Properties {
	return Properties{
		Name:               name,
		Density:            density,
		DynamicViscosity:   dynamicViscosity,
		KinematicViscosity: dynamicViscosity / density,
	}
}

// catalog is process-wide immutable reference data: built once here,
// read-only afterwards. Viscosities are at room temperature.
var catalog = map[string]Properties{
	"water":     newProperties("water", 1000, 1.0e-3),
	"petrol":    newProperties("petrol", 737, 4.4e-4),
	"milk":      newProperties("milk", 1030, 3.0e-3),
	"motor_oil": newProperties("motor_oil", 870, 0.25),
	"olive_oil": newProperties("olive_oil", 915, 0.081),
	"treacle":   newProperties("treacle", 1400, 20.0),
	"honey":     newProperties("honey", 1420, 10.0),
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Properties, error) {
	p, ok := catalog[name]
	if !ok {
		return Properties{}, fmt.Errorf("%w: %s (known: %v)", ErrUnknown, name, Names())
	}
	return p, nil
}

// Names returns the catalog fluid names, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Water returns the default working fluid.
func Water() Properties {
	return catalog["water"]
}
