package mechanics

import "fmt"

// Domain is one of the two independent motion categories.
type Domain int

const (
	// Rotational covers the angular coordinates phi, theta, psi.
	Rotational Domain = iota
	// Translational covers the linear coordinates x, y, z.
	Translational
)

// Domains returns every domain in selection order, rotational first.
func Domains() []Domain {
	return []Domain{Rotational, Translational}
}

// Valid reports whether d is Rotational or Translational.
func (d Domain) Valid() bool {
	return d == Rotational || d == Translational
}

// String returns "rotational", "translational" or "Domain(n)".
func (d Domain) String() string {
	switch d {
	case Rotational:
		return "rotational"
	case Translational:
		return "translational"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}
