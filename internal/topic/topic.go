package topic

import "fmt"

// Topic identifies one examination subject area. The set is closed:
// permutation and cursor maps are keyed by Topic and must cover every value.
type Topic string

const (
	Statics        Topic = "statics"
	Circuits       Topic = "circuits"
	Thermodynamics Topic = "thermodynamics"
	Fluids         Topic = "fluids"
	Materials      Topic = "materials"
	Ethics         Topic = "ethics"
)

// All returns every topic in display order.
func All() []Topic {
	return []Topic{
		Statics,
		Circuits,
		Thermodynamics,
		Fluids,
		Materials,
		Ethics,
	}
}

// DisplayName returns a human-readable name for a topic.
func DisplayName(t Topic) string {
	switch t {
	case Statics:
		return "Statics"
	case Circuits:
		return "Electric Circuits"
	case Thermodynamics:
		return "Thermodynamics"
	case Fluids:
		return "Fluid Mechanics"
	case Materials:
		return "Materials Science"
	case Ethics:
		return "Ethics & Professional Practice"
	default:
		return string(t)
	}
}

// Parse converts a stored or user-supplied string to a Topic.
func Parse(s string) (Topic, error) {
	for _, t := range All() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown topic: %q", s)
}
