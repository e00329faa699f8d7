package player

// Canonical defaults for missing ratings. Every component resolves through
// these helpers so that the same player never reads differently in two places.
const (
	DefaultOverall   = 70
	DefaultAttribute = 70
	DefaultAge       = 25
)

func ResolveOverall(p Player) int {
	if p.Overall == nil {
		return DefaultOverall
	}
	return *p.Overall
}

// ResolvePotential falls back to the resolved overall.
func ResolvePotential(p Player) int {
	if p.Potential == nil {
		return ResolveOverall(p)
	}
	return *p.Potential
}

func ResolveAge(p Player) int {
	if p.Age == nil {
		return DefaultAge
	}
	return *p.Age
}

func ResolveAttribute(v *int) int {
	if v == nil {
		return DefaultAttribute
	}
	return *v
}

// CoreAttributes lists the six headline ratings with fallbacks applied.
func CoreAttributes(p Player) [6]int {
	return [6]int{
		ResolveAttribute(p.Attributes.Pace),
		ResolveAttribute(p.Attributes.Shooting),
		ResolveAttribute(p.Attributes.Passing),
		ResolveAttribute(p.Attributes.Dribbling),
		ResolveAttribute(p.Attributes.Defending),
		ResolveAttribute(p.Attributes.Physic),
	}
}
