package hull

// IntersectionState is the result of a volume query against a ConvexHull
type IntersectionState uint8

const (
	// Inside means the volume lies entirely within every half-space
	Inside IntersectionState = iota
	// Outside means at least one plane proves the volume disjoint from the hull
	Outside
	// Intersection means the volume straddles at least one plane and no plane proved it Outside
	Intersection
)

func (s IntersectionState) String() string {
	switch s {
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	case Intersection:
		return "Intersection"
	default:
		return "Unknown"
	}
}
