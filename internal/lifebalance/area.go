package lifebalance

import "fmt"

// Area is one of the four fixed life areas used to bucket scores and
// assessment questions.
type Area string

const (
	AreaHealth Area = "health"
	AreaWork   Area = "work"
	AreaPlay   Area = "play"
	AreaLove   Area = "love"
)

// areaOrder is the canonical progression of the assessment.
var areaOrder = [4]Area{AreaHealth, AreaWork, AreaPlay, AreaLove}

// Areas returns the four areas in assessment order.
func Areas() []Area {
	out := make([]Area, len(areaOrder))
	copy(out, areaOrder[:])
	return out
}

func (a Area) Valid() bool {
	switch a {
	case AreaHealth, AreaWork, AreaPlay, AreaLove:
		return true
	}
	return false
}

func (a Area) Label() string {
	switch a {
	case AreaHealth:
		return "Health"
	case AreaWork:
		return "Work"
	case AreaPlay:
		return "Play"
	case AreaLove:
		return "Love"
	}
	return string(a)
}

func (a Area) Description() string {
	switch a {
	case AreaHealth:
		return "Physical and mental wellbeing, fitness, nutrition, and sleep"
	case AreaWork:
		return "Career growth, professional development, and work-life balance"
	case AreaPlay:
		return "Hobbies, recreation, fun activities, and personal interests"
	case AreaLove:
		return "Relationships, family, friendships, and emotional connections"
	}
	return ""
}

// ParseArea rejects anything outside the closed set so an unrecognized
// string never reaches score storage or persistence.
func ParseArea(s string) (Area, error) {
	a := Area(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: unknown life area %q", ErrUnknownArea, s)
	}
	return a, nil
}
