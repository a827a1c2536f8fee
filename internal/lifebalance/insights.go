package lifebalance

import "time"

// Insights is the derived summary of a completed assessment: curated
// takeaways and action items per area. The record is replaced whole on
// regeneration, never merged.
type Insights struct {
	Takeaways   map[Area][]string `json:"takeaways"`
	ActionItems map[Area][]string `json:"actionItems"`
	GeneratedAt time.Time         `json:"generatedAt"`
}

// Curated per-area summaries. Selection is keyed by area only; the
// response text itself is not analyzed. A future iteration would replace
// this table with a language-model summarization of the actual answers.
var areaTakeaways = map[Area][]string{
	AreaHealth: {
		"Your daily routines are the foundation your energy is built on.",
		"Small, consistent habits beat occasional big efforts.",
		"Stress management deserves the same attention as diet and exercise.",
	},
	AreaWork: {
		"Fulfillment comes from aligning daily tasks with longer-term goals.",
		"Career growth is steadier when you name the skills you want next.",
		"Boundaries between work and the rest of life protect both.",
	},
	AreaPlay: {
		"Unstructured fun is productive: it restores attention and mood.",
		"Joyful activities you already love are the easiest ones to expand.",
		"Novelty matters; new experiences keep recreation from going stale.",
	},
	AreaLove: {
		"Strong relationships are maintained, not just found.",
		"Knowing the qualities you value helps you invest in the right bonds.",
		"Regular, deliberate contact is what keeps connections alive.",
	},
}

var areaActionItems = map[Area][]string{
	AreaHealth: {
		"Schedule three short movement sessions for the coming week.",
		"Set a consistent wind-down time tonight and keep it for five days.",
		"Write down one stressor and one concrete way to shrink it.",
	},
	AreaWork: {
		"Pick one career goal and break it into a first visible step.",
		"Block one hour this week for the skill you want to develop.",
		"Choose a hard stop time for one workday and honor it.",
	},
	AreaPlay: {
		"Put one purely-for-fun activity on the calendar this week.",
		"Try one new experience from your own list within the month.",
		"Reclaim 30 minutes of free time from a low-value routine.",
	},
	AreaLove: {
		"Reach out to one person you have been meaning to contact.",
		"Plan one shared activity with someone important to you.",
		"Tell one person specifically what you appreciate about them.",
	},
}

// DeriveInsights groups the response set by area and emits the curated
// takeaways and action items for every area with at least one response.
// Areas with no responses get empty lists. The record carries the
// derivation time.
func DeriveInsights(responses map[string]string, now time.Time) Insights {
	answered := make(map[Area]int, len(areaOrder))
	for id := range responses {
		q, ok := QuestionByID(id)
		if !ok {
			continue
		}
		answered[q.Area]++
	}

	out := Insights{
		Takeaways:   make(map[Area][]string, len(areaOrder)),
		ActionItems: make(map[Area][]string, len(areaOrder)),
		GeneratedAt: now,
	}
	for _, a := range areaOrder {
		if answered[a] == 0 {
			out.Takeaways[a] = []string{}
			out.ActionItems[a] = []string{}
			continue
		}
		out.Takeaways[a] = append([]string(nil), areaTakeaways[a]...)
		out.ActionItems[a] = append([]string(nil), areaActionItems[a]...)
	}
	return out
}
