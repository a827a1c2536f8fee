package lifebalance

// Question is one immutable entry of the assessment question bank.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Area Area   `json:"area"`
}

// questionBank is the fixed reference set: 16 questions, 4 per area, in
// assessment order. Defined once, never mutated.
var questionBank = []Question{
	{ID: "health-1", Text: "How would you describe your current exercise routine?", Area: AreaHealth},
	{ID: "health-2", Text: "What are your sleeping habits like?", Area: AreaHealth},
	{ID: "health-3", Text: "How would you describe your eating habits and nutrition?", Area: AreaHealth},
	{ID: "health-4", Text: "How do you currently manage stress in your life?", Area: AreaHealth},

	{ID: "work-1", Text: "What aspects of your current work do you find most fulfilling?", Area: AreaWork},
	{ID: "work-2", Text: "What are your main career goals for the next 1-2 years?", Area: AreaWork},
	{ID: "work-3", Text: "How would you describe your work-life balance?", Area: AreaWork},
	{ID: "work-4", Text: "What skills would you like to develop in your professional life?", Area: AreaWork},

	{ID: "play-1", Text: "What hobbies or activities bring you the most joy?", Area: AreaPlay},
	{ID: "play-2", Text: "How often do you make time for activities purely for fun?", Area: AreaPlay},
	{ID: "play-3", Text: "What new experiences would you like to try?", Area: AreaPlay},
	{ID: "play-4", Text: "How do you typically spend your free time?", Area: AreaPlay},

	{ID: "love-1", Text: "How would you describe your most important relationships?", Area: AreaLove},
	{ID: "love-2", Text: "What qualities do you value most in relationships?", Area: AreaLove},
	{ID: "love-3", Text: "How do you maintain connections with friends and family?", Area: AreaLove},
	{ID: "love-4", Text: "What would you like to improve in your relationships?", Area: AreaLove},
}

// TotalQuestions is the size of the question bank.
const TotalQuestions = 16

// Questions returns a copy of the full bank in order.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}

// QuestionsForArea returns the area's questions in bank order.
func QuestionsForArea(area Area) []Question {
	var out []Question
	for _, q := range questionBank {
		if q.Area == area {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID looks up a question by its id.
func QuestionByID(id string) (Question, bool) {
	for _, q := range questionBank {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
