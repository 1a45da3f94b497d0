package model

const (
	// QuestionCount is the survey length and the sole termination threshold
	QuestionCount = 4
	// AnswerCount is the number of options per question
	AnswerCount = 4
)

// Question is one survey question with its positional answer labels
type Question struct {
	Number  int      `json:"number"` // 1-based
	Text    string   `json:"text"`
	Answers []string `json:"answers"`
}

// Questions holds the survey question texts
var Questions = []string{
	"How do you feel today?",
	"Given your mood today, which of the following places would you prefer to be right now?",
	"Which of the following makes you anxious?",
	"Which of the following do you need most in your life right now?",
}

// AnswerLabels are the fixed label sets, positionally aligned with the
// aggregate counts returned by the server
var AnswerLabels = [][]string{
	{"Bored", "Excited", "Happy", "Sad"},
	{"Abandoned Farm", "Woods", "Busy city", "Sea"},
	{"Friends", "Family", "Strangers", "Authorities"},
	{"Friends", "Money", "Career Advancement", "Vacation"},
}

// QuestionAt returns the question for a zero-based index
func QuestionAt(index int) (*Question, bool) {
	if index < 0 || index >= len(Questions) {
		return nil, false
	}

	answers := make([]string, len(AnswerLabels[index]))
	copy(answers, AnswerLabels[index])

	return &Question{
		Number:  index + 1,
		Text:    Questions[index],
		Answers: answers,
	}, true
}
