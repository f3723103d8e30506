package models

type TestQuestion struct {
	WordID        int64   `json:"word_id"`
	Word          *string `json:"word"`
	Question      *string `json:"question"`
	CorrectAnswer *string `json:"correct_answer"`
}

type SubmitTestRequest struct {
	UserID         int64          `json:"user_id"`
	Questions      []TestQuestion `json:"questions"`
	Answers        []string       `json:"answers"`
	Score          float64        `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	CorrectAnswers int            `json:"correct_answers"`
	TestType       string         `json:"test_type"`
}

type TestResult struct {
	UserID         int64    `json:"user_id"`
	Score          float64  `json:"score"`
	TotalQuestions int      `json:"total_questions"`
	CorrectAnswers int      `json:"correct_answers"`
	TestDate       DateTime `json:"test_date"`
	TestType       string   `json:"test_type"`
}
