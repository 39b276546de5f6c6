package dto

import "time"

// QuestionForAuthor is the authoring-role projection of a question and the
// only projection that carries CorrectOption.
type QuestionForAuthor struct {
	ID            uint     `json:"id"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	Marks         int      `json:"marks"`
	Position      int      `json:"position"`
}

// QuestionForCandidate is the student-facing projection. It has no
// CorrectOption field at all, so the answer key cannot leak through any
// serialization path.
type QuestionForCandidate struct {
	ID       uint     `json:"id"`
	Prompt   string   `json:"question"`
	Options  []string `json:"options"`
	Marks    int      `json:"marks"`
	Position int      `json:"position"`
}

// TestForAuthor is the full test view returned to its authoring recruiter.
type TestForAuthor struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Duration     int                 `json:"duration"`
	TotalMarks   int                 `json:"total_marks"`
	PassingMarks int                 `json:"passing_marks"`
	JobID        string              `json:"job_id"`
	CreatedBy    string              `json:"created_by"`
	IsActive     bool                `json:"is_active"`
	Questions    []QuestionForAuthor `json:"questions"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TestForCandidate is the redacted test view served to students.
type TestForCandidate struct {
	ID           uint                   `json:"id"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Duration     int                    `json:"duration"`
	TotalMarks   int                    `json:"total_marks"`
	PassingMarks int                    `json:"passing_marks"`
	JobID        string                 `json:"job_id"`
	Questions    []QuestionForCandidate `json:"questions"`
	CreatedAt    time.Time              `json:"created_at"`
}

// TestSummaryDTO lists a test without its questions (available-tests view).
type TestSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Duration      int       `json:"duration"`
	TotalMarks    int       `json:"total_marks"`
	JobID         string    `json:"job_id"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitResultDTO is the submit response. Passed is intentionally absent.
type SubmitResultDTO struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
}

// TestResultDTO is a scored attempt as listed to recruiters and candidates.
// The submitted answers are never included.
type TestResultDTO struct {
	ID             uint      `json:"id"`
	TestID         uint      `json:"test_id"`
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	UserEmail      string    `json:"user_email"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	TotalMarks     int       `json:"total_marks"`
	Passed         bool      `json:"passed"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
