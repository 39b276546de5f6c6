package dto

// QuestionCreateDTO is one multiple-choice item inside a test creation request.
type QuestionCreateDTO struct {
	Prompt        string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectOption *int     `json:"correct_option" binding:"required,gte=0"`
	Marks         int      `json:"marks" binding:"omitempty,min=1"`
}

// TestCreateDTO is the recruiter request to create a test with all its questions.
type TestCreateDTO struct {
	Title        string              `json:"title" binding:"required"`
	Description  string              `json:"description" binding:"required"`
	Duration     int                 `json:"duration" binding:"required,min=1"`
	TotalMarks   int                 `json:"total_marks" binding:"required,min=1"`
	PassingMarks int                 `json:"passing_marks" binding:"required,min=1"`
	JobID        string              `json:"job_id" binding:"required"`
	Questions    []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// TestUpdateDTO is a partial update of test metadata. Questions are not
// updatable through this path: positions are load-bearing for historical
// results, so the question list is fixed after creation.
type TestUpdateDTO struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Duration     *int    `json:"duration" binding:"omitempty,min=1"`
	TotalMarks   *int    `json:"total_marks" binding:"omitempty,min=1"`
	PassingMarks *int    `json:"passing_marks" binding:"omitempty,min=1"`
	JobID        *string `json:"job_id"`
	IsActive     *bool   `json:"is_active"`
}

// SubmitTestDTO carries a candidate's answers, positionally aligned to the
// test's questions. A shorter slice leaves the tail unanswered.
type SubmitTestDTO struct {
	Answers []int `json:"answers" binding:"required"`
}
