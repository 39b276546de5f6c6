package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/tdnghia/jobportal/internal/apperror"
	"github.com/tdnghia/jobportal/internal/dto"
	"github.com/tdnghia/jobportal/internal/model"
	"github.com/tdnghia/jobportal/internal/repository"
	"gorm.io/gorm"
)

// Submitter identifies the candidate behind a submission. Name and email are
// claim snapshots so results can be listed with the submitter's identity
// without this service owning a user store.
type Submitter struct {
	ID    string
	Name  string
	Email string
}

// AssessmentService is the candidate-facing side of the assessment engine:
// listing eligible tests, serving role-projected test views, the one-shot
// submit path with deterministic scoring, and role-scoped result listings.
type AssessmentService interface {
	ListAvailableTests(userID string) ([]dto.TestSummaryDTO, error)
	GetTestForAuthor(testID uint) (*dto.TestForAuthor, error)
	GetTestForCandidate(testID uint) (*dto.TestForCandidate, error)
	SubmitTest(testID uint, submitter Submitter, answers []int) (*dto.SubmitResultDTO, error)
	GetResults(testID uint, requesterID, requesterRole string) ([]dto.TestResultDTO, error)
}

type assessmentService struct {
	testRepo   repository.TestRepository
	resultRepo repository.TestResultRepository
}

func NewAssessmentService(testRepo repository.TestRepository, resultRepo repository.TestResultRepository) AssessmentService {
	return &assessmentService{testRepo: testRepo, resultRepo: resultRepo}
}

func (s *assessmentService) ListAvailableTests(userID string) ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.FindAvailableForUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("ListAvailableTests: repository error")
		return nil, apperror.Internal("failed to list available tests", err)
	}
	return summaries(tests), nil
}

func (s *assessmentService) GetTestForAuthor(testID uint) (*dto.TestForAuthor, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		return nil, testLookupError(err, testID)
	}
	return authorView(test)
}

// GetTestForCandidate serves the redacted projection. The candidate DTO has
// no CorrectOption field, so the answer key cannot reach a student client.
func (s *assessmentService) GetTestForCandidate(testID uint) (*dto.TestForCandidate, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		return nil, testLookupError(err, testID)
	}
	var resp dto.TestForCandidate
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("GetTestForCandidate: failed to copy test model to DTO")
		return nil, apperror.Internal("error preparing test response", err)
	}
	return &resp, nil
}

func (s *assessmentService) SubmitTest(testID uint, submitter Submitter, answers []int) (*dto.SubmitResultDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		return nil, testLookupError(err, testID)
	}

	// Checked explicitly so a double submission surfaces as a clean domain
	// error; the unique index below catches the concurrent race loser.
	_, err = s.resultRepo.FindByTestAndUser(testID, submitter.ID)
	if err == nil {
		return nil, apperror.Conflict("you have already attempted this test")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Uint("testID", testID).Str("userID", submitter.ID).Msg("SubmitTest: existing-attempt lookup failed")
		return nil, apperror.Internal("failed to submit test", err)
	}

	score := scoreAnswers(test.Questions, answers)
	result := model.TestResult{
		TestID:         testID,
		UserID:         submitter.ID,
		UserName:       submitter.Name,
		UserEmail:      submitter.Email,
		Score:          score,
		TotalQuestions: len(test.Questions),
		TotalMarks:     test.TotalMarks,
		Passed:         score >= test.PassingMarks,
		Answers:        answers,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("you have already attempted this test")
		}
		log.Error().Err(err).Uint("testID", testID).Str("userID", submitter.ID).Msg("SubmitTest: failed to persist result")
		return nil, apperror.Internal("failed to submit test", err)
	}

	return &dto.SubmitResultDTO{Score: score, TotalQuestions: len(test.Questions)}, nil
}

func (s *assessmentService) GetResults(testID uint, requesterID, requesterRole string) ([]dto.TestResultDTO, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return nil, testLookupError(err, testID)
	}

	var userFilter *string
	if requesterRole != model.RoleRecruiter {
		userFilter = &requesterID
	}
	results, err := s.resultRepo.FindAllByTest(testID, userFilter)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("GetResults: repository error")
		return nil, apperror.Internal("failed to list results", err)
	}

	dtos := make([]dto.TestResultDTO, 0, len(results))
	for _, res := range results {
		var item dto.TestResultDTO
		if err := copier.Copy(&item, &res); err != nil {
			log.Error().Err(err).Uint("resultID", res.ID).Msg("GetResults: failed to copy result to DTO")
			continue
		}
		dtos = append(dtos, item)
	}
	return dtos, nil
}

// scoreAnswers counts positionally matching answers. A shorter answer slice
// leaves the tail unanswered; extra trailing answers are ignored. Each
// correct answer scores exactly one point; per-question marks do not weight
// the score.
func scoreAnswers(questions []model.Question, answers []int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.CorrectOption {
			score++
		}
	}
	return score
}
