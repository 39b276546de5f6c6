package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/tdnghia/jobportal/internal/apperror"
	"github.com/tdnghia/jobportal/internal/dto"
	"github.com/tdnghia/jobportal/internal/model"
	"github.com/tdnghia/jobportal/internal/repository"
	"gorm.io/gorm"
)

// RecruiterTestService covers the authoring side of the assessment engine:
// creating tests and managing them under ownership checks.
type RecruiterTestService interface {
	CreateTest(createdBy string, req dto.TestCreateDTO) (*dto.TestForAuthor, error)
	ListOwnTests(createdBy string) ([]dto.TestSummaryDTO, error)
	UpdateTest(testID uint, requesterID string, req dto.TestUpdateDTO) (*dto.TestForAuthor, error)
	DeleteTest(testID uint, requesterID string) error
}

type recruiterTestService struct {
	testRepo repository.TestRepository
}

func NewRecruiterTestService(testRepo repository.TestRepository) RecruiterTestService {
	return &recruiterTestService{testRepo: testRepo}
}

func (s *recruiterTestService) CreateTest(createdBy string, req dto.TestCreateDTO) (*dto.TestForAuthor, error) {
	questions := make([]model.Question, 0, len(req.Questions))
	for i, qDto := range req.Questions {
		// The answer key must index into the options list.
		if *qDto.CorrectOption >= len(qDto.Options) {
			return nil, apperror.Validation(fmt.Sprintf(
				"question %d: correct_option %d is out of range for %d options",
				i+1, *qDto.CorrectOption, len(qDto.Options)))
		}
		marks := qDto.Marks
		if marks == 0 {
			marks = 1
		}
		questions = append(questions, model.Question{
			Prompt:        qDto.Prompt,
			Options:       qDto.Options,
			CorrectOption: *qDto.CorrectOption,
			Marks:         marks,
			Position:      i,
		})
	}

	test := model.Test{
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		TotalMarks:   req.TotalMarks,
		PassingMarks: req.PassingMarks,
		JobID:        req.JobID,
		Questions:    questions,
		CreatedBy:    createdBy,
		IsActive:     true,
	}
	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Msg("CreateTest: failed to persist test")
		return nil, apperror.Internal("failed to create test", err)
	}

	created, err := s.testRepo.FindByIDWithQuestions(test.ID)
	if err != nil {
		log.Error().Err(err).Uint("testID", test.ID).Msg("CreateTest: failed to reload created test")
		created = &test
	}
	return authorView(created)
}

func (s *recruiterTestService) ListOwnTests(createdBy string) ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.FindAllByCreator(createdBy)
	if err != nil {
		log.Error().Err(err).Str("createdBy", createdBy).Msg("ListOwnTests: repository error")
		return nil, apperror.Internal("failed to list tests", err)
	}
	return summaries(tests), nil
}

func (s *recruiterTestService) UpdateTest(testID uint, requesterID string, req dto.TestUpdateDTO) (*dto.TestForAuthor, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		return nil, testLookupError(err, testID)
	}
	if test.CreatedBy != requesterID {
		return nil, apperror.Forbidden("not authorized to update this test")
	}

	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if req.Duration != nil {
		test.Duration = *req.Duration
	}
	if req.TotalMarks != nil {
		test.TotalMarks = *req.TotalMarks
	}
	if req.PassingMarks != nil {
		test.PassingMarks = *req.PassingMarks
	}
	if req.JobID != nil {
		test.JobID = *req.JobID
	}
	if req.IsActive != nil {
		test.IsActive = *req.IsActive
	}

	if err := s.testRepo.Update(test); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("UpdateTest: failed to persist update")
		return nil, apperror.Internal("failed to update test", err)
	}

	updated, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		updated = test
	}
	return authorView(updated)
}

func (s *recruiterTestService) DeleteTest(testID uint, requesterID string) error {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		return testLookupError(err, testID)
	}
	if test.CreatedBy != requesterID {
		return apperror.Forbidden("not authorized to delete this test")
	}
	if err := s.testRepo.Delete(testID); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("DeleteTest: failed to delete")
		return apperror.Internal("failed to delete test", err)
	}
	return nil
}

func authorView(test *model.Test) (*dto.TestForAuthor, error) {
	var resp dto.TestForAuthor
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("failed to copy test model to author DTO")
		return nil, apperror.Internal("error preparing test response", err)
	}
	return &resp, nil
}

func summaries(tests []repository.TestWithQuestionCount) []dto.TestSummaryDTO {
	dtos := make([]dto.TestSummaryDTO, 0, len(tests))
	for _, twc := range tests {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:            twc.Test.ID,
			Title:         twc.Test.Title,
			Description:   twc.Test.Description,
			Duration:      twc.Test.Duration,
			TotalMarks:    twc.Test.TotalMarks,
			JobID:         twc.Test.JobID,
			QuestionCount: twc.QuestionCount,
			CreatedAt:     twc.Test.CreatedAt,
		})
	}
	return dtos
}

func testLookupError(err error, testID uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound("test not found")
	}
	log.Error().Err(err).Uint("testID", testID).Msg("test lookup failed")
	return apperror.Internal("failed to load test", err)
}
