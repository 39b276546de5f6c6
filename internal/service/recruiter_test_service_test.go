package service

import (
	"testing"
	"time"

	"github.com/tdnghia/jobportal/internal/apperror"
	"github.com/tdnghia/jobportal/internal/dto"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func validCreateReq() dto.TestCreateDTO {
	return dto.TestCreateDTO{
		Title:        "Aptitude Round",
		Description:  "Basics",
		Duration:     30,
		TotalMarks:   2,
		PassingMarks: 1,
		JobID:        "job-1",
		Questions: []dto.QuestionCreateDTO{
			{Prompt: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: intPtr(2)},
			{Prompt: "Q2", Options: []string{"yes", "no"}, CorrectOption: intPtr(0), Marks: 3},
		},
	}
}

func TestCreateTestAssignsPositionsAndDefaults(t *testing.T) {
	store := newFakeStore()
	svc := NewRecruiterTestService(store)

	created, err := svc.CreateTest("recruiter-1", validCreateReq())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.CreatedBy != "recruiter-1" {
		t.Errorf("createdBy = %q", created.CreatedBy)
	}
	if !created.IsActive {
		t.Error("new tests must default to active")
	}
	if len(created.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(created.Questions))
	}
	if created.Questions[0].Position != 0 || created.Questions[1].Position != 1 {
		t.Errorf("positions not assigned in request order: %+v", created.Questions)
	}
	if created.Questions[0].Marks != 1 {
		t.Errorf("omitted marks should default to 1, got %d", created.Questions[0].Marks)
	}
	if created.Questions[1].Marks != 3 {
		t.Errorf("explicit marks overridden: %d", created.Questions[1].Marks)
	}
}

func TestCreateTestRejectsOutOfRangeCorrectOption(t *testing.T) {
	svc := NewRecruiterTestService(newFakeStore())

	req := validCreateReq()
	req.Questions[1].CorrectOption = intPtr(2) // only 2 options
	_, err := svc.CreateTest("recruiter-1", req)
	if apperror.KindOf(err) != apperror.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListOwnTestsFiltersByCreator(t *testing.T) {
	store := newFakeStore()
	seedTest(store, time.Now(), true) // created by recruiter-1
	svc := NewRecruiterTestService(store)

	mine, err := svc.ListOwnTests("recruiter-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 test, got %d", len(mine))
	}
	if mine[0].QuestionCount != 3 {
		t.Errorf("question count = %d, want 3", mine[0].QuestionCount)
	}

	others, err := svc.ListOwnTests("recruiter-2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("recruiter-2 owns nothing, got %+v", others)
	}
}

func TestUpdateTestOwnershipEnforced(t *testing.T) {
	store := newFakeStore()
	test := seedTest(store, time.Now(), true)
	svc := NewRecruiterTestService(store)

	_, err := svc.UpdateTest(test.ID, "recruiter-2", dto.TestUpdateDTO{Title: strPtr("Hijacked")})
	if apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	updated, err := svc.UpdateTest(test.ID, "recruiter-1", dto.TestUpdateDTO{
		Title:    strPtr("Renamed"),
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "Renamed" || updated.IsActive {
		t.Fatalf("partial update not applied: %+v", updated)
	}
	if updated.Duration != 30 {
		t.Errorf("untouched field changed: duration = %d", updated.Duration)
	}
}

func TestDeleteTestOwnershipEnforced(t *testing.T) {
	store := newFakeStore()
	test := seedTest(store, time.Now(), true)
	svc := NewRecruiterTestService(store)

	if err := svc.DeleteTest(test.ID, "recruiter-2"); apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := svc.DeleteTest(test.ID, "recruiter-1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := svc.DeleteTest(test.ID, "recruiter-1"); apperror.KindOf(err) != apperror.KindNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
