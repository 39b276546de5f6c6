package student

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tdnghia/jobportal/internal/apperror"
	"github.com/tdnghia/jobportal/internal/dto"
	"github.com/tdnghia/jobportal/internal/middleware"
	"github.com/tdnghia/jobportal/internal/model"
	"github.com/tdnghia/jobportal/internal/service"
)

const testSecret = "test-secret"

// stubAssessment records which projection was served and replays canned
// service results.
type stubAssessment struct {
	calledAuthorView    bool
	calledCandidateView bool
	submitErr           error
	lastSubmitter       service.Submitter
	lastAnswers         []int
}

func (s *stubAssessment) ListAvailableTests(userID string) ([]dto.TestSummaryDTO, error) {
	return []dto.TestSummaryDTO{}, nil
}

func (s *stubAssessment) GetTestForAuthor(testID uint) (*dto.TestForAuthor, error) {
	s.calledAuthorView = true
	return &dto.TestForAuthor{ID: testID}, nil
}

func (s *stubAssessment) GetTestForCandidate(testID uint) (*dto.TestForCandidate, error) {
	s.calledCandidateView = true
	return &dto.TestForCandidate{ID: testID}, nil
}

func (s *stubAssessment) SubmitTest(testID uint, submitter service.Submitter, answers []int) (*dto.SubmitResultDTO, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	s.lastSubmitter = submitter
	s.lastAnswers = answers
	return &dto.SubmitResultDTO{Score: 1, TotalQuestions: 1}, nil
}

func (s *stubAssessment) GetResults(testID uint, requesterID, requesterRole string) ([]dto.TestResultDTO, error) {
	return nil, nil
}

func newTestRouter(stub *stubAssessment) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewAssessmentController(stub)
	r := gin.New()
	api := r.Group("/api/v1", middleware.Auth(testSecret))
	api.GET("/tests/:test_id", ctrl.GetTest)
	api.POST("/tests/:test_id/submit", middleware.RequireRole(model.RoleStudent), ctrl.SubmitTest)
	return r
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"role":  role,
		"name":  "Jane Doe",
		"email": "jane@example.com",
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return "Bearer " + signed
}

func doRequest(router *gin.Engine, method, path, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", auth)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetTestPicksProjectionByRole(t *testing.T) {
	stub := &stubAssessment{}
	router := newTestRouter(stub)

	if w := doRequest(router, http.MethodGet, "/api/v1/tests/7", bearer(t, model.RoleStudent), ""); w.Code != http.StatusOK {
		t.Fatalf("student get: status %d", w.Code)
	}
	if !stub.calledCandidateView || stub.calledAuthorView {
		t.Fatal("student request must hit the candidate projection only")
	}

	stub2 := &stubAssessment{}
	router = newTestRouter(stub2)
	if w := doRequest(router, http.MethodGet, "/api/v1/tests/7", bearer(t, model.RoleRecruiter), ""); w.Code != http.StatusOK {
		t.Fatalf("recruiter get: status %d", w.Code)
	}
	if !stub2.calledAuthorView || stub2.calledCandidateView {
		t.Fatal("recruiter request must hit the author projection only")
	}
}

func TestSubmitReturnsScore(t *testing.T) {
	stub := &stubAssessment{}
	router := newTestRouter(stub)

	w := doRequest(router, http.MethodPost, "/api/v1/tests/7/submit", bearer(t, model.RoleStudent), `{"answers":[2]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp dto.SubmitResultDTO
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Score != 1 || resp.TotalQuestions != 1 {
		t.Fatalf("response = %+v", resp)
	}
	if stub.lastSubmitter.Name != "Jane Doe" || stub.lastSubmitter.Email != "jane@example.com" {
		t.Fatalf("claims not passed through: %+v", stub.lastSubmitter)
	}
	if len(stub.lastAnswers) != 1 || stub.lastAnswers[0] != 2 {
		t.Fatalf("answers not passed through: %v", stub.lastAnswers)
	}
}

func TestSubmitErrorMapping(t *testing.T) {
	stub := &stubAssessment{submitErr: apperror.Conflict("you have already attempted this test")}
	router := newTestRouter(stub)

	w := doRequest(router, http.MethodPost, "/api/v1/tests/7/submit", bearer(t, model.RoleStudent), `{"answers":[0]}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already attempted") {
		t.Fatalf("conflict body missing actionable message: %s", w.Body.String())
	}

	if w := doRequest(router, http.MethodPost, "/api/v1/tests/abc/submit", bearer(t, model.RoleStudent), `{"answers":[0]}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status = %d, want 400", w.Code)
	}
	if w := doRequest(router, http.MethodPost, "/api/v1/tests/7/submit", bearer(t, model.RoleRecruiter), `{"answers":[0]}`); w.Code != http.StatusForbidden {
		t.Fatalf("recruiter submit: status = %d, want 403", w.Code)
	}
}
