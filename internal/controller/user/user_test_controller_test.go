package user

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SkillCheck/internal/dto"
	"github.com/lshigami/SkillCheck/internal/service"
)

type stubUserTests struct{}

func (stubUserTests) GetAllTests() ([]dto.TestSummaryDTO, error) {
	return []dto.TestSummaryDTO{{ID: 1, Title: "Go Basics", QuestionCount: 4}}, nil
}

func (stubUserTests) GetTestDetails(testID string) (*dto.TestResponseDTO, error) {
	if testID != "sample" {
		return nil, service.ErrTestNotFound
	}
	return &dto.TestResponseDTO{ID: "sample"}, nil
}

type stubSubmissions struct {
	submitted map[string]string
}

func (s *stubSubmissions) SubmitTest(testID string, req dto.TestAttemptSubmitDTO) (*dto.TestAttemptDetailDTO, error) {
	if testID == "404" {
		return nil, service.ErrTestNotFound
	}
	s.submitted = req.Answers
	return &dto.TestAttemptDetailDTO{ID: 1, TestID: testID, Status: "graded"}, nil
}

func (s *stubSubmissions) GetTestAttemptDetails(attemptID string) (*dto.TestAttemptDetailDTO, error) {
	if attemptID != "1" {
		return nil, service.ErrAttemptNotFound
	}
	return &dto.TestAttemptDetailDTO{ID: 1, TestID: "1", TestTitle: "Go Basics", Score: 1, TotalMultipleChoice: 2, Percentage: 50, Status: "graded"}, nil
}

func (s *stubSubmissions) GetAttemptsForTest(string) ([]dto.TestAttemptSummaryDTO, error) {
	return []dto.TestAttemptSummaryDTO{}, nil
}

func (s *stubSubmissions) ReviewAttempt(_ context.Context, attemptID string) (*dto.TestAttemptDetailDTO, error) {
	return s.GetTestAttemptDetails(attemptID)
}

func newRouter(subs *stubSubmissions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	c := NewUserTestController(stubUserTests{}, subs, service.NewReportService())
	r.GET("/tests", c.GetAllTests)
	r.GET("/tests/:test_id", c.GetTestDetails)
	r.POST("/tests/:test_id/attempts", c.SubmitTestAttempt)
	r.GET("/test-attempts/:attempt_id", c.GetSpecificTestAttemptDetails)
	r.POST("/test-attempts/:attempt_id/review", c.ReviewTestAttempt)
	r.GET("/test-attempts/:attempt_id/report", c.DownloadAttemptReport)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitTestAttempt(t *testing.T) {
	subs := &stubSubmissions{}
	r := newRouter(subs)

	w := serve(r, http.MethodPost, "/tests/1/attempts", `{"candidate_name": "Ada", "answers": {"q1": "q1o2"}}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if subs.submitted["q1"] != "q1o2" {
		t.Errorf("answers not passed through: %v", subs.submitted)
	}

	if w := serve(r, http.MethodPost, "/tests/1/attempts", `{"candidate_email": "not-an-email", "answers": {}}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad email: status = %d, want 400", w.Code)
	}
	if w := serve(r, http.MethodPost, "/tests/1/attempts", `{"candidate_name": "Ada"}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing answers: status = %d, want 400", w.Code)
	}
	if w := serve(r, http.MethodPost, "/tests/404/attempts", `{"answers": {}}`); w.Code != http.StatusNotFound {
		t.Errorf("unknown test: status = %d, want 404", w.Code)
	}
}

func TestReadEndpoints(t *testing.T) {
	r := newRouter(&stubSubmissions{})
	cases := []struct {
		method, path string
		status       int
	}{
		{http.MethodGet, "/tests", http.StatusOK},
		{http.MethodGet, "/tests/sample", http.StatusOK},
		{http.MethodGet, "/tests/7", http.StatusNotFound},
		{http.MethodGet, "/test-attempts/1", http.StatusOK},
		{http.MethodGet, "/test-attempts/2", http.StatusNotFound},
		{http.MethodPost, "/test-attempts/1/review", http.StatusOK},
	}
	for _, tc := range cases {
		if w := serve(r, tc.method, tc.path, ""); w.Code != tc.status {
			t.Errorf("%s %s: status = %d, want %d", tc.method, tc.path, w.Code, tc.status)
		}
	}
}

func TestDownloadAttemptReport(t *testing.T) {
	r := newRouter(&stubSubmissions{})

	w := serve(r, http.MethodGet, "/test-attempts/1/report", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=attempt-1.pdf" {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Errorf("body is not a PDF")
	}

	if w := serve(r, http.MethodGet, "/test-attempts/9/report", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
