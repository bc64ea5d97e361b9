package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/hirestream/hirestream/internal/auth"
	"github.com/hirestream/hirestream/internal/config"
	"github.com/hirestream/hirestream/internal/models"
	"github.com/hirestream/hirestream/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testCfg = config.Config{
	JWTSecret: "router-test-secret",
	JWTIssuer: "hirestream",
	TokenTTL:  time.Hour,
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}, &models.Interview{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := NewRouter(Deps{
		Cfg:          testCfg,
		Users:        services.NewUserService(db),
		Jobs:         services.NewJobService(db),
		Applications: services.NewApplicationService(db, false),
		Interviews:   services.NewInterviewService(db),
	})
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) (*models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{Name: "Seeded " + role, Email: email, Password: hash, Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed %s: %v", role, err)
	}
	token, err := auth.NewAccessToken(testCfg.JWTSecret, testCfg.JWTIssuer, testCfg.TokenTTL, auth.Claims{
		UserID: user.ID, Email: user.Email, Role: user.Role,
	})
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return user, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func postingBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":        title,
		"company":      "Acme Corp",
		"location":     "Bengaluru",
		"jobType":      "Full-time",
		"workMode":     "Hybrid",
		"salary":       "12 LPA",
		"experience":   "0-1 years",
		"openings":     3,
		"skills":       []string{"Go", "SQL"},
		"description":  "Backend role",
		"requirements": "DSA, Go",
		"lastDate":     time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
	}
}

// The full placement flow: a student registers and logs in, a recruiter
// posts a job, an admin verifies the job and the student, the student
// applies exactly once, and the recruiter shortlists the application.
func TestPlacementFlow(t *testing.T) {
	r, db := newTestServer(t)
	_, recruiterToken := seedUser(t, db, "hr@acme.example", models.RoleRecruiter)
	_, adminToken := seedUser(t, db, "admin@campus.example", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/user/register", "", map[string]string{
		"name": "Ravi", "email": "ravi@campus.example", "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/user/login", "", map[string]string{
		"email": "ravi@campus.example", "password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	studentToken, _ := decode(t, w)["token"].(string)
	if studentToken == "" {
		t.Fatalf("login returned no token")
	}

	w = doJSON(t, r, http.MethodPost, "/recruiter/jobs", recruiterToken, postingBody("Backend Engineer"))
	if w.Code != http.StatusCreated {
		t.Fatalf("create job: %d %s", w.Code, w.Body.String())
	}
	job := decode(t, w)["job"].(map[string]interface{})
	jobID := uint(job["id"].(float64))

	// Unverified jobs stay invisible on the student board.
	w = doJSON(t, r, http.MethodGet, "/student/jobs", studentToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("student jobs: %d %s", w.Code, w.Body.String())
	}
	if _, listed := decode(t, w)["jobs"]; listed {
		t.Fatalf("unverified job leaked to the student board")
	}

	w = doJSON(t, r, http.MethodPut, "/admin/jobs/verify", adminToken, map[string]interface{}{
		"jobId": jobID, "isVerified": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("verify job: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/student/jobs", studentToken, nil)
	jobs, _ := decode(t, w)["jobs"].([]interface{})
	if len(jobs) != 1 {
		t.Fatalf("expected the verified job on the board, got %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/applications/apply", studentToken, map[string]interface{}{"jobId": jobID})
	if w.Code != http.StatusCreated {
		t.Fatalf("apply: %d %s", w.Code, w.Body.String())
	}
	application := decode(t, w)["application"].(map[string]interface{})
	applicationID := uint(application["id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/applications/apply", studentToken, map[string]interface{}{"jobId": jobID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate apply must be rejected: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/recruiter/applications/%d/status", applicationID), recruiterToken,
		map[string]string{"status": "shortlisted"})
	if w.Code != http.StatusOK {
		t.Fatalf("shortlist: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/student/applications/status", studentToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status counts: %d %s", w.Code, w.Body.String())
	}
	counts := decode(t, w)
	if counts["shortlisted"].(float64) != 1 || counts["totalApplications"].(float64) != 1 {
		t.Fatalf("unexpected counts: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/applications/%d", jobID), studentToken, nil)
	status := decode(t, w)
	if status["status"] != "shortlisted" {
		t.Fatalf("expected shortlisted status, got %s", w.Body.String())
	}
}

func TestCreateJobRejectsBadDeadline(t *testing.T) {
	r, db := newTestServer(t)
	_, recruiterToken := seedUser(t, db, "hr@acme.example", models.RoleRecruiter)

	body := postingBody("Backend Engineer")
	body["lastDate"] = "31-12-2026"
	w := doJSON(t, r, http.MethodPost, "/recruiter/jobs", recruiterToken, body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad lastDate: expected 400, got %d %s", w.Code, w.Body.String())
	}
	message, _ := decode(t, w)["message"].(string)
	if message == "" {
		t.Fatalf("expected an error message, got %s", w.Body.String())
	}
}

func TestRoleGates(t *testing.T) {
	r, db := newTestServer(t)
	student, studentToken := seedUser(t, db, "s@campus.example", models.RoleStudent)
	_, recruiterToken := seedUser(t, db, "hr@acme.example", models.RoleRecruiter)

	// Posting a job is recruiter-only.
	w := doJSON(t, r, http.MethodPost, "/recruiter/jobs", studentToken, postingBody("Intern"))
	if w.Code != http.StatusForbidden {
		t.Fatalf("student posting a job: expected 403, got %d", w.Code)
	}

	// Applying is student-only.
	w = doJSON(t, r, http.MethodPost, "/applications/apply", recruiterToken, map[string]interface{}{"jobId": 1})
	if w.Code != http.StatusForbidden {
		t.Fatalf("recruiter applying: expected 403, got %d", w.Code)
	}

	// The admin verification toggles are admin-only.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/admin/students/%d/verify", student.ID), recruiterToken,
		map[string]interface{}{"isVerified": true})
	if w.Code != http.StatusForbidden {
		t.Fatalf("recruiter verifying a student: expected 403, got %d", w.Code)
	}

	// No token at all on a guarded route.
	w = doJSON(t, r, http.MethodGet, "/student/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", w.Code)
	}
}

func TestInterviewScheduling(t *testing.T) {
	r, db := newTestServer(t)
	student, studentToken := seedUser(t, db, "s@campus.example", models.RoleStudent)
	_, recruiterToken := seedUser(t, db, "hr@acme.example", models.RoleRecruiter)

	w := doJSON(t, r, http.MethodPost, "/recruiter/interviews", recruiterToken, map[string]interface{}{
		"candidateId":   student.ID,
		"candidateName": student.Name,
		"jobTitle":      "Backend Engineer",
		"date":          "2026-09-15",
		"time":          "10:30",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("schedule: %d %s", w.Code, w.Body.String())
	}
	interview := decode(t, w)["interview"].(map[string]interface{})
	if interview["status"] != "scheduled" || interview["duration"].(float64) != 60 {
		t.Fatalf("defaults not applied: %s", w.Body.String())
	}
	interviewID := uint(interview["id"].(float64))

	w = doJSON(t, r, http.MethodGet, "/student/interviews", studentToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("student interviews: %d %s", w.Code, w.Body.String())
	}
	listed, _ := decode(t, w)["data"].([]interface{})
	if len(listed) != 1 {
		t.Fatalf("expected the scheduled interview, got %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/recruiter/updateinterviews/%d", interviewID), recruiterToken,
		map[string]string{"status": "completed"})
	if w.Code != http.StatusOK {
		t.Fatalf("status update: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/recruiter/interviews/%d", interviewID), recruiterToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}
	if id := decode(t, w)["deletedInterviewId"].(float64); uint(id) != interviewID {
		t.Fatalf("wrong deletedInterviewId: %s", w.Body.String())
	}
}
