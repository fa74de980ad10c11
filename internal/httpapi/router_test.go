package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/pathwise/internal/auth"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/ratelimit"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/alexanderramin/pathwise/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roadmapReply = `Milestones:
- Start: Pick a course.
- 3 months: Finish the fundamentals.
- 6 months: Ship a small project.
- 9 months: Contribute to open source.
- 12 months: Apply for backend roles.

Full Plan:
Study five hours a week.`

type stubLLM struct {
	text string
	err  error
}

func (s *stubLLM) Generate(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.GenerateResponse{Text: s.text, Model: "stub"}, nil
}

func (s *stubLLM) Available(context.Context) bool { return true }

type testServer struct {
	router http.Handler
	llm    *stubLLM
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	users := repository.NewSQLiteUserRepo(database)
	questions := repository.NewSQLiteQuestionRepo(database)
	answers := repository.NewSQLiteAnswerRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	goals := repository.NewSQLiteGoalRepo(database)
	steps := repository.NewSQLiteStepRepo(database)
	resources := repository.NewSQLiteResourceRepo(database)
	stats := repository.NewSQLiteStatsRepo(database)

	tokens := auth.NewTokenService("http-test-secret-with-enough-bytes", time.Hour, "pathwise")
	stub := &stubLLM{text: roadmapReply}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := Services{
		Auth:         service.NewAuthService(users, tokens),
		Assessment:   service.NewAssessmentService(questions, answers, uow),
		Profile:      service.NewProfileService(profiles, uow, ratelimit.NewAttemptLimiter(5, 10*time.Minute, nil)),
		Goals:        service.NewGoalService(goals, uow),
		Roadmaps:     service.NewRoadmapService(goals, profiles, answers, questions, stub, uow, logger),
		Steps:        service.NewStepService(steps, goals),
		Resources:    service.NewResourceService(resources, goals),
		Achievements: service.NewAchievementService(stats),
		Imports:      service.NewImportService(uow),
	}
	return &testServer{router: NewRouter(svc, tokens, logger), llm: stub}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorInfo      `json:"error"`
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Code != http.StatusNoContent && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (s *testServer) register(t *testing.T, username string) string {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"password": "correct horse",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var res authDTO
	require.NoError(t, json.Unmarshal(env.Data, &res))
	return res.Token
}

func (s *testServer) assess(t *testing.T, token string) {
	t.Helper()
	w, _ := s.do(t, http.MethodPost, "/api/assessment/submit", token, map[string]any{
		"answers": []map[string]any{{"question_id": 1, "answer": "a"}, {"question_id": 2, "answer": "b"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func (s *testServer) createGoal(t *testing.T, token, title string) goalDTO {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/api/goals", token, map[string]string{"title": title, "category": "career"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var g goalDTO
	require.NoError(t, json.Unmarshal(env.Data, &g))
	return g
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuth_RequiresBearerToken(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodGet, "/api/goals", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, ErrCodeUnauthorized, env.Error.Code)

	w, _ = s.do(t, http.MethodGet, "/api/goals", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RegisterLoginMe(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "ada")

	w, env := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ada", "password": "correct horse"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[authDTO](t, env)

	w, env = s.do(t, http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[userDTO](t, env)
	assert.Equal(t, "ada", me.Username)
	assert.True(t, me.IsAdmin)

	w, env = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ada", "password": "wrong password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, ErrCodeUnauthorized, env.Error.Code)

	w, _ = s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "ada", "password": "correct horse"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuth_RegisterValidation(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{"username": "ada", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeValidation, env.Error.Code)
	require.Len(t, env.Error.Details, 1)
	assert.Equal(t, "password", env.Error.Details[0].Field)
}

func TestUsers_AdminOnly(t *testing.T) {
	s := newTestServer(t)
	admin := s.register(t, "ada")
	user := s.register(t, "bob")

	w, env := s.do(t, http.MethodGet, "/api/users", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]userDTO](t, env), 2)

	w, _ = s.do(t, http.MethodGet, "/api/users", user, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAssessment_QuestionsAndSubmit(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")

	w, env := s.do(t, http.MethodGet, "/api/assessment/questions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	qs := decode[[]questionDTO](t, env)
	require.Len(t, qs, 15)
	assert.Equal(t, 1, qs[0].QuestionID)
	assert.Len(t, qs[0].Options, 4)

	w, _ = s.do(t, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, env = s.do(t, http.MethodPost, "/api/assessment/submit", token, map[string]any{
		"answers": []map[string]any{{"question_id": 1, "answer": "A"}, {"question_id": 2, "answer": "b"}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p := decode[profileDTO](t, env)
	assert.Equal(t, "creative", p.Dimensions["problem_solving"])
	assert.Equal(t, "progress-focused", p.Dimensions["goal_energy"])
	assert.Len(t, p.Dimensions, 15)
	assert.Equal(t, "", p.Dimensions["support_type"])

	w, env = s.do(t, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "creative", decode[profileDTO](t, env).Dimensions["problem_solving"])
}

func TestAssessment_SubmitRejectsBadInput(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")

	w, env := s.do(t, http.MethodPost, "/api/assessment/submit", token, map[string]any{
		"answers": []map[string]any{{"question_id": 1, "answer": "e"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeValidation, env.Error.Code)

	w, _ = s.do(t, http.MethodPost, "/api/assessment/submit", token, map[string]any{"answers": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = s.do(t, http.MethodPost, "/api/assessment/submit", token, map[string]any{
		"answers": []map[string]any{{"question_id": 99, "answer": "a"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodeBadRequest, env.Error.Code)
}

func TestProfile_EditAndRateLimit(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")

	w, env := s.do(t, http.MethodPut, "/api/profile", token, map[string]string{"strengths": "patience"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "patience", decode[profileDTO](t, env).Dimensions["strengths"])

	for i := 0; i < 5; i++ {
		w, _ = s.do(t, http.MethodPut, "/api/profile", token, map[string]string{"not_a_dimension": "x"})
		require.Equal(t, http.StatusBadRequest, w.Code, "attempt %d", i+1)
	}
	w, env = s.do(t, http.MethodPut, "/api/profile", token, map[string]string{"strengths": "grit"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, ErrCodeRateLimited, env.Error.Code)
}

func TestGoals_CRUDAndComplete(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")
	g := s.createGoal(t, token, "Learn Go")

	w, env := s.do(t, http.MethodGet, "/api/goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]goalDTO](t, env), 1)

	w, env = s.do(t, http.MethodPut, "/api/goals/"+g.ID, token, map[string]string{"description": "every evening"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[goalDTO](t, env)
	assert.Equal(t, "Learn Go", updated.Title)
	assert.Equal(t, "every evening", updated.Description)

	w, env = s.do(t, http.MethodPost, "/api/goals/"+g.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	done := decode[completionDTO](t, env)
	assert.True(t, done.Awarded)
	assert.Equal(t, 100, done.PointsEarned)
	require.Len(t, done.NewBadges, 1)
	assert.Equal(t, "First Step", done.NewBadges[0].Title)

	w, env = s.do(t, http.MethodPost, "/api/goals/"+g.ID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[completionDTO](t, env).Awarded)

	w, env = s.do(t, http.MethodGet, "/api/achievements", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[statsDTO](t, env)
	assert.Equal(t, 100, stats.Points)
	assert.Equal(t, 1, stats.GoalsCompleted)

	w, _ = s.do(t, http.MethodDelete, "/api/goals/"+g.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = s.do(t, http.MethodGet, "/api/goals/"+g.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGoals_ForeignGoalIsNotFound(t *testing.T) {
	s := newTestServer(t)
	ada := s.register(t, "ada")
	bob := s.register(t, "bob")
	g := s.createGoal(t, ada, "Learn Go")

	for _, path := range []string{"/api/goals/" + g.ID, "/api/goals/" + g.ID + "/roadmap"} {
		w, _ := s.do(t, http.MethodGet, path, bob, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
	w, _ := s.do(t, http.MethodPost, "/api/goals/"+g.ID+"/complete", bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoadmap_Generate(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")
	g := s.createGoal(t, token, "Become a backend engineer")

	w, env := s.do(t, http.MethodPost, "/api/roadmap/generate", token, map[string]string{"goal_id": g.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrCodePrerequisite, env.Error.Code)

	s.assess(t, token)
	w, env = s.do(t, http.MethodPost, "/api/roadmap/generate", token, map[string]string{"goal_id": g.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[goalDTO](t, env)
	assert.Equal(t, "Pick a course.", got.Roadmap.MilestoneStart)
	assert.Equal(t, "Study five hours a week.", got.Roadmap.FullPlan)
	assert.NotNil(t, got.RoadmapGeneratedAt)

	w, env = s.do(t, http.MethodGet, "/api/goals/"+g.ID+"/roadmap", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		Goal  goalDTO   `json:"goal"`
		Steps []stepDTO `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Apply for backend roles.", view.Goal.Roadmap.Milestone12Months)
	assert.Empty(t, view.Steps)

	w, env = s.do(t, http.MethodGet, "/api/achievements", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, decode[statsDTO](t, env).Points)
}

func TestRoadmap_GeneratorFailures(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")
	s.assess(t, token)
	g := s.createGoal(t, token, "Learn Go")

	s.llm.err = llm.ErrTimeout
	w, env := s.do(t, http.MethodPost, "/api/roadmap/generate", token, map[string]string{"goal_id": g.ID})
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, ErrCodeTimeout, env.Error.Code)

	s.llm.err = fmt.Errorf("%w: boom", llm.ErrRetryExhausted)
	w, env = s.do(t, http.MethodPost, "/api/roadmap/generate", token, map[string]string{"goal_id": g.ID})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, ErrCodeGeneration, env.Error.Code)

	w, env = s.do(t, http.MethodGet, "/api/goals/"+g.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[goalDTO](t, env).RoadmapGeneratedAt)
}

func TestSteps_CRUDWithGoalFilter(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")
	g := s.createGoal(t, token, "Learn Go")

	w, env := s.do(t, http.MethodPost, "/api/steps", token, map[string]any{"goal_id": g.ID, "text": "Build a CLI", "order": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	step := decode[stepDTO](t, env)
	w, _ = s.do(t, http.MethodPost, "/api/steps", token, map[string]any{"goal_id": g.ID, "text": "Take the tour", "order": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = s.do(t, http.MethodGet, "/api/steps?goal_id="+g.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	steps := decode[[]stepDTO](t, env)
	require.Len(t, steps, 2)
	assert.Equal(t, "Take the tour", steps[0].Text)

	w, env = s.do(t, http.MethodPut, "/api/steps/"+step.ID, token, map[string]any{"order": 2, "completed": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decode[stepDTO](t, env).Completed)

	w, _ = s.do(t, http.MethodDelete, "/api/steps/"+step.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = s.do(t, http.MethodGet, "/api/steps/"+step.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResources_CreateListDelete(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")
	other := s.register(t, "bob")

	w, _ := s.do(t, http.MethodPost, "/api/resources", token, map[string]string{"title": "Go blog", "link": "not a url"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := s.do(t, http.MethodPost, "/api/resources", token, map[string]string{"title": "Go blog", "link": "https://go.dev/blog"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[resourceDTO](t, env)

	w, env = s.do(t, http.MethodGet, "/api/resources", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]resourceDTO](t, env), 1)

	w, _ = s.do(t, http.MethodGet, "/api/resources/"+res.ID, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/api/resources/"+res.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGoals_ImportPlan(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")

	plan := map[string]any{
		"goal":    map[string]string{"title": "Become a data engineer", "category": "career"},
		"roadmap": map[string]string{"milestone_start": "Learn SQL"},
		"steps": []map[string]any{
			{"text": "Window functions", "due_date": "2026-12-01"},
			{"text": "Airflow basics", "completed": true},
		},
		"resources": []map[string]string{{"title": "Airflow docs", "link": "https://airflow.apache.org/docs/"}},
	}
	w, env := s.do(t, http.MethodPost, "/api/goals/import", token, plan)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	got := decode[planDTO](t, env)
	assert.Equal(t, "Learn SQL", got.Goal.Roadmap.MilestoneStart)
	require.Len(t, got.Steps, 2)
	assert.Equal(t, 2, got.Steps[1].Order)
	require.Len(t, got.Resources, 1)

	w, env = s.do(t, http.MethodGet, "/api/goals/"+got.Goal.ID+"/roadmap", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var roadmap struct {
		Steps []stepDTO `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &roadmap))
	assert.Len(t, roadmap.Steps, 2)
}

func TestGoals_ImportPlanRejectsBadInput(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "ada")

	w, env := s.do(t, http.MethodPost, "/api/goals/import", token, map[string]any{
		"goal":  map[string]string{"title": "x"},
		"stpes": []any{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeBadRequest, env.Error.Code)

	w, env = s.do(t, http.MethodPost, "/api/goals/import", token, map[string]any{
		"goal":  map[string]string{"title": ""},
		"steps": []map[string]any{{"text": "a", "due_date": "tomorrow"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "goal title is required")
	assert.Contains(t, env.Error.Message, "steps[0].due_date")

	w, env = s.do(t, http.MethodGet, "/api/goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]goalDTO](t, env))
}
