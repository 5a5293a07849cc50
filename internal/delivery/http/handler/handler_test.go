package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/routes"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/fields"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/notification"
	"jobboard/internal/domain/recommendation"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type listData struct {
	Items json.RawMessage `json:"items"`
	Count int             `json:"count"`
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type stubJobs struct {
	usecase.JobUsecase
	items   map[uuid.UUID]job.Posting
	listErr error
	created usecase.JobInput
}

func (s *stubJobs) ListAll(context.Context) ([]job.Posting, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]job.Posting, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubJobs) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	p, ok := s.items[id]
	if !ok {
		return job.Posting{}, usecase.ErrNotFound
	}
	return p, nil
}

func (s *stubJobs) Create(_ context.Context, in usecase.JobInput) (job.Posting, error) {
	s.created = in
	return job.Posting{
		ID:              uuid.New(),
		Title:           in.Title,
		Company:         in.Company,
		JobType:         job.NormalizeType(in.JobType),
		ExperienceLevel: job.NormalizeLevel(in.ExperienceLevel),
		Requirements:    in.Requirements,
	}, nil
}

func (s *stubJobs) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return usecase.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type stubCandidates struct {
	profile candidate.Profile
	got     fields.Record
}

func (s *stubCandidates) GetProfile(_ context.Context, id uuid.UUID) (candidate.Profile, error) {
	if s.profile.ID != id {
		return candidate.Profile{}, usecase.ErrNotFound
	}
	return s.profile, nil
}

func (s *stubCandidates) UpsertProfile(_ context.Context, id uuid.UUID, rec fields.Record) (candidate.Profile, error) {
	s.got = rec
	return candidate.FromRecord(id, rec), nil
}

type stubRecommendations struct {
	items     []recommendation.ScoredJob
	gotLimit  int
	gotID     uuid.UUID
	completes bool
}

func (s *stubRecommendations) GetRecommendations(_ context.Context, id uuid.UUID, limit int) ([]recommendation.ScoredJob, error) {
	s.gotID = id
	s.gotLimit = limit
	return s.items, nil
}

func (s *stubRecommendations) IsProfileCompleteForRecommendations(context.Context, uuid.UUID) bool {
	return s.completes
}

type stubNotifications struct {
	usecase.NotificationUsecase
	items      []notification.Notification
	listedType notification.Type
	unread     int
	draft      notification.Draft
	status     usecase.StatusChange
}

func (s *stubNotifications) List(context.Context, uuid.UUID) ([]notification.Notification, error) {
	return s.items, nil
}

func (s *stubNotifications) ListByType(_ context.Context, _ uuid.UUID, typ notification.Type) ([]notification.Notification, error) {
	s.listedType = typ
	out := []notification.Notification{}
	for _, n := range s.items {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *stubNotifications) UnreadCount(context.Context, uuid.UUID) (int, error) {
	return s.unread, nil
}

func (s *stubNotifications) Create(_ context.Context, candidateID uuid.UUID, d notification.Draft) (notification.Notification, error) {
	s.draft = d
	return notification.Notification{ID: uuid.New(), CandidateID: candidateID, Type: d.Type, Title: d.Title, Message: d.Message}, nil
}

func (s *stubNotifications) CreateStatusChangeNotification(_ context.Context, candidateID uuid.UUID, in usecase.StatusChange) (notification.Notification, error) {
	s.status = in
	return notification.Notification{ID: uuid.New(), CandidateID: candidateID, Type: notification.TypeStatusChange}, nil
}

func (s *stubNotifications) MarkAsRead(_ context.Context, _ uuid.UUID, id uuid.UUID) error {
	for _, n := range s.items {
		if n.ID == id {
			return nil
		}
	}
	return usecase.ErrNotFound
}

func (s *stubNotifications) Delete(ctx context.Context, candidateID, id uuid.UUID) error {
	return s.MarkAsRead(ctx, candidateID, id)
}

func (s *stubNotifications) Recent(_ context.Context, _ uuid.UUID, limit int) ([]notification.Notification, error) {
	if limit > 0 && limit < len(s.items) {
		return s.items[:limit], nil
	}
	return s.items, nil
}

func (s *stubNotifications) MarkAllAsRead(context.Context, uuid.UUID) (int64, error) {
	n := int64(s.unread)
	s.unread = 0
	return n, nil
}

func (s *stubNotifications) ClearAll(context.Context, uuid.UUID) (int64, error) {
	return int64(len(s.items)), nil
}

type stubSavedJobs struct {
	usecase.SavedJobUsecase
	saved map[uuid.UUID]bool
}

func (s *stubSavedJobs) List(context.Context, uuid.UUID) ([]repository.SavedJob, error) {
	out := []repository.SavedJob{}
	for id := range s.saved {
		out = append(out, repository.SavedJob{JobID: id, SavedAt: time.Unix(0, 0).UTC()})
	}
	return out, nil
}

func (s *stubSavedJobs) Save(_ context.Context, _ uuid.UUID, jobID uuid.UUID) error {
	s.saved[jobID] = true
	return nil
}

func (s *stubSavedJobs) IsSaved(_ context.Context, _ uuid.UUID, jobID uuid.UUID) (bool, error) {
	return s.saved[jobID], nil
}

type stubApplications struct {
	usecase.ApplicationUsecase
	created usecase.ApplicationInput
	update  usecase.ApplicationUpdate
	byJob   uuid.UUID
	err     error
}

func (s *stubApplications) Create(_ context.Context, candidateID uuid.UUID, in usecase.ApplicationInput) (application.Application, error) {
	if s.err != nil {
		return application.Application{}, s.err
	}
	s.created = in
	return application.Application{ID: uuid.New(), CandidateID: candidateID, JobID: in.JobID, Status: application.StatusApplied}, nil
}

func (s *stubApplications) GetByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	s.byJob = jobID
	return []application.Application{{ID: uuid.New(), JobID: jobID, Status: application.StatusApplied}}, nil
}

func (s *stubApplications) UpdateStatus(_ context.Context, candidateID, id uuid.UUID, in usecase.ApplicationUpdate) (application.Application, error) {
	if s.err != nil {
		return application.Application{}, s.err
	}
	s.update = in
	return application.Application{ID: id, CandidateID: candidateID, Status: application.Status(in.Status)}, nil
}

type fixture struct {
	app           *fiber.App
	jobs          *stubJobs
	candidates    *stubCandidates
	recs          *stubRecommendations
	notifications *stubNotifications
	saved         *stubSavedJobs
	applications  *stubApplications
}

func newFixture(t *testing.T, pinger handler.Pinger) fixture {
	t.Helper()

	f := fixture{
		jobs:          &stubJobs{items: map[uuid.UUID]job.Posting{}},
		candidates:    &stubCandidates{},
		recs:          &stubRecommendations{},
		notifications: &stubNotifications{},
		saved:         &stubSavedJobs{saved: map[uuid.UUID]bool{}},
		applications:  &stubApplications{},
	}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	routes.NewRegistry(handler.NewHealthHandler(pinger), v1.Handlers{
		Jobs:            handler.NewJobHandler(f.jobs),
		Candidates:      handler.NewCandidateHandler(f.candidates),
		Recommendations: handler.NewRecommendationHandler(f.recs),
		Notifications:   handler.NewNotificationHandler(f.notifications),
		SavedJobs:       handler.NewSavedJobHandler(f.saved),
		Applications:    handler.NewApplicationHandler(f.applications),
	}, nil).Register(app)

	f.app = app
	return f
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	f := newFixture(t, stubPinger{})
	status, env := do(t, f.app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"database":"up"}`, string(env.Data))

	f = newFixture(t, stubPinger{err: errors.New("connection refused")})
	status, env = do(t, f.app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "service unavailable", env.Message)
	assert.JSONEq(t, `{"database":"down"}`, string(env.Data))
}

func TestUnknownRoute_UsesEnvelope(t *testing.T) {
	f := newFixture(t, nil)
	status, env := do(t, f.app, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, http.StatusNotFound, env.Status)
}

func TestCandidateScopedRoutes_RejectBadID(t *testing.T) {
	f := newFixture(t, nil)
	for _, target := range []string{
		"/api/v1/candidates/not-a-uuid",
		"/api/v1/candidates/not-a-uuid/recommendations",
		"/api/v1/candidates/00000000-0000-0000-0000-000000000000/notifications",
	} {
		status, env := do(t, f.app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, status, target)
		assert.Equal(t, "Invalid candidate id", env.Message, target)
	}
}

func TestRecommendations_List(t *testing.T) {
	f := newFixture(t, nil)
	id := uuid.New()
	jobID := uuid.New()
	f.recs.items = []recommendation.ScoredJob{{
		Job:        job.Posting{ID: jobID, Title: "Backend Engineer", Company: "Acme"},
		TotalScore: 90,
		Breakdown:  recommendation.Breakdown{SkillMatch: 100, ExperienceMatch: 100, LocationMatch: 50, JobTypeMatch: 100},
		Reason:     "100% skill match, experience level fit, job type preference",
	}}

	status, env := do(t, f.app, http.MethodGet, "/api/v1/candidates/"+id.String()+"/recommendations?limit=3", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, f.recs.gotID)
	assert.Equal(t, 3, f.recs.gotLimit)

	var data listData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Count)

	var items []struct {
		Job struct {
			ID    uuid.UUID `json:"id"`
			Title string    `json:"title"`
		} `json:"job"`
		TotalScore int                      `json:"totalScore"`
		Breakdown  recommendation.Breakdown `json:"breakdown"`
		Reason     string                   `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(data.Items, &items))
	require.Len(t, items, 1)
	assert.Equal(t, jobID, items[0].Job.ID)
	assert.Equal(t, 90, items[0].TotalScore)
	assert.Equal(t, 50, items[0].Breakdown.LocationMatch)
	assert.NotEmpty(t, items[0].Reason)
}

func TestRecommendations_DefaultLimitAndEmpty(t *testing.T) {
	f := newFixture(t, nil)
	status, env := do(t, f.app, http.MethodGet, "/api/v1/candidates/"+uuid.NewString()+"/recommendations", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, f.recs.gotLimit)
	assert.JSONEq(t, `{"items":[],"count":0}`, string(env.Data))
}

func TestRecommendations_BadLimit(t *testing.T) {
	f := newFixture(t, nil)
	base := "/api/v1/candidates/" + uuid.NewString() + "/recommendations?limit="
	for _, l := range []string{"abc", "-1", "51"} {
		status, _ := do(t, f.app, http.MethodGet, base+l, "")
		assert.Equal(t, http.StatusBadRequest, status, l)
	}
}

func TestRecommendations_Status(t *testing.T) {
	f := newFixture(t, nil)
	f.recs.completes = true
	status, env := do(t, f.app, http.MethodGet, "/api/v1/candidates/"+uuid.NewString()+"/recommendations/status", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"profileComplete":true}`, string(env.Data))
}

func TestJobs_CreateValidates(t *testing.T) {
	f := newFixture(t, nil)

	status, env := do(t, f.app, http.MethodPost, "/api/v1/jobs", `{"company":"Acme"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Validation failed", env.Message)
	assert.JSONEq(t, `[{"field":"title","rule":"required"}]`, string(env.Data))

	status, _ = do(t, f.app, http.MethodPost, "/api/v1/jobs", `{"title":"A","company":"B","salaryMin":100,"salaryMax":10}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = do(t, f.app, http.MethodPost, "/api/v1/jobs", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestJobs_CreateAcceptsStringRequirements(t *testing.T) {
	f := newFixture(t, nil)

	status, env := do(t, f.app, http.MethodPost, "/api/v1/jobs",
		`{"title":"SRE","company":"Acme","jobType":"Full-Time","requirements":"Go\n\nKubernetes\n"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "created", env.Message)
	assert.Equal(t, []string{"Go", "Kubernetes"}, f.jobs.created.Requirements)

	var out struct {
		JobType      string   `json:"jobType"`
		Requirements []string `json:"requirements"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "full-time", out.JobType)
	assert.Equal(t, []string{"Go", "Kubernetes"}, out.Requirements)
}

func TestJobs_GetAndDelete(t *testing.T) {
	f := newFixture(t, nil)
	id := uuid.New()
	f.jobs.items[id] = job.Posting{ID: id, Title: "Data Engineer"}

	status, env := do(t, f.app, http.MethodGet, "/api/v1/jobs/"+id.String(), "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), "Data Engineer")

	status, env = do(t, f.app, http.MethodGet, "/api/v1/jobs/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Job not found", env.Message)

	status, _ = do(t, f.app, http.MethodGet, "/api/v1/jobs/xyz", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, f.app, http.MethodDelete, "/api/v1/jobs/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, f.jobs.items)
}

func TestJobs_InternalErrorHidesCause(t *testing.T) {
	f := newFixture(t, nil)
	f.jobs.listErr = errors.New("pq: password authentication failed")

	status, env := do(t, f.app, http.MethodGet, "/api/v1/jobs", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", env.Message)
	assert.Equal(t, "null", string(env.Data))
}

func TestCandidates_UpsertAcceptsAliases(t *testing.T) {
	f := newFixture(t, nil)
	id := uuid.New()

	status, env := do(t, f.app, http.MethodPut, "/api/v1/candidates/"+id.String(),
		`{"fullName_c":"Budi","skills_c":"Go, SQL","preferred_job_types_c":"remote"}`)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, f.candidates.got)

	var out struct {
		ID                uuid.UUID `json:"id"`
		Skills            []string  `json:"skills"`
		PreferredJobTypes []string  `json:"preferredJobTypes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, id, out.ID)
	assert.Equal(t, []string{"Go", "SQL"}, out.Skills)
	assert.Equal(t, []string{"remote"}, out.PreferredJobTypes)

	status, _ = do(t, f.app, http.MethodPut, "/api/v1/candidates/"+id.String(), `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCandidates_GetNotFound(t *testing.T) {
	f := newFixture(t, nil)
	status, env := do(t, f.app, http.MethodGet, "/api/v1/candidates/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Candidate not found", env.Message)
}

func TestNotifications_ListFiltersByType(t *testing.T) {
	f := newFixture(t, nil)
	cid := uuid.New()
	f.notifications.items = []notification.Notification{
		{ID: uuid.New(), CandidateID: cid, Type: notification.TypeJobMatch, Title: "Great Match Available"},
		{ID: uuid.New(), CandidateID: cid, Type: notification.TypeGeneral, Title: "Welcome"},
	}
	base := "/api/v1/candidates/" + cid.String() + "/notifications"

	status, env := do(t, f.app, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, status)
	var data listData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 2, data.Count)

	status, env = do(t, f.app, http.MethodGet, base+"?type=job_match", "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Count)
	assert.Equal(t, notification.TypeJobMatch, f.notifications.listedType)
	assert.Contains(t, string(data.Items), `"candidateId":"`+cid.String()+`"`)
}

func TestNotifications_Lifecycle(t *testing.T) {
	f := newFixture(t, nil)
	cid := uuid.New()
	nid := uuid.New()
	f.notifications.items = []notification.Notification{{ID: nid, CandidateID: cid}}
	f.notifications.unread = 1
	base := "/api/v1/candidates/" + cid.String() + "/notifications"

	status, env := do(t, f.app, http.MethodGet, base+"/unread-count", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"count":1}`, string(env.Data))

	status, _ = do(t, f.app, http.MethodPatch, base+"/"+nid.String()+"/read", "")
	assert.Equal(t, http.StatusOK, status)

	status, env = do(t, f.app, http.MethodPatch, base+"/"+uuid.NewString()+"/read", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Notification not found", env.Message)

	status, env = do(t, f.app, http.MethodPatch, base+"/read-all", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"affected":1}`, string(env.Data))

	f.notifications.items = append(f.notifications.items, notification.Notification{ID: uuid.New(), CandidateID: cid})
	status, env = do(t, f.app, http.MethodGet, base+"/recent?limit=1", "")
	require.Equal(t, http.StatusOK, status)
	var recent listData
	require.NoError(t, json.Unmarshal(env.Data, &recent))
	assert.Equal(t, 1, recent.Count)

	status, _ = do(t, f.app, http.MethodDelete, base+"/"+nid.String(), "")
	assert.Equal(t, http.StatusNoContent, status)

	status, env = do(t, f.app, http.MethodDelete, base, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"affected":2}`, string(env.Data))
}

func TestNotifications_Create(t *testing.T) {
	f := newFixture(t, nil)
	base := "/api/v1/candidates/" + uuid.NewString() + "/notifications"

	status, _ := do(t, f.app, http.MethodPost, base, `{"title":"Hi","message":"There","priority":"urgent"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, env := do(t, f.app, http.MethodPost, base, `{"title":"Hi","message":"There"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Hi", f.notifications.draft.Title)
	assert.Contains(t, string(env.Data), `"title":"Hi"`)

	appID := uuid.New()
	status, _ = do(t, f.app, http.MethodPost, base+"/status-change",
		`{"applicationId":"`+appID.String()+`","status":"interview","jobTitle":"SRE","companyName":"Acme"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, application.StatusInterview, f.notifications.status.Status)
	assert.Equal(t, appID, f.notifications.status.ApplicationID)
}

func TestSavedJobs(t *testing.T) {
	f := newFixture(t, nil)
	jobID := uuid.New()
	base := "/api/v1/candidates/" + uuid.NewString() + "/saved-jobs"

	status, env := do(t, f.app, http.MethodGet, base+"/"+jobID.String(), "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"saved":false}`, string(env.Data))

	status, _ = do(t, f.app, http.MethodPut, base+"/"+jobID.String(), "")
	require.Equal(t, http.StatusOK, status)

	status, env = do(t, f.app, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, status)
	var data listData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Count)
	assert.Contains(t, string(data.Items), jobID.String())
}

func TestApplications(t *testing.T) {
	f := newFixture(t, nil)
	jobID := uuid.New()
	base := "/api/v1/candidates/" + uuid.NewString() + "/applications"

	status, env := do(t, f.app, http.MethodPost, base, `{"coverLetter":"hi"}`)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.JSONEq(t, `[{"field":"jobId","rule":"required"}]`, string(env.Data))

	status, env = do(t, f.app, http.MethodPost, base, `{"jobId":"`+jobID.String()+`","coverLetter":"hi"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "hi", f.applications.created.CoverLetter)
	assert.Contains(t, string(env.Data), `"status":"applied"`)

	appID := uuid.New()
	status, env = do(t, f.app, http.MethodPatch, base+"/"+appID.String(), `{"status":"interview","notes":"booked"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "interview", f.applications.update.Status)
	require.NotNil(t, f.applications.update.Notes)
	assert.Equal(t, "booked", *f.applications.update.Notes)
	assert.Contains(t, string(env.Data), `"status":"interview"`)

	status, _ = do(t, f.app, http.MethodPatch, base+"/not-a-uuid", `{"status":"interview"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = do(t, f.app, http.MethodGet, "/api/v1/jobs/"+jobID.String()+"/applications", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, jobID, f.applications.byJob)
	var list listData
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Count)
}

func TestApplications_ErrorMapping(t *testing.T) {
	f := newFixture(t, nil)
	base := "/api/v1/candidates/" + uuid.NewString() + "/applications"
	body := `{"jobId":"` + uuid.NewString() + `"}`

	f.applications.err = usecase.ErrConflict
	status, env := do(t, f.app, http.MethodPost, base, body)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Already exists", env.Message)

	f.applications.err = usecase.ErrInvalidInput
	status, _ = do(t, f.app, http.MethodPatch, base+"/"+uuid.NewString(), `{"status":"withdrawn"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	f.applications.err = usecase.ErrNotFound
	status, env = do(t, f.app, http.MethodPatch, base+"/"+uuid.NewString(), `{"status":"accepted"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Application not found", env.Message)
}
