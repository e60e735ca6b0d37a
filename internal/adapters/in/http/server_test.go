package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jobly/api"
	jobhttp "jobly/internal/adapters/in/http"
	"jobly/internal/core/application/usecases/commands"
	"jobly/internal/core/application/usecases/queries"
	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/jobs"
	"jobly/internal/pkg/auth"
	"jobly/internal/pkg/errs"
	"jobly/internal/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	e          *echo.Echo
	jobs       *MockJobRepository
	companies  *MockCompanyRepository
	health     *jobs.HealthStatus
	adminToken string
	userToken  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		jobs:      &MockJobRepository{},
		companies: &MockCompanyRepository{},
		health:    jobs.NewHealthStatus(),
	}

	authService, err := auth.NewService("test-secret", time.Hour)
	require.NoError(t, err)
	f.adminToken, err = authService.Issue("admin", true)
	require.NoError(t, err)
	f.userToken, err = authService.Issue("u1", false)
	require.NoError(t, err)

	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	server := jobhttp.NewServer(
		commands.NewCreateJobCommandHandler(f.jobs),
		commands.NewUpdateJobCommandHandler(f.jobs),
		commands.NewDeleteJobCommandHandler(f.jobs),
		commands.NewCreateCompanyCommandHandler(f.companies),
		commands.NewUpdateCompanyCommandHandler(f.companies),
		commands.NewDeleteCompanyCommandHandler(f.companies),
		queries.NewGetJobQueryHandler(f.jobs),
		queries.NewListJobsQueryHandler(f.jobs),
		queries.NewGetCompanyQueryHandler(f.companies, f.jobs),
		queries.NewListCompaniesQueryHandler(f.companies),
		f.health,
	)

	f.e, err = jobhttp.NewEcho(server, authService, doc, logging.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		f.jobs.AssertExpectations(t)
		f.companies.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func mustJob(t *testing.T, id job.ID, title string, salary int, equity, handle string) *job.Job {
	t.Helper()
	e, err := job.ParseEquity(equity)
	require.NoError(t, err)
	j, err := job.RestoreJob(id, title, &salary, &e, kernel.MustHandle(handle))
	require.NoError(t, err)
	return j
}

func errorStatus(t *testing.T, rec *httptest.ResponseRecorder) int {
	t.Helper()
	var body struct {
		Error struct {
			Message string `json:"message"`
			Status  int    `json:"status"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error.Message)
	return body.Error.Status
}

func TestCreateJob(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("Create", mock.Anything, mock.MatchedBy(func(j *job.Job) bool {
		return j.Title() == "test" && *j.Salary() == 50000 &&
			j.Equity().String() == "0.4" && j.CompanyHandle().String() == "c1"
	})).Return(mustJob(t, 4, "test", 50000, "0.4", "c1"), nil).Once()

	rec := f.do(http.MethodPost, "/jobs",
		`{"title":"test","salary":50000,"equity":0.4,"companyHandle":"c1"}`, f.adminToken)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"job":{"id":4,"title":"test","salary":50000,"equity":"0.4","companyHandle":"c1"}}`,
		rec.Body.String())
}

func TestCreateJob_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		admin  bool
		token  bool
		status int
	}{
		{"anon", `{"title":"test","companyHandle":"c1"}`, false, false, http.StatusUnauthorized},
		{"non-admin", `{"title":"test","companyHandle":"c1"}`, false, true, http.StatusUnauthorized},
		{"anon with bad body", `{"salary":"x"}`, false, false, http.StatusUnauthorized},
		{"missing data", `{"companyHandle":"c1"}`, true, true, http.StatusBadRequest},
		{"invalid salary", `{"title":"test","salary":"not-a-number","companyHandle":"c1"}`, true, true, http.StatusBadRequest},
		{"equity above one", `{"title":"test","equity":1.5,"companyHandle":"c1"}`, true, true, http.StatusBadRequest},
		{"unknown field", `{"title":"test","companyHandle":"c1","id":9}`, true, true, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			token := ""
			if tt.token {
				token = f.userToken
				if tt.admin {
					token = f.adminToken
				}
			}

			rec := f.do(http.MethodPost, "/jobs", tt.body, token)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status, errorStatus(t, rec))
		})
	}
}

func TestCreateJob_Duplicate(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("Create", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectAlreadyExistsError("job", "title=test")).Once()

	rec := f.do(http.MethodPost, "/jobs", `{"title":"test","companyHandle":"c1"}`, f.adminToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestListJobs(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("FindAll", mock.Anything, job.Filter{}).Return([]*job.Job{
		mustJob(t, 1, "J1", 1, "0.1", "c1"),
		mustJob(t, 2, "J2", 2, "0.2", "c1"),
	}, nil).Once()

	rec := f.do(http.MethodGet, "/jobs", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jobs":[
		{"id":1,"title":"J1","salary":1,"equity":"0.1","companyHandle":"c1"},
		{"id":2,"title":"J2","salary":2,"equity":"0.2","companyHandle":"c1"}
	]}`, rec.Body.String())
}

func TestListJobs_Filters(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("FindAll", mock.Anything, mock.MatchedBy(func(filter job.Filter) bool {
		return filter.Title == "j" && filter.MinSalary != nil && *filter.MinSalary == 2 && filter.HasEquity
	})).Return([]*job.Job{mustJob(t, 2, "J2", 2, "0.2", "c1")}, nil).Once()

	rec := f.do(http.MethodGet, "/jobs?title=j&minSalary=2&hasEquity=true", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"J2"`)
}

func TestListJobs_EmptyIsArray(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("FindAll", mock.Anything, mock.Anything).Return([]*job.Job{}, nil).Once()

	rec := f.do(http.MethodGet, "/jobs?title=nope", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jobs":[]}`, rec.Body.String())
}

func TestListJobs_BadFilter(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/jobs?minSalary=abc", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListJobs_StoreFailure(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("FindAll", mock.Anything, mock.Anything).
		Return([]*job.Job(nil), errs.NewStoreError("find jobs", errors.New("relation \"jobs\" does not exist"))).Once()

	rec := f.do(http.MethodGet, "/jobs", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestGetJob(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("Get", mock.Anything, job.ID(1)).Return(mustJob(t, 1, "J1", 1, "0.1", "c1"), nil).Once()
	f.jobs.On("Get", mock.Anything, job.ID(-1)).Return(nil, errs.NewObjectNotFoundError("id", -1)).Once()

	rec := f.do(http.MethodGet, "/jobs/1", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"job":{"id":1,"title":"J1","salary":1,"equity":"0.1","companyHandle":"c1"}}`,
		rec.Body.String())

	rec = f.do(http.MethodGet, "/jobs/-1", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, errorStatus(t, rec))

	rec = f.do(http.MethodGet, "/jobs/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateJob(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("Update", mock.Anything, job.ID(1), mock.MatchedBy(func(p job.Patch) bool {
		title, titleSet := p.Title()
		salary, salarySet := p.Salary()
		_, equitySet := p.Equity()
		return titleSet && title == "J-New" && salarySet && salary == nil && !equitySet
	})).Return(mustJob(t, 1, "J-New", 1, "0.1", "c1"), nil).Once()

	rec := f.do(http.MethodPatch, "/jobs/1", `{"title":"J-New","salary":null}`, f.adminToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"J-New"`)
}

func TestUpdateJob_KeepsFieldOrder(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("Update", mock.Anything, job.ID(1), mock.MatchedBy(func(p job.Patch) bool {
		return assert.ObjectsAreEqual([]string{job.FieldEquity, job.FieldSalary, job.FieldTitle}, p.Fields())
	})).Return(mustJob(t, 1, "J-New", 5, "0.2", "c1"), nil).Once()

	rec := f.do(http.MethodPatch, "/jobs/1", `{"equity":0.2,"salary":5,"title":"J-New"}`, f.adminToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateJob_Equity(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("Update", mock.Anything, job.ID(1), mock.MatchedBy(func(p job.Patch) bool {
		e, ok := p.Equity()
		return ok && e != nil && e.String() == "0.9"
	})).Return(mustJob(t, 1, "J1", 1, "0.9", "c1"), nil).Once()

	rec := f.do(http.MethodPatch, "/jobs/1", `{"equity":0.9}`, f.adminToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"equity":"0.9"`)
}

func TestUpdateJob_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		token  func(f *fixture) string
		status int
	}{
		{"anon", "/jobs/1", `{"title":"J-New"}`, func(*fixture) string { return "" }, http.StatusUnauthorized},
		{"non-admin", "/jobs/1", `{"title":"J-New"}`, func(f *fixture) string { return f.userToken }, http.StatusUnauthorized},
		{"id change", "/jobs/1", `{"id":50}`, func(f *fixture) string { return f.adminToken }, http.StatusBadRequest},
		{"company change", "/jobs/1", `{"companyHandle":"c2"}`, func(f *fixture) string { return f.adminToken }, http.StatusBadRequest},
		{"wrong type", "/jobs/1", `{"title":55}`, func(f *fixture) string { return f.adminToken }, http.StatusBadRequest},
		{"bad token", "/jobs/1", `{"title":"J-New"}`, func(*fixture) string { return "not.a.jwt" }, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(http.MethodPatch, tt.target, tt.body, tt.token(f))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestUpdateJob_NotFound(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("Update", mock.Anything, job.ID(0), mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("id", 0)).Once()

	rec := f.do(http.MethodPatch, "/jobs/0", `{"title":"new nope"}`, f.adminToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateJob_EmptyBody(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("Update", mock.Anything, job.ID(1), job.Patch{}).
		Return(nil, errs.NewEmptyUpdateError("job")).Maybe()

	rec := f.do(http.MethodPatch, "/jobs/1", `{}`, f.adminToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteJob(t *testing.T) {
	f := newFixture(t)
	f.jobs.On("Delete", mock.Anything, job.ID(1)).Return(nil).Once()
	f.jobs.On("Delete", mock.Anything, job.ID(0)).Return(errs.NewObjectNotFoundError("id", 0)).Once()

	rec := f.do(http.MethodDelete, "/jobs/1", "", f.adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":"1"}`, rec.Body.String())

	rec = f.do(http.MethodDelete, "/jobs/0", "", f.adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodDelete, "/jobs/1", "", f.userToken)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodDelete, "/jobs/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCompany_WithJobs(t *testing.T) {
	f := newFixture(t)
	c1, err := company.RestoreCompany(kernel.MustHandle("c1"), "C1", "Desc1", intPtr(1), nil)
	require.NoError(t, err)
	f.companies.On("Get", mock.Anything, kernel.MustHandle("c1")).Return(c1, nil).Once()
	f.jobs.On("ListByCompany", mock.Anything, kernel.MustHandle("c1")).
		Return([]*job.Job{mustJob(t, 1, "J1", 1, "0.1", "c1")}, nil).Once()

	rec := f.do(http.MethodGet, "/companies/c1", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"company":{
		"handle":"c1","name":"C1","description":"Desc1","numEmployees":1,"logoUrl":null,
		"jobs":[{"id":1,"title":"J1","salary":1,"equity":"0.1","companyHandle":"c1"}]
	}}`, rec.Body.String())
}

func TestGetCompany_NotFound(t *testing.T) {
	f := newFixture(t)
	f.companies.On("Get", mock.Anything, kernel.MustHandle("nope")).
		Return(nil, errs.NewObjectNotFoundError("handle", "nope")).Once()

	rec := f.do(http.MethodGet, "/companies/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCompany(t *testing.T) {
	f := newFixture(t)
	created, err := company.RestoreCompany(kernel.MustHandle("new"), "New", "DescNew", intPtr(10), nil)
	require.NoError(t, err)
	f.companies.On("Create", mock.Anything, mock.MatchedBy(func(c *company.Company) bool {
		return c.Handle().String() == "new" && c.Name() == "New"
	})).Return(created, nil).Once()

	rec := f.do(http.MethodPost, "/companies",
		`{"handle":"new","name":"New","description":"DescNew","numEmployees":10}`, f.adminToken)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"company":{"handle":"new","name":"New","description":"DescNew","numEmployees":10,"logoUrl":null}}`,
		rec.Body.String())
}

func TestUpdateCompany(t *testing.T) {
	f := newFixture(t)
	updated, err := company.RestoreCompany(kernel.MustHandle("c1"), "C1-new", "Desc1", nil, nil)
	require.NoError(t, err)
	f.companies.On("Update", mock.Anything, kernel.MustHandle("c1"), mock.MatchedBy(func(p company.Patch) bool {
		var fields []string
		p.Each(func(field string, _ any) { fields = append(fields, field) })
		return assert.ObjectsAreEqual([]string{company.FieldNumEmployees, company.FieldName}, fields)
	})).Return(updated, nil).Once()

	rec := f.do(http.MethodPatch, "/companies/c1", `{"numEmployees":null,"name":"C1-new"}`, f.adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"C1-new"`)

	rec = f.do(http.MethodPatch, "/companies/c1", `{"handle":"c1-new"}`, f.adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCompany(t *testing.T) {
	f := newFixture(t)
	f.companies.On("Delete", mock.Anything, kernel.MustHandle("c1")).Return(nil).Once()

	rec := f.do(http.MethodDelete, "/companies/c1", "", f.adminToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":"c1"}`, rec.Body.String())
}

func TestListCompanies_InvalidRange(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/companies?minEmployees=10&maxEmployees=1", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	f.health.Register("postgres")

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	f.health.Record("postgres", nil, time.Now())
	rec = f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/no-such-path", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, errorStatus(t, rec))
}
