package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "oilsaas/internal/errors"
	"oilsaas/internal/handler"
	"oilsaas/internal/router"
	"oilsaas/internal/service"
)

// ----- service stubs -----

type stubAuth struct {
	result *service.AuthResult
	err    error
}

func (s stubAuth) SignUp(ctx context.Context, name, email, password, company string) (*service.AuthResult, error) {
	return s.result, s.err
}

func (s stubAuth) SignIn(ctx context.Context, email, password string) (*service.AuthResult, error) {
	return s.result, s.err
}

type stubBlog struct {
	id, slug string
	posts    []map[string]interface{}
	err      error

	gotLimit int
}

func (s *stubBlog) Create(ctx context.Context, in service.BlogCreateInput) (string, string, error) {
	return s.id, s.slug, s.err
}

func (s *stubBlog) List(ctx context.Context, limit int) ([]map[string]interface{}, error) {
	s.gotLimit = limit
	return s.posts, s.err
}

type stubContact struct {
	id  string
	err error
}

func (s stubContact) Submit(ctx context.Context, in service.ContactInput) (string, error) {
	return s.id, s.err
}

type stubPricing struct {
	plans []map[string]interface{}
	err   error
}

func (s stubPricing) List(ctx context.Context) ([]map[string]interface{}, error) {
	return s.plans, s.err
}

func (s stubPricing) Seed(ctx context.Context) (int, error) {
	return 0, s.err
}

type stubStatus struct {
	report service.StatusReport
}

func (s stubStatus) Check(ctx context.Context) service.StatusReport {
	return s.report
}

type deps struct {
	auth    service.AuthService
	blog    service.BlogService
	contact service.ContactService
	pricing service.PricingService
	status  service.StatusService
}

func newServer(d deps) *echo.Echo {
	if d.auth == nil {
		d.auth = stubAuth{}
	}
	if d.blog == nil {
		d.blog = &stubBlog{}
	}
	if d.contact == nil {
		d.contact = stubContact{}
	}
	if d.pricing == nil {
		d.pricing = stubPricing{}
	}
	if d.status == nil {
		d.status = stubStatus{}
	}

	e := echo.New()
	router.Register(
		e,
		handler.NewAuthHandler(d.auth),
		handler.NewBlogHandler(d.blog),
		handler.NewContactHandler(d.contact),
		handler.NewPricingHandler(d.pricing),
		handler.NewStatusHandler(d.status),
	)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// ----- tests -----

func TestRoot(t *testing.T) {
	rec := doJSON(newServer(deps{}), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Oil SaaS API running", body["message"])
}

func TestHealthz(t *testing.T) {
	rec := doJSON(newServer(deps{}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSignUpOK(t *testing.T) {
	e := newServer(deps{auth: stubAuth{result: &service.AuthResult{
		UserID: "userauth:1",
		Name:   "Jane",
		Email:  "jane@example.com",
		Token:  "tok",
	}}})

	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"name":"Jane","email":"jane@example.com","password":"hunter2"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "userauth:1", body["user_id"])
	assert.Equal(t, "tok", body["token"])
	assert.Contains(t, body, "company")
}

func TestSignUpEmailTaken(t *testing.T) {
	e := newServer(deps{auth: stubAuth{err: apperrors.ErrEmailTaken}})

	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"name":"Jane","email":"jane@example.com","password":"hunter2"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "EMAIL_TAKEN", body["code"])
}

func TestSignUpInvalidEmail(t *testing.T) {
	rec := doJSON(newServer(deps{}), http.MethodPost, "/api/auth/signup",
		`{"name":"Jane","email":"not-an-email","password":"hunter2"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpMissingFields(t *testing.T) {
	rec := doJSON(newServer(deps{}), http.MethodPost, "/api/auth/signup", `{"email":"jane@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignInUnknownEmail(t *testing.T) {
	e := newServer(deps{auth: stubAuth{err: apperrors.ErrUserNotFound}})

	rec := doJSON(e, http.MethodPost, "/api/auth/signin",
		`{"email":"nobody@example.com","password":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignInWrongPassword(t *testing.T) {
	e := newServer(deps{auth: stubAuth{err: apperrors.ErrInvalidCredentials}})

	rec := doJSON(e, http.MethodPost, "/api/auth/signin",
		`{"email":"jane@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBlogCreate(t *testing.T) {
	e := newServer(deps{blog: &stubBlog{id: "blogpost:1", slug: "hello-world"}})

	rec := doJSON(e, http.MethodPost, "/api/blog",
		`{"title":"Hello World","content":"body","author":"jane"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "blogpost:1", body["id"])
	assert.Equal(t, "hello-world", body["slug"])
}

func TestBlogCreateMissingTitle(t *testing.T) {
	rec := doJSON(newServer(deps{}), http.MethodPost, "/api/blog",
		`{"content":"body","author":"jane"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBlogListLimit(t *testing.T) {
	blog := &stubBlog{posts: []map[string]interface{}{{"id": "blogpost:1", "title": "One"}}}
	e := newServer(deps{blog: blog})

	rec := doJSON(e, http.MethodGet, "/api/blog?limit=3", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, blog.gotLimit)

	var posts []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Len(t, posts, 1)
}

func TestBlogListDefaultLimit(t *testing.T) {
	blog := &stubBlog{}
	e := newServer(deps{blog: blog})

	rec := doJSON(e, http.MethodGet, "/api/blog", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, blog.gotLimit)

	// garbage limits fall back to the default instead of failing
	rec = doJSON(e, http.MethodGet, "/api/blog?limit=abc", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, blog.gotLimit)
}

func TestContactSubmit(t *testing.T) {
	e := newServer(deps{contact: stubContact{id: "contactmessage:1"}})

	rec := doJSON(e, http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","message":"hi"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "contactmessage:1", body["id"])
}

func TestPricingList(t *testing.T) {
	e := newServer(deps{pricing: stubPricing{plans: []map[string]interface{}{
		{"id": "pricingplan:1", "name": "Starter"},
		{"id": "pricingplan:2", "name": "Pro"},
		{"id": "pricingplan:3", "name": "Enterprise"},
	}}})

	rec := doJSON(e, http.MethodGet, "/api/pricing", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var plans []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plans))
	assert.Len(t, plans, 3)
}

func TestDiagnostic(t *testing.T) {
	e := newServer(deps{status: stubStatus{report: service.StatusReport{
		Backend:          "Running",
		Database:         "Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}}})

	rec := doJSON(e, http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Running", body["backend"])
	assert.Contains(t, body, "collections")
}

func TestCORSHeaders(t *testing.T) {
	e := newServer(deps{})

	req := httptest.NewRequest(http.MethodOptions, "/api/pricing", nil)
	req.Header.Set(echo.HeaderOrigin, "https://example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
