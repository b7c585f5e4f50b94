// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"image"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

const testSignKey = "handler-test-key"

var (
	testOwner  = models.User{ID: 1, Name: "Owner", Email: "owner@example.com"}
	testReader = models.User{ID: 2, Name: "Reader", Email: "reader@example.com"}
)

// fakeAuthService resolves the token "owner" to testOwner and "reader" to
// testReader unless currentUserFn is set. Other methods can be overridden
// per test case.
type fakeAuthService struct {
	registerUserFn  func(ctx context.Context, form models.RegisterForm) (models.User, error)
	loginFn         func(ctx context.Context, form models.LoginForm) (models.User, error)
	createSessionFn func(ctx context.Context, user models.User) (models.Session, error)
	currentUserFn   func(ctx context.Context, token string) models.User
	logoutFn        func(ctx context.Context, token string) error
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error) {
	return f.registerUserFn(ctx, form)
}

func (f *fakeAuthService) Login(ctx context.Context, form models.LoginForm) (models.User, error) {
	return f.loginFn(ctx, form)
}

func (f *fakeAuthService) CreateSession(ctx context.Context, user models.User) (models.Session, error) {
	if f.createSessionFn != nil {
		return f.createSessionFn(ctx, user)
	}
	return models.Session{ID: "s", UserID: user.ID, Token: "token-of-" + user.Name, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeAuthService) CurrentUser(ctx context.Context, token string) models.User {
	if f.currentUserFn != nil {
		return f.currentUserFn(ctx, token)
	}
	switch token {
	case "owner":
		return testOwner
	case "reader":
		return testReader
	}
	return models.User{}
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	if f.logoutFn != nil {
		return f.logoutFn(ctx, token)
	}
	return nil
}

func (f *fakeAuthService) AuthorizeOwner(_ context.Context, user models.User) error {
	if !user.IsAuthenticated() {
		return service.ErrUnauthorized
	}
	if user.ID != testOwner.ID {
		return service.ErrForbidden
	}
	return nil
}

func (f *fakeAuthService) Owner(context.Context) (models.User, error) {
	return testOwner, nil
}

type fakePostService struct {
	listPostsFn  func(ctx context.Context) ([]models.Post, error)
	getPostFn    func(ctx context.Context, id int64) (models.Post, error)
	createPostFn func(ctx context.Context, form models.PostForm, authorID int64) (models.Post, error)
	updatePostFn func(ctx context.Context, id int64, form models.PostForm) (models.Post, error)
	deletePostFn func(ctx context.Context, id int64) error
}

func (f *fakePostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return f.listPostsFn(ctx)
}

func (f *fakePostService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return f.getPostFn(ctx, id)
}

func (f *fakePostService) CreatePost(ctx context.Context, form models.PostForm, authorID int64) (models.Post, error) {
	return f.createPostFn(ctx, form, authorID)
}

func (f *fakePostService) UpdatePost(ctx context.Context, id int64, form models.PostForm) (models.Post, error) {
	return f.updatePostFn(ctx, id, form)
}

func (f *fakePostService) DeletePost(ctx context.Context, id int64) error {
	return f.deletePostFn(ctx, id)
}

type fakeCommentService struct {
	listCommentsFn func(ctx context.Context, postID int64) ([]models.Comment, error)
	addCommentFn   func(ctx context.Context, postID, authorID int64, form models.CommentForm) (models.Comment, error)
}

func (f *fakeCommentService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	if f.listCommentsFn != nil {
		return f.listCommentsFn(ctx, postID)
	}
	return nil, nil
}

func (f *fakeCommentService) AddComment(ctx context.Context, postID, authorID int64, form models.CommentForm) (models.Comment, error) {
	return f.addCommentFn(ctx, postID, authorID, form)
}

type fakeAvatarService struct {
	sizes []int
}

func (f *fakeAvatarService) Generate(size int) image.Image {
	f.sizes = append(f.sizes, size)
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

type fakeAppInfoService struct {
	info models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppBuildInfo(context.Context) models.AppBuildInfo {
	return f.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth     *fakeAuthService
	posts    *fakePostService
	comments *fakeCommentService
	avatars  *fakeAvatarService
}

func newTestServices() *testServices {
	return &testServices{
		auth:     &fakeAuthService{},
		posts:    &fakePostService{},
		comments: &fakeCommentService{},
		avatars:  &fakeAvatarService{},
	}
}

// newTestHandler builds a Handler over the fakes with real templates.
func newTestHandler(t *testing.T, s *testServices) *Handler {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	svcs := &service.Services{
		AuthService:    s.auth,
		PostService:    s.posts,
		CommentService: s.comments,
		AvatarService:  s.avatars,
		AppInfoService: &fakeAppInfoService{info: models.AppBuildInfo{Version: "1.2.3", Date: "2026-01-01", Commit: "abc"}},
	}
	cfg := &config.StructuredConfig{
		App:    config.App{SessionSignKey: testSignKey},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}

	return NewHandler(svcs, renderer, cfg, logger.Nop())
}

// serve runs req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// formRequest builds a urlencoded POST request.
func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// withSessionCookie attaches a session cookie understood by fakeAuthService.
func withSessionCookie(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	return req
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// flashesOf decodes the flash cookie set on rec.
func flashesOf(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()

	cookie := findCookie(rec, flashCookieName)
	require.NotNil(t, cookie, "flash cookie not set")

	messages, err := utils.ParseFlashToken(cookie.Value, testSignKey)
	require.NoError(t, err)
	return messages
}

// injectLogger puts a buffer-backed logger into the request context the same
// way withTraceID does.
func injectLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	return r.WithContext(l.WithContext(r.Context()))
}
