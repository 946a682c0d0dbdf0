package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"agrifarma/internal/delivery/web/flash"
	webmiddleware "agrifarma/internal/delivery/web/middleware"
	"agrifarma/internal/domain/entity"
	domainerrors "agrifarma/internal/domain/errors"
	mockusecase "agrifarma/internal/mocks/usecase"
	"agrifarma/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	*webHarness
	accountUC *mockusecase.MockAccountUsecase
	sessionUC *mockusecase.MockSessionUsecase
}

func newAccountFixture(t *testing.T) *accountFixture {
	f := &accountFixture{
		webHarness: newWebHarness(t),
		accountUC:  mockusecase.NewMockAccountUsecase(t),
		sessionUC:  mockusecase.NewMockSessionUsecase(t),
	}

	h := NewAccountHandler(AccountHandlerParams{
		AccountUC: f.accountUC,
		SessionUC: f.sessionUC,
		Config:    testConfig(),
		Logger:    discardLogger,
	})
	f.e.GET("/login", h.ShowLogin)
	f.e.POST("/login", h.Login)
	f.e.POST("/register", h.Register)
	f.e.GET("/logout", h.Logout)
	f.e.GET("/dashboard", h.Dashboard)

	return f
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == webmiddleware.SessionCookieName {
			found = cookie
		}
	}

	return found
}

func TestAccountHandler_Login(t *testing.T) {
	expires := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name     string
		next     string
		wantPath string
	}{
		{name: "defaults to dashboard", wantPath: "/dashboard"},
		{name: "follows local next", next: "/cart", wantPath: "/cart"},
		{name: "ignores foreign next", next: "https://evil.example/cart", wantPath: "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)
			f.sessionUC.EXPECT().
				Login(mock.Anything, &usecase.LoginInput{Email: "ali@example.com", Password: "secret1"}).
				Return(&usecase.LoginOutput{Token: "raw-token", Session: &entity.Session{ExpiresAt: expires}}, nil)

			rec := f.postForm("/login", url.Values{
				"email":    {"ali@example.com"},
				"password": {"secret1"},
				"next":     {tt.next},
			})

			f.requireRedirect(rec, tt.wantPath, flash.Success, "Login successful!")
			cookie := sessionCookie(rec)
			require.NotNil(t, cookie)
			assert.Equal(t, "raw-token", cookie.Value)
			assert.True(t, cookie.HttpOnly)
		})
	}
}

func TestAccountHandler_Login_InvalidCredentialsKeepsNext(t *testing.T) {
	f := newAccountFixture(t)
	f.sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := f.postForm("/login", url.Values{"email": {"ali@example.com"}, "password": {"nope"}, "next": {"/orders"}})

	f.requireRedirect(rec, "/login?next=%2Forders", flash.Danger, "Invalid credentials!")
	assert.Nil(t, sessionCookie(rec))
}

func TestAccountHandler_Login_MissingFields(t *testing.T) {
	f := newAccountFixture(t)
	f.sessionUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrValidationFailed)

	rec := f.postForm("/login", url.Values{})

	f.requireRedirect(rec, "/login", flash.Danger, "Please enter both email and password.")
}

func TestAccountHandler_ShowLogin_DropsForeignNext(t *testing.T) {
	f := newAccountFixture(t)

	rec := f.get("/login?next=//evil.example")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "login", f.renderer.name)
	assert.Equal(t, LoginView{Next: ""}, f.renderer.page.Data)
}

func TestAccountHandler_Register(t *testing.T) {
	f := newAccountFixture(t)
	f.accountUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Username == "ali" && in.Email == "ali@example.com" && in.Location == "Multan" && !in.ProfilePicture.Present()
		})).
		Return(&entity.User{Username: "ali"}, nil)

	rec := f.postForm("/register", url.Values{
		"username": {"ali"},
		"email":    {"ali@example.com"},
		"password": {"secret1"},
		"location": {"Multan"},
	})

	f.requireRedirect(rec, "/login", flash.Success, "Registration successful! Please login.")
}

func TestAccountHandler_Register_Duplicate(t *testing.T) {
	f := newAccountFixture(t)
	f.accountUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := f.postForm("/register", url.Values{"username": {"ali"}, "email": {"ali@example.com"}, "password": {"secret1"}})

	f.requireRedirect(rec, "/register", flash.Warning, "Email or username already exists!")
}

func TestAccountHandler_Logout(t *testing.T) {
	f := newAccountFixture(t)
	f.sessionUC.EXPECT().Logout(mock.Anything, "raw-token").Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: webmiddleware.SessionCookieName, Value: "raw-token"})
	rec := f.do(req)

	f.requireRedirect(rec, "/login", flash.Info, "You have been logged out.")
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAccountHandler_Dashboard(t *testing.T) {
	f := newAccountFixture(t)
	userID := f.login()
	dashboard := &usecase.DashboardOutput{User: &entity.User{ID: userID, Username: "farmer"}}
	f.accountUC.EXPECT().Dashboard(mock.Anything, userID).Return(dashboard, nil)

	rec := f.get("/dashboard")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dashboard", f.renderer.name)
	assert.Same(t, dashboard, f.renderer.page.Data)
	assert.True(t, f.renderer.page.LoggedIn())
}

func TestAccountHandler_Dashboard_UserGone(t *testing.T) {
	f := newAccountFixture(t)
	userID := f.login()
	f.accountUC.EXPECT().Dashboard(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound)

	rec := f.get("/dashboard")

	f.requireRedirect(rec, "/logout", flash.Danger, "User not found. Please login again.")
}
