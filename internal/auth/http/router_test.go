package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	authhttp "github.com/codezen-labs/codezen/internal/auth/http"
	"github.com/codezen-labs/codezen/internal/auth/service"
	"github.com/codezen-labs/codezen/internal/auth/store/drivers/sqlite"
	"github.com/codezen-labs/codezen/pkg/authsdk"
	"github.com/codezen-labs/codezen/pkg/cryptox"
	"github.com/codezen-labs/codezen/pkg/httpx"
	"github.com/codezen-labs/codezen/pkg/jwtx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "authhttp-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// Per-IP limits would trip across subtests sharing 127.0.0.1; throttling
	// itself is covered in httpx.
	generous := httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	httpx.StrictLimit = generous
	httpx.ModerateLimit = generous
	httpx.LenientLimit = generous

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	client *authsdk.Client
	tokens *service.TokenService
	url    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "auth.db") + "?_busy_timeout=5000"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	secret := []byte("http-test-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	tokens := &service.TokenService{
		Signer:   signer,
		Verifier: jwtx.NewVerifierHS256(secret, "codezen-auth"),
		Issuer:   "codezen-auth",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := authhttp.NewRouter(tokens.Verifier, "test", []string{"http://localhost:3000"}, st, logger)
	router.AuthService = service.NewAuthService(st, tokens)
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		client: authsdk.NewClient(srv.URL),
		tokens: tokens,
		url:    srv.URL,
	}
}

func register(t *testing.T, ts *testServer, email string) *authsdk.AuthResponse {
	t.Helper()

	resp, err := ts.client.Register(context.Background(), authsdk.RegisterRequest{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     email,
		Password:  "secret1",
	})
	require.NoError(t, err)
	return resp
}

func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, message, apiErr.Message)
}

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	t.Run("creates an account and returns a token", func(t *testing.T) {
		resp := register(t, ts, "Ann@X.com")

		require.Equal(t, "Registration successful", resp.Message)
		require.Equal(t, "ann@x.com", resp.User.Email)
		require.NotEmpty(t, resp.User.ID)
		require.NotEmpty(t, resp.Token)

		claims, err := ts.tokens.Verify(resp.Token)
		require.NoError(t, err)
		require.Equal(t, resp.User.ID, claims.Subject)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := ts.client.Register(ctx, authsdk.RegisterRequest{
			FirstName: "Imposter",
			LastName:  "Lee",
			Email:     "ANN@x.com",
			Password:  "other",
		})
		requireAPIError(t, err, http.StatusConflict, "User already exists. Please login.")
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := ts.client.Register(ctx, authsdk.RegisterRequest{
			FirstName: "NoEmail",
			LastName:  "User",
			Password:  "pw",
		})
		requireAPIError(t, err, http.StatusBadRequest, "All input fields are required")
	})

	t.Run("response never carries the password", func(t *testing.T) {
		resp, err := http.Post(ts.url+"/auth/register", "application/json",
			nil)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NotContains(t, string(body), "password")
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	registered := register(t, ts, "ann@x.com")

	t.Run("valid credentials log in", func(t *testing.T) {
		resp, err := ts.client.Login(ctx, authsdk.LoginRequest{
			Email:    "Ann@X.com",
			Password: "secret1",
		})
		require.NoError(t, err)
		require.Equal(t, "Login successful", resp.Message)
		require.Equal(t, registered.User.ID, resp.User.ID)
		require.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password and unknown email share one answer", func(t *testing.T) {
		_, errWrongPw := ts.client.Login(ctx, authsdk.LoginRequest{
			Email:    "ann@x.com",
			Password: "nope",
		})
		_, errNoUser := ts.client.Login(ctx, authsdk.LoginRequest{
			Email:    "nobody@x.com",
			Password: "secret1",
		})

		requireAPIError(t, errWrongPw, http.StatusBadRequest, "Invalid email or password")
		requireAPIError(t, errNoUser, http.StatusBadRequest, "Invalid email or password")
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := ts.client.Login(ctx, authsdk.LoginRequest{Email: "ann@x.com"})
		requireAPIError(t, err, http.StatusBadRequest, "All input fields are required")
	})
}

func TestProfileEndpoints(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	registered := register(t, ts, "ann@x.com")

	t.Run("get returns the authenticated identity", func(t *testing.T) {
		user, err := ts.client.GetProfile(ctx, registered.Token)
		require.NoError(t, err)
		require.Equal(t, registered.User.ID, user.ID)
		require.Equal(t, "Ann", user.FirstName)
		require.Equal(t, "ann@x.com", user.Email)
	})

	t.Run("update merges provided fields only", func(t *testing.T) {
		resp, err := ts.client.UpdateProfile(ctx, registered.Token, authsdk.UpdateProfileRequest{
			FirstName:      "Anne",
			ProfilePicture: "https://x.com/a.png",
		})
		require.NoError(t, err)
		require.Equal(t, "Profile updated successfully", resp.Message)
		require.Equal(t, "Anne", resp.User.FirstName)
		require.Equal(t, "Lee", resp.User.LastName)
		require.Equal(t, "https://x.com/a.png", resp.User.ProfilePicture)
	})

	t.Run("missing token is forbidden", func(t *testing.T) {
		_, err := ts.client.GetProfile(ctx, "")
		requireAPIError(t, err, http.StatusForbidden, "A token is required for authentication")
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		_, err := ts.client.GetProfile(ctx, "not.a.jwt")
		requireAPIError(t, err, http.StatusUnauthorized, "Invalid Token")
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		issuedAt := time.Now().UTC().Add(-25 * time.Hour)
		claims := jwtx.NewSessionClaims(
			registered.User.ID, "ann@x.com", "codezen-auth",
			jwtx.DefaultSessionTokenTTL, issuedAt,
		)
		expired, err := ts.tokens.Signer.Sign(claims)
		require.NoError(t, err)

		_, err = ts.client.GetProfile(ctx, expired)
		requireAPIError(t, err, http.StatusUnauthorized, "Invalid Token")
	})

	t.Run("token signed with another secret is unauthorized", func(t *testing.T) {
		otherSigner, err := jwtx.NewSignerHS256([]byte("some-other-secret"))
		require.NoError(t, err)

		claims := jwtx.NewSessionClaims(
			registered.User.ID, "ann@x.com", "codezen-auth",
			jwtx.DefaultSessionTokenTTL, time.Now().UTC(),
		)
		forged, err := otherSigner.Sign(claims)
		require.NoError(t, err)

		_, err = ts.client.GetProfile(ctx, forged)
		requireAPIError(t, err, http.StatusUnauthorized, "Invalid Token")
	})
}

func TestChangePasswordEndpoint(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	registered := register(t, ts, "ann@x.com")

	t.Run("wrong current password is rejected", func(t *testing.T) {
		_, err := ts.client.ChangePassword(ctx, registered.Token, authsdk.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "newpass",
		})
		requireAPIError(t, err, http.StatusBadRequest, "Current password is incorrect")
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		_, err := ts.client.ChangePassword(ctx, registered.Token, authsdk.ChangePasswordRequest{
			NewPassword: "newpass",
		})
		requireAPIError(t, err, http.StatusBadRequest, "All input fields are required")
	})

	t.Run("correct current password swaps credentials", func(t *testing.T) {
		resp, err := ts.client.ChangePassword(ctx, registered.Token, authsdk.ChangePasswordRequest{
			CurrentPassword: "secret1",
			NewPassword:     "newpass",
		})
		require.NoError(t, err)
		require.Equal(t, "Password changed successfully", resp.Message)

		_, err = ts.client.Login(ctx, authsdk.LoginRequest{Email: "ann@x.com", Password: "newpass"})
		require.NoError(t, err)

		_, err = ts.client.Login(ctx, authsdk.LoginRequest{Email: "ann@x.com", Password: "secret1"})
		requireAPIError(t, err, http.StatusBadRequest, "Invalid email or password")
	})

	t.Run("existing token still works after the change", func(t *testing.T) {
		user, err := ts.client.GetProfile(ctx, registered.Token)
		require.NoError(t, err)
		require.Equal(t, registered.User.ID, user.ID)
	})
}

func TestSystemEndpoints(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ctx := context.Background()

	t.Run("root banner", func(t *testing.T) {
		resp, err := http.Get(ts.url + "/")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "API is running", string(body))
	})

	t.Run("health reports healthy", func(t *testing.T) {
		resp, err := ts.client.Health(ctx)
		require.NoError(t, err)
		require.Equal(t, "healthy", resp.Status)
		require.Equal(t, "Server is running properly", resp.Message)
	})

	t.Run("livez reports version", func(t *testing.T) {
		resp, err := http.Get(ts.url + "/livez")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("preflight allows the configured origin", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodOptions, ts.url+"/auth/login", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, "http://localhost:3000",
			resp.Header.Get("Access-Control-Allow-Origin"))
	})
}
