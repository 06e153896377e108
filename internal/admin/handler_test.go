package admin

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tarot-app/account-api/internal/apierr"
	"github.com/tarot-app/account-api/internal/logging"
	"github.com/tarot-app/account-api/internal/token"
)

var secret = []byte("admin-secret")

type recordingService struct {
	login  *LoginRequest
	action *ActionRequest
}

func (s *recordingService) Login(_ context.Context, req LoginRequest) (token.ServerProvided, error) {
	s.login = &req
	return token.ServerProvided{AccessToken: "issued", ExpiresIn: 3600}, nil
}

func (s *recordingService) PostAction(_ context.Context, req ActionRequest) (GlobalBasicInfo, error) {
	s.action = &req
	return GlobalBasicInfo{TotalUserNum: 10, CurrentUserNum: 3, TotalVipNums: []int{1}, CurrentVipNums: []int{0}, UsagePercentage: 0.3}, nil
}

func newApp(svc Service, verifier token.Verifier) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apierr.Handler(logging.Discard())})
	h := NewHandler(svc, verifier)
	app.Post("/login", h.Login)
	app.Post("/action", h.Action)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, raw
}

func signed(t *testing.T, role string) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "admin-1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func actionBody(tok string) string {
	return `{"requireTime":1700000000,"command":"stats","AdminSubmittedToken":{"access_token":"` + tok + `"}}`
}

func TestUnimplementedServiceReturns501(t *testing.T) {
	app := newApp(Unimplemented{}, nil)

	for path, body := range map[string]string{
		"/login":  `{"userID":"root","loginPwd":"pw"}`,
		"/action": actionBody("abc.def.ghi"),
	} {
		status, raw := post(t, app, path, body)
		if status != fiber.StatusNotImplemented {
			t.Fatalf("%s: expected 501, got %d (%s)", path, status, raw)
		}
		var de apierr.DataError
		if err := json.Unmarshal(raw, &de); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		if de.Status != "error" || de.Code != apierr.CodeNotImplemented {
			t.Fatalf("%s: unexpected body %+v", path, de)
		}
	}
}

func TestLoginPassesCredentials(t *testing.T) {
	svc := &recordingService{}
	status, raw := post(t, newApp(svc, nil), "/login", `{"userID":"root","loginPwd":"pw"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, raw)
	}
	if svc.login == nil || svc.login.UserID != "root" || svc.login.Password != "pw" {
		t.Fatalf("unexpected login request %+v", svc.login)
	}
	var issued token.ServerProvided
	if err := json.Unmarshal(raw, &issued); err != nil || issued.AccessToken != "issued" || issued.ExpiresIn != 3600 {
		t.Fatalf("unexpected response %s (%v)", raw, err)
	}
}

func TestLoginRejectsMissingPassword(t *testing.T) {
	svc := &recordingService{}
	status, _ := post(t, newApp(svc, nil), "/login", `{"userID":"root"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", status)
	}
	if svc.login != nil {
		t.Fatal("service must not be called for invalid input")
	}
}

func TestLoginAcceptsEmptyStrings(t *testing.T) {
	svc := &recordingService{}
	status, raw := post(t, newApp(svc, nil), "/login", `{"userID":"","loginPwd":""}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, raw)
	}
	if svc.login == nil || svc.login.UserID != "" || svc.login.Password != "" {
		t.Fatalf("unexpected login request %+v", svc.login)
	}
}

func TestActionConvertsPack(t *testing.T) {
	svc := &recordingService{}
	status, raw := post(t, newApp(svc, nil), "/action", actionBody("abc.def.ghi"))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, raw)
	}
	if svc.action == nil || svc.action.Command != "stats" || svc.action.RequireTime != 1700000000 || svc.action.Token.Value() != "abc.def.ghi" {
		t.Fatalf("unexpected action request %+v", svc.action)
	}
	if !strings.Contains(string(raw), `"useagePercentage":0.3`) {
		t.Fatalf("expected original wire name in %s", raw)
	}
}

func TestActionRequiresNestedToken(t *testing.T) {
	status, _ := post(t, newApp(&recordingService{}, nil), "/action", `{"requireTime":1,"command":"stats"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", status)
	}
}

func TestActionVerifiesToken(t *testing.T) {
	verifier := token.NewHMACVerifier(secret)

	cases := []struct {
		name   string
		tok    string
		status int
		called bool
	}{
		{"admin role", signed(t, token.RoleAdmin), fiber.StatusOK, true},
		{"user role", signed(t, "user"), fiber.StatusForbidden, false},
		{"unsigned garbage", "abc.def.ghi", fiber.StatusUnauthorized, false},
		{"empty token", "", fiber.StatusUnauthorized, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &recordingService{}
			status, raw := post(t, newApp(svc, verifier), "/action", actionBody(tc.tok))
			if status != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, status, raw)
			}
			if (svc.action != nil) != tc.called {
				t.Fatalf("service called = %v, want %v", svc.action != nil, tc.called)
			}
		})
	}
}
