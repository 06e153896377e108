package validation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/tarot-app/account-api/internal/apierr"
	"github.com/tarot-app/account-api/internal/token"
)

type samplePayload struct {
	RequireTime *int64       `json:"requireTime" validate:"required"`
	UserID      *string      `json:"userID" validate:"required"`
	Email       *string      `json:"userEmail"`
	AccessToken *token.Token `json:"access_token" validate:"required"`
}

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			resolved := apierr.Resolve(err)
			return c.Status(resolved.Status).JSON(apierr.DataError{
				Status:  "error",
				Code:    resolved.Code,
				Message: resolved.Message,
				Errors:  resolved.Errors,
			})
		},
	})
	app.Post("/", func(c *fiber.Ctx) error {
		var p samplePayload
		if err := BindAndValidate(c, &p); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func send(t *testing.T, app *fiber.App, body string) (int, apierr.DataError) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var out apierr.DataError
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

func TestBindAndValidateAcceptsValidBody(t *testing.T) {
	status, _ := send(t, newApp(), `{"requireTime":0,"userID":"u1","access_token":"abc.def"}`)
	if status != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", status)
	}
}

func TestBindAndValidateReportsMissingFields(t *testing.T) {
	status, body := send(t, newApp(), `{"userEmail":"not-an-email"}`)
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", status)
	}
	if body.Code != apierr.CodeValidationFailed {
		t.Fatalf("unexpected code %q", body.Code)
	}

	got := map[string]string{}
	for _, fe := range body.Errors {
		got[fe.Field] = fe.Error
	}
	for _, field := range []string{"requireTime", "userID", "access_token"} {
		if got[field] != "is required" {
			t.Fatalf("expected %s to be required, got %+v", field, body.Errors)
		}
	}
	if _, ok := got["userEmail"]; ok {
		t.Fatalf("optional userEmail has no format rule, got %+v", body.Errors)
	}
}

func TestBindAndValidateAcceptsEmptyPresentValues(t *testing.T) {
	status, body := send(t, newApp(), `{"requireTime":0,"userID":"","access_token":""}`)
	if status != fiber.StatusNoContent {
		t.Fatalf("present empty values should pass, got %d %+v", status, body.Errors)
	}
}

func TestBindAndValidateRejectsMalformedJSON(t *testing.T) {
	for _, body := range []string{`{"userID":`, ``, `[]`, `{"requireTime":"soon"}`} {
		status, out := send(t, newApp(), body)
		if status != fiber.StatusBadRequest || out.Code != apierr.CodeBadRequest {
			t.Fatalf("%q: expected 400 BAD_REQUEST, got %d %q", body, status, out.Code)
		}
	}
}

func TestBindAndValidateRejectsNonStringToken(t *testing.T) {
	status, body := send(t, newApp(), `{"requireTime":1,"userID":"u1","access_token":42}`)
	if status != fiber.StatusBadRequest || body.Code != apierr.CodeBadRequest {
		t.Fatalf("expected 400 BAD_REQUEST, got %d %q", status, body.Code)
	}
}

func TestStructPassesThroughNonValidationErrors(t *testing.T) {
	err := Struct(42)
	var httpErr *apierr.HTTPError
	if err == nil || errors.As(err, &httpErr) {
		t.Fatalf("expected raw validator error for non-struct, got %v", err)
	}
}

type nestedToken struct {
	AccessToken *token.Token `json:"access_token" validate:"required"`
}

type nestedPayload struct {
	Command *string     `json:"command" validate:"required"`
	Token   nestedToken `json:"AdminSubmittedToken" validate:"required"`
}

func TestStructReportsNestedFieldPath(t *testing.T) {
	command := "stats"
	err := Struct(&nestedPayload{Command: &command, Token: nestedToken{}})
	var httpErr *apierr.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	found := false
	for _, fe := range httpErr.Errors {
		if strings.HasPrefix(fe.Field, "AdminSubmittedToken") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an AdminSubmittedToken field error, got %+v", httpErr.Errors)
	}
}
