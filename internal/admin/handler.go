package admin

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tarot-app/account-api/internal/apierr"
	"github.com/tarot-app/account-api/internal/token"
	"github.com/tarot-app/account-api/internal/validation"
)

// Handler exposes admin endpoints.
type Handler struct {
	service  Service
	verifier token.Verifier
}

// NewHandler constructs an admin HTTP handler. A nil verifier disables token checks.
func NewHandler(service Service, verifier token.Verifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Login handles POST /login.
func (h *Handler) Login(c *fiber.Ctx) error {
	var pack LoginPack
	if err := validation.BindAndValidate(c, &pack); err != nil {
		return err
	}
	issued, err := h.service.Login(c.UserContext(), pack.toRequest())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(issued)
}

// Action handles POST /action.
func (h *Handler) Action(c *fiber.Ctx) error {
	var pack PostActionPack
	if err := validation.BindAndValidate(c, &pack); err != nil {
		return err
	}
	req := pack.toRequest()
	if err := h.authorize(c, req.Token); err != nil {
		return err
	}
	info, err := h.service.PostAction(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(info)
}

func (h *Handler) authorize(c *fiber.Ctx, t token.Token) error {
	if h.verifier == nil {
		return nil
	}
	claims, err := h.verifier.Verify(c.UserContext(), t)
	if err != nil {
		return fmt.Errorf("%w: %v", apierr.ErrInvalidToken, err)
	}
	if claims.Role != token.RoleAdmin {
		return apierr.ErrForbidden
	}
	return nil
}
