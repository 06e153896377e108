package user

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tarot-app/account-api/internal/apierr"
	"github.com/tarot-app/account-api/internal/token"
	"github.com/tarot-app/account-api/internal/validation"
)

// Handler exposes user endpoints.
type Handler struct {
	service  Service
	verifier token.Verifier
}

// NewHandler constructs a user HTTP handler. A nil verifier disables token checks.
func NewHandler(service Service, verifier token.Verifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Register handles POST /register.
func (h *Handler) Register(c *fiber.Ctx) error {
	var pack RegisteringPack
	if err := validation.BindAndValidate(c, &pack); err != nil {
		return err
	}
	session, err := h.service.Register(c.UserContext(), pack.toRequest())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(session)
}

// Login handles POST /login.
func (h *Handler) Login(c *fiber.Ctx) error {
	var pack LoginPack
	if err := validation.BindAndValidate(c, &pack); err != nil {
		return err
	}
	session, err := h.service.Login(c.UserContext(), pack.toRequest())
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(session)
}

// UpdateLocal handles POST /updateLocal.
func (h *Handler) UpdateLocal(c *fiber.Ctx) error {
	req, err := h.bindAction(c)
	if err != nil {
		return err
	}
	current, err := h.service.UpdateLocal(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(current)
}

// Purchase handles POST /purches.
func (h *Handler) Purchase(c *fiber.Ctx) error {
	var pack BuyingPack
	if err := validation.BindAndValidate(c, &pack); err != nil {
		return err
	}
	req := pack.toRequest()
	if err := h.authorize(c, req.Credentials); err != nil {
		return err
	}
	result, err := h.service.Purchase(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(result)
}

// Action handles POST /action.
func (h *Handler) Action(c *fiber.Ctx) error {
	req, err := h.bindAction(c)
	if err != nil {
		return err
	}
	result, err := h.service.Action(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(result)
}

func (h *Handler) bindAction(c *fiber.Ctx) (ActionRequest, error) {
	var pack PostActionPack
	if err := validation.BindAndValidate(c, &pack); err != nil {
		return ActionRequest{}, err
	}
	req := pack.toRequest()
	if err := h.authorize(c, req.Credentials); err != nil {
		return ActionRequest{}, err
	}
	return req, nil
}

// authorize requires the token subject to match the claimed userUUID.
func (h *Handler) authorize(c *fiber.Ctx, creds Credentials) error {
	if h.verifier == nil {
		return nil
	}
	claims, err := h.verifier.Verify(c.UserContext(), creds.Token)
	if err != nil {
		return fmt.Errorf("%w: %v", apierr.ErrInvalidToken, err)
	}
	if claims.Subject != creds.UserUUID {
		return apierr.ErrForbidden
	}
	return nil
}
