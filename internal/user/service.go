// Package user serves the end-user account endpoints.
package user

import (
	"context"

	"github.com/tarot-app/account-api/internal/apierr"
)

// Service is the user business contract.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (Session, error)
	Login(ctx context.Context, req LoginRequest) (Session, error)
	UpdateLocal(ctx context.Context, req ActionRequest) (CurrentSession, error)
	Purchase(ctx context.Context, req PurchaseRequest) (ActionResult, error)
	Action(ctx context.Context, req ActionRequest) (ActionResult, error)
}

// Unimplemented fails every operation with apierr.ErrNotImplemented.
type Unimplemented struct{}

var _ Service = Unimplemented{}

func (Unimplemented) Register(context.Context, RegisterRequest) (Session, error) {
	return Session{}, apierr.ErrNotImplemented
}

func (Unimplemented) Login(context.Context, LoginRequest) (Session, error) {
	return Session{}, apierr.ErrNotImplemented
}

func (Unimplemented) UpdateLocal(context.Context, ActionRequest) (CurrentSession, error) {
	return CurrentSession{}, apierr.ErrNotImplemented
}

func (Unimplemented) Purchase(context.Context, PurchaseRequest) (ActionResult, error) {
	return ActionResult{}, apierr.ErrNotImplemented
}

func (Unimplemented) Action(context.Context, ActionRequest) (ActionResult, error) {
	return ActionResult{}, apierr.ErrNotImplemented
}
