// Package admin serves the private administrator endpoints.
package admin

import (
	"context"

	"github.com/tarot-app/account-api/internal/apierr"
	"github.com/tarot-app/account-api/internal/token"
)

// Service is the administrator business contract.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (token.ServerProvided, error)
	PostAction(ctx context.Context, req ActionRequest) (GlobalBasicInfo, error)
}

// Unimplemented fails every operation with apierr.ErrNotImplemented.
type Unimplemented struct{}

var _ Service = Unimplemented{}

func (Unimplemented) Login(context.Context, LoginRequest) (token.ServerProvided, error) {
	return token.ServerProvided{}, apierr.ErrNotImplemented
}

func (Unimplemented) PostAction(context.Context, ActionRequest) (GlobalBasicInfo, error) {
	return GlobalBasicInfo{}, apierr.ErrNotImplemented
}
