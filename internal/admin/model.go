package admin

import "github.com/tarot-app/account-api/internal/token"

// Required fields in the packs are pointers: "required" then checks that the
// field was sent, and an empty string or zero is still accepted.

// LoginPack is the body of POST /private/admin/login.
type LoginPack struct {
	UserID   *string `json:"userID" validate:"required"`
	LoginPwd *string `json:"loginPwd" validate:"required"`
}

// SubmittedToken is the token an admin sends back on authenticated calls.
type SubmittedToken struct {
	AccessToken *token.Token `json:"access_token" validate:"required"`
}

// PostActionPack is the body of POST /private/admin/action.
type PostActionPack struct {
	RequireTime *int64         `json:"requireTime" validate:"required"`
	Command     *string        `json:"command" validate:"required"`
	Token       SubmittedToken `json:"AdminSubmittedToken" validate:"required"`
}

// GlobalBasicInfo is the platform snapshot returned by admin actions.
type GlobalBasicInfo struct {
	TotalUserNum    int     `json:"totalUserNum"`
	CurrentUserNum  int     `json:"currentUserNum"`
	TotalVipNums    []int   `json:"totalVipNums"`
	CurrentVipNums  []int   `json:"currentVipNums"`
	UsagePercentage float64 `json:"useagePercentage"`
}

// LoginRequest carries admin credentials to the service.
type LoginRequest struct {
	UserID   string
	Password string
}

// ActionRequest is an admin command issued with a session token.
type ActionRequest struct {
	RequireTime int64
	Command     string
	Token       token.Token
}

func (p LoginPack) toRequest() LoginRequest {
	return LoginRequest{UserID: *p.UserID, Password: *p.LoginPwd}
}

func (p PostActionPack) toRequest() ActionRequest {
	return ActionRequest{RequireTime: *p.RequireTime, Command: *p.Command, Token: *p.Token.AccessToken}
}
