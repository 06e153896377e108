package user

import "github.com/tarot-app/account-api/internal/token"

// Required pack fields are pointers so validation checks presence only.

// RegisteringPack is the body of POST /user/register.
type RegisteringPack struct {
	RequireTime        *int64  `json:"requireTime" validate:"required"`
	UserName           *string `json:"userName" validate:"required"`
	ValidateCredential *string `json:"validateCredential" validate:"required"`
	CredentialType     *string `json:"credentialType" validate:"required"`
	Password           *string `json:"password" validate:"required"`
	UserEmail          *string `json:"userEmail"`
	UserPhoneNumber    *int64  `json:"userPhoneNumber"`
	UserWechatID       *string `json:"userWechatId"`
}

// LoginPack is the body of POST /user/login.
type LoginPack struct {
	RequireTime  *int64  `json:"requireTime" validate:"required"`
	UserID       *string `json:"userID" validate:"required"`
	UserIDType   *string `json:"userIDType" validate:"required"`
	LoginPwd     *string `json:"loginPwd" validate:"required"`
	LoginPwdType *string `json:"loginPwdType" validate:"required"`
}

// SubmittedToken identifies the session a user call belongs to.
type SubmittedToken struct {
	AccessToken *token.Token `json:"access_token" validate:"required"`
	TokenType   *string      `json:"token_type" validate:"required"`
	UserUUID    *string      `json:"userUUID" validate:"required"`
}

// PostActionPack is the body of POST /user/updateLocal and POST /user/action.
type PostActionPack struct {
	RequireTime    *int64         `json:"requireTime" validate:"required"`
	ActionType     *int           `json:"actionType" validate:"required"`
	Token          SubmittedToken `json:"UserSubmittedToken" validate:"required"`
	AdditionalData map[string]any `json:"additionalData"`
	Message        *string        `json:"message"`
}

// BuyingPack is the body of POST /user/purches.
type BuyingPack struct {
	RequireTime    *int64         `json:"requireTime" validate:"required"`
	PurchesType    *int           `json:"purchesType" validate:"required"`
	PurchesMonth   *int           `json:"purchesMonth" validate:"required"`
	Token          SubmittedToken `json:"UserSubmittedToken" validate:"required"`
	AdditionalData map[string]any `json:"additionalData"`
}

// BasicInfo is the public profile of a user.
type BasicInfo struct {
	UserUUID  string  `json:"userUUID"`
	UserName  string  `json:"userName"`
	UserEmail *string `json:"userEmail"`
}

// CurrentSession is the locally cached session state returned by updateLocal.
type CurrentSession struct {
	State         any `json:"UserCurrentSession"`
	CurrentStepID int `json:"currentStepId"`
}

// Session is returned by register and login.
type Session struct {
	Token token.ServerProvided `json:"token"`
	User  BasicInfo            `json:"user"`
}

// ActionResult is returned by purchase and action. Token is set when the
// server rotates the session.
type ActionResult struct {
	Token *token.ServerProvided `json:"token,omitempty"`
	Data  any                   `json:"data"`
}

// RegisterRequest carries a registration to the service.
type RegisterRequest struct {
	RequireTime        int64
	UserName           string
	ValidateCredential string
	CredentialType     string
	Password           string
	Email              *string
	PhoneNumber        *int64
	WechatID           *string
}

// LoginRequest carries user credentials to the service.
type LoginRequest struct {
	RequireTime  int64
	UserID       string
	UserIDType   string
	Password     string
	PasswordType string
}

// Credentials is the session a request is made under.
type Credentials struct {
	Token     token.Token
	TokenType string
	UserUUID  string
}

// ActionRequest is a decoded action pack.
type ActionRequest struct {
	RequireTime int64
	Action      Action
	Credentials Credentials
	Message     *string
}

// PurchaseRequest is a decoded purchase pack.
type PurchaseRequest struct {
	RequireTime    int64
	PurchaseType   int
	Months         int
	Credentials    Credentials
	AdditionalData map[string]any
}

func (t SubmittedToken) credentials() Credentials {
	return Credentials{Token: *t.AccessToken, TokenType: *t.TokenType, UserUUID: *t.UserUUID}
}

func (p RegisteringPack) toRequest() RegisterRequest {
	return RegisterRequest{
		RequireTime:        *p.RequireTime,
		UserName:           *p.UserName,
		ValidateCredential: *p.ValidateCredential,
		CredentialType:     *p.CredentialType,
		Password:           *p.Password,
		Email:              p.UserEmail,
		PhoneNumber:        p.UserPhoneNumber,
		WechatID:           p.UserWechatID,
	}
}

func (p LoginPack) toRequest() LoginRequest {
	return LoginRequest{
		RequireTime:  *p.RequireTime,
		UserID:       *p.UserID,
		UserIDType:   *p.UserIDType,
		Password:     *p.LoginPwd,
		PasswordType: *p.LoginPwdType,
	}
}

func (p PostActionPack) toRequest() ActionRequest {
	return ActionRequest{
		RequireTime: *p.RequireTime,
		Action:      DecodeAction(*p.ActionType, p.AdditionalData),
		Credentials: p.Token.credentials(),
		Message:     p.Message,
	}
}

func (p BuyingPack) toRequest() PurchaseRequest {
	return PurchaseRequest{
		RequireTime:    *p.RequireTime,
		PurchaseType:   *p.PurchesType,
		Months:         *p.PurchesMonth,
		Credentials:    p.Token.credentials(),
		AdditionalData: p.AdditionalData,
	}
}
