package dto

import (
	"time"

	"github.com/baechuer/account-service/internal/account"
	"github.com/baechuer/account-service/internal/domain"
)

type UserView struct {
	ID        int64      `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

type TokensView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func NewTokensView(t account.AuthTokens) TokensView {
	return TokensView{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		ExpiresIn:   t.ExpiresIn,
	}
}

type LoginData struct {
	User   UserView   `json:"user"`
	Tokens TokensView `json:"tokens"`
}

type MeData struct {
	User UserView `json:"user"`
}

type UserListData struct {
	Users []UserView `json:"users"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

type UserStatusData struct {
	Status string `json:"status"`
	UserID int64  `json:"user_id"`
}
