package types

import "Vidhub/models"

// UserProfile 列表中附带的用户公开资料
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar"`
}

func NewUserProfile(u *models.User) *UserProfile {
	if u == nil {
		return nil
	}
	return &UserProfile{ID: u.ID, Username: u.Username, Email: u.Email, Avatar: u.Avatar}
}
