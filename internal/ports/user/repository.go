package user

import "dhvanicast/internal/core/user"

// UserRepository پورت برای ذخیره‌سازی و بازیابی کاربران
type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByUsernameOrMobile(username, mobile string) (*user.User, error)
	FindByUsername(username string) (*user.User, error)
	FindByID(id string) (*user.User, error)
}

// DTOها برای UseCase
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	City      string `json:"city,omitempty"`
	Tier      string `json:"tier"`
}

func ToDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID.String(),
		Name:      u.Name,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		City:      u.City,
		Tier:      string(u.Tier),
	}
}
