package mapper

import (
	"github.com/abdodolh14141/Website-Movies/internal/application/common"
	"github.com/abdodolh14141/Website-Movies/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id.Hex(),
		CreatedAt: user.CreatedAt,
		Name:      user.Username,
		Email:     user.Email,
		Age:       user.Age,
		IsAdmin:   user.IsAdmin,
	}
}

func NewSessionViewFromEntity(user *entities.User) *common.SessionView {
	return &common.SessionView{
		Id:    user.Id.Hex(),
		Email: user.Email,
		Name:  user.Username,
	}
}
