package command

import (
	"time"

	"github.com/abdodolh14141/Website-Movies/internal/application/common"
)

type AuthorizeCommand struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type AuthorizeCommandResult struct {
	Token string              `json:"token"`
	User  *common.SessionView `json:"user"`
}

type SessionResult struct {
	User    *common.SessionView `json:"user"`
	Expires time.Time           `json:"expires"`
}
