package command

import "github.com/abdodolh14141/Website-Movies/internal/application/common"

type SignUpCommand struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Age      int    `json:"age" form:"age"`
	Password string `json:"password" form:"password"`
}

type SignUpCommandResult struct {
	Result *common.UserResult `json:"result"`
}
