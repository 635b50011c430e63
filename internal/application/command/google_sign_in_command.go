package command

import "github.com/abdodolh14141/Website-Movies/internal/application/common"

type GoogleSignInCommand struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type GoogleSignInCommandResult struct {
	Created bool               `json:"created"`
	Result  *common.UserResult `json:"result"`
}
