package command

// CompleteAccountCommand finishes an OAuth-created account by setting its
// password and age. The username is the lookup key to keep the public
// contract stable, even though a stable id would be the safer key.
type CompleteAccountCommand struct {
	Name     string `json:"name" form:"name"`
	Password string `json:"password" form:"password"`
	Age      int    `json:"age" form:"age"`
}
