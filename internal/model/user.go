package model

import "fmt"

// User is a registered account.
//
// Password holds whatever the password service produced at registration:
// a bcrypt hash by default, or the submitted plaintext when the server runs
// with PASSWORD_MODE=plaintext. It is never serialized.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

func errMissingField(field string) error {
	return fmt.Errorf("model: %s is required", field)
}
