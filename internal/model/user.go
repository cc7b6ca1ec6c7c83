package model

import "fmt"

// UserData is the record persisted as the session flag.
type UserData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginForm holds the fields submitted by the login page.
type LoginForm struct {
	Username string
	Password string
}

// Validate checks that every field was filled in.
func (f LoginForm) Validate() error {
	return requireFields(
		field{"username", f.Username},
		field{"password", f.Password},
	)
}

// RegisterForm holds the fields submitted by the registration page.
type RegisterForm struct {
	GivenName  string
	FamilyName string
	Email      string
	Username   string
	Password   string
}

// Validate checks that every field was filled in.
func (f RegisterForm) Validate() error {
	return requireFields(
		field{"nombre", f.GivenName},
		field{"apellido", f.FamilyName},
		field{"email", f.Email},
		field{"username", f.Username},
		field{"password", f.Password},
	)
}

type field struct {
	name  string
	value string
}

// requireFields rejects only empty values, matching the browser's required
// attribute. Whitespace counts as filled in.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}
