package service

import (
	"context"

	"crazy-coffee/internal/model"
	"crazy-coffee/internal/session"
)

// ProductService defines read operations over the catalog.
type ProductService interface {
	// GetProducts returns the products of category ("all", "drinks",
	// "food"). Unknown categories yield an empty slice.
	GetProducts(ctx context.Context, category string) []model.Product

	// GetProductByID returns the first product whose id matches the integer
	// prefix of id, or model.ErrProductNotFound.
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
}

// AuthService defines the login, registration and logout flows. Each call
// acts on the session store of the requesting browser.
type AuthService interface {
	// Login checks the credentials and saves the session flag on success.
	Login(ctx context.Context, store *session.Store, form model.LoginForm) (*AuthResult, error)

	// Register validates the form and acknowledges it without storing it.
	// The caller decides whether to queue the returned notice.
	Register(ctx context.Context, form model.RegisterForm) (*AuthResult, error)

	// Logout clears the session flag.
	Logout(ctx context.Context, store *session.Store) (*AuthResult, error)
}

// AuthResult tells the caller where to send the browser next and which
// notice, if any, to show there.
type AuthResult struct {
	Redirect string
	Notice   string
}
