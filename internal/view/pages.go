package view

import (
	"crazy-coffee/internal/menu"
)

// Page names accepted by Renderer.Render.
const (
	PageHome     = "home"
	PageMenu     = "menu"
	PageLogin    = "login"
	PageRegister = "register"
	PageNotFound = "not_found"
)

// Feature is one card of the home page.
type Feature struct {
	Title       string
	Description string
	Image       string
}

// HomePage is the data for the landing page.
type HomePage struct {
	Layout
	Features []Feature
}

// Features shown on the home page, in order.
var Features = []Feature{
	{Title: "Zona Coworking", Description: "Ambiente relajado para trabajar o estudiar con buena música.", Image: "/static/img/coworking.svg"},
	{Title: "Zona de Lectura", Description: "Sumérgete en un rincón tranquilo con buena luz, café aromático y libros que inspiran.", Image: "/static/img/zona-lectura.svg"},
	{Title: "Patio De Ideas", Description: "Espacio creativo para conectar, compartir y relajarte.", Image: "/static/img/patio.svg"},
}

// MenuPage is the data for the catalog page.
type MenuPage struct {
	Layout
	Menu menu.View
}

// LoginPage is the data for the login form. Username is echoed back on a
// failed attempt; the password never is.
type LoginPage struct {
	Layout
	Username string
	Error    string
}

// RegisterPage is the data for the registration form.
type RegisterPage struct {
	Layout
	Nombre   string
	Apellido string
	Email    string
	Username string
	Error    string
}

// NotFoundPage is shown for unmatched paths.
type NotFoundPage struct {
	Layout
	Path string
}
