package catalog

import (
	"context"
	"fmt"

	"crazy-coffee/internal/model"
)

const (
	descAmericano = "Un café suave y aromático, preparado con espresso y agua caliente. Ideal para quienes buscan una experiencia clásica con cuerpo ligero y sabor equilibrado."
	descEspreso   = "Intenso y concentrado, el espreso es la base de todo buen café. Servido en una porción pequeña, ofrece un sabor profundo y un golpe de energía instantáneo."
	descCapuchino = "Una deliciosa combinación de espresso, leche vaporizada y espuma cremosa. Su textura sedosa y su sabor equilibrado lo hacen perfecto para cualquier momento del día."
	descLatte     = "Cálido y reconfortante, el latte mezcla espresso con abundante leche vaporizada. Su suavidad lo convierte en la elección ideal para quienes prefieren un café más ligero y personalizable."
)

// The shop's published menu. Ids repeat across categories and some drinks
// carry no category; both are kept as published.
var (
	builtinDrinks = []model.Product{
		{ID: 2, Name: "Espreso", Description: descEspreso, Price: "5000$", Image: "/expreso.jpeg", Category: model.CategoryDrinks},
		{ID: 3, Name: "Capuchino", Description: descCapuchino, Price: "5000$", Image: "/Capuchino.jpeg", Category: model.CategoryDrinks},
		{ID: 4, Name: "Latte", Description: descLatte, Price: "5000$", Image: "/Latte.jpeg", Category: model.CategoryDrinks},
		{ID: 5, Name: "Americano", Description: descAmericano, Price: "$5000", Image: "/Cafeamericano.jpeg"},
		{ID: 6, Name: "Espreso", Description: descEspreso, Price: "$5000", Image: "/expreso.jpeg"},
		{ID: 7, Name: "Capuchino", Description: descCapuchino, Price: "$5000", Image: "/Capuchino.jpeg"},
		{ID: 8, Name: "Latte", Description: descLatte, Price: "$5000", Image: "/Latte.jpeg"},
	}

	builtinFood = []model.Product{
		{ID: 5, Name: "Croissant", Description: descAmericano, Price: "5000$", Image: "/croissant.jpg", Category: model.CategoryFood},
		{ID: 6, Name: "Muffin", Description: descEspreso, Price: "5000$", Image: "/muffin.jpg", Category: model.CategoryFood},
		{ID: 7, Name: "Brownie de chocolate", Description: descCapuchino, Price: "5000$", Image: "/brownie.jpg", Category: model.CategoryFood},
		{ID: 8, Name: "Sándwich de jamón y queso", Description: descLatte, Price: "5000$", Image: "/sandwich.jpg", Category: model.CategoryFood},
	}
)

// Builtin returns the catalog compiled into the binary.
func Builtin() Provider {
	return New(builtinDrinks, builtinFood)
}

// BuiltinLoader serves the compiled-in catalog through the Loader interface,
// so exports and tests can treat it like any other source.
type BuiltinLoader struct{}

// Load returns the compiled-in products of a category.
func (BuiltinLoader) Load(_ context.Context, category model.Category) ([]model.Product, error) {
	switch category {
	case model.CategoryDrinks:
		return clone(builtinDrinks), nil
	case model.CategoryFood:
		return clone(builtinFood), nil
	default:
		return nil, fmt.Errorf("unknown category %q", category)
	}
}
