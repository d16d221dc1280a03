// Package fiber exposes the storefront core over HTTP with Fiber v3.
package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Mrzain17/storefront/cart"
	"github.com/Mrzain17/storefront/session"
)

type Adapter struct {
	app  *fiber.App
	auth *session.Store
	cart *cart.Store
}

func New(app *fiber.App, auth *session.Store, cartStore *cart.Store) *Adapter {
	return &Adapter{app: app, auth: auth, cart: cartStore}
}

// RegisterRoutes mounts the auth and cart endpoints under basePath
// (default "/api").
func (a *Adapter) RegisterRoutes(basePath string) {
	if basePath == "" {
		basePath = "/api"
	}
	api := a.app.Group(basePath)

	auth := api.Group("/auth")
	auth.Post("/sign-up", a.signUp)
	auth.Post("/sign-in", a.signIn)
	auth.Post("/sign-out", a.signOut)
	auth.Post("/reset-password", a.resetPassword)
	auth.Get("/session", a.getSession)
	auth.Put("/profile", a.updateProfile)
	auth.Post("/addresses", a.addAddress)
	auth.Put("/addresses/:id", a.updateAddress)
	auth.Put("/preferences", a.updatePreferences)

	cartGroup := api.Group("/cart")
	cartGroup.Get("/", a.getCart)
	cartGroup.Post("/items", a.addItem)
	cartGroup.Put("/items/:id", a.updateQuantity)
	cartGroup.Delete("/items/:id", a.removeItem)
	cartGroup.Delete("/", a.clearCart)
}
