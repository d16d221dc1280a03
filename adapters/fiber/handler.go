package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/Mrzain17/storefront/core"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type resetPasswordRequest struct {
	Email string `json:"email"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (a *Adapter) signUp(c fiber.Ctx) error {
	var input signUpRequest
	if err := c.Bind().Body(&input); err != nil {
		return badRequest(c)
	}

	profile, err := a.auth.SignUp(c.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(profile)
}

func (a *Adapter) signIn(c fiber.Ctx) error {
	var input signInRequest
	if err := c.Bind().Body(&input); err != nil {
		return badRequest(c)
	}

	profile, err := a.auth.SignIn(c.Context(), input.Email, input.Password)
	if err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(profile)
}

func (a *Adapter) signOut(c fiber.Ctx) error {
	if err := a.auth.SignOut(c.Context()); err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(map[string]string{
		"message": "signed out successfully",
	})
}

func (a *Adapter) resetPassword(c fiber.Ctx) error {
	var input resetPasswordRequest
	if err := c.Bind().Body(&input); err != nil {
		return badRequest(c)
	}

	if err := a.auth.ResetPassword(c.Context(), input.Email); err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(map[string]string{
		"message": "password reset email sent",
	})
}

func (a *Adapter) getSession(c fiber.Ctx) error {
	state := a.auth.State()
	return c.Status(http.StatusOK).JSON(core.AuthSnapshot{
		User:          state.User,
		Authenticated: state.Authenticated,
	})
}

func (a *Adapter) updateProfile(c fiber.Ctx) error {
	var update core.ProfileUpdate
	if err := c.Bind().Body(&update); err != nil {
		return badRequest(c)
	}

	if err := a.auth.UpdateProfile(c.Context(), update); err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(a.auth.State().User)
}

func (a *Adapter) addAddress(c fiber.Ctx) error {
	var addr core.Address
	if err := c.Bind().Body(&addr); err != nil {
		return badRequest(c)
	}

	if err := a.auth.AddAddress(c.Context(), addr); err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(a.auth.State().User)
}

func (a *Adapter) updateAddress(c fiber.Ctx) error {
	var update core.AddressUpdate
	if err := c.Bind().Body(&update); err != nil {
		return badRequest(c)
	}

	if err := a.auth.UpdateAddress(c.Context(), c.Params("id"), update); err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(a.auth.State().User)
}

func (a *Adapter) updatePreferences(c fiber.Ctx) error {
	var prefs core.Preferences
	if err := c.Bind().Body(&prefs); err != nil {
		return badRequest(c)
	}

	if err := a.auth.UpdatePreferences(c.Context(), prefs); err != nil {
		return handleAuthError(c, err)
	}
	return c.Status(http.StatusOK).JSON(a.auth.State().User)
}

type cartResponse struct {
	Items      []core.LineItem `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice float64         `json:"totalPrice"`
}

func (a *Adapter) getCart(c fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(a.cartView())
}

func (a *Adapter) addItem(c fiber.Ctx) error {
	var input core.LineItem
	if err := c.Bind().Body(&input); err != nil {
		return badRequest(c)
	}

	item, err := core.NewLineItem(input)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": err.Error(),
		})
	}

	a.cart.AddItem(*item)
	return c.Status(http.StatusCreated).JSON(a.cartView())
}

func (a *Adapter) updateQuantity(c fiber.Ctx) error {
	var input quantityRequest
	if err := c.Bind().Body(&input); err != nil {
		return badRequest(c)
	}

	a.cart.UpdateQuantity(c.Params("id"), input.Quantity)
	return c.Status(http.StatusOK).JSON(a.cartView())
}

func (a *Adapter) removeItem(c fiber.Ctx) error {
	a.cart.RemoveItem(c.Params("id"))
	return c.Status(http.StatusOK).JSON(a.cartView())
}

func (a *Adapter) clearCart(c fiber.Ctx) error {
	a.cart.Clear()
	return c.Status(http.StatusOK).JSON(a.cartView())
}

func (a *Adapter) cartView() cartResponse {
	return cartResponse{
		Items:      a.cart.Items(),
		TotalItems: a.cart.TotalItems(),
		TotalPrice: a.cart.TotalPrice(),
	}
}

func badRequest(c fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(map[string]string{
		"error": "invalid request body",
	})
}

// handleAuthError maps gateway errors to appropriate HTTP responses
func handleAuthError(c fiber.Ctx, err error) error {
	return c.Status(mapErrorToStatus(err)).JSON(map[string]string{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps the error taxonomy to HTTP status codes
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrWrongPassword),
		errors.Is(err, core.ErrNoActiveSession):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrDuplicateAccount):
		return http.StatusConflict

	case errors.Is(err, core.ErrWeakPassword),
		errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrNameRequired):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrTooManyRequests):
		return http.StatusTooManyRequests

	case errors.Is(err, core.ErrNetwork):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
