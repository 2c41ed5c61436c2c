package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"formdemo/internal/service"
	"formdemo/internal/view"
)

const noMessage = "No message provided."

// FroyoResults echoes the selected flavor and toppings.
func FroyoResults(svc service.FormService, views *view.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		order := svc.Froyo(c.UserContext(), c.Query("flavor"), queryList(c, "toppings"))
		return render(c, views, fiber.StatusOK, view.FroyoResults, order)
	}
}

// FavoritesResults echoes color, animal and city.
func FavoritesResults(svc service.FormService, views *view.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fav := svc.Favorites(c.UserContext(), c.Query("color"), c.Query("animal"), c.Query("city"))
		return render(c, views, fiber.StatusOK, view.FavoritesResults, fav)
	}
}

// MessageResults shows the posted message next to its sorted letters.
func MessageResults(svc service.FormService, views *view.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msg, err := svc.SortMessage(c.UserContext(), c.FormValue("message"))
		if err != nil {
			if errors.Is(err, service.ErrMessageRequired) {
				return render(c, views, fiber.StatusBadRequest, view.Error, view.ErrorPage{
					Status:  fiber.StatusBadRequest,
					Message: noMessage,
				})
			}
			return err
		}
		return render(c, views, fiber.StatusOK, view.MessageResults, msg)
	}
}

// CalculatorResults applies the selected operation. Calculator errors are
// shown on the results page with status 400.
func CalculatorResults(svc service.FormService, views *view.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		calc, err := svc.Calculate(c.UserContext(), c.Query("operand1"), c.Query("operand2"), c.Query("operation"))
		if err != nil {
			_, text, ok := calculatorError(err)
			if !ok {
				return err
			}
			return render(c, views, fiber.StatusBadRequest, view.CalculatorResults, view.CalculatorPage{Error: text})
		}
		return render(c, views, fiber.StatusOK, view.CalculatorResults, view.CalculatorPage{Calc: calc})
	}
}

// HoroscopeResults shows the personality for the selected sign and a lucky number.
func HoroscopeResults(svc service.FormService, views *view.Renderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := svc.Horoscope(c.UserContext(), c.Query("users_name"), c.Query("horoscope_sign"))
		return render(c, views, fiber.StatusOK, view.HoroscopeResults, h)
	}
}

// calculatorError maps a calculator failure to an API code and the text shown to users.
func calculatorError(err error) (code, text string, ok bool) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return "INVALID_INPUT", "Error: Invalid input", true
	case errors.Is(err, service.ErrInvalidOperation):
		return "INVALID_OPERATION", "Invalid operation", true
	case errors.Is(err, service.ErrDivisionByZero):
		return "DIVISION_BY_ZERO", "Error: Division by zero", true
	case errors.Is(err, service.ErrOutOfRange):
		return "RESULT_OUT_OF_RANGE", "Error: Result out of range", true
	}
	return "", "", false
}
