package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"formdemo/internal/service"
)

type messageRequest struct {
	Message string `json:"message" form:"message"`
}

// APIFroyo godoc
// @Summary Echo a frozen-yogurt order
// @Tags froyo
// @Produce json
// @Param flavor query string false "Flavor"
// @Param toppings query []string false "Toppings, repeatable" collectionFormat(multi)
// @Success 200 {object} model.FroyoOrder
// @Router /api/v1/froyo [get]
func APIFroyo(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Froyo(c.UserContext(), c.Query("flavor"), queryList(c, "toppings")))
	}
}

// APIFavorites godoc
// @Summary Echo favorite color, animal and city
// @Tags favorites
// @Produce json
// @Param color query string false "Color"
// @Param animal query string false "Animal"
// @Param city query string false "City"
// @Success 200 {object} model.Favorites
// @Router /api/v1/favorites [get]
func APIFavorites(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Favorites(c.UserContext(), c.Query("color"), c.Query("animal"), c.Query("city")))
	}
}

// APIMessage godoc
// @Summary Sort the letters of a secret message
// @Tags message
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param message formData string true "Message"
// @Success 200 {object} model.SecretMessage
// @Failure 400 {object} errorPayload
// @Router /api/v1/message [post]
func APIMessage(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req messageRequest
		if c.Is("json") {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		} else {
			req.Message = c.FormValue("message")
		}

		msg, err := svc.SortMessage(c.UserContext(), req.Message)
		if err != nil {
			if errors.Is(err, service.ErrMessageRequired) {
				return writeError(c, fiber.StatusBadRequest, "MESSAGE_REQUIRED", "message is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(msg)
	}
}

// APICalculator godoc
// @Summary Apply an arithmetic operation to two operands
// @Tags calculator
// @Produce json
// @Param operand1 query string true "First operand"
// @Param operand2 query string true "Second operand"
// @Param operation query string true "Operation" Enums(add, subtract, multiply, divide)
// @Success 200 {object} model.Calculation
// @Failure 400 {object} errorPayload
// @Router /api/v1/calculator [get]
func APICalculator(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		calc, err := svc.Calculate(c.UserContext(), c.Query("operand1"), c.Query("operand2"), c.Query("operation"))
		if err != nil {
			code, text, ok := calculatorError(err)
			if !ok {
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
			return writeError(c, fiber.StatusBadRequest, code, text)
		}
		return c.JSON(calc)
	}
}

// APIHoroscope godoc
// @Summary Look up a horoscope sign
// @Tags horoscope
// @Produce json
// @Param users_name query string false "Name"
// @Param horoscope_sign query string true "Sign"
// @Success 200 {object} model.Horoscope
// @Router /api/v1/horoscope [get]
func APIHoroscope(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Horoscope(c.UserContext(), c.Query("users_name"), c.Query("horoscope_sign")))
	}
}

// APISigns godoc
// @Summary List the zodiac signs
// @Tags horoscope
// @Produce json
// @Success 200 {array} model.SignInfo
// @Router /api/v1/signs [get]
func APISigns(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Signs(c.UserContext()))
	}
}
