package handler

import (
	"github.com/gofiber/fiber/v2"

	"formdemo/internal/view"
)

// render writes page as an HTML response with the given status.
func render(c *fiber.Ctx, views *view.Renderer, status int, page string, data any) error {
	c.Status(status)
	c.Type("html", "utf-8")
	return views.Render(c, page, data)
}

// Page serves a static form page.
func Page(views *view.Renderer, page string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return render(c, views, fiber.StatusOK, page, nil)
	}
}

// queryList returns every value of a repeated query key, accepting both
// "key" and "key[]" spellings in the order they appear.
func queryList(c *fiber.Ctx, key string) []string {
	out := []string{}
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		if ks := string(k); ks == key || ks == key+"[]" {
			out = append(out, string(v))
		}
	})
	return out
}
