package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
)

// toast mirrors the notification payload the console UI shows: one
// operator-facing line plus the machine-readable kind.
func toast(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
		"kind":  kind,
	})
}

// respondErr maps an upstream api error onto the console's toast payloads.
// Every API failure terminates here; nothing propagates past the handler.
func respondErr(c *fiber.Ctx, err error) error {
	kind := api.KindOf(err)
	switch kind {
	case api.KindUnavailable:
		applog.Error(c, "upstream.unavailable", err, nil)
		return toast(c, fiber.StatusBadGateway, kind.String(), "Backend unavailable. Please try again later.")
	case api.KindUnauthorized:
		return toast(c, fiber.StatusUnauthorized, kind.String(), "Session expired. Please log in again.")
	case api.KindValidation:
		return toast(c, fiber.StatusBadRequest, kind.String(), apiMessage(err, "Please check the submitted fields."))
	case api.KindNotFound:
		return toast(c, fiber.StatusNotFound, kind.String(), "Not found.")
	case api.KindPayloadTooLarge:
		return toast(c, fiber.StatusRequestEntityTooLarge, kind.String(), "Image is too large.")
	case api.KindUnsupportedMedia:
		return toast(c, fiber.StatusUnsupportedMediaType, kind.String(), "Unsupported image type.")
	default:
		applog.Error(c, "upstream.error", err, nil)
		return toast(c, fiber.StatusInternalServerError, "server", "Something went wrong. Please try again.")
	}
}

func apiMessage(err error, fallback string) string {
	var ae *api.Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
