package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"petadoption/internal/apperrors"
)

// errorResponse writes the JSON error envelope for err, mapping its kind to
// an HTTP status. Store errors additionally surface the underlying cause in
// the "error" field.
func errorResponse(c *fiber.Ctx, err error) error {
	var status int
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation, apperrors.KindConflict:
		status = fiber.StatusBadRequest
	case apperrors.KindNotFound:
		status = fiber.StatusNotFound
	case apperrors.KindPermission:
		status = fiber.StatusForbidden
	default:
		status = fiber.StatusInternalServerError
	}

	message := "internal server error"
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	body := fiber.Map{
		"status":  "error",
		"message": message,
	}
	if status == fiber.StatusInternalServerError {
		body["error"] = apperrors.Cause(err)
	}

	return c.Status(status).JSON(body)
}

// successResponse writes the JSON success envelope around payload.
func successResponse(c *fiber.Ctx, payload any) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"payload": payload,
	})
}
