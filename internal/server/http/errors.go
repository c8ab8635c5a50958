package httpserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
)

// writeError maps sentinel errors to HTTP statuses. Unclassified errors are
// reported as a generic 500 without leaking internals.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidContact),
		errors.Is(err, errs.ErrPasswordRequired),
		errors.Is(err, errs.ErrPasswordNotAllowed),
		errors.Is(err, errs.ErrConsentRequired),
		errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrInvalidCredentials):
		return respond(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, errs.ErrContactTaken),
		errors.Is(err, errs.ErrAlreadySubmitted):
		return respond(c, fiber.StatusConflict, err.Error())

	case errors.Is(err, errs.ErrTokenExpired),
		errors.Is(err, errs.ErrTokenMalformed),
		errors.Is(err, errs.ErrTokenInvalid):
		return respond(c, fiber.StatusUnauthorized, err.Error())

	case errors.Is(err, errs.ErrForbidden):
		return respond(c, fiber.StatusForbidden, err.Error())

	case errors.Is(err, errs.ErrQuestNotFound),
		errors.Is(err, errs.ErrNotFound):
		return respond(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, errs.ErrRateLimited):
		return respond(c, fiber.StatusTooManyRequests, err.Error())

	default:
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return respond(c, fe.Code, fe.Message)
		}
		return respond(c, fiber.StatusInternalServerError, "internal")
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return respond(c, fiber.StatusBadRequest, msg)
}

func respond(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(errorResponse{Error: msg})
}
