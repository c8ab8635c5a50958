package httpserver

import (
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/Antonmish822/SHORT-HACKX5/internal/errs"
	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
)

const (
	subjectKey = "auth.subject"
	roleKey    = "auth.role"
)

// Logging returns middleware for structured request logging.
// Metadata only, never payloads.
func Logging(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info("http",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

// Recover returns middleware that recovers from handler panics.
func Recover(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.Path()),
				)
				err = c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal"})
			}
		}()
		return c.Next()
	}
}

// RequireAuth verifies the bearer token and stores the subject and role in
// the request context. Verification is stateless; an expired or malformed
// token drops the request back to anonymous with a 401.
func (s *Server) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return writeError(c, errs.ErrTokenMalformed)
		}
		claims, err := s.tokens.Verify(raw)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(subjectKey, claims.Subject)
		c.Locals(roleKey, claims.Role)
		return c.Next()
	}
}

// RequireAdmin gates privileged operations on the role claim. Must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(roleKey).(string)
		if role != model.RoleAdmin {
			return writeError(c, errs.ErrForbidden)
		}
		return c.Next()
	}
}

// SubjectFromCtx returns the authenticated user id stored by RequireAuth.
func SubjectFromCtx(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(subjectKey).(uuid.UUID)
	return id
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	raw := strings.TrimSpace(header[len(prefix):])
	return raw, raw != ""
}
