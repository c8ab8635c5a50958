// Package httpserver exposes the application services as a JSON HTTP API.
package httpserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/Antonmish822/SHORT-HACKX5/internal/model"
	"github.com/Antonmish822/SHORT-HACKX5/internal/service"
	"github.com/Antonmish822/SHORT-HACKX5/internal/token"
)

// Server wires services into Fiber handlers.
type Server struct {
	auth   service.AuthService
	quests service.QuestService
	tokens *token.Service
	log    *zap.Logger
}

// New constructs a Server.
func New(auth service.AuthService, quests service.QuestService, tokens *token.Service, log *zap.Logger) *Server {
	return &Server{auth: auth, quests: quests, tokens: tokens, log: log}
}

// Handler builds the Fiber app with middleware and routes.
func (s *Server) Handler() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "smart-wall-api",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return writeError(c, err)
		},
	})

	app.Use(Recover(s.log))
	app.Use(cors.New())
	app.Use(Logging(s.log))

	app.Get("/", s.root)
	app.Get("/health", s.health)

	auth := app.Group("/auth")
	auth.Post("/register", s.register)
	auth.Post("/login", s.login)

	app.Get("/me", s.RequireAuth(), s.profile)
	app.Put("/me/interests", s.RequireAuth(), s.updateInterests)

	app.Get("/quests", s.listQuests)
	app.Post("/quests/:id/submit", s.RequireAuth(), s.submitQuest)

	admin := app.Group("/admin", s.RequireAuth(), RequireAdmin())
	admin.Post("/quests", s.createQuest)
	admin.Get("/users", s.listUsers)

	return app
}

func (s *Server) root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Smart Wall API", "status": "running"})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	tokens, err := s.auth.Register(c.Context(), req.Contact, req.Password, req.ConsentGiven)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tokenResponse{AccessToken: tokens.AccessToken, TokenType: "bearer"})
}

func (s *Server) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	tokens, err := s.auth.LoginWithIP(c.Context(), req.Contact, req.Password, c.IP())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(tokenResponse{AccessToken: tokens.AccessToken, TokenType: "bearer"})
}

func (s *Server) profile(c *fiber.Ctx) error {
	p, err := s.quests.Profile(c.Context(), SubjectFromCtx(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(profileToResponse(p))
}

func (s *Server) updateInterests(c *fiber.Ctx) error {
	var req interestsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	if err := s.quests.UpdateInterests(c.Context(), SubjectFromCtx(c), req.Interests); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) listQuests(c *fiber.Ctx) error {
	quests, err := s.quests.ListQuests(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]questResponse, 0, len(quests))
	for i := range quests {
		out = append(out, questToResponse(&quests[i]))
	}
	return c.JSON(out)
}

func (s *Server) submitQuest(c *fiber.Ctx) error {
	questID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return badRequest(c, "malformed quest id")
	}
	var req submitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "malformed request body")
		}
	}
	sub, err := s.quests.Submit(c.Context(), SubjectFromCtx(c), questID, model.SubmissionStatus(req.Status), req.Metadata)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(submissionResponse{
		ID:          sub.ID.String(),
		UserID:      sub.UserID.String(),
		QuestID:     sub.QuestID.String(),
		Status:      string(sub.Status),
		Metadata:    sub.Metadata,
		SubmittedAt: sub.SubmittedAt.Format(time.RFC3339),
	})
}

func (s *Server) createQuest(c *fiber.Ctx) error {
	var req questRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	q, err := s.quests.CreateQuest(c.Context(), req.Title, req.Description, req.RewardPoints, req.QuestType)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(questToResponse(q))
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	profiles, err := s.quests.ListUsers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]profileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, profileToResponse(&profiles[i]))
	}
	return c.JSON(out)
}
