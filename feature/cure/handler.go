package cure

import (
	"errors"
	"os"

	"asset-curator/core/curator"
	"asset-curator/core/logger"
	"asset-curator/core/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CureRequest is the body accepted by POST /cure.
type CureRequest struct {
	Directories []string `json:"directories" validate:"required,min=1,max=64,dive,required"`
	DryRun      bool     `json:"dry_run"`
}

// CureResponse carries one report per accepted directory and the rejected ones with a reason.
type CureResponse struct {
	Reports []*curator.Report `json:"reports"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Handler handles HTTP requests for cure passes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the cure routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/cure")
	group.Post("/", h.HandleCure)
	group.Get("/plan", h.HandlePlan)
	app.Get("/history", h.HandleHistory)
}

// HandleCure runs cure passes over the requested directories.
// @Summary Cure directories
// @Description Removes trash and orphaned assets from each requested document directory. With dry_run nothing is deleted.
// @Tags cure
// @Accept json
// @Produce json
// @Param request body CureRequest true "Directories to cure"
// @Success 200 {object} CureResponse "Cure reports"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /cure [post]
func (h *Handler) HandleCure(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if c.Query("dry_run") != "" {
		req.DryRun = utils.ToBool(c.Query("dry_run"))
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp := CureResponse{Reports: []*curator.Report{}}
	for _, dir := range req.Directories {
		target, err := h.service.Authorize(dir)
		if err != nil {
			resp.addError(dir, err)
			continue
		}

		if !req.DryRun {
			resp.Reports = append(resp.Reports, h.service.Cure(c.UserContext(), target))
			continue
		}
		rep, err := h.service.Preview(c.UserContext(), target)
		if err != nil {
			l.Warn("Cure preview failed", zap.String("dir", target), zap.Error(err))
			resp.addError(dir, err)
			continue
		}
		resp.Reports = append(resp.Reports, rep)
	}

	l.Info("Cure request handled",
		zap.Int("reports", len(resp.Reports)),
		zap.Int("rejected", len(resp.Errors)),
		zap.Bool("dry_run", req.DryRun),
	)
	return c.JSON(resp)
}

// HandlePlan returns the dry-run report for a single directory.
// @Summary Plan a cure pass
// @Description Scans a document directory and reports what a cure pass would delete.
// @Tags cure
// @Produce json
// @Param dir query string true "Directory (absolute, or relative to the library)"
// @Success 200 {object} curator.Report "Dry-run report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /cure/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	dir := c.Query("dir")
	if dir == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dir is required"})
	}
	target, err := h.service.Authorize(dir)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	}

	rep, err := h.service.Preview(c.UserContext(), target)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = fiber.StatusNotFound
		}
		logger.WithRayID(h.service.logger, c).Warn("Cure plan failed", zap.String("dir", target), zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rep)
}

// HandleHistory lists recorded cure runs.
// @Summary List cure runs
// @Description Returns recorded cure runs, newest first.
// @Tags history
// @Produce json
// @Param dir query string false "Only runs for this directory"
// @Param limit query int false "Maximum number of runs (default 20)"
// @Success 200 {array} models.CureRun "Runs"
// @Failure 503 {object} map[string]string "History disabled"
// @Router /history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	limit := utils.Clamp(utils.ToInt(c.Query("limit"), defaultHistoryLimit), 1, maxHistoryLimit)

	runs, err := h.service.History(c.UserContext(), c.Query("dir"), limit)
	if err != nil {
		if errors.Is(err, ErrHistoryDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.service.logger, c).Error("History lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

func (r *CureResponse) addError(dir string, err error) {
	if r.Errors == nil {
		r.Errors = make(map[string]string)
	}
	r.Errors[dir] = err.Error()
}
