package integrity

import (
	"errors"

	"poc-portal/core/logger"
	"poc-portal/core/utils"
	"poc-portal/feature/usecases/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/images", h.HandleImagesCheck)
	group.Get("/source", h.HandleSourceCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Structure, Images, Source).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	// Structure
	if structure, err := h.service.CheckStructure(); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "report": structure}
	}

	// Images
	if missing, err := h.service.CheckImages(ctx); err != nil {
		report["images"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["images"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	// Source
	if sources, err := h.service.CheckSource(ctx); err != nil {
		report["source"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["source"] = map[string]interface{}{"status": "ok", "sources": sources}
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the content root.
// @Summary Check Structure
// @Description Looks for use cases missing one of their two files and for stray staging files. Optionally removes the stray files.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Remove stray files (1, true, yes, on)"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	report, err := h.service.CheckStructure()
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(report.Incomplete) > 0 {
		l.Warn("Incomplete use cases detected", zap.Strings("incomplete", report.Incomplete))
	}

	if fix && len(report.Stray) > 0 {
		l.Info("Removing stray files", zap.Int("count", len(report.Stray)))
		if err := h.service.FixStructure(report.Stray); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fix structure",
				"details": err.Error(),
				"stray":   report.Stray,
			})
		}
		return c.JSON(fiber.Map{
			"status":     "fixed",
			"fixed":      report.Stray,
			"incomplete": report.Incomplete,
		})
	}

	return c.JSON(fiber.Map{
		"status":     "checked",
		"incomplete": report.Incomplete,
		"stray":      report.Stray,
	})
}

// HandleImagesCheck lists manifest images missing locally.
// @Summary Check Images
// @Description Compares the images listed by the remote manifest with the content root.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Images Report"
// @Failure 400 {object} map[string]string "No repository configured"
// @Failure 502 {object} map[string]string "Manifest unavailable"
// @Router /integrity/images [get]
func (h *Handler) HandleImagesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckImages(c.Context())
	if err != nil {
		l.Error("Images check failed", zap.Error(err))
		status := fiber.StatusBadGateway
		if errors.Is(err, models.ErrNoSource) || errors.Is(err, models.ErrUnsupportedLocation) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleSourceCheck probes the configured repository.
// @Summary Check Source
// @Description Checks that the remote repository is reachable and can serve a manifest or a listing.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {array} checks.SourceReport "Source Reports"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /integrity/source [get]
func (h *Handler) HandleSourceCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting source check")

	reports, err := h.service.CheckSource(c.Context())
	if err != nil {
		l.Error("Source check failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(reports)
}
