package usecases

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"poc-portal/core/logger"
	"poc-portal/feature/usecases/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for use case synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the use case routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/usecases")
	group.Get("/updates", h.HandleCheckForUpdates)
	group.Post("/sync", h.HandleSync)
	group.Post("/download", h.HandleDownload)
	group.Get("/inventory", h.HandleInventory)
	group.Get("/history", h.HandleHistory)
}

// SyncRequest is the body of POST /usecases/sync.
type SyncRequest struct {
	RepoURL string `json:"repoUrl"`
}

// DownloadRequest is the body of POST /usecases/download.
type DownloadRequest struct {
	RepoURL         string `json:"repoUrl"`
	ProductCategory string `json:"productCategory"`
	Slug            string `json:"slug"`
}

// StreamRecord is one line of the NDJSON sync stream.
type StreamRecord struct {
	Progress   int    `json:"progress,omitempty"`
	Message    string `json:"message,omitempty"`
	Current    int    `json:"current,omitempty"`
	Total      int    `json:"total,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Complete   bool   `json:"complete,omitempty"`
	Downloaded *int   `json:"downloaded,omitempty"`
	Failed     *int   `json:"failed,omitempty"`
	Error      string `json:"error,omitempty"`
}

// HandleCheckForUpdates compares the remote manifest with the installed use cases.
// @Summary Check for use case updates
// @Description Fetch the remote manifest and list new and updated use cases. Failures are reported in the error field.
// @Tags usecases
// @Produce json
// @Param repoUrl query string false "Repository location (defaults to the configured one)"
// @Success 200 {object} models.UpdateStatus "Update status"
// @Router /usecases/updates [get]
func (h *Handler) HandleCheckForUpdates(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	status := h.service.CheckForUpdates(c.Context(), c.Query("repoUrl"))
	if status.Error != "" {
		l.Warn("Use case update check failed", zap.String("error", status.Error))
	}

	return c.JSON(status)
}

// HandleSync streams a bulk synchronization as newline-delimited JSON.
// @Summary Synchronize all use cases
// @Description Download every use case and image of the manifest. Progress is streamed as NDJSON records; the last record carries either complete=true or an error.
// @Tags usecases
// @Accept json
// @Produce application/x-ndjson
// @Param request body SyncRequest false "Repository location"
// @Success 200 {object} StreamRecord "Progress stream"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Sync already running"
// @Router /usecases/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	var req SyncRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	location, err := h.service.resolveLocation(req.RepoURL)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "repoUrl is required",
		})
	}
	if h.service.SyncInProgress() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": models.ErrSyncInProgress.Error(),
		})
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Use case sync requested", zap.String("source", location))

	c.Set(fiber.HeaderContentType, "application/x-ndjson")
	c.Set(fiber.HeaderCacheControl, "no-cache")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		write := func(rec StreamRecord) {
			line, err := json.Marshal(rec)
			if err != nil {
				return
			}
			_, _ = w.Write(line)
			_ = w.WriteByte('\n')
			// a gone client is ignored, the sync keeps running to completion
			_ = w.Flush()
		}

		write(StreamRecord{Progress: 5, Message: "Fetching manifest..."})

		// the request context ends when the handler returns, before the body is streamed
		events := make(chan models.Progress)
		var (
			result *models.SyncResult
			err    error
		)
		done := make(chan struct{})
		go func() {
			result, err = h.service.SyncAll(context.Background(), location, TriggerAPI, events)
			close(done)
		}()

		for ev := range events {
			write(StreamRecord{
				Progress: ev.Percent(),
				Message:  fmt.Sprintf("Downloading: %s (%d/%d)", ev.Name, ev.Sequence, ev.Total),
				Current:  ev.Sequence,
				Total:    ev.Total,
				Kind:     string(ev.Kind),
			})
		}
		<-done

		if err != nil {
			l.Error("Use case sync failed", zap.Error(err))
			write(StreamRecord{Error: err.Error()})
			return
		}

		write(StreamRecord{
			Progress:   100,
			Complete:   true,
			Total:      result.Total,
			Downloaded: &result.Downloaded,
			Failed:     &result.Failed,
			Message:    fmt.Sprintf("Downloaded %d of %d files (%d failed)", result.Downloaded, result.Total, result.Failed),
		})
	})

	return nil
}

// HandleDownload installs a single use case.
// @Summary Download one use case
// @Description Fetch the document and metadata of one use case and install them together.
// @Tags usecases
// @Accept json
// @Produce json
// @Param request body DownloadRequest true "Use case reference"
// @Success 200 {object} map[string]interface{} "Installed"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Remote fetch failed"
// @Router /usecases/download [post]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	var req DownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.ProductCategory == "" || req.Slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "productCategory and slug are required",
		})
	}

	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.DownloadItem(c.Context(), req.RepoURL, req.ProductCategory, req.Slug); err != nil {
		l.Error("Use case download failed",
			zap.String("category", req.ProductCategory),
			zap.String("slug", req.Slug),
			zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"id":      req.ProductCategory + "/" + req.Slug,
	})
}

// HandleInventory lists the installed use cases.
// @Summary List installed use cases
// @Description Scan the local content root and report installed use cases and slug conflicts.
// @Tags usecases
// @Produce json
// @Success 200 {object} models.Inventory "Inventory"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /usecases/inventory [get]
func (h *Handler) HandleInventory(c *fiber.Ctx) error {
	inv, err := h.service.Inventory()
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Inventory scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(inv)
}

// HandleHistory lists recent synchronization runs.
// @Summary Sync history
// @Description Recent bulk synchronizations, newest first. Empty when no database is configured.
// @Tags usecases
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} history.SyncRun "Sync runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /usecases/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	runs, err := h.service.History(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Sync history query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(runs)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidID),
		errors.Is(err, models.ErrNoSource),
		errors.Is(err, models.ErrUnsupportedLocation):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrSyncInProgress):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrItemFetchFailed),
		errors.Is(err, models.ErrAssetFetchFailed),
		errors.Is(err, models.ErrManifestUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
