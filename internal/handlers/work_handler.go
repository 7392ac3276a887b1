package handlers

import (
	"errors"
	"io"
	"log"
	"strings"

	"showcase-api/internal/requests"
	"showcase-api/internal/services"
	"showcase-api/internal/stores"

	"github.com/gofiber/fiber/v2"
)

// WorkHandler handles work-related HTTP requests
type WorkHandler struct {
	workService *services.WorkService
}

// NewWorkHandler creates a new work handler
func NewWorkHandler(workService *services.WorkService) *WorkHandler {
	return &WorkHandler{
		workService: workService,
	}
}

// UploadWork handles work submissions. Binary-file submissions arrive as
// multipart form data; URL submissions (Website, Skit) as a JSON body.
func (h *WorkHandler) UploadWork(c *fiber.Ctx) error {
	var input requests.UploadWorkRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if errs := services.ValidateSubmission(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	payload, err := h.readFilePayload(c)
	if err != nil {
		log.Printf("Failed to read uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Upload failed",
			"message": err.Error(),
		})
	}

	work, err := h.workService.Submit(c.Context(), input, payload)
	if err != nil {
		var rejected *services.RejectedError
		if errors.As(err, &rejected) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": rejected.Reason,
			})
		}

		log.Printf("Upload error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Upload failed",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Work uploaded successfully",
		"work":     work,
		"cloudUrl": work.FileURL,
	})
}

// readFilePayload pulls the "file" part out of a multipart request. JSON
// requests and multipart requests without a file yield nil; the dispatcher
// decides whether that is acceptable for the category.
func (h *WorkHandler) readFilePayload(c *fiber.Ctx) (*services.FilePayload, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}

	header, err := c.FormFile("file")
	if err != nil {
		return nil, nil
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &services.FilePayload{
		Data:        data,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Filename:    header.Filename,
		Size:        header.Size,
	}, nil
}

// ListWorks returns works filtered by category, free-text search and sort
// order.
func (h *WorkHandler) ListWorks(c *fiber.Ctx) error {
	var query requests.ListWorksQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}

	works, err := h.workService.List(c.Context(), query.Filter())
	if err != nil {
		log.Printf("Error fetching works: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch works",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(works),
		"works":   works,
	})
}

// GetWork returns a single work by id.
func (h *WorkHandler) GetWork(c *fiber.Ctx) error {
	work, err := h.workService.Get(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid work ID",
			})
		case errors.Is(err, stores.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Work not found",
			})
		}

		log.Printf("Error fetching work: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch work",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"work":    work,
	})
}

// DeleteWork removes a work record. The stored blob is left untouched.
func (h *WorkHandler) DeleteWork(c *fiber.Ctx) error {
	err := h.workService.Delete(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid work ID",
			})
		case errors.Is(err, stores.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Work not found",
			})
		}

		log.Printf("Error deleting work: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete work",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Work deleted successfully",
	})
}
