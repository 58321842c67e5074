package handler

import (
	"time"

	"grocery-api/internal/model"
	"grocery-api/internal/repository"
	"grocery-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	service service.InvoiceService
}

func NewInvoiceHandler(s service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// List returns paginated invoices with items eager-loaded, newest first
// GET /api/v1/invoices?from_date=&to_date=&page=&per_page=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	filter := repository.InvoiceFilter{
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", 15),
	}
	if raw := c.Query("from_date"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(c, "Invalid from_date, expected YYYY-MM-DD")
		}
		filter.FromDate = &from
	}
	if raw := c.Query("to_date"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(c, "Invalid to_date, expected YYYY-MM-DD")
		}
		filter.ToDate = &to
	}

	invoices, meta, err := h.service.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": invoices, "meta": meta})
}

// Create stores the invoice and its items in one transaction
// POST /api/v1/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var req model.InvoiceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	invoice, err := h.service.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Invoice created successfully",
		"data":    invoice,
	})
}

// GET /api/v1/invoices/:id
func (h *InvoiceHandler) Show(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid invoice ID")
	}

	invoice, err := h.service.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": invoice})
}

// Update modifies header fields only; items and total are untouched
// PUT /api/v1/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid invoice ID")
	}

	var req model.InvoiceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	invoice, err := h.service.Update(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice updated successfully",
		"data":    invoice,
	})
}

// DELETE /api/v1/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid invoice ID")
	}

	if err := h.service.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice deleted successfully",
	})
}

// AddItem appends a line item and recomputes the invoice total
// POST /api/v1/invoices/:id/items
func (h *InvoiceHandler) AddItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid invoice ID")
	}

	var req model.InvoiceItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	invoice, err := h.service.AddItem(id, &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item added to invoice",
		"data":    invoice,
	})
}

// RemoveItem deletes a line item and recomputes the invoice total
// DELETE /api/v1/invoices/:id/items/:itemId
func (h *InvoiceHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid invoice ID")
	}
	itemID, err := parseUUID(c.Params("itemId"))
	if err != nil {
		return badRequest(c, "Invalid item ID")
	}

	invoice, err := h.service.RemoveItem(id, itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item removed from invoice",
		"data":    invoice,
	})
}
