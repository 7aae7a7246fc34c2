package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// DataResetter abstracts the sample-data seeder for the admin surface.
type DataResetter interface {
	Reset(ctx context.Context) error
}

// AdminHandler exposes maintenance operations. All routes are mounted behind
// the Auth + RequireRole middleware.
type AdminHandler struct {
	seeder DataResetter
}

func NewAdminHandler(seeder DataResetter) *AdminHandler {
	return &AdminHandler{seeder: seeder}
}

// ResetSeed handles POST /admin/seed/reset — wipes all collections and
// reloads the demonstration dataset.
//
// @Summary      Reset the demonstration dataset
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /admin/seed/reset [post]
func (h *AdminHandler) ResetSeed(c echo.Context) error {
	if err := h.seeder.Reset(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "reseeded"})
}
