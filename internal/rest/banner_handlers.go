package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/udnewsupdate/news-site/internal/store"
)

// Banners handles GET /api/banners
// @Summary List banners
// @Description Filters by position and isActive; banners outside their start/end window are always excluded
// @Tags banners
// @Produce json
// @Param position query string false "Placement zone (sidebar, header, footer, content)"
// @Param active query bool false "Filter by isActive"
// @Success 200 {array} rest.Banner
// @Failure 400,500 {object} map[string]string
// @Router /api/banners [get]
func (h *Handler) Banners(c echo.Context) error {
	var req BannerListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	banners, err := h.uc.Banners(c.Request().Context(), store.BannerFilter{
		Position: req.Position,
		Active:   req.Active,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch banners")
	}

	return c.JSON(http.StatusOK, NewBanners(banners))
}

// BannerByID handles GET /api/banners/:id
// @Summary Get banner by ID
// @Tags banners
// @Produce json
// @Param id path int true "Banner ID"
// @Success 200 {object} rest.Banner
// @Failure 400,404,500 {object} map[string]string
// @Router /api/banners/{id} [get]
func (h *Handler) BannerByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	banner, err := h.uc.BannerByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch banner")
	}
	if banner == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Banner not found"})
	}

	return c.JSON(http.StatusOK, NewBanner(*banner))
}

// CreateBanner handles POST /api/banners
// @Summary Create a banner
// @Tags banners
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400,500 {object} map[string]string
// @Router /api/banners [post]
func (h *Handler) CreateBanner(c echo.Context) error {
	var req CreateBannerRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return h.handleValidation(c, err)
	}

	banner, err := h.uc.CreateBanner(c.Request().Context(), req.toStore())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to create banner")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "สร้างแบนเนอร์สำเร็จ",
		"banner":  NewBanner(*banner),
	})
}

// UpdateBanner handles PUT /api/banners/:id
// @Summary Partially update a banner
// @Tags banners
// @Accept json
// @Produce json
// @Param id path int true "Banner ID"
// @Success 200 {object} map[string]any
// @Failure 400,404,500 {object} map[string]string
// @Router /api/banners/{id} [put]
func (h *Handler) UpdateBanner(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req UpdateBannerRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return h.handleValidation(c, err)
	}

	banner, err := h.uc.UpdateBanner(c.Request().Context(), id, req.toStore())
	if errors.Is(err, store.ErrBannerNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "ไม่พบแบนเนอร์ที่ต้องการแก้ไข"})
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to update banner")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "แก้ไขแบนเนอร์สำเร็จ",
		"banner":  NewBanner(*banner),
	})
}

// DeleteBanner handles DELETE /api/banners/:id
// @Summary Delete a banner
// @Tags banners
// @Produce json
// @Param id path int true "Banner ID"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /api/banners/{id} [delete]
func (h *Handler) DeleteBanner(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	err = h.uc.DeleteBanner(c.Request().Context(), id)
	if errors.Is(err, store.ErrBannerNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "ไม่พบแบนเนอร์ที่ต้องการลบ"})
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to delete banner")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "ลบแบนเนอร์สำเร็จ"})
}
