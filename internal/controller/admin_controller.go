package controller

import (
	"registration-sheets-be/internal/pkg/logger"
	"registration-sheets-be/internal/pkg/serverutils"
	"registration-sheets-be/pkg/cache"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ClearCache(ctx *fiber.Ctx) error
}

type adminController struct {
	cache  cache.Cache
	logger logger.ILogger
}

func NewAdminController(c cache.Cache, log logger.ILogger) IAdminController {
	return &adminController{
		cache:  c,
		logger: log,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Post("cache/clear", c.ClearCache)
}

// ClearCache drops both cache tiers. Configuration edits made in the host
// system become visible on the next run without waiting out the TTL.
func (c *adminController) ClearCache(ctx *fiber.Ctx) error {
	if err := c.cache.Clear(ctx.Context()); err != nil {
		return err
	}

	c.logger.Info("admin", "cache cleared", nil)
	return ctx.JSON(serverutils.SuccessResponse("Success clear cache", nil))
}
