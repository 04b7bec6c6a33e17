package handlers

import (
	"github.com/gofiber/fiber/v2"
)

const maxPageSize = 100

func pageQuery(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

func limitQuery(c *fiber.Ctx, fallback int) int {
	limit := c.QueryInt("limit", fallback)
	if limit < 1 {
		limit = fallback
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return limit
}
