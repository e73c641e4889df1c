package tools

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tinytools/server/internal/errors"
	"github.com/tinytools/server/internal/tools"
)

// creates a handler that lists the active tool catalog
func ListHandler(repo *tools.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalog, err := repo.ListActive(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list tools", err)
			return
		}

		responses := make([]Response, 0, len(catalog))

		for i := range catalog {
			responses = append(responses, toResponse(&catalog[i]))
		}

		c.JSON(http.StatusOK, ListResponse{
			Tools: responses,
			Total: len(responses),
		})
	}
}

// creates a handler that returns one tool by slug
func GetHandler(repo *tools.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		tool, err := repo.FindBySlug(c.Request.Context(), slug)
		if err != nil {
			errors.InternalError(c, "failed to load tool", err)
			return
		}

		if tool == nil || !tool.IsActive {
			errors.NotFound(c, "tool")
			return
		}

		c.JSON(http.StatusOK, toResponse(tool))
	}
}
