package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diazeddy/dataset-api/internal/infrastructure"
)

// RegisterRoutes wires the HTTP surface: open auth routes, bearer-guarded
// dataset routes and a root health banner.
func RegisterRoutes(e *echo.Echo, auth *AuthHandler, datasets *DatasetHandler, tokens *infrastructure.JWTService) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Dataset API is running!")
	})

	authGroup := e.Group("/auth")
	authGroup.POST("/sign-up", auth.SignUp)
	authGroup.POST("/sign-in", auth.SignIn)

	datasetGroup := e.Group("/datasets", BearerAuth(tokens))
	datasetGroup.POST("/upload", datasets.Upload)
	datasetGroup.GET("", datasets.List)
	datasetGroup.GET("/:id", datasets.Get)
	datasetGroup.DELETE("/:id", datasets.Delete)
}
