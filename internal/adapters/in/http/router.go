package http

import (
	"context"

	"supplychain/internal/core/domain/model/workflow"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v1"

// RouterConfig carries what the router needs besides the use cases.
type RouterConfig struct {
	Verifier *TokenVerifier
	Logger   *zap.Logger
	// Swagger exposes the UI and document under /swagger.
	Swagger bool
}

// NewRouter builds the echo instance serving the API.
func NewRouter(ctx context.Context, server *Server, cfg RouterConfig) (*echo.Echo, error) {
	docRouter, err := loadRouter(ctx)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler
	e.Validator = newRequestValidator()

	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	e.GET("/health", server.Health)
	e.GET(apiPrefix+"/health", server.Health)
	if cfg.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group(apiPrefix, authenticate(cfg.Verifier), validateRequests(docRouter))
	api.GET("/me/capabilities", server.Capabilities)

	for _, r := range []struct {
		path string
		kind workflow.Kind
	}{
		{"/transfer-requests", workflow.Transfer},
		{"/orders", workflow.Purchase},
	} {
		api.POST(r.path, server.CreateRequisition(r.kind))
		api.GET(r.path, server.ListRequisitions(r.kind))
		api.GET(r.path+"/:id", server.GetRequisition(r.kind))
		api.PATCH(r.path+"/:id", server.TransitionRequisition(r.kind))
		api.DELETE(r.path+"/:id", server.DeleteRequisition(r.kind))
	}

	api.POST("/stocks", server.RegisterStock)
	api.GET("/stocks", server.ListStock)
	api.POST("/partners", server.RegisterPartner)
	api.POST("/partners/:type/:id/deactivate", server.DeactivatePartner)

	return e, nil
}
