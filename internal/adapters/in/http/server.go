package http

import (
	"context"
	"net/http"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/application/views"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/network"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/pagination"

	"github.com/labstack/echo/v4"
)

type (
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (views.Order, error)
	}
	TransitionApplier interface {
		Handle(ctx context.Context, cmd commands.ApplyTransitionCommand) (views.Order, error)
	}
	OrderDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	StockRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterStockCommand) (views.Stock, error)
	}
	PartnerRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterPartnerCommand) (*network.Partner, error)
	}
	PartnerDeactivator interface {
		Handle(ctx context.Context, cmd commands.DeactivatePartnerCommand) error
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (pagination.Page[views.Order], error)
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (views.Order, error)
	}
	StockLister interface {
		Handle(ctx context.Context, query queries.ListStockQuery) (pagination.Page[views.Stock], error)
	}
	CapabilitiesReader interface {
		Handle(ctx context.Context, actor identity.Actor) (queries.CapabilitiesResponse, error)
	}
)

// Handlers are the use cases the server exposes.
type Handlers struct {
	CreateOrder       OrderCreator
	ApplyTransition   TransitionApplier
	DeleteOrder       OrderDeleter
	RegisterStock     StockRegistrar
	RegisterPartner   PartnerRegistrar
	DeactivatePartner PartnerDeactivator

	ListOrders   OrderLister
	GetOrder     OrderGetter
	ListStock    StockLister
	Capabilities CapabilitiesReader

	// Health reports whether the service's dependencies answer.
	Health func(ctx context.Context) error
}

// Server turns HTTP requests into commands and queries.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// Health handles GET /api/v1/health.
func (s *Server) Health(c echo.Context) error {
	if s.h.Health != nil {
		if err := s.h.Health(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// CreateRequisition handles POST on the transfer-request and order collections.
func (s *Server) CreateRequisition(kind workflow.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorFrom(c)
		if err != nil {
			return err
		}

		var req CreateRequisitionRequest
		if err = c.Bind(&req); err != nil {
			return err
		}
		if err = c.Validate(&req); err != nil {
			return err
		}

		requester, err := requesterOf(actor, req.RequesterStationID)
		if err != nil {
			return err
		}
		provider, err := providerOf(kind, req)
		if err != nil {
			return err
		}
		lines, err := req.lineInputs()
		if err != nil {
			return err
		}

		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kind, actor, requester, provider, req.Reference, lines)
		if err != nil {
			return err
		}

		view, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, view)
	}
}

// ListRequisitions handles GET on the collections.
func (s *Server) ListRequisitions(kind workflow.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorFrom(c)
		if err != nil {
			return err
		}
		req, err := listRequest(c)
		if err != nil {
			return err
		}

		query, err := queries.NewListOrdersQuery(actor, kind, req)
		if err != nil {
			return err
		}
		page, err := s.h.ListOrders.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, page)
	}
}

// GetRequisition handles GET {id}.
func (s *Server) GetRequisition(kind workflow.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorFrom(c)
		if err != nil {
			return err
		}
		id, err := pathUUID(c, "id")
		if err != nil {
			return err
		}

		query, err := queries.NewGetOrderQuery(id, kind, actor)
		if err != nil {
			return err
		}
		view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, view)
	}
}

// TransitionRequisition handles PATCH {id}.
func (s *Server) TransitionRequisition(kind workflow.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorFrom(c)
		if err != nil {
			return err
		}
		id, err := pathUUID(c, "id")
		if err != nil {
			return err
		}

		var req TransitionRequest
		if err = c.Bind(&req); err != nil {
			return err
		}
		if err = c.Validate(&req); err != nil {
			return err
		}

		target, err := workflow.ParseStatus(req.Status)
		if err != nil {
			return err
		}
		granted, err := quantities("granted", req.Granted)
		if err != nil {
			return err
		}
		delivered, err := quantities("delivered", req.Delivered)
		if err != nil {
			return err
		}

		cmd, err := commands.NewApplyTransitionCommand(id, kind, target, actor, order.Change{
			Reason:    req.Reason,
			Granted:   granted,
			Delivered: delivered,
		})
		if err != nil {
			return err
		}

		view, err := s.h.ApplyTransition.Handle(c.Request().Context(), cmd)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, view)
	}
}

// DeleteRequisition handles DELETE {id}.
func (s *Server) DeleteRequisition(kind workflow.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorFrom(c)
		if err != nil {
			return err
		}
		id, err := pathUUID(c, "id")
		if err != nil {
			return err
		}

		cmd, err := commands.NewDeleteOrderCommand(id, kind, actor)
		if err != nil {
			return err
		}
		if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// Capabilities handles GET /api/v1/me/capabilities.
func (s *Server) Capabilities(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	caps, err := s.h.Capabilities.Handle(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, caps)
}

// RegisterStock handles POST /api/v1/stocks.
func (s *Server) RegisterStock(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req RegisterStockRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	station, err := requesterOf(actor, req.StationID)
	if err != nil {
		return err
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterStockCommand(kernel.NewUUID(), actor, station, productID, req.Quantity)
	if err != nil {
		return err
	}
	view, err := s.h.RegisterStock.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// ListStock handles GET /api/v1/stocks.
func (s *Server) ListStock(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	req, err := listRequest(c)
	if err != nil {
		return err
	}
	stationID, err := optionalQueryUUID(c, "stationId")
	if err != nil {
		return err
	}

	var station *kernel.StationRef
	if stationID != nil {
		ref, refErr := kernel.NewStationRef(*stationID)
		if refErr != nil {
			return refErr
		}
		station = &ref
	}

	query, err := queries.NewListStockQuery(actor, station, req)
	if err != nil {
		return err
	}
	page, err := s.h.ListStock.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// RegisterPartner handles POST /api/v1/partners.
func (s *Server) RegisterPartner(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req RegisterPartnerRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	if req.ID != "" {
		if id, err = kernel.UUIDFromString(req.ID); err != nil {
			return err
		}
	}
	ref, err := entityRef(req.Type, id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterPartnerCommand(actor, ref, req.Code, req.Name)
	if err != nil {
		return err
	}
	partner, err := s.h.RegisterPartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newPartnerResponse(partner))
}

// DeactivatePartner handles POST /api/v1/partners/{type}/{id}/deactivate.
func (s *Server) DeactivatePartner(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	ref, err := entityRef(c.Param("type"), id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeactivatePartnerCommand(actor, ref)
	if err != nil {
		return err
	}
	if err = s.h.DeactivatePartner.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// requesterOf picks the station a request is made for: the explicit one, or
// the caller's own station.
func requesterOf(actor identity.Actor, explicit string) (kernel.StationRef, error) {
	if explicit != "" {
		id, err := kernel.UUIDFromString(explicit)
		if err != nil {
			return kernel.StationRef{}, err
		}
		return kernel.NewStationRef(id)
	}
	if station, ok := actor.Entity().(kernel.StationRef); ok {
		return station, nil
	}
	return kernel.StationRef{}, errs.NewValueIsRequiredError("requesterStationId")
}

func providerOf(kind workflow.Kind, req CreateRequisitionRequest) (kernel.EntityRef, error) {
	var field, raw string
	var entity kernel.EntityKind
	switch kind {
	case workflow.Transfer:
		field, raw, entity = "sourceStationId", req.SourceStationID, kernel.StationEntity
	case workflow.Purchase:
		field, raw, entity = "supplierId", req.SupplierID, kernel.SupplierEntity
	case workflow.UnknownKind:
		return nil, errs.NewValueIsInvalidError("kind")
	}

	if raw == "" {
		return nil, errs.NewValueIsRequiredError(field)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return kernel.NewEntityRef(entity, id)
}

func entityRef(kindName string, id kernel.UUID) (kernel.EntityRef, error) {
	kind, err := kernel.ParseEntityKind(kindName)
	if err != nil {
		return nil, err
	}
	return kernel.NewEntityRef(kind, id)
}
