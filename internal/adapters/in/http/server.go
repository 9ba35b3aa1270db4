// Package http exposes the coordinator over a thin echo server. Handlers
// only bind, delegate to commands and queries, and map domain errors to
// status codes; no rule lives here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/actor"
	"fulfillment/internal/core/domain/model/alert"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/procurement"
	"fulfillment/internal/core/domain/model/request"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"
)

// Server wires the HTTP surface to the application layer.
type Server struct {
	setRequestStatus    commands.SetRequestStatusCommandHandler
	setOrderStatus      commands.SetOrderStatusCommandHandler
	createOrder         commands.CreateOrderCommandHandler
	createAlert         commands.CreateAlertCommandHandler
	deleteAlert         commands.DeleteAlertCommandHandler
	bookProcurement     commands.BookProcurementCommandHandler
	completeProcurement commands.CompleteProcurementCommandHandler
	inventory           queries.GetAvailableInventoryQueryHandler

	directory ports.UserDirectory
	metrics   *metrics.Registry
}

// NewServer creates the HTTP server over the application handlers.
func NewServer(
	setRequestStatus commands.SetRequestStatusCommandHandler,
	setOrderStatus commands.SetOrderStatusCommandHandler,
	createOrder commands.CreateOrderCommandHandler,
	createAlert commands.CreateAlertCommandHandler,
	deleteAlert commands.DeleteAlertCommandHandler,
	bookProcurement commands.BookProcurementCommandHandler,
	completeProcurement commands.CompleteProcurementCommandHandler,
	inventory queries.GetAvailableInventoryQueryHandler,
	directory ports.UserDirectory,
	registry *metrics.Registry,
) *Server {
	return &Server{
		setRequestStatus:    setRequestStatus,
		setOrderStatus:      setOrderStatus,
		createOrder:         createOrder,
		createAlert:         createAlert,
		deleteAlert:         deleteAlert,
		bookProcurement:     bookProcurement,
		completeProcurement: completeProcurement,
		inventory:           inventory,
		directory:           directory,
		metrics:             registry,
	}
}

// RegisterRoutes mounts the API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.PATCH("/requests/:id/status", s.handleSetRequestStatus)
	v1.PATCH("/orders/:id/status", s.handleSetOrderStatus)
	v1.POST("/orders", s.handleCreateOrder)
	v1.POST("/alerts", s.handleCreateAlert)
	v1.DELETE("/alerts/:id", s.handleDeleteAlert)
	v1.GET("/inventory", s.handleGetInventory)
	v1.POST("/procurements/:id/book", s.handleBookProcurement)
	v1.POST("/procurements/:id/complete", s.handleCompleteProcurement)
}

// actingParty resolves an authenticated user ID into an actor.
func (s *Server) actingParty(c echo.Context, rawUserID int64) (actor.Actor, error) {
	userID, err := kernel.NewUserID(rawUserID)
	if err != nil {
		return actor.Actor{}, err
	}
	profile, err := s.directory.Resolve(c.Request().Context(), userID)
	if err != nil {
		return actor.Actor{}, err
	}
	return actor.NewActor(profile.ID, profile.Role)
}

func (s *Server) handleSetRequestStatus(c echo.Context) error {
	var body setStatusRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rawID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request id")
	}
	requestID, err := kernel.NewRequestID(rawID)
	if err != nil {
		return errorResponse(c, err)
	}
	target, err := request.StatusFromString(body.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	party, err := s.actingParty(c, body.UserID)
	if err != nil {
		return errorResponse(c, err)
	}

	cmd, err := commands.NewSetRequestStatusCommand(requestID, target, party)
	if err != nil {
		return errorResponse(c, err)
	}

	updated, err := s.setRequestStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.metrics.TransitionsRejected.WithLabelValues("request").Inc()
		if errors.Is(err, errs.ErrCascadeIncomplete) {
			s.metrics.CascadesFailed.Inc()
		}
		return errorResponse(c, err)
	}

	s.metrics.TransitionsApplied.WithLabelValues("request").Inc()
	s.metrics.CascadesCompleted.Inc()
	return c.JSON(http.StatusOK, requestResponse{
		ID:     updated.ID().Int64(),
		Status: updated.Status().String(),
	})
}

func (s *Server) handleSetOrderStatus(c echo.Context) error {
	var body setOrderStatusRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rawID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	orderID, err := kernel.NewOrderID(rawID)
	if err != nil {
		return errorResponse(c, err)
	}
	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return errorResponse(c, err)
	}
	party, err := s.actingParty(c, body.UserID)
	if err != nil {
		return errorResponse(c, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, target, party, body.ApplyToAll)
	if err != nil {
		return errorResponse(c, err)
	}

	updated, err := s.setOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.metrics.TransitionsRejected.WithLabelValues("order").Inc()
		return errorResponse(c, err)
	}

	s.metrics.TransitionsApplied.WithLabelValues("order").Inc()
	response := make([]orderResponse, 0, len(updated))
	for _, o := range updated {
		response = append(response, orderResponse{
			ID:        o.ID().Int64(),
			RequestID: o.RequestID().Int64(),
			Status:    o.Status().String(),
		})
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) handleCreateOrder(c echo.Context) error {
	var body createOrderRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	requestID, err := kernel.NewRequestID(body.RequestID)
	if err != nil {
		return errorResponse(c, err)
	}

	items := make([]order.LineItem, 0, len(body.Items))
	for _, line := range body.Items {
		itemID, itemErr := kernel.NewItemID(line.ItemID)
		if itemErr != nil {
			return errorResponse(c, itemErr)
		}
		items = append(items, order.LineItem{ItemID: itemID, Quantity: line.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		requestID,
		items,
		body.DeliveryDate,
		body.DeliveryAddress,
		body.DeliveryTimeRange,
		body.Customizations,
		body.PaymentMethod,
	)
	if err != nil {
		return errorResponse(c, err)
	}

	created, err := s.createOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, orderResponse{
		ID:        created.ID().Int64(),
		RequestID: created.RequestID().Int64(),
		Status:    created.Status().String(),
	})
}

func (s *Server) handleCreateAlert(c echo.Context) error {
	var body createAlertRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	orderIDs := make([]kernel.OrderID, 0, len(body.OrderIDs))
	for _, raw := range body.OrderIDs {
		orderID, idErr := kernel.NewOrderID(raw)
		if idErr != nil {
			return errorResponse(c, idErr)
		}
		orderIDs = append(orderIDs, orderID)
	}
	createdBy, err := kernel.NewUserID(body.CreatedBy)
	if err != nil {
		return errorResponse(c, err)
	}

	cmd, err := commands.NewCreateAlertCommand(
		alert.Category(body.Category),
		body.Details,
		orderIDs,
		createdBy,
		body.CancelOrders,
		body.CancelRequest,
	)
	if err != nil {
		return errorResponse(c, err)
	}

	created, err := s.createAlert.Handle(c.Request().Context(), cmd)
	if err != nil {
		return errorResponse(c, err)
	}

	s.metrics.AlertsEmitted.Inc()
	orders := make([]int64, 0, len(created.Orders()))
	for _, id := range created.Orders() {
		orders = append(orders, id.Int64())
	}
	return c.JSON(http.StatusCreated, alertResponse{
		ID:       created.ID().Int64(),
		Category: created.Category().String(),
		Details:  created.Details(),
		Orders:   orders,
	})
}

func (s *Server) handleDeleteAlert(c echo.Context) error {
	rawID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid alert id")
	}
	alertID, err := kernel.NewAlertID(rawID)
	if err != nil {
		return errorResponse(c, err)
	}

	rawUserID, err := strconv.ParseInt(c.QueryParam("userId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid userId")
	}
	party, err := s.actingParty(c, rawUserID)
	if err != nil {
		return errorResponse(c, err)
	}

	cmd, err := commands.NewDeleteAlertCommand(alertID, party)
	if err != nil {
		return errorResponse(c, err)
	}

	if err := s.deleteAlert.Handle(c.Request().Context(), cmd); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetInventory(c echo.Context) error {
	report, err := s.inventory.Handle(c.Request().Context(), queries.NewGetAvailableInventoryQuery())
	if err != nil {
		return errorResponse(c, err)
	}

	response := make([]inventoryLineResponse, 0, len(report))
	for _, line := range report {
		response = append(response, inventoryLineResponse{
			ItemID:    line.ItemID,
			ItemName:  line.ItemName,
			Total:     line.Total,
			Reserved:  line.Reserved,
			Available: line.Available,
		})
	}
	return c.JSON(http.StatusOK, response)
}

func (s *Server) handleBookProcurement(c echo.Context) error {
	var body bookProcurementRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	procurementID, err := procurementIDParam(c)
	if err != nil {
		return err
	}
	agencyID, err := kernel.NewUserID(body.AgencyID)
	if err != nil {
		return errorResponse(c, err)
	}

	cmd, err := commands.NewBookProcurementCommand(procurementID, agencyID)
	if err != nil {
		return errorResponse(c, err)
	}

	booked, err := s.bookProcurement.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.metrics.TransitionsRejected.WithLabelValues("procurement").Inc()
		return errorResponse(c, err)
	}

	s.metrics.TransitionsApplied.WithLabelValues("procurement").Inc()
	return c.JSON(http.StatusOK, procurementResponse{
		ID:     booked.ID().Int64(),
		Status: booked.Status().String(),
	})
}

func (s *Server) handleCompleteProcurement(c echo.Context) error {
	var body completeProcurementRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	procurementID, err := procurementIDParam(c)
	if err != nil {
		return err
	}

	received := make([]procurement.ReceivedItem, 0, len(body.Received))
	for _, line := range body.Received {
		received = append(received, procurement.ReceivedItem{
			Name:      line.Name,
			Discarded: line.Discarded,
			Reason:    line.Reason,
		})
	}

	cmd, err := commands.NewCompleteProcurementCommand(procurementID, received)
	if err != nil {
		return errorResponse(c, err)
	}

	completed, err := s.completeProcurement.Handle(c.Request().Context(), cmd)
	if err != nil {
		s.metrics.TransitionsRejected.WithLabelValues("procurement").Inc()
		return errorResponse(c, err)
	}

	s.metrics.TransitionsApplied.WithLabelValues("procurement").Inc()
	completions := make([]completionResponse, 0, len(completed.Completions()))
	for _, line := range completed.Completions() {
		completions = append(completions, completionResponse{
			Name:      line.Name,
			Accepted:  line.Accepted,
			Discarded: line.Discarded,
			Reason:    line.Reason,
		})
	}
	return c.JSON(http.StatusOK, procurementResponse{
		ID:          completed.ID().Int64(),
		Status:      completed.Status().String(),
		Completions: completions,
	})
}

func procurementIDParam(c echo.Context) (kernel.ProcurementID, error) {
	rawID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid procurement id")
	}
	procurementID, err := kernel.NewProcurementID(rawID)
	if err != nil {
		return 0, errorResponse(c, err)
	}
	return procurementID, nil
}
