package http

import (
	"errors"
	"net/http"

	"bloodlink/internal/core/application/usecases/commands"
	"bloodlink/internal/core/application/usecases/queries"
	"bloodlink/internal/core/domain/model/blood"
	"bloodlink/internal/core/domain/model/delivery"
	"bloodlink/internal/core/domain/model/kernel"
	"bloodlink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader identifies the recipient on notification endpoints. There is
// no session layer; callers are trusted to pass their own id.
const userIDHeader = "X-User-ID"

// Server implements the HTTP API for handling order, delivery and
// notification requests. It coordinates between HTTP handlers and
// application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	updateStatusHandler commands.UpdateStatusCommandHandler
	markReadHandler     commands.MarkNotificationReadCommandHandler
	markAllReadHandler  commands.MarkAllNotificationsReadCommandHandler

	// Query handlers
	getDeliveryHandler      queries.GetDeliveryQueryHandler
	getDeliveriesHandler    queries.GetDeliveriesQueryHandler
	getBloodUnitHandler     queries.GetBloodUnitQueryHandler
	getBloodUnitsHandler    queries.GetBloodUnitsQueryHandler
	getNotificationsHandler queries.GetNotificationsQueryHandler
	getUnreadCountHandler   queries.GetUnreadCountQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	markReadHandler commands.MarkNotificationReadCommandHandler,
	markAllReadHandler commands.MarkAllNotificationsReadCommandHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getDeliveriesHandler queries.GetDeliveriesQueryHandler,
	getBloodUnitHandler queries.GetBloodUnitQueryHandler,
	getBloodUnitsHandler queries.GetBloodUnitsQueryHandler,
	getNotificationsHandler queries.GetNotificationsQueryHandler,
	getUnreadCountHandler queries.GetUnreadCountQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		updateStatusHandler:     updateStatusHandler,
		markReadHandler:         markReadHandler,
		markAllReadHandler:      markAllReadHandler,
		getDeliveryHandler:      getDeliveryHandler,
		getDeliveriesHandler:    getDeliveriesHandler,
		getBloodUnitHandler:     getBloodUnitHandler,
		getBloodUnitsHandler:    getBloodUnitsHandler,
		getNotificationsHandler: getNotificationsHandler,
		getUnreadCountHandler:   getUnreadCountHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)

	api.GET("/deliveries", s.GetDeliveries)
	api.GET("/deliveries/:deliveryId", s.GetDelivery)
	api.POST("/deliveries/:deliveryId/status", s.UpdateDeliveryStatus)

	api.GET("/blood-units", s.GetBloodUnits)
	api.GET("/blood-units/:unitId", s.GetBloodUnit)

	api.GET("/notifications", s.GetNotifications)
	api.GET("/notifications/unread-count", s.GetUnreadCount)
	api.POST("/notifications/:notificationId/read", s.MarkNotificationRead)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
}

// PlaceOrder handles POST /api/v1/orders - places a blood order and reserves
// matching inventory.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	hospitalID, err := kernel.UUIDFromString(req.HospitalID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid hospital id")
	}

	centerID, err := kernel.UUIDFromString(req.CenterID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid center id")
	}

	bloodType, err := blood.NewType(req.BloodType)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid blood type: "+req.BloodType)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), hospitalID, centerID, bloodType, req.Quantity, req.Urgent, req.Notes)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	result, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	unitIDs := make([]string, len(result.UnitIDs))
	for i, id := range result.UnitIDs {
		unitIDs[i] = id.String()
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		DeliveryID: result.DeliveryID.String(),
		UnitIDs:    unitIDs,
	})
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels a
// pending order and returns its units to the pool.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles POST /api/v1/deliveries/{deliveryId}/status -
// records a status reported by the drone fleet.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := delivery.NewStatus(req.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status")
	}

	var droneID *kernel.UUID
	if req.DroneID != nil {
		id, idErr := kernel.UUIDFromString(*req.DroneID)
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid drone id")
		}
		droneID = &id
	}

	cmd, err := commands.NewUpdateStatusCommand(deliveryID, status, droneID, req.ValidatedAt)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status update: "+err.Error())
	}

	result, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdateStatusResponse{
		Status:  result.Status.String(),
		Changed: result.Changed,
	})
}

// GetDelivery handles GET /api/v1/deliveries/{deliveryId} - retrieves one
// delivery with its reserved unit ids.
func (s *Server) GetDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	response, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	unitIDs := make([]string, len(response.UnitIDs))
	for i, id := range response.UnitIDs {
		unitIDs[i] = id.String()
	}

	return ctx.JSON(http.StatusOK, Delivery{
		ID:          response.ID.String(),
		DroneID:     optionalID(response.DroneID),
		HospitalID:  response.HospitalID.String(),
		CenterID:    response.CenterID.String(),
		Urgent:      response.Urgent,
		Notes:       response.Notes,
		RequestedAt: response.RequestedAt,
		ValidatedAt: response.ValidatedAt,
		Status:      response.Status,
		UnitIDs:     unitIDs,
	})
}

// GetDeliveries handles GET /api/v1/deliveries - lists deliveries, urgent
// first. Supports droneId, hospitalId and centerId filters.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	droneID, err := optionalIDParam(ctx, "droneId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid drone id")
	}

	hospitalID, err := optionalIDParam(ctx, "hospitalId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid hospital id")
	}

	centerID, err := optionalIDParam(ctx, "centerId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid center id")
	}

	query, err := queries.NewGetDeliveriesQuery(droneID, hospitalID, centerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid filters")
	}

	deliveries, err := s.getDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve deliveries")
	}

	response := make([]Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = Delivery{
			ID:          d.ID.String(),
			DroneID:     optionalID(d.DroneID),
			HospitalID:  d.HospitalID.String(),
			CenterID:    d.CenterID.String(),
			Urgent:      d.Urgent,
			Notes:       d.Notes,
			RequestedAt: d.RequestedAt,
			ValidatedAt: d.ValidatedAt,
			Status:      d.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBloodUnit handles GET /api/v1/blood-units/{unitId} - retrieves one
// blood unit.
func (s *Server) GetBloodUnit(ctx echo.Context) error {
	unitID, err := kernel.UUIDFromString(ctx.Param("unitId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid unit id")
	}

	query, err := queries.NewGetBloodUnitQuery(unitID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid unit id")
	}

	response, err := s.getBloodUnitHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BloodUnit{
		ID:         response.ID.String(),
		BloodType:  response.BloodType,
		DeliveryID: optionalID(response.DeliveryID),
	})
}

// GetBloodUnits handles GET /api/v1/blood-units - lists blood units.
// Supports bloodType and deliveryId filters, and available=true to restrict
// the result to the unreserved pool.
func (s *Server) GetBloodUnits(ctx echo.Context) error {
	var bloodType *blood.Type
	if raw := ctx.QueryParam("bloodType"); raw != "" {
		bt, err := blood.NewType(raw)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid blood type: "+raw)
		}
		bloodType = &bt
	}

	deliveryID, err := optionalIDParam(ctx, "deliveryId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid delivery id")
	}

	onlyAvailable := ctx.QueryParam("available") == "true"

	query, err := queries.NewGetBloodUnitsQuery(bloodType, deliveryID, onlyAvailable)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid filters")
	}

	units, err := s.getBloodUnitsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve blood units")
	}

	response := make([]BloodUnit, len(units))
	for i, u := range units {
		response[i] = BloodUnit{
			ID:         u.ID.String(),
			BloodType:  u.BloodType,
			DeliveryID: optionalID(u.DeliveryID),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/v1/notifications - lists the calling
// user's notifications, newest first. Pass unread=true to exclude
// acknowledged ones.
func (s *Server) GetNotifications(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	unreadOnly := ctx.QueryParam("unread") == "true"

	query, err := queries.NewGetNotificationsQuery(userID, unreadOnly)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid user id")
	}

	notifications, err := s.getNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve notifications")
	}

	response := make([]Notification, len(notifications))
	for i, n := range notifications {
		response[i] = Notification{
			ID:         n.ID.String(),
			DeliveryID: n.DeliveryID.String(),
			Title:      n.Title,
			Message:    n.Message,
			Read:       n.Read,
			CreatedAt:  n.CreatedAt,
			ReadAt:     n.ReadAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnreadCount handles GET /api/v1/notifications/unread-count - returns
// the calling user's number of unread notifications.
func (s *Server) GetUnreadCount(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	query, err := queries.NewGetUnreadCountQuery(userID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid user id")
	}

	count, err := s.getUnreadCountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to count notifications")
	}

	return ctx.JSON(http.StatusOK, UnreadCountResponse{Count: count})
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read -
// acknowledges one notification of the calling user.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	notificationID, err := kernel.UUIDFromString(ctx.Param("notificationId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid notification id")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, userID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid notification id")
	}

	if err = s.markReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all -
// acknowledges every unread notification of the calling user.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	userID, err := callerID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(userID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid user id")
	}

	updated, err := s.markAllReadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MarkAllReadResponse{Updated: updated})
}

// callerID extracts the authenticated user id from the request header.
func callerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(userIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(userIDHeader)
	}

	return kernel.UUIDFromString(raw)
}

// optionalIDParam parses a uuid query parameter, returning nil when absent.
func optionalIDParam(ctx echo.Context, name string) (*kernel.UUID, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func optionalID(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// commandError maps use case errors to HTTP status codes.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrInsufficientInventory),
		errors.Is(err, delivery.ErrDeliveryNotCancellable),
		errors.Is(err, errs.ErrVersionConflict):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
