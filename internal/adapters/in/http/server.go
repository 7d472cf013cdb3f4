// Package http exposes the rental order lifecycle over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/invoice"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the API gateway after authentication.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server handles HTTP requests by dispatching to command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	sendOrderHandler     commands.SendOrderCommandHandler
	confirmOrderHandler  commands.ConfirmOrderCommandHandler
	createInvoiceHandler commands.CreateInvoiceCommandHandler
	payOrderHandler      commands.PayOrderCommandHandler
	pickupOrderHandler   commands.PickupOrderCommandHandler
	returnOrderHandler   commands.ReturnOrderCommandHandler
	voidInvoiceHandler   commands.VoidInvoiceCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	checkAvailabilityHandler queries.CheckAvailabilityQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	sendOrderHandler commands.SendOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	createInvoiceHandler commands.CreateInvoiceCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	pickupOrderHandler commands.PickupOrderCommandHandler,
	returnOrderHandler commands.ReturnOrderCommandHandler,
	voidInvoiceHandler commands.VoidInvoiceCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	checkAvailabilityHandler queries.CheckAvailabilityQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		sendOrderHandler:         sendOrderHandler,
		confirmOrderHandler:      confirmOrderHandler,
		createInvoiceHandler:     createInvoiceHandler,
		payOrderHandler:          payOrderHandler,
		pickupOrderHandler:       pickupOrderHandler,
		returnOrderHandler:       returnOrderHandler,
		voidInvoiceHandler:       voidInvoiceHandler,
		getOrderHandler:          getOrderHandler,
		checkAvailabilityHandler: checkAvailabilityHandler,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.POST("/orders/:id/send", s.SendOrder)
	v1.POST("/orders/:id/confirm", s.ConfirmOrder)
	v1.POST("/orders/:id/invoice", s.CreateInvoice)
	v1.POST("/orders/:id/pay", s.PayOrder)
	v1.POST("/orders/:id/pickup", s.PickupOrder)
	v1.POST("/orders/:id/return", s.ReturnOrder)
	v1.POST("/invoices/:id/void", s.VoidInvoice)
	v1.GET("/products/:id/availability", s.CheckAvailability)
}

// CreateOrder handles POST /api/v1/orders - creates a quotation.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, reqItem := range body.Items {
		productID, itemErr := kernel.UUIDFromString(reqItem.ProductID)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}

		var period *kernel.DateRange
		if reqItem.StartDate != nil || reqItem.EndDate != nil {
			if reqItem.StartDate == nil || reqItem.EndDate == nil {
				return respondError(ctx, errs.NewValueIsRequiredError("startDate and endDate"))
			}
			rng, rangeErr := kernel.NewDateRange(*reqItem.StartDate, *reqItem.EndDate)
			if rangeErr != nil {
				return respondError(ctx, rangeErr)
			}
			period = &rng
		}

		item, itemErr := commands.NewItemInput(productID, reqItem.Quantity, period)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		actor,
		userID,
		items,
		order.Totals{
			Untaxed:  body.Untaxed,
			Tax:      body.Tax,
			Discount: body.Discount,
			Shipping: body.Shipping,
			Total:    body.Total,
		},
		body.Note,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItem{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price,
			StartDate: item.StartDate,
			EndDate:   item.EndDate,
		})
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:          resp.ID.String(),
		OrderNumber: resp.OrderNumber,
		UserID:      resp.UserID.String(),
		Status:      resp.Status,
		Untaxed:     resp.Untaxed,
		Tax:         resp.Tax,
		Discount:    resp.Discount,
		Shipping:    resp.Shipping,
		Total:       resp.Total,
		LateFee:     resp.LateFee,
		Note:        resp.Note,
		Items:       items,
	})
}

// SendOrder handles POST /api/v1/orders/:id/send - sends a quotation.
func (s *Server) SendOrder(ctx echo.Context) error {
	actor, orderID, err := actorAndID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSendOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	sent, err := s.sendOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(sent))
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm - confirms a quotation
// into a sales order after the availability guard.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	actor, orderID, err := actorAndID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	confirmed, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(confirmed))
}

// CreateInvoice handles POST /api/v1/orders/:id/invoice - bills a sales order.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	actor, orderID, err := actorAndID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body CreateInvoice
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateInvoiceCommand(orderID, actor, body.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	bill, err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toInvoiceResponse(bill))
}

// PayOrder handles POST /api/v1/orders/:id/pay - settles the invoice and
// marks the order paid in one step.
func (s *Server) PayOrder(ctx echo.Context) error {
	actor, orderID, err := actorAndID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body PayOrder
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPayOrderCommand(orderID, actor, body.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	paid, bill, err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"order":   toOrderResponse(paid),
		"invoice": toInvoiceResponse(bill),
	})
}

// PickupOrder handles POST /api/v1/orders/:id/pickup - hands goods out.
func (s *Server) PickupOrder(ctx echo.Context) error {
	actor, orderID, err := actorAndID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewPickupOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	pickedUp, err := s.pickupOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(pickedUp))
}

// ReturnOrder handles POST /api/v1/orders/:id/return - takes goods back.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	actor, orderID, err := actorAndID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReturnOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	returned, err := s.returnOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(returned))
}

// VoidInvoice handles POST /api/v1/invoices/:id/void - cancels an invoice.
func (s *Server) VoidInvoice(ctx echo.Context) error {
	actor, invoiceID, err := actorAndID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewVoidInvoiceCommand(invoiceID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	voided, err := s.voidInvoiceHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInvoiceResponse(voided))
}

// CheckAvailability handles GET /api/v1/products/:id/availability.
// Expects start and end query parameters as YYYY-MM-DD.
func (s *Server) CheckAvailability(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	start, err := time.Parse("2006-01-02", ctx.QueryParam("start"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("start", err))
	}
	end, err := time.Parse("2006-01-02", ctx.QueryParam("end"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("end", err))
	}

	period, err := kernel.NewDateRange(start, end)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewCheckAvailabilityQuery(productID, period)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.checkAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Availability{
		ProductID:  resp.ProductID.String(),
		TotalStock: resp.TotalStock,
		Reserved:   resp.Reserved,
		Available:  resp.Available,
	})
}

// actorFromRequest builds the caller identity from the gateway headers.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return kernel.Actor{}, errs.NewValueIsRequiredErrorWithCause(headerUserID, err)
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(userID, role)
}

func actorAndID(ctx echo.Context) (kernel.Actor, kernel.UUID, error) {
	actor, err := actorFromRequest(ctx)
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.Actor{}, kernel.UUID{}, err
	}

	return actor, id, nil
}

func toOrderResponse(aggregate *order.Order) Order {
	items := make([]OrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var startDate, endDate *time.Time
		if period := item.Period(); period != nil {
			start, end := period.Start(), period.End()
			startDate, endDate = &start, &end
		}

		items = append(items, OrderItem{
			ID:        item.ID().String(),
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			StartDate: startDate,
			EndDate:   endDate,
		})
	}

	totals := aggregate.Totals()
	return Order{
		ID:          aggregate.ID().String(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID().String(),
		Status:      aggregate.Status().String(),
		Untaxed:     totals.Untaxed,
		Tax:         totals.Tax,
		Discount:    totals.Discount,
		Shipping:    totals.Shipping,
		Total:       totals.Total,
		LateFee:     aggregate.LateFee(),
		Note:        aggregate.Note(),
		Items:       items,
	}
}

func toInvoiceResponse(bill *invoice.Invoice) Invoice {
	return Invoice{
		ID:          bill.ID().String(),
		OrderID:     bill.OrderID().String(),
		Amount:      bill.Amount(),
		Status:      bill.Status().String(),
		Method:      bill.Method(),
		PaymentDate: bill.PaymentDate(),
	}
}

// respondError maps domain errors onto the HTTP status taxonomy:
// missing objects are 404, lifecycle and stock conflicts are 409, role
// violations are 403 and all validation failures are 400.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrObjectInvalidState),
		errors.Is(err, errs.ErrStockConflict):
		status = http.StatusConflict
	case errors.Is(err, commands.ErrActorNotAllowed):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
