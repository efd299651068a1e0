package http

import (
	"fmt"
	"net/http"

	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/application/usecases/queries"
	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/order"
	"medassist/internal/core/ports"
	"medassist/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CheckoutMedicines handles POST /api/v1/checkout/medicines - pays for the cart and places the order.
func (s *Server) CheckoutMedicines(ctx echo.Context) error {
	var body servers.MedicineCheckout
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	lines := make([]commands.CartLine, 0, len(body.Items))
	for i, item := range body.Items {
		price, err := kernel.NewMoneyFromFloat(item.Price)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid checkout: line %d: %v", i, err))
		}
		lines = append(lines, commands.CartLine{
			Name:     item.Name,
			Price:    price.Amount(),
			Quantity: item.Quantity,
		})
	}

	cmd, err := commands.NewPlaceMedicineOrderCommand(lines, ports.PaymentMethod(body.PaymentMethod))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid checkout: "+err.Error())
	}

	o, err := s.h.PlaceMedicineOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err, "Failed to place order")
	}
	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderView(o)))
}

// CheckoutLabTest handles POST /api/v1/checkout/lab-tests - pays for and books a lab test.
func (s *Server) CheckoutLabTest(ctx echo.Context) error {
	var body servers.LabTestCheckout
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	price, err := kernel.NewMoneyFromFloat(body.Price)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid booking: "+err.Error())
	}

	cmd, err := commands.NewBookLabTestCommand(
		body.TestName,
		body.ScheduledDate,
		price.Amount(),
		ports.PaymentMethod(body.PaymentMethod),
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid booking: "+err.Error())
	}

	o, err := s.h.BookLabTest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err, "Failed to book lab test")
	}
	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderView(o)))
}

// ListOrders handles GET /api/v1/orders - lists orders newest first, optionally of one kind.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	kind := order.UnknownKind
	if params.Kind != nil {
		parsed, err := order.ParseKind(string(*params.Kind))
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid kind: "+err.Error())
		}
		kind = parsed
	}

	query, err := queries.NewListOrdersQuery(kind)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid kind: "+err.Error())
	}

	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.Order, 0, len(views))
	for _, view := range views {
		response = append(response, toOrder(view))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := order.ParseID(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err, "Failed to retrieve order")
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance - completes the next step.
func (s *Server) AdvanceOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := order.ParseID(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAdvanceOrderStepCommand(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	o, err := s.h.AdvanceOrderStep.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err, "Failed to advance order")
	}
	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderView(o)))
}

func toOrder(view queries.OrderView) servers.Order {
	steps := make([]servers.OrderStep, 0, len(view.Steps))
	for _, step := range view.Steps {
		s := servers.OrderStep{Label: step.Label, IsCompleted: step.IsCompleted}
		if step.Timestamp != "" {
			s.Timestamp = &step.Timestamp
		}
		steps = append(steps, s)
	}

	out := servers.Order{
		Id:             view.ID.String(),
		Kind:           servers.OrderKind(view.Kind.String()),
		Title:          view.Title,
		Details:        view.Details,
		Amount:         view.Amount.Amount().InexactFloat64(),
		Status:         view.Status,
		Date:           view.CreatedAt,
		Steps:          steps,
		CompletedSteps: view.CompletedSteps,
	}
	if len(view.ItemNames) > 0 {
		items := view.ItemNames
		out.Items = &items
	}
	if view.DeliveryAgent != nil {
		out.DeliveryAgent = &servers.Contact{Name: view.DeliveryAgent.Name, Phone: view.DeliveryAgent.Phone}
	}
	if view.InvoiceURL != "" {
		invoice := view.InvoiceURL
		out.InvoiceUrl = &invoice
	}
	if view.ReportURL != "" {
		report := view.ReportURL
		out.ReportUrl = &report
	}
	return out
}
