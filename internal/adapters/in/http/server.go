// Package http exposes the billing core over an echo server. The caller's
// identity arrives in upstream-set headers; this adapter converts it into an
// Actor and never performs authentication itself.
package http

import (
	"net/http"
	"strconv"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Headers carrying the authenticated caller, set by the upstream gateway.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	preAlertParcelHandler        commands.PreAlertParcelCommandHandler
	weighParcelHandler           commands.WeighParcelCommandHandler
	createShipmentHandler        commands.CreateShipmentCommandHandler
	markShipmentDeliveredHandler commands.MarkShipmentDeliveredCommandHandler
	submitPaymentHandler         commands.SubmitPaymentCommandHandler
	verifyPaymentHandler         commands.VerifyPaymentCommandHandler
	rejectPaymentHandler         commands.RejectPaymentCommandHandler
	approveParcelPaymentHandler  commands.ApproveParcelPaymentCommandHandler
	deletePaymentHandler         commands.DeletePaymentCommandHandler

	// Query handlers
	getParcelHandler          queries.GetParcelQueryHandler
	getShipmentHandler        queries.GetShipmentQueryHandler
	getInvoiceHandler         queries.GetInvoiceQueryHandler
	getInvoicesByOwnerHandler queries.GetInvoicesByOwnerQueryHandler
	getPaymentHandler         queries.GetPaymentQueryHandler
	getPendingPaymentsHandler queries.GetPendingPaymentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	preAlertParcelHandler commands.PreAlertParcelCommandHandler,
	weighParcelHandler commands.WeighParcelCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	markShipmentDeliveredHandler commands.MarkShipmentDeliveredCommandHandler,
	submitPaymentHandler commands.SubmitPaymentCommandHandler,
	verifyPaymentHandler commands.VerifyPaymentCommandHandler,
	rejectPaymentHandler commands.RejectPaymentCommandHandler,
	approveParcelPaymentHandler commands.ApproveParcelPaymentCommandHandler,
	deletePaymentHandler commands.DeletePaymentCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
	getInvoicesByOwnerHandler queries.GetInvoicesByOwnerQueryHandler,
	getPaymentHandler queries.GetPaymentQueryHandler,
	getPendingPaymentsHandler queries.GetPendingPaymentsQueryHandler,
) *Server {
	return &Server{
		preAlertParcelHandler:        preAlertParcelHandler,
		weighParcelHandler:           weighParcelHandler,
		createShipmentHandler:        createShipmentHandler,
		markShipmentDeliveredHandler: markShipmentDeliveredHandler,
		submitPaymentHandler:         submitPaymentHandler,
		verifyPaymentHandler:         verifyPaymentHandler,
		rejectPaymentHandler:         rejectPaymentHandler,
		approveParcelPaymentHandler:  approveParcelPaymentHandler,
		deletePaymentHandler:         deletePaymentHandler,
		getParcelHandler:             getParcelHandler,
		getShipmentHandler:           getShipmentHandler,
		getInvoiceHandler:            getInvoiceHandler,
		getInvoicesByOwnerHandler:    getInvoicesByOwnerHandler,
		getPaymentHandler:            getPaymentHandler,
		getPendingPaymentsHandler:    getPendingPaymentsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
// The static pending-payments route is registered before the parameterized
// payment route so echo does not capture "pending" as an id.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels/pre-alert", s.PreAlertParcel)
	api.POST("/parcels/:id/weigh-in", s.WeighParcel)
	api.GET("/parcels/:id", s.GetParcel)

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:id/delivered", s.MarkShipmentDelivered)
	api.GET("/shipments/:id", s.GetShipment)

	api.GET("/invoices/:id", s.GetInvoice)
	api.GET("/owners/:ownerId/invoices", s.GetInvoicesByOwner)

	api.GET("/payments/pending", s.GetPendingPayments)
	api.POST("/payments", s.SubmitPayment)
	api.POST("/payments/:id/verify", s.VerifyPayment)
	api.POST("/payments/:id/reject", s.RejectPayment)
	api.POST("/payments/:id/approve-parcel", s.ApproveParcelPayment)
	api.DELETE("/payments/:id", s.DeletePayment)
	api.GET("/payments/:id", s.GetPayment)
}

// actor reconstructs the authenticated caller from the gateway headers.
func (s *Server) actor(ctx echo.Context) (kernel.Actor, error) {
	id, err := strconv.ParseInt(ctx.Request().Header.Get(headerUserID), 10, 64)
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(id, role)
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "missing or malformed caller identity headers",
	})
}

func badRequestBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

// PreAlertParcel handles POST /api/v1/parcels/pre-alert - registers an
// inbound parcel owned by the caller.
func (s *Server) PreAlertParcel(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req PreAlertParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewPreAlertParcelCommand(
		actor,
		req.TrackingCode,
		req.Description,
		decimal.NewFromFloat(req.DeclaredValue),
		req.Domestic,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.preAlertParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelToResponse(created))
}

// WeighParcel handles POST /api/v1/parcels/:id/weigh-in - records a weigh-in
// and returns the computed cost breakdown.
func (s *Server) WeighParcel(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	parcelID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	var req WeighParcelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewWeighParcelCommand(
		actor,
		parcelID,
		decimal.NewFromFloat(req.WeightLbs),
		decimal.NewFromFloat(req.DeclaredValue),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	breakdown, err := s.weighParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, breakdownToResponse(breakdown))
}

// CreateShipment handles POST /api/v1/shipments - creates a shipment with its
// computed cost and auto-generated invoice.
func (s *Server) CreateShipment(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req CreateShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(ctx)
	}

	recipient, err := shipment.NewRecipient(
		req.Recipient.Name,
		req.Recipient.City,
		req.Recipient.Address,
		req.Recipient.Phone,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		actor,
		req.OwnerID,
		req.TrackingCode,
		req.Description,
		decimal.NewFromFloat(req.WeightLbs),
		decimal.NewFromFloat(req.DeclaredValue),
		req.Domestic,
		recipient,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentToResponse(created))
}

// MarkShipmentDelivered handles POST /api/v1/shipments/:id/delivered.
func (s *Server) MarkShipmentDelivered(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	shipmentID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewMarkShipmentDeliveredCommand(actor, shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markShipmentDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitPayment handles POST /api/v1/payments - submits a payment against an
// invoice and returns it with its generated receipt number.
func (s *Server) SubmitPayment(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var req SubmitPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(ctx)
	}

	amount, err := kernel.NewMoneyFromFloat(req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitPaymentCommand(actor, req.InvoiceID, amount, method, req.Reference, req.Note)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.submitPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentToResponse(created))
}

// VerifyPayment handles POST /api/v1/payments/:id/verify.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	paymentID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewVerifyPaymentCommand(actor, paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.verifyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectPayment handles POST /api/v1/payments/:id/reject.
func (s *Server) RejectPayment(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	paymentID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	var req RejectPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewRejectPaymentCommand(actor, paymentID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveParcelPayment handles POST /api/v1/payments/:id/approve-parcel -
// the legacy settlement path for parcel invoices.
func (s *Server) ApproveParcelPayment(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	paymentID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewApproveParcelPaymentCommand(actor, paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.approveParcelPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePayment handles DELETE /api/v1/payments/:id.
func (s *Server) DeletePayment(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	paymentID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	cmd, err := commands.NewDeletePaymentCommand(actor, paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deletePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetParcel handles GET /api/v1/parcels/:id.
func (s *Server) GetParcel(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	parcelID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	query, err := queries.NewGetParcelQuery(actor, parcelID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelQueryToResponse(resp))
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	shipmentID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	query, err := queries.NewGetShipmentQuery(actor, shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentQueryToResponse(resp))
}

// GetInvoice handles GET /api/v1/invoices/:id.
func (s *Server) GetInvoice(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	invoiceID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	query, err := queries.NewGetInvoiceQuery(actor, invoiceID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceQueryToResponse(resp))
}

// GetInvoicesByOwner handles GET /api/v1/owners/:ownerId/invoices.
func (s *Server) GetInvoicesByOwner(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	ownerID, err := strconv.ParseInt(ctx.Param("ownerId"), 10, 64)
	if err != nil {
		return badRequestBody(ctx)
	}

	query, err := queries.NewGetInvoicesByOwnerQuery(actor, ownerID)
	if err != nil {
		return writeError(ctx, err)
	}

	invoices, err := s.getInvoicesByOwnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		response[i] = invoiceQueryToResponse(inv)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPayment handles GET /api/v1/payments/:id.
func (s *Server) GetPayment(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	paymentID, err := pathID(ctx)
	if err != nil {
		return badRequestBody(ctx)
	}

	query, err := queries.NewGetPaymentQuery(actor, paymentID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentQueryToResponse(resp))
}

// GetPendingPayments handles GET /api/v1/payments/pending - the operator
// verification worklist.
func (s *Server) GetPendingPayments(ctx echo.Context) error {
	actor, err := s.actor(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetPendingPaymentsQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	payments, err := s.getPendingPaymentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PendingPaymentResponse, len(payments))
	for i, p := range payments {
		response[i] = pendingPaymentToResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}
