package http

import (
	"errors"
	"net/http"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
// Each route binds the request, consults the policy check for the acting
// role, builds a command or query, and maps domain errors to status codes.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderItemsHandler   commands.UpdateOrderItemsCommandHandler
	transitionOrderHandler    commands.TransitionOrderCommandHandler
	scheduleDeliveryHandler   commands.ScheduleDeliveryCommandHandler
	confirmDeliveryHandler    commands.ConfirmDeliveryCommandHandler
	receiveItemsHandler       commands.ReceiveItemsCommandHandler
	reviewDiscrepancyHandler  commands.ReviewDiscrepancyCommandHandler
	resolveDiscrepancyHandler commands.ResolveDiscrepancyCommandHandler
	generateAssetsHandler     commands.GenerateAssetsCommandHandler

	// Query handlers
	getOrderHandler             queries.GetOrderQueryHandler
	getOrdersByStatusHandler    queries.GetOrdersByStatusQueryHandler
	getOverdueDeliveriesHandler queries.GetOverdueDeliveriesQueryHandler
	getOpenDiscrepancyHandler   queries.GetOpenDiscrepancyQueryHandler

	policy ports.PolicyCheck
	files  ports.FileStore
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the authorization and attachment ports.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderItemsHandler commands.UpdateOrderItemsCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	scheduleDeliveryHandler commands.ScheduleDeliveryCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	receiveItemsHandler commands.ReceiveItemsCommandHandler,
	reviewDiscrepancyHandler commands.ReviewDiscrepancyCommandHandler,
	resolveDiscrepancyHandler commands.ResolveDiscrepancyCommandHandler,
	generateAssetsHandler commands.GenerateAssetsCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getOverdueDeliveriesHandler queries.GetOverdueDeliveriesQueryHandler,
	getOpenDiscrepancyHandler queries.GetOpenDiscrepancyQueryHandler,
	policy ports.PolicyCheck,
	files ports.FileStore,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderItemsHandler:     updateOrderItemsHandler,
		transitionOrderHandler:      transitionOrderHandler,
		scheduleDeliveryHandler:     scheduleDeliveryHandler,
		confirmDeliveryHandler:      confirmDeliveryHandler,
		receiveItemsHandler:         receiveItemsHandler,
		reviewDiscrepancyHandler:    reviewDiscrepancyHandler,
		resolveDiscrepancyHandler:   resolveDiscrepancyHandler,
		generateAssetsHandler:       generateAssetsHandler,
		getOrderHandler:             getOrderHandler,
		getOrdersByStatusHandler:    getOrdersByStatusHandler,
		getOverdueDeliveriesHandler: getOverdueDeliveriesHandler,
		getOpenDiscrepancyHandler:   getOpenDiscrepancyHandler,
		policy:                      policy,
		files:                       files,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId/items", s.UpdateOrderItems)
	api.POST("/orders/:orderId/transitions", s.TransitionOrder)
	api.POST("/orders/:orderId/delivery/schedule", s.ScheduleDelivery)
	api.POST("/orders/:orderId/delivery/confirm", s.ConfirmDelivery)
	api.POST("/orders/:orderId/receipt", s.ReceiveItems)
	api.POST("/orders/:orderId/assets", s.GenerateAssets)
	api.GET("/orders/:orderId/discrepancy", s.GetOpenDiscrepancy)
	api.POST("/discrepancies/:caseId/review", s.ReviewDiscrepancy)
	api.POST("/discrepancies/:caseId/resolve", s.ResolveDiscrepancy)
	api.GET("/deliveries/overdue", s.GetOverdueDeliveries)
}

// Request bodies. Amounts travel as JSON numbers or strings; decimal.Decimal
// accepts both, so callers never lose precision to float parsing.

type LineItemRequest struct {
	Description     string          `json:"description"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	GeneratesAssets bool            `json:"generatesAssets"`
	AssetType       string          `json:"assetType,omitempty"`
}

type CreateOrderRequest struct {
	VendorID         string            `json:"vendorId"`
	ProjectID        string            `json:"projectId"`
	VATRate          decimal.Decimal   `json:"vatRate"`
	EWTRate          decimal.Decimal   `json:"ewtRate"`
	HandlingFee      decimal.Decimal   `json:"handlingFee"`
	DiscountAmount   decimal.Decimal   `json:"discountAmount"`
	BudgetAllocation *decimal.Decimal  `json:"budgetAllocation,omitempty"`
	IsRetroactive    bool              `json:"isRetroactive"`
	Items            []LineItemRequest `json:"items"`
	Attachments      []string          `json:"attachments,omitempty"`
}

type UpdateOrderItemsRequest struct {
	VATRate          decimal.Decimal   `json:"vatRate"`
	EWTRate          decimal.Decimal   `json:"ewtRate"`
	HandlingFee      decimal.Decimal   `json:"handlingFee"`
	DiscountAmount   decimal.Decimal   `json:"discountAmount"`
	BudgetAllocation *decimal.Decimal  `json:"budgetAllocation,omitempty"`
	Items            []LineItemRequest `json:"items"`
}

type TransitionOrderRequest struct {
	Trigger string `json:"trigger"`
	Notes   string `json:"notes,omitempty"`
}

type ScheduleDeliveryRequest struct {
	Date           time.Time `json:"date"`
	Method         string    `json:"method"`
	Location       string    `json:"location"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
}

type ConfirmDeliveryRequest struct {
	ActualDate time.Time `json:"actualDate"`
}

type ReceiveItemsRequest struct {
	Quantities map[string]int `json:"quantities"`
	Notes      string         `json:"notes,omitempty"`
}

type GenerationSelectionRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type GenerateAssetsRequest struct {
	Selections []GenerationSelectionRequest `json:"selections"`
}

type ResolveDiscrepancyRequest struct {
	Action string `json:"action"`
	Notes  string `json:"notes"`
}

// Response bodies for operations that return more than a status code.

type CreateOrderResponse struct {
	ID string `json:"id"`
}

type ItemReceiptResponse struct {
	ItemID           string `json:"itemId"`
	Description      string `json:"description"`
	QuantityOrdered  int    `json:"quantityOrdered"`
	QuantityReceived int    `json:"quantityReceived"`
	Status           string `json:"status"`
}

type ReceiptResponse struct {
	OrderID        string                `json:"orderId"`
	DeliveryStatus string                `json:"deliveryStatus"`
	Items          []ItemReceiptResponse `json:"items"`
	HasShortages   bool                  `json:"hasShortages"`
}

type GeneratedAssetResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	LineItemID  string          `json:"lineItemId"`
	AssetType   string          `json:"assetType"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	GeneratedBy string          `json:"generatedBy"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

type DeliveryResponse struct {
	Status         string     `json:"status"`
	ScheduledDate  *time.Time `json:"scheduledDate,omitempty"`
	Method         string     `json:"method,omitempty"`
	Location       string     `json:"location,omitempty"`
	TrackingNumber string     `json:"trackingNumber,omitempty"`
	ActualDate     *time.Time `json:"actualDate,omitempty"`
}

type LineItemResponse struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	QuantityOrdered  int             `json:"quantityOrdered"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	QuantityReceived int             `json:"quantityReceived"`
	GeneratesAssets  bool            `json:"generatesAssets"`
	AssetType        string          `json:"assetType,omitempty"`
	AssetsGenerated  int             `json:"assetsGenerated"`
}

type TrackingEventResponse struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Actor      string    `json:"actor"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	Notes      string    `json:"notes,omitempty"`
}

type OrderResponse struct {
	ID               string                  `json:"id"`
	VendorID         string                  `json:"vendorId"`
	ProjectID        string                  `json:"projectId"`
	Status           string                  `json:"status"`
	IsRetroactive    bool                    `json:"isRetroactive"`
	VATRate          decimal.Decimal         `json:"vatRate"`
	EWTRate          decimal.Decimal         `json:"ewtRate"`
	HandlingFee      decimal.Decimal         `json:"handlingFee"`
	DiscountAmount   decimal.Decimal         `json:"discountAmount"`
	BudgetAllocation *decimal.Decimal        `json:"budgetAllocation,omitempty"`
	Subtotal         decimal.Decimal         `json:"subtotal"`
	VATAmount        decimal.Decimal         `json:"vatAmount"`
	EWTAmount        decimal.Decimal         `json:"ewtAmount"`
	NetTotal         decimal.Decimal         `json:"netTotal"`
	Delivery         DeliveryResponse        `json:"delivery"`
	Items            []LineItemResponse      `json:"items"`
	Events           []TrackingEventResponse `json:"events"`
	Version          int                     `json:"version"`
}

type OrderSummaryResponse struct {
	ID             string          `json:"id"`
	VendorID       string          `json:"vendorId"`
	ProjectID      string          `json:"projectId"`
	Status         string          `json:"status"`
	DeliveryStatus string          `json:"deliveryStatus"`
	NetTotal       decimal.Decimal `json:"netTotal"`
	IsRetroactive  bool            `json:"isRetroactive"`
}

type OverdueDeliveryResponse struct {
	OrderID        string    `json:"orderId"`
	VendorID       string    `json:"vendorId"`
	ProjectID      string    `json:"projectId"`
	DeliveryStatus string    `json:"deliveryStatus"`
	ScheduledDate  time.Time `json:"scheduledDate"`
	Method         string    `json:"method"`
	Location       string    `json:"location"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
}

type ShortageResponse struct {
	ItemID           string `json:"itemId"`
	Description      string `json:"description"`
	QuantityOrdered  int    `json:"quantityOrdered"`
	QuantityReceived int    `json:"quantityReceived"`
	Missing          int    `json:"missing"`
}

type OpenDiscrepancyResponse struct {
	CaseID     string             `json:"caseId"`
	OrderID    string             `json:"orderId"`
	Status     string             `json:"status"`
	ReportedAt time.Time          `json:"reportedAt"`
	ReportedBy string             `json:"reportedBy"`
	Shortages  []ShortageResponse `json:"shortages"`
	Version    int                `json:"version"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	auth, ok := s.authorize(ctx, "order:create")
	if !ok {
		return nil
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}
	projectID, err := kernel.UUIDFromString(req.ProjectID)
	if err != nil {
		return badRequest(ctx, "Invalid project id: "+err.Error())
	}

	// Retroactive orders regularize purchases that already happened, so the
	// supporting documents must be on file before the order even opens.
	if req.IsRetroactive && len(req.Attachments) == 0 {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Retroactive orders require at least one attachment",
		})
	}
	for _, key := range req.Attachments {
		exists, existsErr := s.files.Exists(ctx.Request().Context(), key)
		if existsErr != nil {
			return internalError(ctx, "Failed to verify attachment")
		}
		if !exists {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "Attachment not found: " + key,
			})
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		vendorID,
		projectID,
		req.VATRate,
		req.EWTRate,
		req.HandlingFee,
		req.DiscountAmount,
		req.BudgetAllocation,
		req.IsRetroactive,
		toLineItemSpecs(req.Items),
		auth.ActorID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// UpdateOrderItems handles PUT /api/v1/orders/:orderId/items.
func (s *Server) UpdateOrderItems(ctx echo.Context) error {
	if _, ok := s.authorize(ctx, "order:update"); !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateOrderItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(
		orderID,
		req.VATRate,
		req.EWTRate,
		req.HandlingFee,
		req.DiscountAmount,
		req.BudgetAllocation,
		toLineItemSpecs(req.Items),
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.updateOrderItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrder handles POST /api/v1/orders/:orderId/transitions. It fires
// a single workflow trigger; the delivery and receipt triggers that carry a
// payload have their own routes.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	auth, ok := s.authorize(ctx, "order:transition")
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req TransitionOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trigger, err := order.TriggerFromString(req.Trigger)
	if err != nil {
		return badRequest(ctx, "Invalid trigger: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, trigger, auth.ActorID, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ScheduleDelivery handles POST /api/v1/orders/:orderId/delivery/schedule.
func (s *Server) ScheduleDelivery(ctx echo.Context) error {
	auth, ok := s.authorize(ctx, "delivery:schedule")
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ScheduleDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewScheduleDeliveryCommand(
		orderID, req.Date, req.Method, req.Location, req.TrackingNumber, auth.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.scheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:orderId/delivery/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	auth, ok := s.authorize(ctx, "delivery:confirm")
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ConfirmDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, req.ActualDate, auth.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveItems handles POST /api/v1/orders/:orderId/receipt. It reconciles
// the counted quantities against the order and returns the per-item outcome,
// including whether a discrepancy case was opened.
func (s *Server) ReceiveItems(ctx echo.Context) error {
	auth, ok := s.authorize(ctx, "receipt:record")
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ReceiveItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quantities := make(map[kernel.UUID]int, len(req.Quantities))
	for rawID, qty := range req.Quantities {
		itemID, parseErr := kernel.UUIDFromString(rawID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid item id: "+parseErr.Error())
		}
		quantities[itemID] = qty
	}

	cmd, err := commands.NewReceiveItemsCommand(orderID, quantities, auth.ActorID, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	result, handleErr := s.receiveItemsHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr)
	}

	response := ReceiptResponse{
		OrderID:        result.OrderID.String(),
		DeliveryStatus: result.DeliveryStatus.String(),
		Items:          make([]ItemReceiptResponse, len(result.Items)),
		HasShortages:   result.HasShortages(),
	}
	for i, item := range result.Items {
		response.Items[i] = ItemReceiptResponse{
			ItemID:           item.ItemID.String(),
			Description:      item.Description,
			QuantityOrdered:  item.QuantityOrdered,
			QuantityReceived: item.QuantityReceived,
			Status:           item.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GenerateAssets handles POST /api/v1/orders/:orderId/assets.
func (s *Server) GenerateAssets(ctx echo.Context) error {
	auth, ok := s.authorize(ctx, "asset:generate")
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req GenerateAssetsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	selections := make([]services.GenerationSelection, len(req.Selections))
	for i, sel := range req.Selections {
		itemID, parseErr := kernel.UUIDFromString(sel.ItemID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid item id: "+parseErr.Error())
		}
		selections[i] = services.GenerationSelection{ItemID: itemID, Quantity: sel.Quantity}
	}

	cmd, err := commands.NewGenerateAssetsCommand(orderID, selections, auth.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid generation data: "+err.Error())
	}

	generated, handleErr := s.generateAssetsHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr)
	}

	response := make([]GeneratedAssetResponse, len(generated))
	for i, a := range generated {
		response[i] = GeneratedAssetResponse{
			ID:          a.ID().String(),
			OrderID:     a.OrderID().String(),
			LineItemID:  a.LineItemID().String(),
			AssetType:   a.AssetType(),
			UnitCost:    a.UnitCost(),
			GeneratedBy: a.GeneratedBy(),
			GeneratedAt: a.GeneratedAt(),
		}
	}

	return ctx.JSON(http.StatusCreated, response)
}

// ReviewDiscrepancy handles POST /api/v1/discrepancies/:caseId/review.
func (s *Server) ReviewDiscrepancy(ctx echo.Context) error {
	if _, ok := s.authorize(ctx, "discrepancy:review"); !ok {
		return nil
	}

	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return badRequest(ctx, "Invalid case id: "+err.Error())
	}

	cmd, err := commands.NewReviewDiscrepancyCommand(caseID)
	if err != nil {
		return badRequest(ctx, "Invalid case id: "+err.Error())
	}

	if handleErr := s.reviewDiscrepancyHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveDiscrepancy handles POST /api/v1/discrepancies/:caseId/resolve.
func (s *Server) ResolveDiscrepancy(ctx echo.Context) error {
	auth, ok := s.authorize(ctx, "discrepancy:resolve")
	if !ok {
		return nil
	}

	caseID, err := kernel.UUIDFromString(ctx.Param("caseId"))
	if err != nil {
		return badRequest(ctx, "Invalid case id: "+err.Error())
	}

	var req ResolveDiscrepancyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	action, err := discrepancy.ActionFromString(req.Action)
	if err != nil {
		return badRequest(ctx, "Invalid resolution action: "+err.Error())
	}

	cmd, err := commands.NewResolveDiscrepancyCommand(caseID, action, req.Notes, auth.ActorID)
	if err != nil {
		return badRequest(ctx, "Invalid resolution data: "+err.Error())
	}

	if handleErr := s.resolveDiscrepancyHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := OrderResponse{
		ID:               detail.ID.String(),
		VendorID:         detail.VendorID.String(),
		ProjectID:        detail.ProjectID.String(),
		Status:           detail.Status,
		IsRetroactive:    detail.IsRetroactive,
		VATRate:          detail.VATRate,
		EWTRate:          detail.EWTRate,
		HandlingFee:      detail.HandlingFee,
		DiscountAmount:   detail.DiscountAmount,
		BudgetAllocation: detail.BudgetAllocation,
		Subtotal:         detail.Subtotal,
		VATAmount:        detail.VATAmount,
		EWTAmount:        detail.EWTAmount,
		NetTotal:         detail.NetTotal,
		Delivery: DeliveryResponse{
			Status:         detail.Delivery.Status,
			ScheduledDate:  detail.Delivery.ScheduledDate,
			Method:         detail.Delivery.Method,
			Location:       detail.Delivery.Location,
			TrackingNumber: detail.Delivery.TrackingNumber,
			ActualDate:     detail.Delivery.ActualDate,
		},
		Items:   make([]LineItemResponse, len(detail.Items)),
		Events:  make([]TrackingEventResponse, len(detail.Events)),
		Version: detail.Version,
	}
	for i, item := range detail.Items {
		response.Items[i] = LineItemResponse{
			ID:               item.ID.String(),
			Description:      item.Description,
			QuantityOrdered:  item.QuantityOrdered,
			UnitPrice:        item.UnitPrice,
			QuantityReceived: item.QuantityReceived,
			GeneratesAssets:  item.GeneratesAssets,
			AssetType:        item.AssetType,
			AssetsGenerated:  item.AssetsGenerated,
		}
	}
	for i, event := range detail.Events {
		response.Events[i] = TrackingEventResponse{
			ID:         event.ID.String(),
			OccurredAt: event.OccurredAt,
			Actor:      event.Actor,
			FromStatus: event.FromStatus,
			ToStatus:   event.ToStatus,
			Notes:      event.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=Approved.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:             o.ID.String(),
			VendorID:       o.VendorID.String(),
			ProjectID:      o.ProjectID.String(),
			Status:         o.Status,
			DeliveryStatus: o.DeliveryStatus,
			NetTotal:       o.NetTotal,
			IsRetroactive:  o.IsRetroactive,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueDeliveries handles GET /api/v1/deliveries/overdue.
func (s *Server) GetOverdueDeliveries(ctx echo.Context) error {
	query := queries.NewGetOverdueDeliveriesQuery()

	deliveries, err := s.getOverdueDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OverdueDeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = OverdueDeliveryResponse{
			OrderID:        d.OrderID.String(),
			VendorID:       d.VendorID.String(),
			ProjectID:      d.ProjectID.String(),
			DeliveryStatus: d.DeliveryStatus,
			ScheduledDate:  d.ScheduledDate,
			Method:         d.Method,
			Location:       d.Location,
			TrackingNumber: d.TrackingNumber,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOpenDiscrepancy handles GET /api/v1/orders/:orderId/discrepancy.
func (s *Server) GetOpenDiscrepancy(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOpenDiscrepancyQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	openCase, err := s.getOpenDiscrepancyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := OpenDiscrepancyResponse{
		CaseID:     openCase.CaseID.String(),
		OrderID:    openCase.OrderID.String(),
		Status:     openCase.Status,
		ReportedAt: openCase.ReportedAt,
		ReportedBy: openCase.ReportedBy,
		Shortages:  make([]ShortageResponse, len(openCase.Shortages)),
		Version:    openCase.Version,
	}
	for i, shortage := range openCase.Shortages {
		response.Shortages[i] = ShortageResponse{
			ItemID:           shortage.ItemID.String(),
			Description:      shortage.Description,
			QuantityOrdered:  shortage.QuantityOrdered,
			QuantityReceived: shortage.QuantityReceived,
			Missing:          shortage.Missing,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// authorize extracts the acting identity from the request headers and asks
// the policy check whether the role may perform the action. On denial it
// writes the JSON response and reports ok=false.
func (s *Server) authorize(ctx echo.Context, action string) (ports.AuthContext, bool) {
	auth := ports.AuthContext{
		ActorID: ctx.Request().Header.Get("X-Actor-Id"),
		Role:    ctx.Request().Header.Get("X-Actor-Role"),
	}
	if auth.ActorID == "" {
		_ = ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Missing X-Actor-Id header",
		})
		return auth, false
	}

	allowed, err := s.policy.IsAllowed(ctx.Request().Context(), action, auth.Role)
	if err != nil {
		_ = internalError(ctx, "Failed to evaluate access policy")
		return auth, false
	}
	if !allowed {
		_ = ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Role is not allowed to " + action,
		})
		return auth, false
	}

	return auth, true
}

func toLineItemSpecs(items []LineItemRequest) []commands.LineItemSpec {
	specs := make([]commands.LineItemSpec, len(items))
	for i, item := range items {
		specs[i] = commands.LineItemSpec{
			Description:     item.Description,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			GeneratesAssets: item.GeneratesAssets,
			AssetType:       item.AssetType,
		}
	}
	return specs
}

// domainError maps an error surfaced by a handler to an HTTP response.
// Workflow and balance violations are well-formed requests the current state
// forbids, so they answer 422 rather than 400.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionConflict):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOverGeneration),
		errors.Is(err, order.ErrItemNotEligible),
		errors.Is(err, discrepancy.ErrCaseAlreadyResolved):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
