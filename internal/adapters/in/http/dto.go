package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/report"
)

type CartItemRequest struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	DeliveryAddress string            `json:"deliveryAddress" validate:"max=500"`
	Notes           string            `json:"notes" validate:"max=2000"`
	Items           []CartItemRequest `json:"items" validate:"dive"`
}

type PlaceOrderResponse struct {
	ID        string `json:"id"`
	Total     string `json:"total"`
	LineCount int    `json:"lineCount"`
	Degraded  bool   `json:"degraded"`
	Warning   string `json:"warning,omitempty"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ReservationStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Table  string `json:"table" validate:"max=10"`
}

type OrderSummaryResponse struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customerId"`
	CreatedAt       time.Time `json:"createdAt"`
	Status          string    `json:"status"`
	Total           string    `json:"total"`
	DeliveryAddress string    `json:"deliveryAddress"`
	LineCount       int       `json:"lineCount"`
}

type OrderLineResponse struct {
	ID           string `json:"id"`
	MenuItemID   string `json:"menuItemId"`
	MenuItemName string `json:"menuItemName"`
	UnitPrice    string `json:"unitPrice"`
	Quantity     int    `json:"quantity"`
	Subtotal     string `json:"subtotal"`
}

type OrderDetailsResponse struct {
	OrderSummaryResponse
	Notes string              `json:"notes"`
	Lines []OrderLineResponse `json:"lines"`
}

type MenuItemRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,max=50"`
	Price       string `json:"price" validate:"required,numeric"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type MenuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Available   bool   `json:"available"`
}

type ReservationRequest struct {
	ReservedFor time.Time `json:"reservedFor" validate:"required"`
	PartySize   int       `json:"partySize"`
	Notes       string    `json:"notes" validate:"max=2000"`
}

type ReservationResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	ReservedFor time.Time `json:"reservedFor"`
	PartySize   int       `json:"partySize"`
	Table       string    `json:"table"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProductSalesResponse struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

type SalesReportResponse struct {
	OrdersToday int                    `json:"ordersToday"`
	OrdersWeek  int                    `json:"ordersWeek"`
	OrdersMonth int                    `json:"ordersMonth"`
	SalesToday  string                 `json:"salesToday"`
	SalesWeek   string                 `json:"salesWeek"`
	SalesMonth  string                 `json:"salesMonth"`
	TopProducts []ProductSalesResponse `json:"topProducts"`
}

type CommentRequest struct {
	OrderID string `json:"orderId"`
	Text    string `json:"text" validate:"required,max=1000"`
	Rating  int    `json:"rating"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	OrderID    string    `json:"orderId,omitempty"`
	Text       string    `json:"text"`
	Rating     int       `json:"rating"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"createdAt"`
}

type GenerateReportRequest struct {
	Kind string `json:"kind" validate:"required,oneof=daily weekly monthly"`
}

type ReportResponse struct {
	ID                    string    `json:"id"`
	Kind                  string    `json:"kind"`
	GeneratedAt           time.Time `json:"generatedAt"`
	From                  time.Time `json:"from"`
	To                    time.Time `json:"to"`
	TotalOrders           int       `json:"totalOrders"`
	TotalSales            string    `json:"totalSales"`
	DeliveredOrders       int       `json:"deliveredOrders"`
	CompletedReservations int       `json:"completedReservations"`
}

func orderSummaryResponse(s queries.OrderSummary) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:              s.ID.String(),
		CustomerID:      s.CustomerID.String(),
		CreatedAt:       s.CreatedAt,
		Status:          s.Status.String(),
		Total:           s.Total.String(),
		DeliveryAddress: s.DeliveryAddress,
		LineCount:       s.LineCount,
	}
}

func orderSummariesResponse(summaries []queries.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(summaries))
	for i, s := range summaries {
		response[i] = orderSummaryResponse(s)
	}
	return response
}

func orderDetailsResponse(d queries.OrderDetails) OrderDetailsResponse {
	lines := make([]OrderLineResponse, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = OrderLineResponse{
			ID:           l.ID.String(),
			MenuItemID:   l.MenuItemID.String(),
			MenuItemName: l.MenuItemName,
			UnitPrice:    l.UnitPrice.String(),
			Quantity:     l.Quantity,
			Subtotal:     l.Subtotal.String(),
		}
	}

	return OrderDetailsResponse{
		OrderSummaryResponse: orderSummaryResponse(d.OrderSummary),
		Notes:                d.Notes,
		Lines:                lines,
	}
}

func menuItemsResponse(items []queries.MenuItemView) []MenuItemResponse {
	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = MenuItemResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			Price:       item.Price.String(),
			Available:   item.Available,
		}
	}
	return response
}

func reservationsResponse(views []queries.ReservationView) []ReservationResponse {
	response := make([]ReservationResponse, len(views))
	for i, v := range views {
		response[i] = ReservationResponse{
			ID:          v.ID.String(),
			CustomerID:  v.CustomerID.String(),
			ReservedFor: v.ReservedFor,
			PartySize:   v.PartySize,
			Table:       v.Table,
			Status:      v.Status.String(),
			Notes:       v.Notes,
			CreatedAt:   v.CreatedAt,
		}
	}
	return response
}

func salesReportResponse(r queries.SalesReport) SalesReportResponse {
	products := make([]ProductSalesResponse, len(r.TopProducts))
	for i, p := range r.TopProducts {
		products[i] = ProductSalesResponse{
			MenuItemID: p.MenuItemID.String(),
			Name:       p.Name,
			Quantity:   p.Quantity,
		}
	}

	return SalesReportResponse{
		OrdersToday: r.OrdersToday,
		OrdersWeek:  r.OrdersWeek,
		OrdersMonth: r.OrdersMonth,
		SalesToday:  r.SalesToday.String(),
		SalesWeek:   r.SalesWeek.String(),
		SalesMonth:  r.SalesMonth.String(),
		TopProducts: products,
	}
}

func reportResponse(r *report.Report) ReportResponse {
	summary := r.Summary()
	return ReportResponse{
		ID:                    r.ID().String(),
		Kind:                  r.Kind().String(),
		GeneratedAt:           r.GeneratedAt(),
		From:                  r.From(),
		To:                    r.To(),
		TotalOrders:           summary.TotalOrders,
		TotalSales:            summary.TotalSales.String(),
		DeliveredOrders:       summary.DeliveredOrders,
		CompletedReservations: summary.CompletedReservations,
	}
}

func reportViewsResponse(views []queries.ReportView) []ReportResponse {
	response := make([]ReportResponse, len(views))
	for i, v := range views {
		response[i] = ReportResponse{
			ID:                    v.ID.String(),
			Kind:                  v.Kind.String(),
			GeneratedAt:           v.GeneratedAt,
			From:                  v.From,
			To:                    v.To,
			TotalOrders:           v.TotalOrders,
			TotalSales:            v.TotalSales.String(),
			DeliveredOrders:       v.DeliveredOrders,
			CompletedReservations: v.CompletedReservations,
		}
	}
	return response
}

func commentsResponse(views []queries.CommentView) []CommentResponse {
	response := make([]CommentResponse, len(views))
	for i, v := range views {
		response[i] = CommentResponse{
			ID:         v.ID.String(),
			CustomerID: v.CustomerID.String(),
			Text:       v.Text,
			Rating:     v.Rating,
			Approved:   v.Approved,
			CreatedAt:  v.CreatedAt,
		}
		if v.OrderID.Validate() == nil {
			response[i].OrderID = v.OrderID.String()
		}
	}
	return response
}
