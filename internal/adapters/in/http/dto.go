package http

import (
	"time"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PreAlertParcelRequest is the body of POST /api/v1/parcels/pre-alert.
type PreAlertParcelRequest struct {
	TrackingCode  string  `json:"trackingCode"`
	Description   string  `json:"description"`
	DeclaredValue float64 `json:"declaredValue"`
	Domestic      bool    `json:"domestic"`
}

// WeighParcelRequest is the body of POST /api/v1/parcels/:id/weigh-in.
type WeighParcelRequest struct {
	WeightLbs     float64 `json:"weightLbs"`
	DeclaredValue float64 `json:"declaredValue"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	OwnerID       int64             `json:"ownerId"`
	TrackingCode  string            `json:"trackingCode"`
	Description   string            `json:"description"`
	WeightLbs     float64           `json:"weightLbs"`
	DeclaredValue float64           `json:"declaredValue"`
	Domestic      bool              `json:"domestic"`
	Recipient     RecipientSnapshot `json:"recipient"`
}

// RecipientSnapshot carries the immutable destination contact of a shipment.
type RecipientSnapshot struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

// SubmitPaymentRequest is the body of POST /api/v1/payments.
type SubmitPaymentRequest struct {
	InvoiceID int64   `json:"invoiceId"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference,omitempty"`
	Note      string  `json:"note,omitempty"`
}

// RejectPaymentRequest is the body of POST /api/v1/payments/:id/reject.
type RejectPaymentRequest struct {
	Reason string `json:"reason"`
}

// ParcelResponse mirrors a persisted parcel.
type ParcelResponse struct {
	ID            int64     `json:"id"`
	TrackingCode  string    `json:"trackingCode"`
	Description   string    `json:"description"`
	WeightLbs     string    `json:"weightLbs"`
	DeclaredValue string    `json:"declaredValue"`
	Domestic      bool      `json:"domestic"`
	Status        string    `json:"status"`
	OwnerID       int64     `json:"ownerId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ShipmentResponse mirrors a persisted shipment.
type ShipmentResponse struct {
	ID            int64             `json:"id"`
	TrackingCode  string            `json:"trackingCode"`
	Description   string            `json:"description"`
	WeightLbs     string            `json:"weightLbs"`
	DeclaredValue string            `json:"declaredValue"`
	Cost          string            `json:"cost"`
	Status        string            `json:"status"`
	Recipient     RecipientSnapshot `json:"recipient"`
	OwnerID       int64             `json:"ownerId"`
	CreatedAt     time.Time         `json:"createdAt"`
	DeliveredAt   *time.Time        `json:"deliveredAt,omitempty"`
}

// CostBreakdownResponse itemizes a computed shipping cost.
type CostBreakdownResponse struct {
	Base      string `json:"base"`
	Freight   string `json:"freight"`
	Insurance string `json:"insurance"`
	Total     string `json:"total"`
}

// PaymentResponse mirrors a persisted payment.
type PaymentResponse struct {
	ID        int64     `json:"id"`
	InvoiceID int64     `json:"invoiceId"`
	ParcelID  *int64    `json:"parcelId,omitempty"`
	Amount    string    `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	Reference string    `json:"reference,omitempty"`
	Receipt   string    `json:"receipt"`
	Note      string    `json:"note,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// InvoiceResponse mirrors a persisted invoice.
type InvoiceResponse struct {
	ID          int64     `json:"id"`
	Number      string    `json:"number"`
	NaturalKey  string    `json:"naturalKey"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	IssueDate   time.Time `json:"issueDate"`
	DueDate     time.Time `json:"dueDate"`
	OwnerID     int64     `json:"ownerId"`
	ShipmentID  *int64    `json:"shipmentId,omitempty"`
	ParcelID    *int64    `json:"parcelId,omitempty"`
}

// PendingPaymentResponse is one verification-worklist entry.
type PendingPaymentResponse struct {
	ID            int64     `json:"id"`
	InvoiceID     int64     `json:"invoiceId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	PayerName     string    `json:"payerName"`
	Amount        string    `json:"amount"`
	Method        string    `json:"method"`
	Reference     string    `json:"reference,omitempty"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func parcelToResponse(p *parcel.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:            p.ID(),
		TrackingCode:  p.TrackingCode(),
		Description:   p.Description(),
		WeightLbs:     p.WeightLbs().StringFixed(2),
		DeclaredValue: p.DeclaredValue().StringFixed(2),
		Domestic:      p.Domestic(),
		Status:        p.Status().String(),
		OwnerID:       p.OwnerID(),
		CreatedAt:     p.CreatedAt(),
	}
}

func shipmentToResponse(s *shipment.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:            s.ID(),
		TrackingCode:  s.TrackingCode(),
		Description:   s.Description(),
		WeightLbs:     s.WeightLbs().StringFixed(2),
		DeclaredValue: s.DeclaredValue().StringFixed(2),
		Cost:          s.Cost().String(),
		Status:        s.Status().String(),
		Recipient: RecipientSnapshot{
			Name:    s.Recipient().Name(),
			City:    s.Recipient().City(),
			Address: s.Recipient().Address(),
			Phone:   s.Recipient().Phone(),
		},
		OwnerID:     s.OwnerID(),
		CreatedAt:   s.CreatedAt(),
		DeliveredAt: s.DeliveredAt(),
	}
}

func paymentToResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID(),
		InvoiceID: p.InvoiceID(),
		ParcelID:  p.ParcelID(),
		Amount:    p.Amount().String(),
		Method:    p.Method().String(),
		Status:    p.Status().String(),
		Reference: p.Reference(),
		Receipt:   p.Receipt(),
		Note:      p.Note(),
		Reason:    p.Reason(),
		CreatedAt: p.CreatedAt(),
	}
}

func breakdownToResponse(b services.CostBreakdown) CostBreakdownResponse {
	return CostBreakdownResponse{
		Base:      b.Base.String(),
		Freight:   b.Freight.String(),
		Insurance: b.Insurance.String(),
		Total:     b.Total.String(),
	}
}

func parcelQueryToResponse(r queries.GetParcelQueryResponse) ParcelResponse {
	return ParcelResponse{
		ID:            r.ID,
		TrackingCode:  r.TrackingCode,
		Description:   r.Description,
		WeightLbs:     r.WeightLbs.StringFixed(2),
		DeclaredValue: r.DeclaredValue.StringFixed(2),
		Domestic:      r.Domestic,
		Status:        r.Status,
		OwnerID:       r.OwnerID,
		CreatedAt:     r.CreatedAt,
	}
}

func shipmentQueryToResponse(r queries.GetShipmentQueryResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:            r.ID,
		TrackingCode:  r.TrackingCode,
		Description:   r.Description,
		WeightLbs:     r.WeightLbs.StringFixed(2),
		DeclaredValue: r.DeclaredValue.StringFixed(2),
		Cost:          r.Cost.StringFixed(2),
		Status:        r.Status,
		Recipient: RecipientSnapshot{
			Name:    r.RecipientName,
			City:    r.RecipientCity,
			Address: r.RecipientAddress,
			Phone:   r.RecipientPhone,
		},
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
		DeliveredAt: r.DeliveredAt,
	}
}

func invoiceQueryToResponse(r queries.InvoiceResponse) InvoiceResponse {
	return InvoiceResponse{
		ID:          r.ID,
		Number:      r.Number,
		NaturalKey:  r.NaturalKey,
		Description: r.Description,
		Amount:      r.Amount.StringFixed(2),
		Status:      r.Status,
		IssueDate:   r.IssueDate,
		DueDate:     r.DueDate,
		OwnerID:     r.OwnerID,
		ShipmentID:  r.ShipmentID,
		ParcelID:    r.ParcelID,
	}
}

func paymentQueryToResponse(r queries.GetPaymentQueryResponse) PaymentResponse {
	return PaymentResponse{
		ID:        r.ID,
		InvoiceID: r.InvoiceID,
		ParcelID:  r.ParcelID,
		Amount:    r.Amount.StringFixed(2),
		Method:    r.Method,
		Status:    r.Status,
		Reference: r.Reference,
		Receipt:   r.Receipt,
		Note:      r.Note,
		Reason:    r.Reason,
		CreatedAt: r.CreatedAt,
	}
}

func pendingPaymentToResponse(r queries.PendingPaymentResponse) PendingPaymentResponse {
	return PendingPaymentResponse{
		ID:            r.ID,
		InvoiceID:     r.InvoiceID,
		InvoiceNumber: r.InvoiceNumber,
		PayerName:     r.PayerName,
		Amount:        r.Amount.StringFixed(2),
		Method:        r.Method,
		Reference:     r.Reference,
		Note:          r.Note,
		CreatedAt:     r.CreatedAt,
	}
}
