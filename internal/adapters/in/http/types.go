package http

import "time"

// Error is the uniform error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	HospitalID string `json:"hospitalId"`
	CenterID   string `json:"centerId"`
	BloodType  string `json:"bloodType"`
	Quantity   int    `json:"quantity"`
	Urgent     bool   `json:"urgent"`
	Notes      string `json:"notes"`
}

// PlaceOrderResponse reports the created delivery and the units reserved
// for it.
type PlaceOrderResponse struct {
	DeliveryID string   `json:"deliveryId"`
	UnitIDs    []string `json:"unitIds"`
}

// UpdateStatusRequest is the body of POST /api/v1/deliveries/{id}/status.
// DroneID and ValidatedAt are optional and recorded when present.
type UpdateStatusRequest struct {
	Status      string     `json:"status"`
	DroneID     *string    `json:"droneId,omitempty"`
	ValidatedAt *time.Time `json:"validatedAt,omitempty"`
}

// UpdateStatusResponse reports the delivery status after the update. Changed
// is false when the delivery already held the requested status.
type UpdateStatusResponse struct {
	Status  string `json:"status"`
	Changed bool   `json:"changed"`
}

// Delivery is the read model returned by the delivery endpoints. UnitIDs is
// populated only on the singular endpoint.
type Delivery struct {
	ID          string     `json:"id"`
	DroneID     *string    `json:"droneId,omitempty"`
	HospitalID  string     `json:"hospitalId"`
	CenterID    string     `json:"centerId"`
	Urgent      bool       `json:"urgent"`
	Notes       string     `json:"notes,omitempty"`
	RequestedAt time.Time  `json:"requestedAt"`
	ValidatedAt *time.Time `json:"validatedAt,omitempty"`
	Status      string     `json:"status"`
	UnitIDs     []string   `json:"unitIds,omitempty"`
}

// BloodUnit is the read model returned by the blood unit endpoints.
// DeliveryID is absent while the unit sits in the available pool.
type BloodUnit struct {
	ID         string  `json:"id"`
	BloodType  string  `json:"bloodType"`
	DeliveryID *string `json:"deliveryId,omitempty"`
}

// Notification is the read model returned by the notification endpoints.
type Notification struct {
	ID         string     `json:"id"`
	DeliveryID string     `json:"deliveryId"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Read       bool       `json:"read"`
	CreatedAt  time.Time  `json:"createdAt"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
}

// UnreadCountResponse reports how many unread notifications the caller has.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// MarkAllReadResponse reports how many notifications were acknowledged.
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
