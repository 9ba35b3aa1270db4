package http

import "time"

type setStatusRequest struct {
	Status string `json:"status"`
	UserID int64  `json:"userId"`
}

type setOrderStatusRequest struct {
	Status     string `json:"status"`
	UserID     int64  `json:"userId"`
	ApplyToAll bool   `json:"applyToAll"`
}

type createOrderRequest struct {
	RequestID         int64                  `json:"requestId"`
	Items             []orderLineItemRequest `json:"items"`
	DeliveryDate      time.Time              `json:"deliveryDate"`
	DeliveryAddress   string                 `json:"deliveryAddress"`
	DeliveryTimeRange string                 `json:"deliveryTimeRange"`
	Customizations    string                 `json:"customizations"`
	PaymentMethod     string                 `json:"paymentMethod"`
}

type orderLineItemRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

type createAlertRequest struct {
	Category      string  `json:"category"`
	Details       string  `json:"details"`
	OrderIDs      []int64 `json:"orderIds"`
	CreatedBy     int64   `json:"createdBy"`
	CancelOrders  bool    `json:"cancelOrders"`
	CancelRequest bool    `json:"cancelRequest"`
}

type bookProcurementRequest struct {
	AgencyID int64 `json:"agencyId"`
}

type completeProcurementRequest struct {
	Received []receivedItemRequest `json:"received"`
}

type receivedItemRequest struct {
	Name      string `json:"name"`
	Discarded int    `json:"discarded"`
	Reason    string `json:"reason"`
}

type requestResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type orderResponse struct {
	ID        int64  `json:"id"`
	RequestID int64  `json:"requestId"`
	Status    string `json:"status"`
}

type alertResponse struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Details  string  `json:"details"`
	Orders   []int64 `json:"orders"`
}

type inventoryLineResponse struct {
	ItemID    int64  `json:"itemId"`
	ItemName  string `json:"itemName"`
	Total     int    `json:"total"`
	Reserved  int    `json:"reserved"`
	Available int    `json:"available"`
}

type procurementResponse struct {
	ID          int64                `json:"id"`
	Status      string               `json:"status"`
	Completions []completionResponse `json:"completions,omitempty"`
}

type completionResponse struct {
	Name      string `json:"name"`
	Accepted  int    `json:"accepted"`
	Discarded int    `json:"discarded"`
	Reason    string `json:"reason,omitempty"`
}
