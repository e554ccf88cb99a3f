package model

type Item struct {
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
	Unit     string `json:"unit"`
}

type Inventory struct {
	ItemCode    string `json:"item_code"`
	CurrentQty  Amount `json:"current_qty"`
	LastUpdated Date   `json:"last_updated"`
}

// MovementType is the reason of an inventory movement.
type MovementType string

const (
	MovementPurchase   MovementType = "purchase"
	MovementAllocation MovementType = "allocation"
	MovementAdjustment MovementType = "adjustment"
	MovementTransfer   MovementType = "transfer"
)

type InventoryMovement struct {
	MovementID   int64        `json:"movement_id"`
	ItemCode     string       `json:"item_code"`
	QtyChange    Amount       `json:"qty_change"`
	MovementType MovementType `json:"movement_type"`
	ReferenceID  *int64       `json:"reference_id,omitempty"`
	MovementDate Date         `json:"movement_date"`
}

type Purchase struct {
	PurchaseID    int64  `json:"purchase_id"`
	ItemCode      string `json:"item_code"`
	ItemName      string `json:"item_name"`
	CostPerUnit   Amount `json:"cost_per_unit"`
	Quantity      Amount `json:"quantity"`
	TotalCost     Amount `json:"total_cost"`
	PurchaseDate  Date   `json:"purchase_date"`
	Supplier      string `json:"supplier"`
	PaymentMethod string `json:"payment_method"`
	CreatedBy     int64  `json:"created_by"`
}

// StockReceipt is one received lot, consumed first in first out by allocations.
type StockReceipt struct {
	LotID        int64  `json:"lot_id"`
	PurchaseID   *int64 `json:"purchase_id,omitempty"`
	ItemCode     string `json:"item_code"`
	ReceivedQty  Amount `json:"received_qty"`
	RemainingQty Amount `json:"remaining_qty"`
	UnitCost     Amount `json:"unit_cost"`
	ReceivedDate Date   `json:"received_date"`
	Supplier     string `json:"supplier"`
}
