package model

// BatchStatus is the life cycle state of a batch.
type BatchStatus string

const (
	BatchActive BatchStatus = "Active"
	BatchClosed BatchStatus = "Closed"
)

type ProductionLine struct {
	LineID         int64  `json:"line_id"`
	LineName       string `json:"line_name"`
	SupervisorID   int64  `json:"supervisor_id"`
	SupervisorName string `json:"supervisor_name"`
	CreatedAt      Date   `json:"created_at"`
}

// Batch is one flock raised by a farmer on a production line.
type Batch struct {
	BatchID          int64       `json:"batch_id"`
	LineID           int64       `json:"line_id"`
	SupervisorID     int64       `json:"supervisor_id"`
	SupervisorName   string      `json:"supervisor_name"`
	FarmerID         int64       `json:"farmer_id"`
	FarmerName       string      `json:"farmer_name"`
	StartDate        Date        `json:"start_date"`
	EndDate          Date        `json:"end_date"`
	InitialBirdCount int64       `json:"initial_bird_count"`
	CurrentBirdCount int64       `json:"current_bird_count"`
	Status           BatchStatus `json:"status"`
	CreatedAt        Date        `json:"created_at"`
}

// RequirementStatus is the approval state of a batch requirement.
type RequirementStatus string

const (
	RequirementPending  RequirementStatus = "Pending"
	RequirementAccepted RequirementStatus = "Accepted"
	RequirementRejected RequirementStatus = "Rejected"
)

// BatchRequirement is a supervisor's request for feed, chicks or medicine.
type BatchRequirement struct {
	RequirementID  int64             `json:"requirement_id"`
	LineID         int64             `json:"line_id"`
	LineName       string            `json:"line_name"`
	BatchID        int64             `json:"batch_id"`
	SupervisorName string            `json:"supervisor_name"`
	FarmerName     string            `json:"farmer_name"`
	ItemCode       string            `json:"item_code"`
	ItemName       string            `json:"item_name"`
	ItemUnit       string            `json:"item_unit"`
	Quantity       Amount            `json:"quantity"`
	Status         RequirementStatus `json:"status"`
	RequestDate    Date              `json:"request_date"`
}

// BatchAllocation is stock handed out for an approved requirement.
type BatchAllocation struct {
	AllocationID   int64  `json:"allocation_id"`
	RequirementID  int64  `json:"requirement_id"`
	AllocatedQty   Amount `json:"allocated_qty"`
	AllocationDate Date   `json:"allocation_date"`
	AllocatedValue Amount `json:"allocated_value"`
	AllocatedBy    int64  `json:"allocated_by"`
}

// BatchAllocationLine is the part of an allocation taken from one stock lot.
type BatchAllocationLine struct {
	AllocationLineID int64  `json:"allocation_line_id"`
	AllocationID     int64  `json:"allocation_id"`
	LotID            int64  `json:"lot_id"`
	Qty              Amount `json:"qty"`
	UnitCost         Amount `json:"unit_cost"`
	LineValue        Amount `json:"line_value"`
}

// BirdCountHistory records deaths and additions of a batch on one day.
type BirdCountHistory struct {
	RecordID   int64  `json:"record_id"`
	BatchID    int64  `json:"batch_id"`
	RecordDate Date   `json:"record_date"`
	Deaths     int64  `json:"deaths"`
	Additions  int64  `json:"additions"`
	Notes      string `json:"notes"`
	CreatedAt  Date   `json:"created_at"`
}

// NetChange is the change of the bird count on the recorded day.
func (h BirdCountHistory) NetChange() int64 {
	return h.Additions - h.Deaths
}

// BirdSellHistory records birds sold off a batch to a trader.
type BirdSellHistory struct {
	SellID       int64  `json:"sell_id"`
	BatchID      int64  `json:"batch_id"`
	TraderID     int64  `json:"trader_id"`
	SaleDate     Date   `json:"sale_date"`
	QuantitySold int64  `json:"quantity_sold"`
	PricePerBird Amount `json:"price_per_bird"`
	TotalAmount  Amount `json:"total_amount"`
	Notes        string `json:"notes"`
	CreatedAt    Date   `json:"created_at"`
}

type BatchSale struct {
	ID         int64  `json:"id"`
	ItemCode   string `json:"item_code"`
	ItemName   string `json:"item_name"`
	BatchID    int64  `json:"batch_id"`
	FarmerName string `json:"farmer_name"`
	TraderID   int64  `json:"trader_id"`
	TraderName string `json:"trader_name"`
	AvgWeight  Amount `json:"avg_weight"`
	Rate       Amount `json:"rate"`
	Quantity   Amount `json:"quantity"`
	Value      Amount `json:"value"`
	CreatedAt  Date   `json:"created_at"`
}

// BatchClosureSummary is the financial summary stored when a batch closes.
type BatchClosureSummary struct {
	ID                    int64  `json:"id,omitempty"`
	BatchID               int64  `json:"batch_id"`
	StartDate             Date   `json:"start_date"`
	EndDate               Date   `json:"end_date"`
	InitialChickenCount   int64  `json:"initial_chicken_count"`
	AvailableChickenCount int64  `json:"available_chicken_count"`
	Revenue               Amount `json:"revenue"`
	GrossProfit           Amount `json:"gross_profit"`
}

// FarmerCommission is a commission paid out to a farmer.
type FarmerCommission struct {
	ID               int64  `json:"id"`
	FarmerID         int64  `json:"farmer_id"`
	CommissionAmount Amount `json:"commission_amount"`
	Description      string `json:"description"`
	CreatedAt        Date   `json:"created_at"`
}
