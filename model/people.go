package model

// UserRole is the role of a dashboard user.
type UserRole string

const (
	RoleAdmin      UserRole = "Admin"
	RoleSupervisor UserRole = "Supervisor"
)

// User is a dashboard login. Passwords never leave the backend.
type User struct {
	UserID    int64    `json:"user_id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	CreatedAt Date     `json:"created_at"`
}

// Supervisor is the short form of a supervising user.
type Supervisor struct {
	UserID int64    `json:"user_id"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
}

// BankDetails are the payout details shared by farmers, suppliers and traders.
type BankDetails struct {
	PhoneNumber   string `json:"phone_number"`
	Address       string `json:"address"`
	BankAccountNo string `json:"bank_account_no"`
	BankName      string `json:"bank_name"`
	IFSCCode      string `json:"ifsc_code"`
}

type Farmer struct {
	FarmerID int64  `json:"farmer_id"`
	Name     string `json:"name"`
	BankDetails
	AreaSize  Amount `json:"area_size"`
	CreatedAt Date   `json:"created_at"`
}

// SupplierType is what a supplier delivers.
type SupplierType string

const (
	SupplierFeed     SupplierType = "Feed"
	SupplierChick    SupplierType = "Chick"
	SupplierMedicine SupplierType = "Medicine"
)

type Supplier struct {
	SupplierID   int64        `json:"supplier_id"`
	SupplierType SupplierType `json:"supplier_type"`
	Name         string       `json:"name"`
	BankDetails
	CreatedAt Date `json:"created_at"`
}

type Trader struct {
	TraderID int64  `json:"trader_id"`
	Name     string `json:"name"`
	BankDetails
	Area      string `json:"area"`
	CreatedAt Date   `json:"created_at"`
}
