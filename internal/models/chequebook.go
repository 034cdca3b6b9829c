package models

type BookStatus string

const (
	BookActive   BookStatus = "ACTIVE"
	BookArchived BookStatus = "ARCHIVED"
)

type ChequeBook struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	TotalLeaves int        `json:"totalLeaves"`
	DateAdded   string     `json:"dateAdded"`
	Status      BookStatus `json:"status"`
	BranchID    string     `json:"branchId,omitempty"`
	// Deftere özel düşük stok eşiği; nil ise ayarlardaki genel eşik geçerli
	LowStockThreshold *int `json:"lowStockThreshold,omitempty"`
}
