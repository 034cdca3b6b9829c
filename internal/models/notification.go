package models

type NotificationType string

const (
	NotifInfo    NotificationType = "info"
	NotifWarning NotificationType = "warning"
	NotifSuccess NotificationType = "success"
	NotifError   NotificationType = "error"
)

// MetaStockLow: düşük stok bildirimlerinin tekilleştirme anahtarı
const MetaStockLow = "STOCK_LOW"

type NotificationMetadata struct {
	Type         string `json:"type"`
	ChequeBookID string `json:"chequeBookId"`
}

type Notification struct {
	ID       string                `json:"id"`
	Title    string                `json:"title"`
	Message  string                `json:"message"`
	Type     NotificationType      `json:"type"`
	Read     bool                  `json:"read"`
	Date     string                `json:"date"`
	UserID   string                `json:"userId"`
	Metadata *NotificationMetadata `json:"metadata,omitempty"`
}
