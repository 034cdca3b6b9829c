package models

type AuditLog struct {
	ID        string `json:"id"`
	Action    string `json:"action"` // ör: "Şube eklendi", "Çek defteri silindi"
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
	UserID    string `json:"userId"`
}
