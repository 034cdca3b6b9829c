package models

// DashboardStats: üst karttaki genel sayılar; her çağrıda çek
// koleksiyonundan yeniden hesaplanır, saklanmaz.
type DashboardStats struct {
	TotalCount    int     `json:"totalCount"`
	TotalAmount   float64 `json:"totalAmount"`
	ClearedCount  int     `json:"clearedCount"`
	ClearedAmount float64 `json:"clearedAmount"`
	PendingCount  int     `json:"pendingCount"`
	PendingAmount float64 `json:"pendingAmount"`
	BouncedCount  int     `json:"bouncedCount"`
	UpcomingCount int     `json:"upcomingCount"` // Önümüzdeki 5 gün içinde vadesi gelenler
}
