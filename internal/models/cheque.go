package models

type ChequeStatus string

const (
	StatusPending   ChequeStatus = "PENDING"
	StatusCleared   ChequeStatus = "CLEARED"
	StatusBounced   ChequeStatus = "BOUNCED"
	StatusCancelled ChequeStatus = "CANCELLED"
)

// BranchMulti: birden fazla şubeye bölünen çeklerde ana şube alanına
// yazılan değer
const BranchMulti = "Multi"

// ChequeSplit: tek çekin şubeler arasındaki tutar dağılımı.
// Çağıran taraf split toplamının çek tutarına eşit olmasından sorumlu,
// kayıt sırasında doğrulanmaz.
type ChequeSplit struct {
	Branch string  `json:"branch"`
	Amount float64 `json:"amount"`
}

type Cheque struct {
	ID               string        `json:"id"`
	ChequeNumber     string        `json:"chequeNumber"`
	Amount           float64       `json:"amount"`
	PayeeName        string        `json:"payeeName"`
	Date             string        `json:"date"` // YYYY-MM-DD, saat bilgisi yok
	Status           ChequeStatus  `json:"status"`
	LastStatusChange string        `json:"lastStatusChange,omitempty"` // ISO zaman damgası
	BankName         string        `json:"bankName"`
	Branch           string        `json:"branch"` // Ana şube adı veya "Multi"
	Splits           []ChequeSplit `json:"splits,omitempty"`
	ChequeBookRef    string        `json:"chequeBookRef,omitempty"` // Çek defteri ADI ile eşleşir, id ile değil
	Notes            string        `json:"notes,omitempty"`
	ImageURL         string        `json:"imageUrl,omitempty"`
	CreatedAt        string        `json:"createdAt"`
	CreatedBy        string        `json:"createdBy"`
}
