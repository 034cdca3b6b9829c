package models

// AppSettings: genel uygulama ayarları; scriptUrl e-tablo senkron adresi
type AppSettings struct {
	ScriptURL string `json:"scriptUrl"`
}

type NotificationSettings struct {
	EmailAlerts           bool   `json:"emailAlerts"`
	SMSAlerts             bool   `json:"smsAlerts"`
	DefaultStockThreshold int    `json:"defaultStockThreshold"`
	ScriptURL             string `json:"scriptUrl,omitempty"`
}
