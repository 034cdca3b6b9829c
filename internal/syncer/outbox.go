// Paket syncer: e-tablo arkalıklı uzak uç ile best-effort senkronizasyon.
// Push tarafı "ateşle ve unut" çalışır: kuyruğa atılan işlem arka planda
// gönderilir, hata çağırana asla dönmez. Pull tarafı (FetchAll) ise
// senkron çalışır ve sonucu bildirir.
package syncer

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

type Operation struct {
	Action  string
	Payload map[string]any
}

type Outbox struct {
	scriptURL func() string // Adres her gönderimde ayarlardan okunur
	client    *http.Client
	queue     chan Operation
}

func NewOutbox(scriptURL func() string) *Outbox {
	o := &Outbox{
		scriptURL: scriptURL,
		client:    &http.Client{Timeout: 30 * time.Second},
		queue:     make(chan Operation, 256),
	}
	go o.drain()
	return o
}

// Enqueue: asla bloklamaz. Kuyruk doluysa işlem düşürülür; at-most-once
// sözleşmesi gereği tekrar denenmez.
func (o *Outbox) Enqueue(action string, payload map[string]any) {
	select {
	case o.queue <- Operation{Action: action, Payload: payload}:
	default:
		log.Printf("[WARN] senkron kuyruğu dolu, işlem düşürüldü: %s", action)
	}
}

func (o *Outbox) drain() {
	for op := range o.queue {
		o.push(op)
	}
}

func (o *Outbox) push(op Operation) {
	url := o.scriptURL()
	if url == "" {
		return
	}

	body := map[string]any{"action": op.Action}
	for k, v := range op.Payload {
		body[k] = v
	}

	b, err := json.Marshal(body)
	if err != nil {
		log.Printf("[WARN] senkron gövdesi üretilemedi (%s): %v", op.Action, err)
		return
	}

	// Apps Script doPost gövdeyi düz metin olarak alır; content-type
	// text/plain CORS preflight'ını da atlatır (orijinal istemci davranışı)
	resp, err := o.client.Post(url, "text/plain", bytes.NewReader(b))
	if err != nil {
		log.Printf("[WARN] senkron gönderimi başarısız (%s): %v", op.Action, err)
		return
	}
	// Yanıt beklenmez, sadece bağlantıyı kapat
	resp.Body.Close()
}
