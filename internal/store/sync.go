package store

import (
	"context"
	"errors"
	"log"

	"chequeharmony-backend/internal/syncer"
)

var ErrNoScriptURL = errors.New("senkron adresi ayarlanmamış")

// LoadFromBackend: uzak koleksiyonları topluca çekip yerel depoyu
// OLDUĞU GİBİ üzerine yazar, birleştirme yapılmaz. Pull ile bir sonraki
// push arasında yapılan yerel değişiklikler kaybolabilir; bu bilinen ve
// kabul edilen bir tutarlılık açığıdır. Bildirimler ve denetim kaydı
// yereldir, pull kapsamına girmez.
func (s *Store) LoadFromBackend(ctx context.Context) error {
	url := s.ScriptURL()
	if url == "" {
		return ErrNoScriptURL
	}

	snap, err := syncer.FetchAll(ctx, url)
	if err != nil {
		return err
	}

	if snap.Cheques != nil {
		if err := s.saveRaw(keyCheques, snap.Cheques); err != nil {
			return err
		}
	}
	if snap.Branches != nil {
		if err := s.saveRaw(keyBranches, snap.Branches); err != nil {
			return err
		}
	}
	if snap.ChequeBooks != nil {
		if err := s.saveRaw(keyBooks, snap.ChequeBooks); err != nil {
			return err
		}
	}
	if snap.Users != nil {
		if err := s.saveRaw(keyUsers, snap.Users); err != nil {
			return err
		}
	}

	log.Printf("Uzak veriler yüklendi: %d çek, %d şube, %d defter, %d kullanıcı",
		len(snap.Cheques), len(snap.Branches), len(snap.ChequeBooks), len(snap.Users))
	return nil
}
