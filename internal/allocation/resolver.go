// Paket allocation: çek tutarlarının şubelere dağıtım kuralları.
// Şube ve çek defteri eşleşmeleri id yerine AD üzerinden yürüdüğü için
// tüm isim bazlı join'ler bu pakette toplanır; id bazlı bir tasarıma
// geçiş yalnızca burayı değiştirir.
package allocation

import "chequeharmony-backend/internal/models"

// AmountFor: çekin verilen şubeye düşen tutarını döndürür.
// Split tablosu doluysa eşleşen satırın tutarı, yoksa 0; split yoksa
// çek tamamen ana şubesine sayılır. Eşleşmeme hata değildir.
func AmountFor(c models.Cheque, branchName string) float64 {
	if len(c.Splits) > 0 {
		for _, sp := range c.Splits {
			if sp.Branch == branchName {
				return sp.Amount
			}
		}
		return 0
	}
	if c.Branch == branchName {
		return c.Amount
	}
	return 0
}

// BelongsTo: çekin şubeyle ilişkisi var mı? Ana şube eşleşmesi veya
// herhangi bir split satırı yeterli. Tutarı 0 olan split de aidiyet sayılır.
func BelongsTo(c models.Cheque, branchName string) bool {
	if len(c.Splits) > 0 {
		for _, sp := range c.Splits {
			if sp.Branch == branchName {
				return true
			}
		}
		return false
	}
	return c.Branch == branchName
}
