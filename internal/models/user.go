package models

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleManager UserRole = "MANAGER"
	RoleUser    UserRole = "USER"
)

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	// Yerel kayıtlarda bcrypt hash; e-tablodan çekilen eski kayıtlar
	// düz metin taşıyabilir (giriş kontrolü ikisini de tanır)
	Password  string   `json:"password,omitempty"`
	Role      UserRole `json:"role"`
	Branch    string   `json:"branch,omitempty"` // Şube ADI, id değil
	AvatarURL string   `json:"avatarUrl,omitempty"`
}
