package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	Phone        string `gorm:"index"`
	PasswordHash string
	Role         string `gorm:"default:user"` // "user" | "admin"
}
