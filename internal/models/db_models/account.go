package db_models

type Account struct {
	BaseModel
	Email        string `gorm:"unique"`
	PasswordHash string
	Verified     bool
}
