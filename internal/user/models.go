package user

// User is serialized as {"id", "email"}; the password hash never leaves the store.
type User struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:80;not null"`
}
