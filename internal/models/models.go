package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Username string `gorm:"not null"                  json:"username"`
	Email    string `gorm:"uniqueIndex;not null"      json:"email"`
	Password string `gorm:"not null"                  json:"-"`
	Role     string `gorm:"not null;default:user"     json:"role"`
}

func (User) TableName() string { return "users" }

type Drink struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"      json:"id"`
	Name        string  `gorm:"not null"                      json:"name"`
	Description string  `gorm:"not null"                      json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null"   json:"price"`
}

func (Drink) TableName() string { return "drink" }

type SupplementType struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name string `gorm:"uniqueIndex;not null"      json:"name"`
}

func (SupplementType) TableName() string { return "supplement_type" }

type Supplement struct {
	ID     uint    `gorm:"primaryKey;autoIncrement"     json:"id"`
	Name   string  `gorm:"not null"                     json:"name"`
	Price  float64 `gorm:"type:decimal(10,2);not null"  json:"price"`
	TypeID uint    `gorm:"index;not null"               json:"type_id"`
}

func (Supplement) TableName() string { return "supplement" }

// CreatedDrink keeps the supplement selection in its encoded text form; see pricing.DecodeSelection.
type CreatedDrink struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"                 json:"id"`
	UserID       uint      `gorm:"index;not null"                           json:"user_id"`
	DrinkID      uint      `gorm:"not null"                                 json:"drink_id"`
	SupplementID string    `gorm:"column:supplement_id;type:text;not null"  json:"supplement_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (CreatedDrink) TableName() string { return "drink_created" }

type Like struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"  json:"id"`
	UserID         uint      `gorm:"index;not null"            json:"user_id"`
	DrinkCreatedID uint      `gorm:"index;not null"            json:"drink_created_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Like) TableName() string { return "drink_created_likes" }

func All() []any {
	return []any{&User{}, &Drink{}, &SupplementType{}, &Supplement{}, &CreatedDrink{}, &Like{}}
}
