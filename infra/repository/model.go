package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is the database record for a bank account.
type Account struct {
	ID       string          `gorm:"type:uuid;primaryKey"`
	UserID   string          `gorm:"type:uuid;index;not null"`
	Balance  decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Currency string          `gorm:"type:varchar(3);not null"`
	IsOpen   bool            `gorm:"not null;default:true"`
	OpenedAt time.Time       `gorm:"not null"`
	ClosedAt *time.Time
}

func (Account) TableName() string { return "accounts" }

// Transfer is the database record for a completed money transfer. Transfers
// reference their accounts by plain foreign-key ids; the per-account transfer
// list is derived by query, never by back-pointers.
type Transfer struct {
	ID            string          `gorm:"type:uuid;primaryKey"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null"`
	FromAccountID string          `gorm:"type:uuid;index;not null"`
	ToAccountID   string          `gorm:"type:uuid;index;not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

func (Transfer) TableName() string { return "transfers" }

// User is the database record for a user.
type User struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Username  string `gorm:"uniqueIndex;not null;size:50"`
	Email     string `gorm:"uniqueIndex;not null;size:255"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

// Migrate creates or updates the database schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Account{}, &Transfer{})
}
