package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill 账单：一笔支出，分配到某个收入来源在某月的额度上
type Bill struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	UserID         uint            `json:"user_id" gorm:"index;not null"`
	IncomeSourceID uint            `json:"income_source_id" gorm:"not null;index:idx_bill_period"`
	Month          int             `json:"month" gorm:"not null;index:idx_bill_period"`
	Year           int             `json:"year" gorm:"not null;index:idx_bill_period"`
	ExpenseName    string          `json:"expense_name" gorm:"size:100;not null"`
	ExpenseAmount  decimal.Decimal `json:"expense_amount" gorm:"type:decimal(14,2);not null"`
	IsPaid         bool            `json:"is_paid" gorm:"default:false;index"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Bill) TableName() string {
	return "bills"
}

// MonthName 返回月份英文名，非法月份返回 Unknown
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Unknown"
	}
	return time.Month(month).String()
}
