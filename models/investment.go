package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentHolder 一次投资收益测算的结果记录，创建后不再修改
type InvestmentHolder struct {
	ID                  uint            `json:"id" gorm:"primaryKey"`
	UserID              uint            `json:"user_id" gorm:"index;not null"`
	PrincipalAmount     decimal.Decimal `json:"principal_amount" gorm:"type:decimal(16,2);not null"`
	TotalAmountInvested decimal.Decimal `json:"total_amount_invested" gorm:"type:decimal(16,2);not null"`
	Remaining           decimal.Decimal `json:"remaining" gorm:"type:decimal(16,2);not null"`
	Year                int             `json:"year" gorm:"not null;index"`
	StartDate           time.Time       `json:"start_date" gorm:"not null"`
	EndDate             time.Time       `json:"end_date" gorm:"not null"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (InvestmentHolder) TableName() string {
	return "investment_holders"
}
