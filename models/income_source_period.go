package models

import "time"

// IncomeSourcePeriod 收入来源在某个月份生效的登记记录
// 同一所有者对同一收入来源每月仅能登记一次，创建后不可修改；CreatedAt 决定自动分配时的优先级
type IncomeSourcePeriod struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	IncomeSourceID uint         `json:"income_source_id" gorm:"not null;uniqueIndex:idx_source_period"`
	Year           int          `json:"year" gorm:"not null;uniqueIndex:idx_source_period;index:idx_owner_period"`
	Month          int          `json:"month" gorm:"not null;uniqueIndex:idx_source_period;index:idx_owner_period"`
	UserID         uint         `json:"user_id" gorm:"not null;uniqueIndex:idx_source_period;index:idx_owner_period"`
	CreatedAt      time.Time    `json:"created_at"`
	IncomeSource   IncomeSource `json:"income_source" gorm:"foreignKey:IncomeSourceID"`
}

func (IncomeSourcePeriod) TableName() string {
	return "income_source_periods"
}
