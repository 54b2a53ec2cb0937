// Package interest 实现按期限分档的月利率表以及复投收益测算
package interest

import "github.com/shopspring/decimal"

// tier 利率档位：期限上限（天，含）对应的月利率（百分比）
type tier struct {
	maxDays decimal.Decimal
	rate    decimal.Decimal
}

var schedule = []tier{
	{decimal.NewFromInt(30), decimal.RequireFromString("1.2375")},
	{decimal.NewFromInt(60), decimal.RequireFromString("1.35")},
	{decimal.NewFromInt(90), decimal.RequireFromString("1.50")},
	{decimal.NewFromInt(120), decimal.RequireFromString("1.575")},
	{decimal.NewFromInt(180), decimal.RequireFromString("1.65")},
	{decimal.NewFromInt(270), decimal.RequireFromString("1.725")},
	{decimal.NewFromInt(365), decimal.RequireFromString("1.80")},
}

// Rate 根据投资天数返回月利率百分比，超过 365 天返回 0（不再复投）
func Rate(days decimal.Decimal) decimal.Decimal {
	for _, t := range schedule {
		if days.LessThanOrEqual(t.maxDays) {
			return t.rate
		}
	}
	return decimal.Zero
}
