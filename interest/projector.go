package interest

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInterval 结束时间必须晚于开始时间
var ErrInvalidInterval = errors.New("结束时间必须晚于开始时间")

var (
	// ReinvestThreshold 最低复投金额，单轮收益低于该值即停止
	ReinvestThreshold = decimal.NewFromInt(10000)

	hundred       = decimal.NewFromInt(100)
	daysPerMonth  = decimal.NewFromInt(30)
	secondsPerDay = decimal.NewFromInt(int64(24 * time.Hour / time.Second))
)

// ProjectionResult 复投测算结果
type ProjectionResult struct {
	TotalInvested decimal.Decimal `json:"total_invested"` // 累计复投金额
	Remaining     decimal.Decimal `json:"remaining"`      // 最后一轮未达复投门槛的收益
}

// Days 返回两个时间点之间的天数（允许小数）
func Days(start, end time.Time) decimal.Decimal {
	secs := decimal.NewFromInt(int64(end.Sub(start) / time.Second))
	return secs.Div(secondsPerDay)
}

// Project 计算本金在 [start, end] 期间按档位利率滚动复投的结果。
// 每轮收益 = 当前本金 × 月利率 × 月数，月数只按原始区间计算一次；
// 收益达到门槛则计入累计并作为下一轮本金，否则停止且不计入累计。
func Project(principal decimal.Decimal, start, end time.Time) (ProjectionResult, error) {
	if !end.After(start) {
		return ProjectionResult{}, ErrInvalidInterval
	}

	days := Days(start, end)
	rate := Rate(days)
	if rate.IsZero() {
		return ProjectionResult{TotalInvested: decimal.Zero, Remaining: decimal.Zero}, nil
	}
	months := days.Div(daysPerMonth)
	factor := rate.Div(hundred).Mul(months)

	total := decimal.Zero
	current := principal
	for {
		increment := current.Mul(factor)
		if increment.LessThan(ReinvestThreshold) {
			current = increment
			break
		}
		total = total.Add(increment)
		current = increment
	}

	return ProjectionResult{
		TotalInvested: total.Round(2),
		Remaining:     current.Round(2),
	}, nil
}

// DefaultEndDate 未指定结束时间时，默认为当年 12 月 31 日 23:59:59 (UTC)
func DefaultEndDate(now time.Time) time.Time {
	return time.Date(now.UTC().Year(), time.December, 31, 23, 59, 59, 0, time.UTC)
}
