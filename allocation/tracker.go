package allocation

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodIncome 某月登记的收入来源及其月收入
type PeriodIncome struct {
	IncomeSourceID uint
	Name           string
	Amount         decimal.Decimal
	CreatedAt      time.Time
}

// Tracker 记录每个收入来源在当月的剩余额度。
// 只属于一次分配调用，用完即弃，不会回写存储。
type Tracker struct {
	order     []uint
	monthly   map[uint]decimal.Decimal
	remaining map[uint]decimal.Decimal
}

// NewTracker 剩余额度 = 月收入 - 已分配合计，已分配缺失视为 0。
// sources 的顺序即自动分配的优先级，重复的来源只保留第一次出现。
func NewTracker(sources []PeriodIncome, allocated map[uint]decimal.Decimal) *Tracker {
	t := &Tracker{
		order:     make([]uint, 0, len(sources)),
		monthly:   make(map[uint]decimal.Decimal, len(sources)),
		remaining: make(map[uint]decimal.Decimal, len(sources)),
	}
	for _, s := range sources {
		if _, ok := t.remaining[s.IncomeSourceID]; ok {
			continue
		}
		t.order = append(t.order, s.IncomeSourceID)
		t.monthly[s.IncomeSourceID] = s.Amount
		t.remaining[s.IncomeSourceID] = s.Amount.Sub(allocated[s.IncomeSourceID])
	}
	return t
}

// Len 跟踪的收入来源数量
func (t *Tracker) Len() int {
	return len(t.order)
}

// Remaining 返回剩余额度
func (t *Tracker) Remaining(id uint) (decimal.Decimal, bool) {
	r, ok := t.remaining[id]
	return r, ok
}

// Debit 扣减额度，未跟踪的来源返回 ErrUnknownSource
func (t *Tracker) Debit(id uint, amount decimal.Decimal) error {
	r, ok := t.remaining[id]
	if !ok {
		return ErrUnknownSource
	}
	t.remaining[id] = r.Sub(amount)
	return nil
}

// Allocatable 月收入为正的已登记来源才参与分配
func (t *Tracker) Allocatable(id uint) bool {
	m, ok := t.monthly[id]
	return ok && m.IsPositive()
}

// FirstFit 按优先级返回第一个剩余额度足够的可分配来源
func (t *Tracker) FirstFit(amount decimal.Decimal) (uint, bool) {
	for _, id := range t.order {
		if !t.Allocatable(id) {
			continue
		}
		if t.remaining[id].GreaterThanOrEqual(amount) {
			return id, true
		}
	}
	return 0, false
}

// Each 按优先级遍历 (id, 月收入, 剩余额度)
func (t *Tracker) Each(fn func(id uint, monthly, remaining decimal.Decimal)) {
	for _, id := range t.order {
		fn(id, t.monthly[id], t.remaining[id])
	}
}
