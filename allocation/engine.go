// Package allocation 将一批账单按先到先得的规则分配到当月登记的收入来源上，
// 保证任何收入来源都不会被超额占用。
package allocation

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

// Period 某个用户的某个月
type Period struct {
	OwnerID uint
	Month   int
	Year    int
}

func (p Period) validate() error {
	if p.Month < 1 || p.Month > 12 || p.Year < 1 {
		return ErrInvalidPeriod
	}
	return nil
}

// BillRequest 待分配的账单
type BillRequest struct {
	Name   string
	Amount decimal.Decimal
	Paid   bool
}

// Assignment 账单与被选中的收入来源
type Assignment struct {
	Name           string          `json:"expense_name"`
	Amount         decimal.Decimal `json:"expense_amount"`
	Paid           bool            `json:"is_paid"`
	IncomeSourceID uint            `json:"income_source_id"`
}

// Totals 当月汇总
type Totals struct {
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalIncomes  decimal.Decimal `json:"total_incomes"`
	TotalBalance  decimal.Decimal `json:"total_balance"`
}

// NewTotals 由支出与收入合计得出结余
func NewTotals(expenses, incomes decimal.Decimal) Totals {
	return Totals{
		TotalExpenses: expenses,
		TotalIncomes:  incomes,
		TotalBalance:  incomes.Sub(expenses),
	}
}

// AllocationResult 一次批量分配的结果
type AllocationResult struct {
	Bills []Assignment `json:"bills"`
	Totals
}

// Reader 读取某月的收入与已分配数据
type Reader interface {
	// IncomeSourcesForPeriod 按登记时间升序返回当月收入来源
	IncomeSourcesForPeriod(ctx context.Context, p Period) ([]PeriodIncome, error)
	// AllocatedSums 返回当月每个收入来源已分配的账单金额合计
	AllocatedSums(ctx context.Context, p Period) (map[uint]decimal.Decimal, error)
	Totals(ctx context.Context, p Period) (Totals, error)
}

// Writer 在事务内可写入账单
type Writer interface {
	Reader
	InsertBills(ctx context.Context, p Period, bills []Assignment) error
}

// Store 账单存储。Atomic 内的读取需对当月数据加锁，
// fn 返回错误时整个事务回滚，不留下任何账单。
type Store interface {
	Reader
	Atomic(ctx context.Context, fn func(w Writer) error) error
}

// Plan 在快照上完成分配，不产生任何副作用。
// target 非 0 时所有账单都从该来源扣减；否则每笔账单取优先级最高且余额足够的来源。
// 任一账单无法分配时整批失败。
func Plan(sources []PeriodIncome, allocated map[uint]decimal.Decimal, target uint, bills []BillRequest) ([]Assignment, error) {
	if len(bills) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(sources) == 0 {
		return nil, ErrNoIncomeForPeriod
	}

	tracker := NewTracker(sources, allocated)
	if target != 0 {
		if _, ok := tracker.Remaining(target); !ok {
			return nil, ErrUnknownSource
		}
	}

	out := make([]Assignment, 0, len(bills))
	for i, b := range bills {
		id := target
		if id != 0 {
			remaining, _ := tracker.Remaining(id)
			if !tracker.Allocatable(id) || remaining.LessThan(b.Amount) {
				return nil, &InsufficientBalanceError{Index: i, Name: b.Name, Amount: b.Amount}
			}
		} else {
			var ok bool
			if id, ok = tracker.FirstFit(b.Amount); !ok {
				return nil, &InsufficientBalanceError{Index: i, Name: b.Name, Amount: b.Amount}
			}
		}
		if err := tracker.Debit(id, b.Amount); err != nil {
			return nil, err
		}
		out = append(out, Assignment{Name: b.Name, Amount: b.Amount, Paid: b.Paid, IncomeSourceID: id})
	}
	return out, nil
}

// Engine 账单分配引擎
type Engine struct {
	store  Store
	logger *slog.Logger
}

// NewEngine 创建分配引擎
func NewEngine(store Store) *Engine {
	return &Engine{store: store, logger: slog.Default()}
}

// WithLogger 替换日志输出
func (e *Engine) WithLogger(l *slog.Logger) *Engine {
	e.logger = l
	return e
}

// Allocate 在同一个存储事务中读取当月额度、完成分配并写入全部账单。
// 事务内重新统计当月汇总，保证返回值与刚写入的数据一致。
func (e *Engine) Allocate(ctx context.Context, p Period, target uint, bills []BillRequest) (*AllocationResult, error) {
	if len(bills) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	log := e.logger.With("owner_id", p.OwnerID, "month", p.Month, "year", p.Year, "bills", len(bills), "target", target)

	var result AllocationResult
	err := e.store.Atomic(ctx, func(w Writer) error {
		sources, err := w.IncomeSourcesForPeriod(ctx, p)
		if err != nil {
			return storageErr("load income sources", err)
		}
		sums, err := w.AllocatedSums(ctx, p)
		if err != nil {
			return storageErr("load allocated sums", err)
		}
		assigned, err := Plan(sources, sums, target, bills)
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.InsertBills(ctx, p, assigned); err != nil {
			return storageErr("insert bills", err)
		}
		totals, err := w.Totals(ctx, p)
		if err != nil {
			return storageErr("totals", err)
		}
		result = AllocationResult{Bills: assigned, Totals: totals}
		return nil
	})
	if err != nil {
		err = storageErr("commit", err)
		log.Warn("账单分配失败", "error", err)
		return nil, err
	}

	log.Info("账单分配成功", "total_expenses", result.TotalExpenses.String(), "total_balance", result.TotalBalance.String())
	return &result, nil
}

// SourceBalance 单个收入来源当月的额度情况
type SourceBalance struct {
	IncomeSourceID uint            `json:"income_source_id"`
	Name           string          `json:"name"`
	Monthly        decimal.Decimal `json:"monthly"`
	Allocated      decimal.Decimal `json:"allocated"`
	Remaining      decimal.Decimal `json:"remaining"`
}

// BalanceReport 当月结余报告
type BalanceReport struct {
	Sources []SourceBalance `json:"sources"`
	Totals
}

// Balance 按与分配相同的额度公式计算当月每个收入来源的剩余额度，只读
func (e *Engine) Balance(ctx context.Context, p Period) (*BalanceReport, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	sources, err := e.store.IncomeSourcesForPeriod(ctx, p)
	if err != nil {
		return nil, storageErr("load income sources", err)
	}
	sums, err := e.store.AllocatedSums(ctx, p)
	if err != nil {
		return nil, storageErr("load allocated sums", err)
	}
	totals, err := e.store.Totals(ctx, p)
	if err != nil {
		return nil, storageErr("totals", err)
	}

	names := make(map[uint]string, len(sources))
	for _, s := range sources {
		names[s.IncomeSourceID] = s.Name
	}
	report := &BalanceReport{Sources: make([]SourceBalance, 0, len(sources)), Totals: totals}
	NewTracker(sources, sums).Each(func(id uint, monthly, remaining decimal.Decimal) {
		report.Sources = append(report.Sources, SourceBalance{
			IncomeSourceID: id,
			Name:           names[id],
			Monthly:        monthly,
			Allocated:      monthly.Sub(remaining),
			Remaining:      remaining,
		})
	})
	return report, nil
}
