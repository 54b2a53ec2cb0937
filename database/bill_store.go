package database

import (
	"context"
	"time"

	"billtracker/allocation"
	"billtracker/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BillStore 基于 gorm 的账单分配存储。
// Atomic 中的读取对当月收入登记行加 FOR UPDATE 锁，
// 同一用户同一月份的并发分配由数据库事务串行化。
type BillStore struct {
	db      *gorm.DB
	locking bool
}

// NewBillStore 创建账单存储
func NewBillStore(db *gorm.DB) *BillStore {
	return &BillStore{db: db}
}

const periodIncomeSQL = "SELECT p.income_source_id, s.name, s.amount, p.created_at FROM income_source_periods p " +
	"JOIN income_sources s ON s.id = p.income_source_id AND s.deleted_at IS NULL " +
	"WHERE p.user_id IN ? AND p.month = ? AND p.year = ? " +
	"ORDER BY p.created_at ASC, p.id ASC"

type periodIncomeRow struct {
	IncomeSourceID uint
	Name           string
	Amount         decimal.Decimal
	CreatedAt      time.Time
}

// IncomeSourcesForPeriod 按登记时间升序返回当月收入来源（含管理员共享记录）
func (s *BillStore) IncomeSourcesForPeriod(ctx context.Context, p allocation.Period) ([]allocation.PeriodIncome, error) {
	query := periodIncomeSQL
	if s.locking {
		query += " FOR UPDATE"
	}
	var rows []periodIncomeRow
	if err := s.db.WithContext(ctx).Raw(query, models.VisibleOwners(p.OwnerID), p.Month, p.Year).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]allocation.PeriodIncome, 0, len(rows))
	for _, r := range rows {
		out = append(out, allocation.PeriodIncome{
			IncomeSourceID: r.IncomeSourceID,
			Name:           r.Name,
			Amount:         r.Amount,
			CreatedAt:      r.CreatedAt,
		})
	}
	return out, nil
}

type sumRow struct {
	IncomeSourceID uint
	Total          decimal.Decimal
}

// AllocatedSums 当月每个收入来源已分配的账单金额
func (s *BillStore) AllocatedSums(ctx context.Context, p allocation.Period) (map[uint]decimal.Decimal, error) {
	var rows []sumRow
	err := s.billsInPeriod(ctx, p).
		Select("income_source_id, COALESCE(SUM(expense_amount), 0) AS total").
		Group("income_source_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]decimal.Decimal, len(rows))
	for _, r := range rows {
		out[r.IncomeSourceID] = r.Total
	}
	return out, nil
}

type totalRow struct {
	Total decimal.Decimal
}

// Totals 当月账单合计、收入合计与结余
func (s *BillStore) Totals(ctx context.Context, p allocation.Period) (allocation.Totals, error) {
	var expenses, incomes totalRow
	if err := s.billsInPeriod(ctx, p).
		Select("COALESCE(SUM(expense_amount), 0) AS total").
		Scan(&expenses).Error; err != nil {
		return allocation.Totals{}, err
	}
	// 管理员与用户重复登记同一来源时只计一次
	registered := s.db.Table("income_source_periods").
		Select("income_source_id").
		Where("user_id IN ? AND month = ? AND year = ?", models.VisibleOwners(p.OwnerID), p.Month, p.Year)
	if err := s.db.WithContext(ctx).Table("income_sources").
		Select("COALESCE(SUM(income_sources.amount), 0) AS total").
		Where("income_sources.deleted_at IS NULL AND income_sources.id IN (?)", registered).
		Scan(&incomes).Error; err != nil {
		return allocation.Totals{}, err
	}
	return allocation.NewTotals(expenses.Total, incomes.Total), nil
}

// InsertBills 批量写入账单
func (s *BillStore) InsertBills(ctx context.Context, p allocation.Period, bills []allocation.Assignment) error {
	if len(bills) == 0 {
		return nil
	}
	rows := make([]models.Bill, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, models.Bill{
			UserID:         p.OwnerID,
			IncomeSourceID: b.IncomeSourceID,
			Month:          p.Month,
			Year:           p.Year,
			ExpenseName:    b.Name,
			ExpenseAmount:  b.Amount,
			IsPaid:         b.Paid,
		})
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

// Atomic 在单个数据库事务中执行 fn，fn 出错则回滚
func (s *BillStore) Atomic(ctx context.Context, fn func(w allocation.Writer) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BillStore{db: tx, locking: true})
	})
}

func (s *BillStore) billsInPeriod(ctx context.Context, p allocation.Period) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.Bill{}).
		Where("user_id IN ? AND month = ? AND year = ?", models.VisibleOwners(p.OwnerID), p.Month, p.Year)
}

var _ allocation.Store = (*BillStore)(nil)
