package allocation

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyBatch 未提交任何账单
	ErrEmptyBatch = errors.New("账单列表不能为空")
	// ErrInvalidPeriod 月份或年份非法
	ErrInvalidPeriod = errors.New("月份或年份非法")
	// ErrNoIncomeForPeriod 目标月份没有登记任何收入来源
	ErrNoIncomeForPeriod = errors.New("该月份没有登记收入来源")
	// ErrInsufficientBalance 某笔账单找不到足够余额的收入来源
	ErrInsufficientBalance = errors.New("收入来源余额不足")
	// ErrUnknownSource 指定的收入来源不在该月份的登记中
	ErrUnknownSource = errors.New("收入来源未在该月份登记")
	// ErrStorage 存储读写失败，可重试
	ErrStorage = errors.New("存储操作失败")
)

// InsufficientBalanceError 指明无法分配的账单
type InsufficientBalanceError struct {
	Index  int // 账单在批次中的位置，从 0 开始
	Name   string
	Amount decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: 账单 #%d %q (金额 %s)", ErrInsufficientBalance, e.Index+1, e.Name, e.Amount.StringFixed(2))
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// StorageError 包装底层存储错误
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrStorage, e.Op, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

var passthrough = []error{
	ErrEmptyBatch, ErrInvalidPeriod, ErrNoIncomeForPeriod, ErrInsufficientBalance, ErrUnknownSource, ErrStorage,
	context.Canceled, context.DeadlineExceeded,
}

// storageErr 将存储错误包装为 StorageError，业务错误与取消原样返回
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range passthrough {
		if errors.Is(err, known) {
			return err
		}
	}
	return &StorageError{Op: op, Err: err}
}
