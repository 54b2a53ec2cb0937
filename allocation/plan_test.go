package allocation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bills(amounts ...string) []BillRequest {
	out := make([]BillRequest, 0, len(amounts))
	for i, a := range amounts {
		out = append(out, BillRequest{Name: "bill-" + string(rune('a'+i)), Amount: d(a)})
	}
	return out
}

func TestPlan_FirstFitInOrder(t *testing.T) {
	got, err := Plan(sources("100", "50"), nil, 0, bills("30", "60", "40"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, uint(1), got[0].IncomeSourceID) // 100 -> 70
	assert.Equal(t, uint(1), got[1].IncomeSourceID) // 70 -> 10
	assert.Equal(t, uint(2), got[2].IncomeSourceID) // 10 放不下 40，落到来源 2
}

func TestPlan_FirstBillTooLarge(t *testing.T) {
	_, err := Plan(sources("100", "50"), nil, 0, bills("120", "30"))
	require.ErrorIs(t, err, ErrInsufficientBalance)

	var ib *InsufficientBalanceError
	require.True(t, errors.As(err, &ib))
	assert.Equal(t, 0, ib.Index)
	assert.Equal(t, "bill-a", ib.Name)
}

func TestPlan_SecondBillFallsThrough(t *testing.T) {
	// 30 占用来源 1 后剩 70；60 放得进来源 1
	got, err := Plan(sources("100", "50"), nil, 0, bills("30", "60"))
	require.NoError(t, err)
	assert.Equal(t, uint(1), got[1].IncomeSourceID)

	// 来源 1 已被占用 40：30 -> 剩 30；60 既放不进来源 1 (30) 也放不进来源 2 (50)
	_, err = Plan(sources("100", "50"), map[uint]decimal.Decimal{1: d("40")}, 0, bills("30", "60"))
	var ib *InsufficientBalanceError
	require.True(t, errors.As(err, &ib))
	assert.Equal(t, 1, ib.Index)
}

func TestPlan_ExplicitTargetIgnoresOtherSources(t *testing.T) {
	_, err := Plan(sources("1000", "50"), nil, 2, bills("40", "20"))
	var ib *InsufficientBalanceError
	require.True(t, errors.As(err, &ib))
	assert.Equal(t, 1, ib.Index)

	got, err := Plan(sources("1000", "50"), nil, 2, bills("40", "10"))
	require.NoError(t, err)
	for _, a := range got {
		assert.Equal(t, uint(2), a.IncomeSourceID)
	}
}

func TestPlan_ExplicitTargetMustBeAllocatable(t *testing.T) {
	// 月收入为 0 的来源即使被指定也不接受账单，与自动分配一致
	_, err := Plan(sources("0", "50"), map[uint]decimal.Decimal{1: d("-5")}, 1, bills("1"))
	var ib *InsufficientBalanceError
	require.True(t, errors.As(err, &ib))
	assert.Equal(t, 0, ib.Index)

	_, err = Plan(sources("0", "50"), nil, 1, bills("0"))
	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestPlan_Errors(t *testing.T) {
	_, err := Plan(sources("100"), nil, 0, nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = Plan(nil, nil, 0, bills("1"))
	assert.ErrorIs(t, err, ErrNoIncomeForPeriod)

	_, err = Plan(sources("100"), nil, 42, bills("1"))
	assert.ErrorIs(t, err, ErrUnknownSource)
}

func TestPlan_RespectsExistingAllocations(t *testing.T) {
	_, err := Plan(sources("100"), map[uint]decimal.Decimal{1: d("90")}, 0, bills("11"))
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	got, err := Plan(sources("100"), map[uint]decimal.Decimal{1: d("90")}, 0, bills("10"))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPlan_DoesNotMutateInputs(t *testing.T) {
	src := sources("100", "50")
	sums := map[uint]decimal.Decimal{1: d("10")}
	_, err := Plan(src, sums, 0, bills("80", "40"))
	require.NoError(t, err)
	assert.Equal(t, "100", src[0].Amount.String())
	assert.Equal(t, "10", sums[1].String())
	assert.Len(t, sums, 1)
}

func TestPlan_CopiesPaidFlag(t *testing.T) {
	req := []BillRequest{{Name: "rent", Amount: d("10"), Paid: true}}
	got, err := Plan(sources("100"), nil, 0, req)
	require.NoError(t, err)
	assert.True(t, got[0].Paid)
	assert.Equal(t, "rent", got[0].Name)
}
