package api

import (
	"errors"
	"fmt"
	"log/slog"

	"billtracker/allocation"
	"billtracker/database"
	"billtracker/middleware"
	"billtracker/models"
	"billtracker/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// reminderSender 发送未付账单提醒
type reminderSender interface {
	Enabled() bool
	SendUnpaidBillsReminder(toEmail, username, monthLabel string, items []service.ReminderItem) error
}

// BillHandler 账单处理器
type BillHandler struct {
	mailer reminderSender
}

// NewBillHandler 创建账单处理器
func NewBillHandler(mailer reminderSender) *BillHandler {
	return &BillHandler{mailer: mailer}
}

// BillItemRequest 单笔账单
type BillItemRequest struct {
	Name   string          `json:"name" binding:"required,max=100" example:"房租"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"1200.00"`
	IsPaid bool            `json:"is_paid"`
}

// AllocateBillsRequest 批量分配账单请求
type AllocateBillsRequest struct {
	IncomeSourceID uint              `json:"income_source_id" example:"0"`
	Month          int               `json:"month" binding:"omitempty,min=1,max=12" example:"3"`
	Year           int               `json:"year" binding:"omitempty,min=1" example:"2024"`
	Bills          []BillItemRequest `json:"bills" binding:"dive"`
}

// UpdateBillRequest 修改账单，仅支持支付状态
type UpdateBillRequest struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
}

// BillView 账单及所属收入来源名称
type BillView struct {
	models.Bill
	IncomeSourceName string `json:"income_source_name"`
	MonthName        string `json:"month_name" gorm:"-"`
}

func (h *BillHandler) engine(c *gin.Context) *allocation.Engine {
	return allocation.NewEngine(database.NewBillStore(database.DB)).
		WithLogger(slog.Default().With("request_id", middleware.GetRequestID(c)))
}

// Allocate 批量分配账单
// @Summary 批量分配账单
// @Description 指定 income_source_id 时全部账单从该来源扣减，否则按登记先后为每笔账单选择第一个余额足够的来源。任一账单无法分配则整批不写入。
// @Tags 账单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AllocateBillsRequest true "账单批次"
// @Success 200 {object} Response{data=allocation.AllocationResult} "分配成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 422 {object} Response "当月无收入或余额不足"
// @Failure 503 {object} Response "存储不可用，可重试"
// @Router /api/v1/bills [post]
func (h *BillHandler) Allocate(c *gin.Context) {
	var req AllocateBillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	now := timeNow()
	p := allocation.Period{OwnerID: middleware.GetCurrentUserID(c), Month: req.Month, Year: req.Year}
	if p.Month == 0 {
		p.Month = int(now.Month())
	}
	if p.Year == 0 {
		p.Year = now.Year()
	}

	bills := make([]allocation.BillRequest, 0, len(req.Bills))
	for i, b := range req.Bills {
		amount := b.Amount.Round(2)
		if !amount.IsPositive() {
			BadRequest(c, fmt.Sprintf("第 %d 笔账单金额必须大于 0", i+1))
			return
		}
		bills = append(bills, allocation.BillRequest{Name: b.Name, Amount: amount, Paid: b.IsPaid})
	}

	result, err := h.engine(c).Allocate(c.Request.Context(), p, req.IncomeSourceID, bills)
	if err != nil {
		respondAllocationError(c, err)
		return
	}
	SuccessWithMessage(c, "分配成功", result)
}

// ListUnpaid 所有未付账单
// @Summary 未付账单列表
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]BillView} "获取成功"
// @Router /api/v1/bills/unpaid [get]
func (h *BillHandler) ListUnpaid(c *gin.Context) {
	unpaid := false
	views, err := queryBills(c, middleware.GetCurrentUserID(c), &unpaid, nil)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}
	Success(c, views)
}

// PaidForMonth 某月已付账单
// @Summary 某月已付账单
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param month path int true "月份"
// @Param year path int true "年份"
// @Success 200 {object} Response{data=[]BillView} "获取成功"
// @Router /api/v1/bills/paid/{month}/{year} [get]
func (h *BillHandler) PaidForMonth(c *gin.Context) {
	h.listForMonth(c, true)
}

// UnpaidForMonth 某月未付账单
// @Summary 某月未付账单
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param month path int true "月份"
// @Param year path int true "年份"
// @Success 200 {object} Response{data=[]BillView} "获取成功"
// @Router /api/v1/bills/unpaid/{month}/{year} [get]
func (h *BillHandler) UnpaidForMonth(c *gin.Context) {
	h.listForMonth(c, false)
}

func (h *BillHandler) listForMonth(c *gin.Context, paid bool) {
	p, ok := periodFromPath(c, middleware.GetCurrentUserID(c))
	if !ok {
		return
	}
	views, err := queryBills(c, p.OwnerID, &paid, &p)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}
	Success(c, views)
}

// queryBills 查询可见账单，paid 或 p 为空时不限支付状态或月份
func queryBills(c *gin.Context, userID uint, paid *bool, p *allocation.Period) ([]BillView, error) {
	query := database.DB.WithContext(c.Request.Context()).
		Table("bills").
		Select("bills.*, income_sources.name AS income_source_name").
		Joins("LEFT JOIN income_sources ON income_sources.id = bills.income_source_id").
		Where("bills.user_id IN ? AND bills.deleted_at IS NULL", models.VisibleOwners(userID))
	if paid != nil {
		query = query.Where("bills.is_paid = ?", *paid)
	}
	if p != nil {
		query = query.Where("bills.month = ? AND bills.year = ?", p.Month, p.Year)
	}

	views := []BillView{}
	if err := query.Order("bills.year ASC, bills.month ASC, bills.id ASC").Scan(&views).Error; err != nil {
		return nil, err
	}
	for i := range views {
		views[i].MonthName = models.MonthName(views[i].Month)
	}
	return views, nil
}

// findOwnBill 查找当前用户自己的账单，失败时已写入响应
func findOwnBill(c *gin.Context) (*models.Bill, bool) {
	id, ok := parseID(c)
	if !ok {
		return nil, false
	}
	var bill models.Bill
	err := database.DB.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, middleware.GetCurrentUserID(c)).
		First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "账单不存在")
			return nil, false
		}
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return nil, false
	}
	return &bill, true
}

// MarkPaid 标记账单已支付
// @Summary 标记账单已支付
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Success 200 {object} Response{data=models.Bill} "操作成功"
// @Failure 404 {object} Response "账单不存在"
// @Router /api/v1/bills/{id}/pay [put]
func (h *BillHandler) MarkPaid(c *gin.Context) {
	bill, ok := findOwnBill(c)
	if !ok {
		return
	}
	if err := database.DB.WithContext(c.Request.Context()).Model(bill).Update("is_paid", true).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新账单失败"))
		return
	}
	bill.IsPaid = true
	SuccessWithMessage(c, "已标记为已支付", bill)
}

// UpdatePaid 修改账单支付状态，金额与来源不可修改
// @Summary 修改账单支付状态
// @Tags 账单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Param request body UpdateBillRequest true "支付状态"
// @Success 200 {object} Response{data=models.Bill} "更新成功"
// @Failure 404 {object} Response "账单不存在"
// @Router /api/v1/bills/{id} [patch]
func (h *BillHandler) UpdatePaid(c *gin.Context) {
	var req UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	bill, ok := findOwnBill(c)
	if !ok {
		return
	}
	if err := database.DB.WithContext(c.Request.Context()).Model(bill).Update("is_paid", *req.IsPaid).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新账单失败"))
		return
	}
	bill.IsPaid = *req.IsPaid
	SuccessWithMessage(c, "更新成功", bill)
}

// Delete 删除账单（软删除），释放其占用的额度
// @Summary 删除账单
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "账单不存在"
// @Router /api/v1/bills/{id} [delete]
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result := database.DB.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, middleware.GetCurrentUserID(c)).
		Delete(&models.Bill{})
	if result.Error != nil {
		InternalError(c, SafeErrorMessage(result.Error, "删除账单失败"))
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "账单不存在")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}

// Balance 当月各收入来源剩余额度
// @Summary 当月结余
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份，默认当月"
// @Param year query int false "年份，默认当年"
// @Success 200 {object} Response{data=allocation.BalanceReport} "获取成功"
// @Router /api/v1/bills/balance [get]
func (h *BillHandler) Balance(c *gin.Context) {
	p, ok := periodFromQuery(c, middleware.GetCurrentUserID(c), timeNow())
	if !ok {
		return
	}
	report, err := h.engine(c).Balance(c.Request.Context(), p)
	if err != nil {
		respondAllocationError(c, err)
		return
	}
	Success(c, report)
}

// Remind 发送当月未付账单提醒邮件
// @Summary 未付账单邮件提醒
// @Tags 账单
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份，默认当月"
// @Param year query int false "年份，默认当年"
// @Success 200 {object} Response "发送成功"
// @Failure 503 {object} Response "邮件服务未启用"
// @Router /api/v1/bills/remind [post]
func (h *BillHandler) Remind(c *gin.Context) {
	if h.mailer == nil || !h.mailer.Enabled() {
		ServiceUnavailable(c, "邮件服务未启用")
		return
	}
	p, ok := periodFromQuery(c, middleware.GetCurrentUserID(c), timeNow())
	if !ok {
		return
	}

	unpaid := false
	var user models.User
	if err := database.DB.WithContext(c.Request.Context()).First(&user, p.OwnerID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	views, err := queryBills(c, p.OwnerID, &unpaid, &p)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}
	if len(views) == 0 {
		SuccessWithMessage(c, "当月没有未付账单", gin.H{"sent": false, "count": 0})
		return
	}

	items := make([]service.ReminderItem, 0, len(views))
	for _, v := range views {
		items = append(items, service.ReminderItem{Name: v.ExpenseName, SourceName: v.IncomeSourceName, Amount: v.ExpenseAmount})
	}
	label := fmt.Sprintf("%s %d", models.MonthName(p.Month), p.Year)
	if err := h.mailer.SendUnpaidBillsReminder(user.Email, user.Username, label, items); err != nil {
		slog.Error("发送提醒邮件失败", "request_id", middleware.GetRequestID(c), "user_id", p.OwnerID, "error", err)
		InternalError(c, SafeErrorMessage(err, "发送邮件失败"))
		return
	}
	SuccessWithMessage(c, "提醒邮件已发送", gin.H{"sent": true, "count": len(items)})
}
