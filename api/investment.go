package api

import (
	"errors"
	"time"

	"billtracker/database"
	"billtracker/interest"
	"billtracker/middleware"
	"billtracker/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InvestmentHandler 投资收益测算处理器
type InvestmentHandler struct {
	now func() time.Time
}

// NewInvestmentHandler 创建投资处理器
func NewInvestmentHandler() *InvestmentHandler {
	return &InvestmentHandler{now: timeNow}
}

// ProjectionRequest 收益测算请求
type ProjectionRequest struct {
	Principal decimal.Decimal `json:"principal" swaggertype:"string" example:"100000"`
	StartDate string          `json:"start_date" binding:"required" example:"2024-01-01"`
	EndDate   string          `json:"end_date" example:"2024-12-31 23:59:59"`
}

// ProjectionResponse 测算结果及保存的记录
type ProjectionResponse struct {
	interest.ProjectionResult
	Record models.InvestmentHolder `json:"record"`
}

// Project 测算投资收益并保存
// @Summary 投资收益测算
// @Description 按持有天数查阶梯利率，利息达到 10000 时滚入本金继续计息。未传 end_date 时取当年 12 月 31 日 23:59:59。
// @Tags 投资
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProjectionRequest true "测算参数"
// @Success 200 {object} Response{data=ProjectionResponse} "测算成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/investments/projections [post]
func (h *InvestmentHandler) Project(c *gin.Context) {
	var req ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Principal = req.Principal.Round(2)
	if !req.Principal.IsPositive() {
		BadRequest(c, "本金必须大于 0")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		BadRequest(c, "开始日期格式错误，应为 YYYY-MM-DD")
		return
	}
	end := interest.DefaultEndDate(h.now())
	if req.EndDate != "" {
		if end, err = parseDate(req.EndDate); err != nil {
			BadRequest(c, "结束日期格式错误，应为 YYYY-MM-DD")
			return
		}
	}

	result, err := interest.Project(req.Principal, start, end)
	if err != nil {
		if errors.Is(err, interest.ErrInvalidInterval) {
			BadRequest(c, err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "测算失败"))
		return
	}

	record := models.InvestmentHolder{
		UserID:              middleware.GetCurrentUserID(c),
		PrincipalAmount:     req.Principal,
		TotalAmountInvested: result.TotalInvested,
		Remaining:           result.Remaining,
		Year:                start.Year(),
		StartDate:           start,
		EndDate:             end,
	}
	if err := database.DB.WithContext(c.Request.Context()).Create(&record).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "保存测算记录失败"))
		return
	}
	SuccessWithMessage(c, "测算成功", ProjectionResponse{ProjectionResult: result, Record: record})
}

// List 测算记录列表
// @Summary 投资测算记录
// @Tags 投资
// @Produce json
// @Security BearerAuth
// @Param year query int false "按年份过滤"
// @Success 200 {object} Response{data=[]models.InvestmentHolder} "获取成功"
// @Router /api/v1/investments [get]
func (h *InvestmentHandler) List(c *gin.Context) {
	query := database.DB.WithContext(c.Request.Context()).
		Where("user_id IN ?", models.VisibleOwners(middleware.GetCurrentUserID(c)))
	if year := c.Query("year"); year != "" {
		query = query.Where("year = ?", year)
	}

	var records []models.InvestmentHolder
	if err := query.Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询测算记录失败"))
		return
	}
	Success(c, records)
}
