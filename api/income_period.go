package api

import (
	"errors"

	"billtracker/database"
	"billtracker/middleware"
	"billtracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterPeriodRequest 登记收入来源月份请求
type RegisterPeriodRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12" example:"3"`
	Year  int `json:"year" binding:"required,min=1" example:"2024"`
}

// RegisterPeriod 登记收入来源在某月生效
// @Summary 登记收入月份
// @Description 登记后该收入来源参与当月账单分配，登记时间决定分配优先级
// @Tags 收入来源
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入来源ID"
// @Param request body RegisterPeriodRequest true "月份"
// @Success 200 {object} Response{data=models.IncomeSourcePeriod} "登记成功"
// @Failure 404 {object} Response "收入来源不存在"
// @Failure 409 {object} Response "当月已登记"
// @Router /api/v1/income-sources/{id}/periods [post]
func (h *IncomeSourceHandler) RegisterPeriod(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req RegisterPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	userID := middleware.GetCurrentUserID(c)
	db := database.DB.WithContext(c.Request.Context())

	var source models.IncomeSource
	if err := db.Where("id = ? AND user_id IN ?", id, models.VisibleOwners(userID)).First(&source).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "收入来源不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询收入来源失败"))
		return
	}

	var count int64
	if err := db.Model(&models.IncomeSourcePeriod{}).
		Where("income_source_id = ? AND user_id = ? AND month = ? AND year = ?", id, userID, req.Month, req.Year).
		Count(&count).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询登记记录失败"))
		return
	}
	if count > 0 {
		Conflict(c, "该收入来源当月已登记")
		return
	}

	period := models.IncomeSourcePeriod{
		IncomeSourceID: id,
		Month:          req.Month,
		Year:           req.Year,
		UserID:         userID,
	}
	if err := db.Create(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Conflict(c, "该收入来源当月已登记")
			return
		}
		InternalError(c, SafeErrorMessage(err, "登记失败"))
		return
	}
	period.IncomeSource = source
	SuccessWithMessage(c, "登记成功", period)
}

// ListPeriods 某月已登记的收入来源，按登记时间排序
// @Summary 收入月份登记列表
// @Tags 收入来源
// @Produce json
// @Security BearerAuth
// @Param month query int false "月份，默认当月"
// @Param year query int false "年份，默认当年"
// @Success 200 {object} Response{data=[]models.IncomeSourcePeriod} "获取成功"
// @Router /api/v1/income-periods [get]
func (h *IncomeSourceHandler) ListPeriods(c *gin.Context) {
	p, ok := periodFromQuery(c, middleware.GetCurrentUserID(c), timeNow())
	if !ok {
		return
	}

	var periods []models.IncomeSourcePeriod
	if err := database.DB.WithContext(c.Request.Context()).
		Preload("IncomeSource").
		Where("user_id IN ? AND month = ? AND year = ?", models.VisibleOwners(p.OwnerID), p.Month, p.Year).
		Order("created_at ASC, id ASC").
		Find(&periods).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询登记记录失败"))
		return
	}
	Success(c, periods)
}
