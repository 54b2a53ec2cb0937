package api

import (
	"errors"

	"billtracker/database"
	"billtracker/middleware"
	"billtracker/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeSourceHandler 收入来源处理器
type IncomeSourceHandler struct{}

// NewIncomeSourceHandler 创建收入来源处理器
func NewIncomeSourceHandler() *IncomeSourceHandler {
	return &IncomeSourceHandler{}
}

// CreateIncomeSourceRequest 创建收入来源请求
type CreateIncomeSourceRequest struct {
	Name   string          `json:"name" binding:"required,max=100" example:"工资"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"8000.00"`
}

// UpdateIncomeSourceRequest 更新收入来源请求
type UpdateIncomeSourceRequest struct {
	Name   *string          `json:"name" binding:"omitempty,max=100"`
	Amount *decimal.Decimal `json:"amount" swaggertype:"string"`
}

// Create 创建收入来源
// @Summary 创建收入来源
// @Tags 收入来源
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeSourceRequest true "收入来源"
// @Success 200 {object} Response{data=models.IncomeSource} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/income-sources [post]
func (h *IncomeSourceHandler) Create(c *gin.Context) {
	var req CreateIncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		BadRequest(c, "金额必须大于 0")
		return
	}

	source := models.IncomeSource{
		UserID: middleware.GetCurrentUserID(c),
		Name:   req.Name,
		Amount: amount,
	}
	if err := database.DB.WithContext(c.Request.Context()).Create(&source).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建收入来源失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", source)
}

// List 收入来源列表（含管理员共享记录）
// @Summary 收入来源列表
// @Tags 收入来源
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.IncomeSource} "获取成功"
// @Router /api/v1/income-sources [get]
func (h *IncomeSourceHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var sources []models.IncomeSource
	if err := database.DB.WithContext(c.Request.Context()).
		Where("user_id IN ?", models.VisibleOwners(userID)).
		Order("id ASC").
		Find(&sources).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询收入来源失败"))
		return
	}
	Success(c, sources)
}

// Update 更新收入来源，仅所有者可改
// @Summary 更新收入来源
// @Tags 收入来源
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入来源ID"
// @Param request body UpdateIncomeSourceRequest true "更新内容"
// @Success 200 {object} Response{data=models.IncomeSource} "更新成功"
// @Failure 404 {object} Response "收入来源不存在"
// @Router /api/v1/income-sources/{id} [put]
func (h *IncomeSourceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateIncomeSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if req.Amount != nil {
		rounded := req.Amount.Round(2)
		if !rounded.IsPositive() {
			BadRequest(c, "金额必须大于 0")
			return
		}
		req.Amount = &rounded
	}

	db := database.DB.WithContext(c.Request.Context())
	var source models.IncomeSource
	if err := db.Where("id = ? AND user_id = ?", id, middleware.GetCurrentUserID(c)).First(&source).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "收入来源不存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "查询收入来源失败"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
		source.Name = *req.Name
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
		source.Amount = *req.Amount
	}
	if len(updates) > 0 {
		if err := db.Model(&source).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新收入来源失败"))
			return
		}
	}
	SuccessWithMessage(c, "更新成功", source)
}

// Delete 删除收入来源（软删除），仅所有者可删
// @Summary 删除收入来源
// @Tags 收入来源
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入来源ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "收入来源不存在"
// @Router /api/v1/income-sources/{id} [delete]
func (h *IncomeSourceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := database.DB.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, middleware.GetCurrentUserID(c)).
		Delete(&models.IncomeSource{})
	if result.Error != nil {
		InternalError(c, SafeErrorMessage(result.Error, "删除收入来源失败"))
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "收入来源不存在")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
