package api

import (
	"errors"
	"strconv"
	"time"

	"billtracker/allocation"

	"github.com/gin-gonic/gin"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// parseID 解析路径中的 :id
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// parseDate 支持 "2006-01-02 15:04:05" 与 "2006-01-02"，按 UTC 解析
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateTimeLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// periodFromQuery 读取 month/year 查询参数，缺省为当前 UTC 月份
func periodFromQuery(c *gin.Context, ownerID uint, now time.Time) (allocation.Period, bool) {
	p := allocation.Period{OwnerID: ownerID, Month: int(now.UTC().Month()), Year: now.UTC().Year()}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			BadRequest(c, "月份必须在 1-12 之间")
			return p, false
		}
		p.Month = m
	}
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 {
			BadRequest(c, "年份无效")
			return p, false
		}
		p.Year = y
	}
	return p, true
}

// periodFromPath 读取 /:month/:year 路径参数
func periodFromPath(c *gin.Context, ownerID uint) (allocation.Period, bool) {
	m, errM := strconv.Atoi(c.Param("month"))
	y, errY := strconv.Atoi(c.Param("year"))
	if errM != nil || errY != nil || m < 1 || m > 12 || y < 1 {
		BadRequest(c, "月份或年份无效")
		return allocation.Period{}, false
	}
	return allocation.Period{OwnerID: ownerID, Month: m, Year: y}, true
}

// respondAllocationError 将分配错误映射为 HTTP 响应
func respondAllocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, allocation.ErrEmptyBatch), errors.Is(err, allocation.ErrInvalidPeriod):
		BadRequest(c, err.Error())
	case errors.Is(err, allocation.ErrUnknownSource):
		BadRequest(c, err.Error())
	case errors.Is(err, allocation.ErrNoIncomeForPeriod), errors.Is(err, allocation.ErrInsufficientBalance):
		Unprocessable(c, err.Error())
	case errors.Is(err, allocation.ErrStorage):
		ServiceUnavailable(c, SafeErrorMessage(err, "存储暂时不可用，请稍后重试"))
	default:
		InternalError(c, SafeErrorMessage(err, "账单分配失败"))
	}
}

// timeNow 当前时间，测试中可替换
var timeNow = func() time.Time { return time.Now().UTC() }
