package api

import (
	"fmt"

	"billtracker/middleware"
	"billtracker/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportBills 导出某月账单为 Excel
// @Summary 导出账单
// @Description 导出指定月份的全部账单（含已付与未付），末行为合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param month query int false "月份，默认当月"
// @Param year query int false "年份，默认当年"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/export/bills [get]
func (h *ExportHandler) ExportBills(c *gin.Context) {
	p, ok := periodFromQuery(c, middleware.GetCurrentUserID(c), timeNow())
	if !ok {
		return
	}

	bills, err := queryBills(c, p.OwnerID, nil, &p)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询账单失败"))
		return
	}

	f, err := buildBillWorkbook(bills)
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("bills_%d_%02d.xlsx", p.Year, p.Month)
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}

// buildBillWorkbook 生成账单工作簿
func buildBillWorkbook(bills []BillView) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "账单"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "C", 20)
	f.SetColWidth(sheetName, "D", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 20)

	headers := []string{"ID", "账单", "收入来源", "金额", "已支付", "月份", "创建时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	total := decimal.Zero
	for i, b := range bills {
		row := i + 2
		paid := "否"
		if b.IsPaid {
			paid = "是"
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), b.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), b.ExpenseName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), b.IncomeSourceName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), b.ExpenseAmount.InexactFloat64())
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), paid)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), fmt.Sprintf("%s %d", models.MonthName(b.Month), b.Year))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), b.CreatedAt.Format(dateTimeLayout))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)
		total = total.Add(b.ExpenseAmount)
	}

	summaryRow := len(bills) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), total.InexactFloat64())
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(bills)))
	f.MergeCell(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	return f, nil
}
