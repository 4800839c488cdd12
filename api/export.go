package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"atolye/database"
	"atolye/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler exports order reports for the back office.
type ExportHandler struct{}

// NewExportHandler creates the export handler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// parseDateRange reads start/end query params (2006-01-02) and widens the end
// date to the end of its day.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	startStr := c.Query("start_time")
	endStr := c.Query("end_time")
	if startStr == "" || endStr == "" {
		BadRequest(c, "Başlangıç ve bitiş tarihi gerekli")
		return time.Time{}, time.Time{}, false
	}
	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "Başlangıç tarihi hatalı, biçim: 2006-01-02")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "Bitiş tarihi hatalı, biçim: 2006-01-02")
		return time.Time{}, time.Time{}, false
	}
	return start, end.Add(24*time.Hour - time.Second), true
}

func ordersInRange(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := database.DB.Preload("Items").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ExportCSV downloads the orders of a date range as CSV.
// @Summary Export orders as CSV
// @Tags Admin-Orders
// @Produce text/csv
// @Param start_time query string true "start date (2026-01-01)"
// @Param end_time query string true "end date (2026-12-31)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} Response "bad date range"
// @Router /admin/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	orders, err := ordersInRange(start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Siparişler yüklenemedi"))
		return
	}

	buf := new(bytes.Buffer)
	// BOM so Excel renders Turkish characters correctly.
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	headers := []string{"Sipariş No", "Müşteri", "Telefon", "Şehir", "Durum", "Ürün Tutarı", "Kargo", "Toplam", "Tarih"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "CSV oluşturulamadı")
		return
	}
	for _, o := range orders {
		row := []string{
			o.OrderNo,
			o.CustomerName,
			o.Phone,
			o.City,
			o.Status,
			fmt.Sprintf("%.2f", o.ItemsTotal),
			fmt.Sprintf("%.2f", o.ShippingFee),
			fmt.Sprintf("%.2f", o.Total),
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "CSV oluşturulamadı")
			return
		}
	}
	writer.Flush()

	filename := fmt.Sprintf("siparisler_%s_%s.csv", start.Format("20060102"), end.Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel downloads the orders of a date range as an Excel workbook with
// one row per order line.
// @Summary Export orders as Excel
// @Tags Admin-Orders
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_time query string true "start date (2026-01-01)"
// @Param end_time query string true "end date (2026-12-31)"
// @Success 200 {file} file "Excel file"
// @Failure 400 {object} Response "bad date range"
// @Router /admin/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	orders, err := ordersInRange(start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Siparişler yüklenemedi"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Siparişler"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Sipariş No", "Müşteri", "Telefon", "Adres", "Durum", "Ürün", "Adet", "Birim Fiyat", "Satır Tutarı", "Sipariş Toplamı", "Tarih"}
	for i, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hdr)
	}
	_ = f.SetColWidth(sheet, "A", "B", 18)
	_ = f.SetColWidth(sheet, "D", "D", 40)
	_ = f.SetColWidth(sheet, "F", "F", 30)

	row := 2
	for _, o := range orders {
		for _, item := range o.Items {
			values := []interface{}{
				o.OrderNo,
				o.CustomerName,
				o.Phone,
				o.Address,
				o.Status,
				item.Name,
				item.Quantity,
				item.Price,
				item.Price * float64(item.Quantity),
				o.Total,
				o.CreatedAt.Format("2006-01-02 15:04:05"),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "Excel dosyası oluşturulamadı")
		return
	}

	filename := fmt.Sprintf("siparisler_%s_%s.xlsx", start.Format("20060102"), end.Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
