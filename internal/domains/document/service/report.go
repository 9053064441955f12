package service

import (
	"fmt"
	guestDto "lodging/internal/domains/guest/model/dto"
	"lodging/shared/constant"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	ReportSheetName = "Monthly Report"

	defaultSheetName = "Sheet1"
	numFmtTwoPlaces  = 2
	columnWidth      = 20.0
)

var reportHeaders = []string{
	"Name", "Mobile", "Identity Number", "Amount Paid Today", "Remaining Amount", "Check-In", "Room Number",
}

type reportWriter struct {
	file     *excelize.File
	row      int
	bold     int
	money    int
	boldCash int
}

func (w *reportWriter) set(col int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}

	if err = w.file.SetCellValue(ReportSheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}

	if style != 0 {
		if err = w.file.SetCellStyle(ReportSheetName, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style cell %s: %w", cell, err)
		}
	}

	return nil
}

func (w *reportWriter) line(style int, values ...any) error {
	for i, value := range values {
		if value == nil {
			continue
		}

		cellStyle := style
		if _, ok := value.(float64); ok {
			cellStyle = w.money
			if style == w.bold {
				cellStyle = w.boldCash
			}
		}

		if err := w.set(i+1, value, cellStyle); err != nil {
			return err
		}
	}

	w.row++

	return nil
}

func groupByDate(rows []guestDto.ExportRow) ([]string, map[string][]guestDto.ExportRow) {
	order := []string{}
	groups := map[string][]guestDto.ExportRow{}

	for _, r := range rows {
		day := r.CheckInDate.Format(constant.DateOnlyFormat)
		if _, ok := groups[day]; !ok {
			order = append(order, day)
		}

		groups[day] = append(groups[day], r)
	}

	return order, groups
}

func renderMonthlyReport(from, to time.Time, rows []guestDto.ExportRow) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(defaultSheetName, ReportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	money, err := file.NewStyle(&excelize.Style{NumFmt: numFmtTwoPlaces})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	boldCash, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtTwoPlaces})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	w := &reportWriter{file: file, row: 1, bold: bold, money: money, boldCash: boldCash}

	title := fmt.Sprintf("Report %s to %s", from.Format(constant.DateOnlyFormat), to.Format(constant.DateOnlyFormat))
	if err = w.line(bold, title); err != nil {
		return nil, err
	}

	w.row++

	order, groups := groupByDate(rows)
	grandPaid, grandRemaining := decimal.Zero, decimal.Zero

	for _, day := range order {
		if err = w.line(bold, "Date: "+day); err != nil {
			return nil, err
		}

		headers := make([]any, len(reportHeaders))
		for i, header := range reportHeaders {
			headers[i] = header
		}

		if err = w.line(bold, headers...); err != nil {
			return nil, err
		}

		paid, remaining := decimal.Zero, decimal.Zero

		for _, r := range groups[day] {
			paid = paid.Add(r.AmountPaidToday)
			remaining = remaining.Add(r.RemainingAmount)

			err = w.line(0,
				r.FullName,
				r.MobileNumber,
				r.IdentityNumber,
				r.AmountPaidToday.InexactFloat64(),
				r.RemainingAmount.InexactFloat64(),
				day,
				r.RoomNumber,
			)
			if err != nil {
				return nil, err
			}
		}

		if err = w.line(bold, "Daily Total", nil, nil, paid.InexactFloat64(), remaining.InexactFloat64()); err != nil {
			return nil, err
		}

		w.row++

		grandPaid = grandPaid.Add(paid)
		grandRemaining = grandRemaining.Add(remaining)
	}

	if err = w.line(bold, "GRAND TOTAL", nil, nil, grandPaid.InexactFloat64(), grandRemaining.InexactFloat64()); err != nil {
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(reportHeaders))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve column: %w", err)
	}

	if err = file.SetColWidth(ReportSheetName, "A", lastCol, columnWidth); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// ReportFileName is the attachment name of the workbook covering month.
func ReportFileName(month time.Time) string {
	return fmt.Sprintf("hotel_report_%s.xlsx", month.Format("2006_01"))
}
