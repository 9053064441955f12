package service

import (
	"bytes"
	"fmt"
	guestDto "lodging/internal/domains/guest/model/dto"
	"lodging/shared/constant"
	"lodging/shared/timezone"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin   = 15.0
	lineHeight   = 7.0
	labelWidth   = 50.0
	contentWidth = 180.0
	fontFamily   = "Helvetica"
	moneyPlaces  = 2
)

var receiptTerms = []string{
	"Check-out time is 11:00 AM.",
	"Late check-out will be charged extra.",
	"Advance payment is non-refundable.",
	"Any damage to property will be charged to the guest.",
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}

	return "No"
}

func renderReceipt(view guestDto.ReceiptView) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetTitle("Receipt "+view.ReceiptNumber, true)
	pdf.SetCreator(view.PropertyName, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontFamily, "B", 18)
	pdf.CellFormat(contentWidth, 10, "HOTEL RECEIPT", "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "", 13)
	pdf.CellFormat(contentWidth, 8, tr(view.PropertyName), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(contentWidth/2, lineHeight, "Receipt No: "+view.ReceiptNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, lineHeight,
		"Date: "+timezone.Format(view.IssuedAt, "2006-01-02 15:04"), "", 1, "R", false, 0, "")
	divider(pdf)

	section(pdf, "Guest Details")
	row(pdf, tr, "Name", view.FullName)
	row(pdf, tr, "S/o W/o", view.FatherSpouseName)
	row(pdf, tr, "Address", view.Address)
	row(pdf, tr, "Mobile", view.MobileNumber)
	row(pdf, tr, "Identity Number", view.IdentityNumber)
	row(pdf, tr, "Guests", fmt.Sprintf("%d", view.Guests))

	section(pdf, "Stay Details")
	row(pdf, tr, "Room Number", fmt.Sprintf("%d", view.RoomNumber))
	row(pdf, tr, "Extra Bed", yesNo(view.ExtraBed))
	row(pdf, tr, "Check-In", view.CheckInDate.Format(constant.DateOnlyFormat))

	checkOut := "-"
	if view.CheckOutDate != nil {
		checkOut = view.CheckOutDate.Format(constant.DateOnlyFormat)
		if view.CheckOutTime != "" {
			checkOut += " " + view.CheckOutTime
		}
	}

	row(pdf, tr, "Check-Out", checkOut)

	section(pdf, "Payment")
	row(pdf, tr, "Amount Paid", view.AmountPaid.StringFixed(moneyPlaces))
	row(pdf, tr, "Remaining Amount", view.RemainingAmount.StringFixed(moneyPlaces))
	pdf.SetFont(fontFamily, "B", 11)
	row(pdf, tr, "Total", view.Total.StringFixed(moneyPlaces))
	row(pdf, tr, "Payment Mode", view.PaymentMode)

	section(pdf, "Terms & Conditions")
	pdf.SetFont(fontFamily, "", 9)

	for i, term := range receiptTerms {
		pdf.MultiCell(contentWidth, 5, fmt.Sprintf("%d. %s", i+1, term), "", "L", false)
	}

	pdf.Ln(20)
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(contentWidth/2, lineHeight, "Guest Signature", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentWidth/2, lineHeight, "Authorized Signature", "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func divider(pdf *fpdf.Fpdf) {
	y := pdf.GetY() + 2
	pdf.Line(pageMargin, y, pageMargin+contentWidth, y)
	pdf.Ln(5)
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(contentWidth, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
}

func row(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		value = "-"
	}

	pdf.CellFormat(labelWidth, lineHeight, label+":", "", 0, "L", false, 0, "")
	pdf.MultiCell(contentWidth-labelWidth, lineHeight, tr(value), "", "L", false)
}
