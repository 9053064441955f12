package dto

import (
	"fmt"
	"lodging/internal/domains/receipt/model"
	"lodging/shared/constant"
)

type IssueResponse struct {
	GuestID       int64  `json:"guest_id"`
	ReceiptNumber string `json:"receipt_number"`
	AlreadyIssued bool   `json:"already_issued"`
	DownloadPath  string `json:"download_path"`
}

// DownloadPath is where the PDF of a guest's receipt is served.
func DownloadPath(guestID int64) string {
	return fmt.Sprintf("/v1/guests/%d/receipt.pdf", guestID)
}

// FileName is the attachment name of a rendered receipt.
func FileName(receiptNumber string) string {
	return fmt.Sprintf("receipt_%s.pdf", receiptNumber)
}

// ReceiptFile is a rendered receipt ready to be served as an attachment.
type ReceiptFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

type CounterResponse struct {
	CurrentNumber int64  `json:"current_number"`
	LastUpdated   string `json:"last_updated"`
}

func (r *CounterResponse) FromModel(counter model.Counter) {
	r.CurrentNumber = counter.CurrentNumber

	if !counter.LastUpdated.IsZero() {
		r.LastUpdated = counter.LastUpdated.Format(constant.DateFormat)
	}
}
