package dto

import (
	"lodging/shared/constant"
	"lodging/shared/model"
	"lodging/shared/timezone"
	"time"
)

// Metadata is the audit trail rendered in the property's timezone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return timezone.Format(t, constant.DateFormat)
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = formatInstant(metadata.CreatedAt)
	m.ModifiedAt = formatInstant(metadata.ModifiedAt)
	m.CreatedBy = metadata.CreatedBy
	m.ModifiedBy = metadata.ModifiedBy
}
