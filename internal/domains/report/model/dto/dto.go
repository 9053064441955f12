package dto

import (
	guestModel "lodging/internal/domains/guest/model"
	guestDto "lodging/internal/domains/guest/model/dto"
	"lodging/shared/constant"
	"lodging/shared/failure"
	gDto "lodging/shared/dto"
	"lodging/shared/timezone"
	"time"
)

// MonthRange covers whole days from the first of a month to its last.
type MonthRange struct {
	From time.Time
	To   time.Time
}

// ParseMonth resolves a YYYY-MM month, defaulting to the month of now when empty.
func ParseMonth(month string, now time.Time) (MonthRange, error) {
	first := timezone.StartOfMonth(now)

	if month != "" {
		parsed, err := timezone.Parse(constant.MonthFormat, month)
		if err != nil {
			return MonthRange{}, failure.BadRequestFromString("month must be in the format 2006-01") //nolint:wrapcheck
		}

		first = parsed
	}

	return MonthRange{
		From: first,
		To:   timezone.EndOfMonth(first),
	}, nil
}

func (m MonthRange) Label() string {
	return m.From.Format(constant.MonthFormat)
}

// FilterGroup selects the stays checked in within the range.
func (m MonthRange) FilterGroup() gDto.FilterGroup {
	search := guestDto.SearchRequest{
		DateFrom: m.From.Format(constant.DateOnlyFormat),
		DateTo:   m.To.Format(constant.DateOnlyFormat),
	}

	return search.ToFilterGroup()
}

// QueryParams orders the stays by day and then by arrival, without paging.
func (m MonthRange) QueryParams() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  guestModel.TableName + "." + guestModel.FieldCheckInDate + " " + gDto.SortDirAsc + ", " + guestModel.TableName + "." + guestModel.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}
}

// ReportFile is a rendered workbook ready to be sent as an attachment.
type ReportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
