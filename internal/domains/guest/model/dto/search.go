package dto

import (
	"lodging/internal/domains/guest/model"
	gDto "lodging/shared/dto"
	"net/http"
	"strings"
)

const (
	ReceiptIssuedYes = "yes"
	ReceiptIssuedNo  = "no"

	argDateFrom     = "date_from"
	argDateTo       = "date_to"
	argSingleDate   = "single_date"
	argReceiptBlank = "receipt_blank"
)

// SearchRequest holds the optional criteria of a guest search; every set criterion must match.
type SearchRequest struct {
	Name           string `json:"name"            validate:"omitempty,max=255"`
	IdentityNumber string `json:"identity_number" validate:"omitempty,max=12"`
	Mobile         string `json:"mobile"          validate:"omitempty,max=10"`
	ReceiptNumber  string `json:"receipt_number"  validate:"omitempty,max=32"`
	SingleDate     string `json:"single_date"     validate:"omitempty,datetime=2006-01-02"`
	DateFrom       string `json:"date_from"       validate:"omitempty,datetime=2006-01-02"`
	DateTo         string `json:"date_to"         validate:"omitempty,datetime=2006-01-02"`
	ReceiptIssued  string `json:"receipt_issued"  validate:"omitempty,oneof=yes no"`
	PaymentMode    string `json:"payment_mode"    validate:"omitempty,oneof=Cash Cheque Online Card"`
}

// FromRequest reads the criteria from the query string.
func (s *SearchRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.Name = strings.TrimSpace(query.Get("name"))
	s.IdentityNumber = strings.TrimSpace(query.Get("identity_number"))
	s.Mobile = strings.TrimSpace(query.Get("mobile"))
	s.ReceiptNumber = strings.TrimSpace(query.Get("receipt_number"))
	s.SingleDate = query.Get("single_date")
	s.DateFrom = query.Get("date_from")
	s.DateTo = query.Get("date_to")
	s.ReceiptIssued = strings.ToLower(query.Get("receipt_issued"))
	s.PaymentMode = query.Get("payment_mode")
}

func like(field, value string) gDto.Filter {
	return gDto.Filter{
		Field:    field,
		Value:    value,
		Operator: gDto.FilterOperatorLike,
		Table:    model.TableName,
	}
}

// ToFilterGroup joins every present criterion with AND.
func (s *SearchRequest) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if s.Name != "" {
		filters = append(filters, like(model.FieldFullName, s.Name))
	}

	if s.IdentityNumber != "" {
		filters = append(filters, like(model.FieldIdentityNumber, s.IdentityNumber))
	}

	if s.Mobile != "" {
		filters = append(filters, like(model.FieldMobileNumber, s.Mobile))
	}

	if s.ReceiptNumber != "" {
		filters = append(filters, like(model.FieldReceiptNumber, s.ReceiptNumber))
	}

	if s.SingleDate != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  argSingleDate,
			Field:    model.FieldCheckInDate,
			Value:    s.SingleDate,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if s.DateFrom != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  argDateFrom,
			Field:    model.FieldCheckInDate,
			Value:    s.DateFrom,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if s.DateTo != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  argDateTo,
			Field:    model.FieldCheckInDate,
			Value:    s.DateTo,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	switch s.ReceiptIssued {
	case ReceiptIssuedYes:
		filters = append(filters, gDto.And(
			receiptFilter(gDto.FilterIsNotNull),
			receiptFilter(gDto.FilterOperatorNotEq),
		))
	case ReceiptIssuedNo:
		filters = append(filters, gDto.Or(
			receiptFilter(gDto.FilterIsNull),
			receiptFilter(gDto.FilterOperatorEq),
		))
	}

	if s.PaymentMode != "" {
		filters = append(filters, gDto.Eq(model.TableName, model.FieldPaymentMode, s.PaymentMode))
	}

	return gDto.And(filters...)
}

// receiptFilter compares the receipt number against the empty string, or null checks it.
func receiptFilter(operator string) gDto.Filter {
	filter := gDto.Filter{
		Field:    model.FieldReceiptNumber,
		Operator: operator,
		Table:    model.TableName,
	}

	if operator == gDto.FilterOperatorEq || operator == gDto.FilterOperatorNotEq {
		filter.ArgName = argReceiptBlank
		filter.Value = ""
	}

	return filter
}

// ListParams fixes the ordering to newest first; only paging comes from the caller.
func ListParams(params gDto.QueryParams) gDto.QueryParams {
	params.SortBy = model.TableName + "." + model.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc
	params.Defaults()

	return params
}
