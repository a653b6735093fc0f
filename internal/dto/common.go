package dto

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Display prefixes of sequential numbers.
const (
	ExpressionNumberPrefix = "EB-"
	OrderNumberPrefix      = "BC-"
	ReceptionNumberPrefix  = "BR-"
)

// FormatNumber renders an opaque sequence number for people, e.g. "BC-000042".
func FormatNumber(prefix, number string) string {
	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return prefix + number
	}
	return fmt.Sprintf("%s%06d", prefix, n)
}

// NotBlank is registered on the gin validator as "notblank".
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// DecimalType lets binding tags see a decimal.Decimal as its exact string form.
// Registered with RegisterCustomTypeFunc for decimal.Decimal{}.
func DecimalType(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// DecimalGTE0 is registered as "decimal_gte0".
func DecimalGTE0(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative()
}

// Percent is registered as "percent": a decimal in [0, 100].
func Percent(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}

// ListParams are the cursor pagination query parameters shared by list endpoints.
type ListParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}
