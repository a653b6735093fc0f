package domain

import "github.com/shopspring/decimal"

// Material is a catalog item. Only code, designation and unit are copied onto order lines.
type Material struct {
	MaterialID  string          `json:"materialID"`
	Code        string          `json:"code"`
	Designation string          `json:"designation"`
	Unit        string          `json:"unit"`
	UnitValue   decimal.Decimal `json:"unitValue"`
}

type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Address    string `json:"address"`
}

type Division struct {
	DivisionID string `json:"divisionID"`
	Name       string `json:"name"`
}

type Service struct {
	ServiceID  string `json:"serviceID"`
	DivisionID string `json:"divisionID"`
	Name       string `json:"name"`
}
