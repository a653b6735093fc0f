package models

import "github.com/shopspring/decimal"

type Material struct {
	MaterialID  string          `db:"material_id"`
	Code        string          `db:"code"`
	Designation string          `db:"designation"`
	Unit        string          `db:"unit"`
	UnitValue   decimal.Decimal `db:"unit_value"`
}

type Supplier struct {
	SupplierID string `db:"supplier_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
}

type Division struct {
	DivisionID string `db:"division_id"`
	Name       string `db:"name"`
}

type Service struct {
	ServiceID  string `db:"service_id"`
	DivisionID string `db:"division_id"`
	Name       string `db:"name"`
}
