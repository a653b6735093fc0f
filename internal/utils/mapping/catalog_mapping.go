package mapping

import (
	"github.com/SscSPs/procurement_tracker/internal/core/domain"
	"github.com/SscSPs/procurement_tracker/internal/models"
)

func ToDomainMaterial(m models.Material) domain.Material {
	return domain.Material{
		MaterialID:  m.MaterialID,
		Code:        m.Code,
		Designation: m.Designation,
		Unit:        m.Unit,
		UnitValue:   m.UnitValue,
	}
}

func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{SupplierID: m.SupplierID, Name: m.Name, Address: m.Address}
}

func ToDomainDivision(m models.Division) domain.Division {
	return domain.Division{DivisionID: m.DivisionID, Name: m.Name}
}

func ToDomainService(m models.Service) domain.Service {
	return domain.Service{ServiceID: m.ServiceID, DivisionID: m.DivisionID, Name: m.Name}
}
