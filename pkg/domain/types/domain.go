package types

// DomainType identifies the facility or person type an assessment covers.
// It selects which scoring adapter the engine uses.
type DomainType string

const (
	DomainOfficeBuilding      DomainType = "office_building"
	DomainRetailStore         DomainType = "retail_store"
	DomainWarehouse           DomainType = "warehouse"
	DomainExecutiveProtection DomainType = "executive_protection"
)

// AllDomainTypes returns all valid domain types
func AllDomainTypes() []DomainType {
	return []DomainType{
		DomainOfficeBuilding,
		DomainRetailStore,
		DomainWarehouse,
		DomainExecutiveProtection,
	}
}

// IsValid checks if the domain type is one of the known variants
func (d DomainType) IsValid() bool {
	switch d {
	case DomainOfficeBuilding,
		DomainRetailStore,
		DomainWarehouse,
		DomainExecutiveProtection:
		return true
	default:
		return false
	}
}

// String returns the string representation of the domain type
func (d DomainType) String() string {
	return string(d)
}
