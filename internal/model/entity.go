package model

// EntityType is the legal constitution of the reporting entity. It selects the
// statement format and the capital-note reconciler.
type EntityType string

const (
	EntityCompany        EntityType = "company"
	EntityLLP            EntityType = "llp"
	EntityPartnership    EntityType = "partnership"
	EntityProprietorship EntityType = "proprietorship"
	EntityHUF            EntityType = "huf"
	EntityTrust          EntityType = "trust"
	EntitySociety        EntityType = "society"
	EntityOther          EntityType = "other"
)

// EntityCategory groups entity types by the capital/equity treatment they
// share.
type EntityCategory string

const (
	CategoryCorporate   EntityCategory = "corporate"
	CategoryPartnership EntityCategory = "partnership"
	CategoryProprietor  EntityCategory = "proprietor"
	// CategoryUnsupported covers constitutions with no statement template
	// (trust, society, other).
	CategoryUnsupported EntityCategory = "unsupported"
)

// Category returns the capital-treatment category for an entity type.
func (e EntityType) Category() EntityCategory {
	switch e {
	case EntityCompany:
		return CategoryCorporate
	case EntityLLP, EntityPartnership:
		return CategoryPartnership
	case EntityProprietorship, EntityHUF:
		return CategoryProprietor
	default:
		return CategoryUnsupported
	}
}

// DisplayName returns the label used on statement headers.
func (e EntityType) DisplayName() string {
	switch e {
	case EntityCompany:
		return "Company"
	case EntityLLP:
		return "Limited Liability Partnership"
	case EntityPartnership:
		return "Partnership Firm"
	case EntityProprietorship:
		return "Proprietorship"
	case EntityHUF:
		return "Hindu Undivided Family"
	case EntityTrust:
		return "Trust"
	case EntitySociety:
		return "Society"
	default:
		return string(e)
	}
}
