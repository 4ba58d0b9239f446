package models

// Farmer is one agricultural-producer record. The tax identifier (CPF/CNPJ)
// is the natural key; farmers carry no numeric surrogate id.
type Farmer struct {
	TaxID string `json:"taxId" bson:"taxId" validate:"required"`
	Name  string `json:"name" bson:"name" validate:"required"`
	Email string `json:"email" bson:"email" validate:"omitempty,email"`
	Phone string `json:"phone" bson:"phone"`
}

// Key returns the tax identifier and whether it has been set.
func (f Farmer) Key() (string, bool) {
	return f.TaxID, f.TaxID != ""
}

// NewFarmerDraft returns the default draft used when the user opens the
// create form.
func NewFarmerDraft() Farmer {
	return Farmer{}
}
