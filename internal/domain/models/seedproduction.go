package models

// SeedProduction is one seed-production record as exchanged with the backend.
// ID is absent until the backend assigns it on creation and is immutable
// afterwards.
type SeedProduction struct {
	ID         *int    `json:"id,omitempty" bson:"id,omitempty"`
	SeedType   string  `json:"seedType" bson:"seedType" validate:"required"`
	Quantity   int     `json:"quantity" bson:"quantity" validate:"min=0"`
	Price      float64 `json:"price" bson:"price" validate:"min=0"`
	ExpiryDate string  `json:"expiryDate" bson:"expiryDate" validate:"required,datetime=2006-01-02"`
}

// Key returns the assigned identifier and whether the record is persisted.
func (s SeedProduction) Key() (int, bool) {
	if s.ID == nil {
		return 0, false
	}
	return *s.ID, true
}

// NewSeedProductionDraft returns the default draft used when the user opens
// the create form.
func NewSeedProductionDraft() SeedProduction {
	return SeedProduction{}
}
