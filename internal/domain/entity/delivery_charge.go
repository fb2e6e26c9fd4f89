package entity

// Default zone fees used when the delivery_charges table is absent.
const (
	DefaultChargeInsideDhaka  = 60
	DefaultChargeOutsideDhaka = 120
)

// DeliveryCharge is the surcharge applied to orders delivered to a zone.
type DeliveryCharge struct {
	LocationType LocationType `json:"location_type"`
	Charge       float64      `json:"charge"`
}

// DefaultDeliveryCharges returns the hardcoded fallback fee table.
func DefaultDeliveryCharges() map[LocationType]float64 {
	return map[LocationType]float64{
		LocationInsideDhaka:  DefaultChargeInsideDhaka,
		LocationOutsideDhaka: DefaultChargeOutsideDhaka,
	}
}
