package entity

import "slices"

// ServiceType represents the treatment a customer has booked.
type ServiceType string

const (
	// ServiceHaircut indicates a standard haircut booking.
	ServiceHaircut ServiceType = "Haircut"
	// ServiceWashBlowDry indicates a wash and blow dry booking.
	ServiceWashBlowDry ServiceType = "Wash & Blow Dry"
	// ServiceColour indicates a full colour booking.
	ServiceColour ServiceType = "Colour"
	// ServiceHighlights indicates a highlights booking.
	ServiceHighlights ServiceType = "Highlights"
	// ServiceToner indicates a toner booking.
	ServiceToner ServiceType = "Toner"
	// ServiceConsultation indicates a consultation booking.
	ServiceConsultation ServiceType = "Consultation"
)

// String returns the string representation of the ServiceType.
func (s ServiceType) String() string {
	return string(s)
}

// IsValid checks if the ServiceType is one of the offered treatments.
func (s ServiceType) IsValid() bool {
	return ContainsServiceType(ServiceTypes(), s)
}

// ServiceTypes lists every offered treatment, in menu order.
func ServiceTypes() []ServiceType {
	return []ServiceType{
		ServiceHaircut,
		ServiceWashBlowDry,
		ServiceColour,
		ServiceHighlights,
		ServiceToner,
		ServiceConsultation,
	}
}

// ContainsServiceType checks if the slice contains a specific service type.
func ContainsServiceType(types []ServiceType, t ServiceType) bool {
	return slices.Contains(types, t)
}
