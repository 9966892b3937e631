package models

const (
	UnknownPropertyName  = "Unknown Property"
	UnknownPropertyImage = ""
)

// Property is a listing. Any fields may be stored; the service reads only the
// ones exposed by the accessors below.
type Property Document

func (p Property) ID() string {
	return HexID(p[IDField])
}

func (p Property) Name() string {
	return LookupString(p, "property_name")
}

func (p Property) Image() string {
	return LookupString(p, "property_image")
}

func (p Property) OwnerEmail() string {
	return LookupString(p, "posted_by", "email")
}
