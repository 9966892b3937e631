package models

type Testimonial Document

func (t Testimonial) Email() string {
	return LookupString(t, "email")
}
