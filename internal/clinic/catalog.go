// Package clinic holds the static clinic catalog: identity, contact
// details, the doctor roster, testimonials and the diagnostic package
// list. The catalog is loaded once at process start and never mutated;
// consumers receive it by reference.
package clinic

// Contact holds the clinic's published phone numbers and addresses.
type Contact struct {
	Phone            string `json:"phone"`
	AppointmentPhone string `json:"appointment_phone"`
	EmergencyPhone   string `json:"emergency_phone"`
	Email            string `json:"email"`
	AppointmentEmail string `json:"appointment_email"`
	WhatsApp         string `json:"whatsapp"`
}

// Address is the clinic's physical location.
type Address struct {
	Street         string `json:"street"`
	City           string `json:"city"`
	Full           string `json:"full"`
	GoogleMapsLink string `json:"google_maps_link"`
}

// Hours lists opening times per part of the week.
type Hours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

// Stats are the marketing figures shown on the public site.
type Stats struct {
	Rating         string `json:"rating"`
	Reviews        string `json:"reviews"`
	YearsOfService string `json:"years_of_service"`
	Doctors        string `json:"doctors"`
}

// DayAvailability is one weekday's ordered list of bookable time slots.
type DayAvailability struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// Doctor is a static roster entry. Immutable at runtime.
type Doctor struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Designation  string            `json:"designation"`
	Specialty    string            `json:"specialty"`
	Experience   int               `json:"experience"`
	Education    string            `json:"education"`
	About        string            `json:"about"`
	Achievements []string          `json:"achievements"`
	Availability []DayAvailability `json:"availability"`
	Languages    []string          `json:"languages"`
	Photo        string            `json:"photo"`
}

// HasSlot reports whether the doctor offers the given time slot on any
// weekday. Bookings reference the roster's static slot lists, so this is
// the membership check the booking wizard uses.
func (d *Doctor) HasSlot(slot string) bool {
	for _, day := range d.Availability {
		for _, s := range day.Slots {
			if s == slot {
				return true
			}
		}
	}
	return false
}

// Testimonial is a static patient quote.
type Testimonial struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// DiagnosticPackage is a bookable lab test bundle with a fixed price.
type DiagnosticPackage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Catalog is the full static configuration of the clinic site.
type Catalog struct {
	Name         string              `json:"name"`
	Tagline      string              `json:"tagline"`
	Contact      Contact             `json:"contact"`
	Address      Address             `json:"address"`
	Hours        Hours               `json:"hours"`
	Stats        Stats               `json:"stats"`
	Doctors      []Doctor            `json:"doctors"`
	Testimonials []Testimonial       `json:"testimonials"`
	Packages     []DiagnosticPackage `json:"packages"`
}

// DoctorByID resolves a roster entry, or nil when the id is unknown.
func (c *Catalog) DoctorByID(id string) *Doctor {
	for i := range c.Doctors {
		if c.Doctors[i].ID == id {
			return &c.Doctors[i]
		}
	}
	return nil
}

// PackageByID resolves a diagnostic package, or nil when unknown.
func (c *Catalog) PackageByID(id string) *DiagnosticPackage {
	for i := range c.Packages {
		if c.Packages[i].ID == id {
			return &c.Packages[i]
		}
	}
	return nil
}

// PackageTotal sums the prices of the given package ids. Unknown ids
// contribute nothing, mirroring how the selection set is priced.
func (c *Catalog) PackageTotal(ids []string) int {
	total := 0
	for _, id := range ids {
		if pkg := c.PackageByID(id); pkg != nil {
			total += pkg.Price
		}
	}
	return total
}
