package diagnostics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abcclinic/clinic/internal/clinic"
)

const (
	minAge = 1
	maxAge = 120
)

// Draft is an in-progress lab booking. Packages and the home collection
// flag can change freely before Build; the estimated cost always
// reflects the current selection. A patient with a doctor's
// prescription, or one listing the tests they need as free text, can
// book without selecting any package.
type Draft struct {
	catalog         *clinic.Catalog
	selected        []string
	hasPrescription bool
	testsRequested  string
	homeCollection  bool
}

// NewDraft starts an empty lab booking draft.
func NewDraft(catalog *clinic.Catalog) *Draft {
	return &Draft{catalog: catalog}
}

// TogglePackage adds the package to the selection, or removes it when
// already selected. Unknown package ids are an error.
func (d *Draft) TogglePackage(id string) error {
	if d.catalog.PackageByID(id) == nil {
		return fmt.Errorf("unknown package %q", id)
	}
	for i, s := range d.selected {
		if s == id {
			d.selected = append(d.selected[:i], d.selected[i+1:]...)
			return nil
		}
	}
	d.selected = append(d.selected, id)
	return nil
}

// SetHasPrescription records whether the patient already holds a
// doctor's prescription for the tests.
func (d *Draft) SetHasPrescription(on bool) {
	d.hasPrescription = on
}

// SetTestsRequested records the free-text list of tests the patient
// wants when none of the packages fit.
func (d *Draft) SetTestsRequested(tests string) {
	d.testsRequested = tests
}

// SetHomeCollection switches home sample collection on or off.
func (d *Draft) SetHomeCollection(on bool) {
	d.homeCollection = on
}

// Selected returns the currently selected package ids.
func (d *Draft) Selected() []string {
	out := make([]string, len(d.selected))
	copy(out, d.selected)
	return out
}

// EstimatedCost returns the sum of the selected package prices plus the
// home collection charge when enabled. It is recomputed from the
// current selection on every call.
func (d *Draft) EstimatedCost() int {
	cost := d.catalog.PackageTotal(d.selected)
	if d.homeCollection {
		cost += HomeCollectionCharge
	}
	return cost
}

// PatientDetails carries the lab booking form fields.
type PatientDetails struct {
	Name                string
	Age                 int
	Gender              string
	Phone               string
	Email               string
	PreferredDate       string
	PreferredTime       string
	Address             string
	Landmark            string
	SpecialInstructions string
}

// Build validates the draft and patient details and produces the booking
// with its reference code and final estimated cost.
func (d *Draft) Build(p PatientDetails) (*Booking, error) {
	if len(d.selected) == 0 && !d.hasPrescription && strings.TrimSpace(d.testsRequested) == "" {
		return nil, fmt.Errorf("select a package, or note a prescription or the tests needed")
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if p.Age < minAge || p.Age > maxAge {
		return nil, fmt.Errorf("age must be between %d and %d", minAge, maxAge)
	}
	gender, ok := clinic.NormalizeGender(p.Gender)
	if !ok {
		return nil, fmt.Errorf("gender must be %s, %s, or %s", clinic.GenderMale, clinic.GenderFemale, clinic.GenderOther)
	}
	if strings.TrimSpace(p.Phone) == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if _, err := time.Parse("2006-01-02", p.PreferredDate); err != nil {
		return nil, fmt.Errorf("invalid preferred date %q: want YYYY-MM-DD", p.PreferredDate)
	}
	if strings.TrimSpace(p.PreferredTime) == "" {
		return nil, fmt.Errorf("preferred time is required")
	}
	if d.homeCollection && strings.TrimSpace(p.Address) == "" {
		return nil, fmt.Errorf("address is required for home collection")
	}

	b := &Booking{
		ID:               uuid.New(),
		BookingID:        bookingCode(time.Now()),
		SelectedPackages: d.Selected(),
		HasPrescription:  d.hasPrescription,
		PatientName:      strings.TrimSpace(p.Name),
		Age:              p.Age,
		Gender:           gender,
		Phone:            strings.TrimSpace(p.Phone),
		PreferredDate:    p.PreferredDate,
		PreferredTime:    strings.TrimSpace(p.PreferredTime),
		HomeCollection:   d.homeCollection,
		EstimatedCost:    d.EstimatedCost(),
		Status:           StatusConfirmed,
	}
	if tr := strings.TrimSpace(d.testsRequested); tr != "" {
		b.TestsRequested = &tr
	}
	if e := strings.TrimSpace(p.Email); e != "" {
		b.Email = &e
	}
	if a := strings.TrimSpace(p.Address); d.homeCollection && a != "" {
		b.Address = &a
	}
	if l := strings.TrimSpace(p.Landmark); d.homeCollection && l != "" {
		b.CollectionLandmark = &l
	}
	if si := strings.TrimSpace(p.SpecialInstructions); si != "" {
		b.SpecialInstructions = &si
	}
	return b, nil
}

// bookingCode builds the LAB reference shown to the patient, six digits
// derived from the booking instant.
func bookingCode(at time.Time) string {
	return fmt.Sprintf("LAB%06d", at.UnixMilli()%1_000_000)
}
