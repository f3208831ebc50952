package prescriptions

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abcclinic/clinic/internal/clinic"
)

const (
	minAge = 1
	maxAge = 120
)

// Submission is an in-progress prescription upload. Attaching a new
// file replaces any earlier attachment: the patient picks exactly one
// way to send the prescription, and the last choice wins.
type Submission struct {
	name   string
	age    int
	gender string
	phone  string
	method string
	file   string
	notes  string
}

// NewSubmission starts an upload for the given patient.
func NewSubmission(name string, age int, gender, phone string) *Submission {
	return &Submission{name: name, age: age, gender: gender, phone: phone, method: MethodNone}
}

// AttachPDF records a PDF upload, replacing any earlier attachment.
func (s *Submission) AttachPDF(fileName string) {
	s.method, s.file = MethodPDF, fileName
}

// AttachPhoto records a photo capture, replacing any earlier attachment.
func (s *Submission) AttachPhoto(fileName string) {
	s.method, s.file = MethodPhoto, fileName
}

// AttachVoiceNote records a voice note, replacing any earlier attachment.
func (s *Submission) AttachVoiceNote(fileName string) {
	s.method, s.file = MethodVoice, fileName
}

// SetNotes records free-text notes for the clinic staff.
func (s *Submission) SetNotes(notes string) {
	s.notes = notes
}

// Method returns the currently selected upload method.
func (s *Submission) Method() string {
	return s.method
}

// Build validates the submission and produces the prescription record.
// Every prescription starts in the new state.
func (s *Submission) Build() (*Prescription, error) {
	if strings.TrimSpace(s.name) == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if s.age < minAge || s.age > maxAge {
		return nil, fmt.Errorf("age must be between %d and %d", minAge, maxAge)
	}
	gender, ok := clinic.NormalizeGender(s.gender)
	if !ok {
		return nil, fmt.Errorf("gender must be %s, %s, or %s", clinic.GenderMale, clinic.GenderFemale, clinic.GenderOther)
	}
	if strings.TrimSpace(s.phone) == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if s.method != MethodNone && strings.TrimSpace(s.file) == "" {
		return nil, fmt.Errorf("file name is required for %s upload", s.method)
	}
	if s.method == MethodNone && strings.TrimSpace(s.notes) == "" {
		return nil, fmt.Errorf("attach a file or add notes")
	}

	p := &Prescription{
		ID:          uuid.New(),
		PatientName: strings.TrimSpace(s.name),
		Gender:      gender,
		Age:         s.age,
		Phone:       strings.TrimSpace(s.phone),
		Method:      s.method,
		Status:      StatusNew,
	}
	if f := strings.TrimSpace(s.file); f != "" {
		p.FileName = &f
	}
	if n := strings.TrimSpace(s.notes); n != "" {
		p.Notes = &n
	}
	return p, nil
}
