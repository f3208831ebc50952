package prescriptions

import (
	"testing"

	"github.com/abcclinic/clinic/internal/clinic"
)

func TestSubmission_LastAttachmentWins(t *testing.T) {
	s := NewSubmission("Ramesh Gupta", 55, "Male", "9876543210")
	s.AttachPDF("rx.pdf")
	s.AttachPhoto("rx.jpg")
	s.AttachVoiceNote("rx.m4a")

	if s.Method() != MethodVoice {
		t.Errorf("expected voice after last attach, got %q", s.Method())
	}

	p, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Method != MethodVoice {
		t.Errorf("expected voice, got %q", p.Method)
	}
	if p.FileName == nil || *p.FileName != "rx.m4a" {
		t.Error("expected last attached file name")
	}
}

func TestSubmission_StartsNew(t *testing.T) {
	s := NewSubmission("Ramesh Gupta", 55, "Male", "9876543210")
	s.AttachPDF("rx.pdf")

	p, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Status != StatusNew {
		t.Errorf("expected status new, got %q", p.Status)
	}
	if p.Gender != clinic.GenderMale {
		t.Errorf("expected gender %q, got %q", clinic.GenderMale, p.Gender)
	}
	if p.Age != 55 {
		t.Errorf("expected age 55, got %d", p.Age)
	}
}

func TestSubmission_GenderNormalized(t *testing.T) {
	s := NewSubmission("Anjali Mehta", 42, "female", "9876543210")
	s.AttachPDF("rx.pdf")

	p, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Gender != clinic.GenderFemale {
		t.Errorf("expected %q stored, got %q", clinic.GenderFemale, p.Gender)
	}
}

func TestSubmission_NotesOnly(t *testing.T) {
	s := NewSubmission("Ramesh Gupta", 55, "Male", "9876543210")
	s.SetNotes("BP medication refill, same dosage as last month")

	p, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.Method != MethodNone {
		t.Errorf("expected method none, got %q", p.Method)
	}
	if p.FileName != nil {
		t.Error("expected no file name")
	}
}

func TestSubmission_Validation(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *Submission
	}{
		{"empty name", func() *Submission {
			s := NewSubmission("", 55, "Male", "9876543210")
			s.AttachPDF("rx.pdf")
			return s
		}},
		{"age zero", func() *Submission {
			s := NewSubmission("Ramesh", 0, "Male", "9876543210")
			s.AttachPDF("rx.pdf")
			return s
		}},
		{"age too high", func() *Submission {
			s := NewSubmission("Ramesh", 121, "Male", "9876543210")
			s.AttachPDF("rx.pdf")
			return s
		}},
		{"bad gender", func() *Submission {
			s := NewSubmission("Ramesh", 55, "n/a", "9876543210")
			s.AttachPDF("rx.pdf")
			return s
		}},
		{"empty phone", func() *Submission {
			s := NewSubmission("Ramesh", 55, "Male", " ")
			s.AttachPDF("rx.pdf")
			return s
		}},
		{"attachment without file name", func() *Submission {
			s := NewSubmission("Ramesh", 55, "Male", "9876543210")
			s.AttachPhoto("")
			return s
		}},
		{"nothing attached and no notes", func() *Submission {
			return NewSubmission("Ramesh", 55, "Male", "9876543210")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.setup().Build(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
