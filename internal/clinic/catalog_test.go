package clinic

import "testing"

func TestDefault_Roster(t *testing.T) {
	cat := Default()
	if len(cat.Doctors) != 4 {
		t.Fatalf("expected 4 doctors, got %d", len(cat.Doctors))
	}
	if len(cat.Packages) != 6 {
		t.Fatalf("expected 6 packages, got %d", len(cat.Packages))
	}
	if len(cat.Testimonials) != 6 {
		t.Fatalf("expected 6 testimonials, got %d", len(cat.Testimonials))
	}
}

func TestDoctorByID(t *testing.T) {
	cat := Default()

	d := cat.DoctorByID("rajesh-kumar")
	if d == nil {
		t.Fatal("expected to resolve rajesh-kumar")
	}
	if d.Name != "Dr. Rajesh Kumar" {
		t.Errorf("unexpected name: %s", d.Name)
	}
	if d.Specialty != "Interventional Cardiologist" {
		t.Errorf("unexpected specialty: %s", d.Specialty)
	}

	if cat.DoctorByID("nobody") != nil {
		t.Error("expected nil for unknown doctor id")
	}
}

func TestDoctor_HasSlot(t *testing.T) {
	cat := Default()
	d := cat.DoctorByID("rajesh-kumar")

	if !d.HasSlot("17:30") {
		t.Error("expected 17:30 to be available for rajesh-kumar")
	}
	if !d.HasSlot("10:00") {
		t.Error("expected Saturday 10:00 to be available for rajesh-kumar")
	}
	if d.HasSlot("03:00") {
		t.Error("did not expect 03:00 to be available")
	}
}

func TestPackageByID(t *testing.T) {
	cat := Default()

	pkg := cat.PackageByID("thyroid")
	if pkg == nil {
		t.Fatal("expected to resolve thyroid package")
	}
	if pkg.Price != 600 {
		t.Errorf("expected price 600, got %d", pkg.Price)
	}

	if cat.PackageByID("mri") != nil {
		t.Error("expected nil for unknown package id")
	}
}

func TestPackageTotal(t *testing.T) {
	cat := Default()

	tests := []struct {
		name string
		ids  []string
		want int
	}{
		{"empty", nil, 0},
		{"single", []string{"lipid"}, 500},
		{"multiple", []string{"basic", "diabetes"}, 2000},
		{"unknown ids ignored", []string{"basic", "mri"}, 1200},
		{"all six", []string{"basic", "diabetes", "thyroid", "lipid", "liver", "kidney"}, 4850},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cat.PackageTotal(tt.ids); got != tt.want {
				t.Errorf("PackageTotal(%v) = %d, want %d", tt.ids, got, tt.want)
			}
		})
	}
}
