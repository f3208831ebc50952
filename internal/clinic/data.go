package clinic

// Default returns the built-in catalog for ABC Clinic. Data lives in code
// rather than a config file: it changes at the same cadence as the site
// itself and ships with the binary.
func Default() *Catalog {
	return &Catalog{
		Name:    "ABC Clinic",
		Tagline: "Expert Care, Compassionate Service",
		Contact: Contact{
			Phone:            "+91-9876543210",
			AppointmentPhone: "+91-9876543211",
			EmergencyPhone:   "+91-9876543299",
			Email:            "care@abcdoctorclinic.com",
			AppointmentEmail: "appointments@abcdoctorclinic.com",
			WhatsApp:         "+91-9876543210",
		},
		Address: Address{
			Street:         "123 Health Street, Medical District",
			City:           "Mumbai, Maharashtra 400001",
			Full:           "ABC Clinic, 123 Health Street, Medical District, Mumbai, Maharashtra 400001",
			GoogleMapsLink: "https://maps.google.com/?q=ABC+Clinic+Mumbai",
		},
		Hours: Hours{
			Weekdays: "9:00 AM - 8:00 PM",
			Saturday: "9:00 AM - 6:00 PM",
			Sunday:   "10:00 AM - 2:00 PM (Emergency only)",
		},
		Stats: Stats{
			Rating:         "4.8",
			Reviews:        "2,500+",
			YearsOfService: "15+",
			Doctors:        "4",
		},
		Doctors:      defaultDoctors,
		Testimonials: defaultTestimonials,
		Packages:     defaultPackages,
	}
}

var weekdayEvening = []string{"17:00", "17:30", "18:00", "18:30", "19:00", "19:30"}

var defaultDoctors = []Doctor{
	{
		ID:          "rajesh-kumar",
		Name:        "Dr. Rajesh Kumar",
		Designation: "MD, DM (Cardiology)",
		Specialty:   "Interventional Cardiologist",
		Experience:  18,
		Education:   "MBBS, MD (Medicine), DM (Cardiology) - AIIMS Delhi",
		About:       "Dr. Rajesh Kumar is a renowned interventional cardiologist with expertise in complex coronary procedures. He has performed over 5,000 successful angioplasties and is known for his patient-centric approach.",
		Achievements: []string{
			"Gold Medalist, DM Cardiology, AIIMS",
			"Published 25+ research papers in international journals",
			"Chief Cardiologist Award 2022 - Maharashtra Medical Association",
			"Visiting Faculty at Mumbai Medical College",
		},
		Availability: []DayAvailability{
			{Day: "Monday", Slots: weekdayEvening},
			{Day: "Tuesday", Slots: weekdayEvening},
			{Day: "Wednesday", Slots: weekdayEvening},
			{Day: "Thursday", Slots: weekdayEvening},
			{Day: "Friday", Slots: weekdayEvening},
			{Day: "Saturday", Slots: []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30"}},
		},
		Languages: []string{"English", "Hindi", "Marathi"},
		Photo:     "https://images.pexels.com/photos/5215024/pexels-photo-5215024.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		ID:          "priya-sharma",
		Name:        "Dr. Priya Sharma",
		Designation: "MS Orthopedics, DNB",
		Specialty:   "Joint Replacement & Sports Medicine",
		Experience:  12,
		Education:   "MBBS, MS (Orthopedics), DNB - Grant Medical College, Mumbai",
		About:       "Dr. Priya Sharma specializes in minimally invasive joint replacement surgeries and sports injury management. She has successfully treated hundreds of athletes and elderly patients with joint problems.",
		Achievements: []string{
			"Fellowship in Joint Replacement - Germany",
			"Best Young Surgeon Award 2020 - Indian Orthopedic Association",
			"Expert in Arthroscopic Surgeries",
			"Published 15+ papers on joint care",
		},
		Availability: []DayAvailability{
			{Day: "Monday", Slots: []string{"18:00", "18:30", "19:00", "19:30"}},
			{Day: "Wednesday", Slots: []string{"18:00", "18:30", "19:00", "19:30"}},
			{Day: "Friday", Slots: []string{"18:00", "18:30", "19:00", "19:30"}},
			{Day: "Saturday", Slots: []string{"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30"}},
		},
		Languages: []string{"English", "Hindi", "Gujarati"},
		Photo:     "https://images.pexels.com/photos/5327585/pexels-photo-5327585.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		ID:          "amit-patel",
		Name:        "Dr. Amit Patel",
		Designation: "MD Dermatology, DDVL",
		Specialty:   "Medical & Cosmetic Dermatology",
		Experience:  10,
		Education:   "MBBS, MD (Dermatology) - KEM Hospital, Mumbai",
		About:       "Dr. Amit Patel is an expert in treating skin conditions ranging from acne to complex dermatological diseases. He also specializes in cosmetic procedures including laser treatments and anti-aging therapies.",
		Achievements: []string{
			"Fellowship in Cosmetic Dermatology - USA",
			"Pioneer in Laser Hair Removal techniques in Mumbai",
			"10,000+ satisfied patients",
			"Speaker at National Dermatology Conferences",
		},
		Availability: []DayAvailability{
			{Day: "Tuesday", Slots: []string{"16:00", "16:30", "17:00", "17:30", "18:00", "18:30"}},
			{Day: "Thursday", Slots: []string{"16:00", "16:30", "17:00", "17:30", "18:00", "18:30"}},
			{Day: "Saturday", Slots: []string{"16:00", "16:30", "17:00", "17:30", "18:00", "18:30"}},
			{Day: "Sunday", Slots: []string{"10:00", "10:30", "11:00", "11:30", "12:00", "12:30"}},
		},
		Languages: []string{"English", "Hindi", "Gujarati"},
		Photo:     "https://images.pexels.com/photos/5452293/pexels-photo-5452293.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
	{
		ID:          "meera-iyer",
		Name:        "Dr. Meera Iyer",
		Designation: "MD (General Medicine)",
		Specialty:   "Family Medicine & Preventive Healthcare",
		Experience:  15,
		Education:   "MBBS, MD (Internal Medicine) - CMC Vellore",
		About:       "Dr. Meera Iyer is a compassionate general physician who believes in holistic healthcare. She specializes in managing chronic conditions like diabetes, hypertension, and thyroid disorders while focusing on preventive care.",
		Achievements: []string{
			"Best Family Physician Award 2021 - Mumbai Health Forum",
			"Expert in Diabetes Management",
			"Conducted 100+ health camps in underserved areas",
			"Published research on preventive healthcare",
		},
		Availability: []DayAvailability{
			{Day: "Monday", Slots: morningAndEvening},
			{Day: "Tuesday", Slots: morningAndEvening},
			{Day: "Wednesday", Slots: morningAndEvening},
			{Day: "Thursday", Slots: morningAndEvening},
			{Day: "Friday", Slots: morningAndEvening},
			{Day: "Saturday", Slots: morningAndEvening},
		},
		Languages: []string{"English", "Hindi", "Tamil", "Kannada"},
		Photo:     "https://images.pexels.com/photos/5452201/pexels-photo-5452201.jpeg?auto=compress&cs=tinysrgb&w=800",
	},
}

var morningAndEvening = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30",
}

var defaultTestimonials = []Testimonial{
	{ID: 1, Name: "Ramesh Gupta", Role: "Cardiac Patient, Age 58", Rating: 5,
		Text: "Dr. Rajesh Kumar saved my life during a heart emergency. His quick decision-making and expertise are unmatched. The entire staff at ABC Clinic is professional and caring."},
	{ID: 2, Name: "Anjali Deshmukh", Role: "Caregiver, Age 35", Rating: 5,
		Text: "Dr. Priya Sharma performed my mother's knee replacement surgery. She's walking without pain now! Dr. Sharma's skill and compassionate care made all the difference."},
	{ID: 3, Name: "Suresh Iyer", Role: "Diabetic Patient, Age 62", Rating: 5,
		Text: "I've been consulting Dr. Meera Iyer for my diabetes management for 5 years. She's not just a doctor but a health partner who genuinely cares about her patients."},
	{ID: 4, Name: "Priya Mehta", Role: "Parent, Age 42", Rating: 5,
		Text: "My teenage son had severe acne. Dr. Amit Patel's treatment worked wonders! His confidence is back, and the results are amazing. Highly recommend!"},
	{ID: 5, Name: "Sneha Rao", Role: "New Mother, Age 29", Rating: 5,
		Text: "The teleconsultation service is fantastic! I consulted Dr. Iyer from home during my pregnancy. The AI prescription assistant also helped me understand my medicines clearly."},
	{ID: 6, Name: "Vikram Singh", Role: "Corporate Professional, Age 34", Rating: 5,
		Text: "Best clinic in Mumbai! Clean, modern, and doctors actually listen to you. The diagnostic lab is quick and accurate. Highly professional experience."},
}

var defaultPackages = []DiagnosticPackage{
	{ID: "basic", Name: "Basic Health Checkup", Price: 1200},
	{ID: "diabetes", Name: "Diabetes Profile", Price: 800},
	{ID: "thyroid", Name: "Thyroid Profile", Price: 600},
	{ID: "lipid", Name: "Lipid Profile", Price: 500},
	{ID: "liver", Name: "Liver Function Test", Price: 900},
	{ID: "kidney", Name: "Kidney Function Test", Price: 850},
}
