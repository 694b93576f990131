package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	"github.com/hackgods/appointment-store/internal/app"
	"github.com/hackgods/appointment-store/internal/appointment"
	"github.com/hackgods/appointment-store/internal/config"
	"github.com/hackgods/appointment-store/internal/logger"
)

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
	"Ophthalmology",
	"ENT",
}

var reasons = []string{
	"Annual checkup",
	"Follow-up visit",
	"Persistent headache",
	"Skin rash",
	"Chest pain",
	"Prescription renewal",
	"Lab results review",
}

var slotTimes = []string{"09:00 AM", "09:30 AM", "10:00 AM", "11:30 AM", "02:00 PM", "03:30 PM", "04:00 PM"}

type person struct {
	id    string
	name  string
	email string
	phone string
	extra string
}

func main() {
	doctors := flag.Int("doctors", 10, "number of doctors")
	patients := flag.Int("patients", 50, "number of patients")
	count := flag.Int("appointments", 200, "number of appointments to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := validateCounts(*doctors, *patients, *count); err != nil {
		zl.Fatal("invalid seed flags", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	deps, err := app.OpenStorage(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("storage setup failed", zap.Error(err))
	}
	defer deps.Close()

	if cfg.StoreBackend == config.BackendMemory {
		zl.Warn("memory backend is process local, seeded data is lost on exit")
	}

	// per-record create logs are noise here
	store := appointment.NewStore(deps.Backend, deps.Locker, zap.NewNop(),
		appointment.WithStorageKey(cfg.StorageKey))

	faker := gofakeit.New(uint64(time.Now().UnixNano()))

	docs := fakePeople(faker, *doctors, func(p *person) {
		p.name = "Dr. " + p.name
		p.extra = specialties[faker.Number(0, len(specialties)-1)]
	})
	pats := fakePeople(faker, *patients, nil)

	zl.Info("seeding appointments",
		zap.Int("doctors", len(docs)),
		zap.Int("patients", len(pats)),
		zap.Int("appointments", *count),
		zap.String("backend", deps.Backend.Name()),
	)

	for i := 0; i < *count; i++ {
		if _, err := store.Create(ctx, fakeAppointment(faker, docs, pats)); err != nil {
			zl.Fatal("create appointment", zap.Int("index", i), zap.Error(err))
		}
		if (i+1)%50 == 0 {
			zl.Info("appointments seeded", zap.Int("done", i+1), zap.Int("total", *count))
		}
	}

	zl.Info("seed complete")
}

func validateCounts(doctors, patients, appointments int) error {
	switch {
	case doctors <= 0:
		return fmt.Errorf("-doctors must be greater than 0, got %d", doctors)
	case patients <= 0:
		return fmt.Errorf("-patients must be greater than 0, got %d", patients)
	case appointments < 0:
		return fmt.Errorf("-appointments must not be negative, got %d", appointments)
	}
	return nil
}

func fakePeople(faker *gofakeit.Faker, n int, decorate func(*person)) []person {
	out := make([]person, 0, n)
	for i := 0; i < n; i++ {
		p := person{
			id:    faker.UUID(),
			name:  faker.Name(),
			email: faker.Email(),
			phone: faker.Phone(),
		}
		if decorate != nil {
			decorate(&p)
		}
		out = append(out, p)
	}
	return out
}

func fakeAppointment(faker *gofakeit.Faker, docs, pats []person) appointment.NewAppointment {
	doc := docs[faker.Number(0, len(docs)-1)]
	pat := pats[faker.Number(0, len(pats)-1)]

	day := faker.DateRange(time.Now().AddDate(0, 0, -30), time.Now().AddDate(0, 0, 60))
	status := appointment.StatusPending
	if day.Before(time.Now()) {
		status = appointment.StatusCompleted
	}

	in := appointment.NewAppointment{
		DoctorID:        doc.id,
		UserID:          pat.id,
		DoctorName:      doc.name,
		DoctorSpecialty: doc.extra,
		DoctorImage:     faker.URL(),
		DoctorEmail:     doc.email,
		DoctorPhone:     doc.phone,
		PatientName:     pat.name,
		PatientEmail:    pat.email,
		PatientPhone:    pat.phone,
		Date:            day.Format("2006-01-02"),
		Time:            slotTimes[faker.Number(0, len(slotTimes)-1)],
		Status:          status,
		Reason:          faker.RandomString(reasons),
	}

	if faker.Bool() {
		amount := faker.Price(20, 250)
		in.PaymentAmount = &amount
		in.PaymentMethod = faker.RandomString([]string{"card", "cash", "insurance"})
		in.PaymentStatus = string(appointment.StatusPaid)
	}

	return in
}
