// Seeds a development database with an admin account, a verified host
// with two active listings, and a guest. Safe to re-run: it skips any
// record that already exists.
package main

import (
	"log"
	"time"

	"github.com/chrisdemonxxx/godrive/config"
	"github.com/chrisdemonxxx/godrive/database"
	carRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/car"
	userRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const adminPassword = "godrive-dev-admin"

func main() {
	config.LoadConfig()
	database.InitDB()

	userRepo := userRepoPkg.NewMongoUserRepo()
	carRepo := carRepoPkg.NewMongoCarRepo()

	adminID := seedAdmin(userRepo)
	hostID := seedUser(userRepo, "+919800000001", "Priya Sharma", models.RoleBoth, models.KycVerified)
	seedUser(userRepo, "+919800000002", "Arjun Mehta", models.RoleGuest, models.KycVerified)

	seedCar(carRepo, adminID, hostID, models.CarInput{
		Make:               "Maruti Suzuki",
		Model:              "Swift",
		Year:               2022,
		Transmission:       models.TransmissionManual,
		FuelType:           models.FuelPetrol,
		Seats:              5,
		Color:              "Red",
		RegistrationNumber: "KA01AB1234",
		LocationAddress:    "100 Feet Road, Indiranagar",
		LocationArea:       "Indiranagar",
		LocationCity:       "Bengaluru",
		LocationLat:        12.9719,
		LocationLng:        77.6412,
		DailyRate:          150000,
		SecurityDeposit:    300000,
		UnlimitedKm:        false,
		KmLimitPerDay:      250,
		ExtraKmCharge:      700,
		Features:           []string{"bluetooth", "reverse_camera"},
		MinBookingHours:    4,
		MaxBookingDays:     30,
		AdvanceNoticeHours: 2,
	})
	seedCar(carRepo, adminID, hostID, models.CarInput{
		Make:               "Hyundai",
		Model:              "i20",
		Year:               2023,
		Transmission:       models.TransmissionAutomatic,
		FuelType:           models.FuelPetrol,
		Seats:              5,
		Color:              "White",
		RegistrationNumber: "KA02CD5678",
		LocationAddress:    "80 Feet Road, Koramangala",
		LocationArea:       "Koramangala",
		LocationCity:       "Bengaluru",
		LocationLat:        12.9352,
		LocationLng:        77.6245,
		DailyRate:          180000,
		SecurityDeposit:    350000,
		UnlimitedKm:        true,
		Features:           []string{"sunroof", "cruise_control", "android_auto"},
		InstantBooking:     true,
		MinBookingHours:    8,
		MaxBookingDays:     30,
		AdvanceNoticeHours: 4,
	})

	log.Println("seed: done")
}

func seedAdmin(repo userRepoPkg.UserRepository) string {
	const phone = "+919800000000"
	if existing, _ := repo.GetByPhone(phone); existing != nil {
		log.Printf("seed: admin %s already exists", phone)
		return existing.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed: failed to hash admin password: %v", err)
	}

	admin := &models.User{
		ID:              uuid.NewString(),
		Phone:           phone,
		Email:           "admin@godrive.local",
		FullName:        "GoDrive Admin",
		Role:            models.RoleAdmin,
		KycStatus:       models.KycVerified,
		IsPhoneVerified: true,
		IsActive:        true,
		PasswordHash:    string(hash),
	}
	if err := repo.Create(admin); err != nil {
		log.Fatalf("seed: failed to create admin: %v", err)
	}
	log.Printf("seed: created admin %s (password %q)", phone, adminPassword)
	return admin.ID
}

func seedUser(repo userRepoPkg.UserRepository, phone, name string, role models.UserRole, kyc models.KycStatus) string {
	if existing, _ := repo.GetByPhone(phone); existing != nil {
		log.Printf("seed: user %s already exists", phone)
		return existing.ID
	}

	u := &models.User{
		ID:              uuid.NewString(),
		Phone:           phone,
		FullName:        name,
		Role:            role,
		KycStatus:       kyc,
		IsPhoneVerified: true,
		IsActive:        true,
	}
	if err := repo.Create(u); err != nil {
		log.Fatalf("seed: failed to create user %s: %v", phone, err)
	}
	log.Printf("seed: created user %s (%s)", phone, name)
	return u.ID
}

func seedCar(repo carRepoPkg.CarRepository, adminID, hostID string, in models.CarInput) {
	if existing, _ := repo.GetByRegistration(in.RegistrationNumber); existing != nil {
		log.Printf("seed: car %s already exists", in.RegistrationNumber)
		return
	}

	now := time.Now().UTC()
	car := &models.Car{
		ID:                 uuid.NewString(),
		HostID:             hostID,
		Make:               in.Make,
		Model:              in.Model,
		Year:               in.Year,
		Variant:            in.Variant,
		Transmission:       in.Transmission,
		FuelType:           in.FuelType,
		Seats:              in.Seats,
		Color:              in.Color,
		RegistrationNumber: in.RegistrationNumber,
		Status:             models.CarActive,
		ApprovedAt:         &now,
		ApprovedBy:         adminID,
		LocationAddress:    in.LocationAddress,
		LocationArea:       in.LocationArea,
		LocationCity:       in.LocationCity,
		LocationLat:        in.LocationLat,
		LocationLng:        in.LocationLng,
		HourlyRate:         in.HourlyRate,
		DailyRate:          in.DailyRate,
		WeeklyRate:         in.WeeklyRate,
		MonthlyRate:        in.MonthlyRate,
		SecurityDeposit:    in.SecurityDeposit,
		UnlimitedKm:        in.UnlimitedKm,
		KmLimitPerDay:      in.KmLimitPerDay,
		ExtraKmCharge:      in.ExtraKmCharge,
		Features:           in.Features,
		InstantBooking:     in.InstantBooking,
		MinBookingHours:    in.MinBookingHours,
		MaxBookingDays:     in.MaxBookingDays,
		AdvanceNoticeHours: in.AdvanceNoticeHours,
	}
	if err := repo.Create(car); err != nil {
		log.Fatalf("seed: failed to create car %s: %v", in.RegistrationNumber, err)
	}
	log.Printf("seed: created car %s %s (%s)", in.Make, in.Model, in.RegistrationNumber)
}
