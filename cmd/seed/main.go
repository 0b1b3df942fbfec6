package main

import (
	"context"
	"log"
	"os"
	"strings"

	"equiptrack/internal/database"
	"equiptrack/internal/domain"
	"equiptrack/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "equiptrack.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Equipment{},
		&domain.Reservation{},
		&domain.PaymentRecord{},
		&domain.LoginLog{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	equipment := repository.NewEquipmentRepository(db)

	// Admin account goes through the normal user path; there is no
	// hard-coded credential anywhere in the login flow.
	adminEmail := strings.ToLower(getEnv("ADMIN_EMAIL", "admin@equiptrack.local"))
	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")

	exists, err := users.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal(err)
	}
	if !exists {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		admin := &domain.User{
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
		}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatal(err)
		}
		log.Println("Admin created:", adminEmail)
	} else {
		log.Println("Admin already exists:", adminEmail)
	}

	count, err := equipment.Count(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		log.Println("Equipment table already seeded, skipping")
		return
	}

	log.Println("Seeding demo equipment...")
	items := []domain.Equipment{
		{Name: "Dell Laptop", SerialNumber: "SN001", Location: "Room 101", Responsible: "I. Ivanov", Condition: domain.ConditionOperational},
		{Name: "HP Printer", SerialNumber: "SN002", Location: "Room 102", Responsible: "B. Petrov", Condition: domain.ConditionNeedsRepair},
		{Name: "Epson Projector", SerialNumber: "SN003", Location: "Room 103", Responsible: "K. Sydorova", Condition: domain.ConditionOperational},
		{Name: "LG Monitor", SerialNumber: "SN004", Location: "Room 104", Responsible: "O. Kovalenko", Condition: domain.ConditionOperational},
		{Name: "Canon Scanner", SerialNumber: "SN005", Location: "Room 105", Responsible: "S. Hryhorenko", Condition: domain.ConditionNeedsRepair},
		{Name: "Lenovo Desktop", SerialNumber: "SN006", Location: "Room 106", Responsible: "R. Lysenko", Condition: domain.ConditionOperational},
	}
	for i := range items {
		if err := equipment.Create(ctx, &items[i]); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("Seeded %d equipment items", len(items))
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
