package main

import (
	"log"
	"os"

	"getunlocked-be/internal/model"
	"getunlocked-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running GORM migration...")

	models := []interface{}{
		// Accounts
		&model.User{},
		&model.PasswordResetToken{},
		&model.EmailVerificationToken{},
		&model.UserRefreshToken{},
		&model.Profile{},

		// Connection DNA
		&model.DNAProfile{},
		&model.DNAInteraction{},
		&model.DNACompatibility{},
		&model.DNAInsight{},

		// Billing
		&model.Subscriber{},
		&model.PayPalPayment{},

		// Matching & messaging
		&model.Match{},
		&model.Message{},

		// Engagement
		&model.UserEvent{},
		&model.EmailJourney{},
		&model.CompatibilityDigest{},

		// Memory vault
		&model.VaultMatch{},
		&model.VaultPrompt{},
		&model.VaultMoment{},

		// Notifications
		&model.NotificationType{},
		&model.Notification{},
		&model.UserNotificationPreference{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Reporting view over completed payments, kept out of application code.
	viewSQL := `CREATE OR REPLACE VIEW user_payment_history AS
	 SELECT p.user_id, u.full_name, p.plan_name, p.amount, p.currency, p.status, p.pay_pal_order_id, p.created_at AS payment_date
	 FROM paypal_payments p
	 JOIN users u ON p.user_id = u.id
	 ORDER BY p.created_at DESC;`
	if err := db.Exec(viewSQL).Error; err != nil {
		log.Printf("Warn: Failed to create payment history view: %v", err)
	}

	log.Printf("Database migration completed: %d tables.", len(models))
}
