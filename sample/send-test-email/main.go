package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/joeshaw/envdecode"

	"github.com/xavierca1/cargram-leads/internal/entity"
	"github.com/xavierca1/cargram-leads/internal/infra/mail"
)

type mailConfig struct {
	Host       string `env:"MAIL_HOST,required"`
	Port       int    `env:"MAIL_PORT,default=587"`
	User       string `env:"MAIL_USER"`
	Pass       string `env:"MAIL_PASS"`
	From       string `env:"MAIL_FROM,default=Cargram <noreply@cargram.io>"`
	StaffEmail string `env:"STAFF_EMAIL,default=help@cargram.io"`
}

// Sends both dealer signup emails through the configured SMTP relay.
func main() {
	to := flag.String("to", "", "applicant address for the welcome email")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	var cfg mailConfig
	if err := envdecode.StrictDecode(&cfg); err != nil {
		log.Fatalf("mail config: %v", err)
	}
	if *to == "" {
		*to = cfg.StaffEmail
	}

	sender, err := mail.NewEmailSender(cfg.Host, cfg.Port, cfg.User, cfg.Pass, cfg.From)
	if err != nil {
		log.Fatal(err)
	}
	dispatcher := mail.NewDispatcher(sender, cfg.StaffEmail, nil)

	license := "DL-000123"
	signup := &entity.DealerSignup{
		ID:                 uuid.New().String(),
		DealershipName:     "Test Motors",
		ContactName:        "Jane Tester",
		Email:              *to,
		Phone:              "5551234567",
		Address:            "1 Main St",
		City:               "Austin",
		State:              "TX",
		ZipCode:            "73301",
		DealerLicense:      &license,
		MonthlyInventory:   "26-50",
		InterestedFeatures: []string{"E-Signature", "BHPH Tools"},
		SignupAt:           time.Now().UTC(),
		Status:             entity.SignupPending,
	}

	ctx := context.Background()
	fmt.Printf("staff alert to %s: %v\n", cfg.StaffEmail, dispatcher.NotifyStaffOfSignup(ctx, signup))
	fmt.Printf("welcome email to %s: %v\n", *to, dispatcher.SendApplicantWelcome(ctx, *to, signup.DealershipName))
}
