package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Tuka1911/dymokminiapp/models"
)

// Config carries everything read from the environment. godotenv loads the
// .env file in main before Load is called.
type Config struct {
	Port              string
	Payment           models.PaymentInstructions
	ManagerContactURL string
	RequireAddress    bool
	SubmitURL         string
	SubmitTimeout     time.Duration
	OrdersAPIKey      string
}

// Load reads the environment with sensible defaults. Only the submission
// endpoint is optional-by-design: without SUBMIT_URL orders are accepted
// locally.
func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),
		Payment: models.PaymentInstructions{
			CardNumber: getenv("PAYMENT_CARD_NUMBER", "4400 4300 1234 5678"),
			BankName:   getenv("PAYMENT_BANK", "Kaspi Bank"),
			Recipient:  getenv("PAYMENT_RECIPIENT", "Дымок"),
		},
		ManagerContactURL: getenv("MANAGER_CONTACT_URL", "https://t.me/dymokminimarket"),
		RequireAddress:    getenvBool("REQUIRE_DELIVERY_ADDRESS", true),
		SubmitURL:         os.Getenv("SUBMIT_URL"),
		SubmitTimeout:     time.Duration(getenvInt("SUBMIT_TIMEOUT_SECONDS", 15)) * time.Second,
		OrdersAPIKey:      os.Getenv("ORDERS_API_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
