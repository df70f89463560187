package main

import (
	"flag"
	"fmt"

	"boost-market/pkg/config"
	"boost-market/pkg/database"
	"boost-market/pkg/logger"
	"boost-market/pkg/models"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	if err := seedUsers(db, log); err != nil {
		return err
	}
	if err := seedPlans(db, log); err != nil {
		return err
	}
	if err := seedPaymentConfig(db, log); err != nil {
		return err
	}
	return seedProxies(db, log)
}

func seedUsers(db *gorm.DB, log *logger.Logger) error {
	users := []struct {
		name     string
		number   string
		password string
		role     string
		balance  float64
	}{
		{"Admin", "9000000000", "admin12345", string(models.RoleAdmin), 0},
		{"Alice", "9111111111", "password123", string(models.RoleUser), 1500},
		{"Bob", "9222222222", "password123", string(models.RoleUser), 0},
	}

	for _, u := range users {
		var existing models.User
		if err := db.Where("number = ?", u.number).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", u.number)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Name:          u.name,
			Number:        u.number,
			Password:      string(hashed),
			Role:          models.UserRole(u.role),
			WalletBalance: u.balance,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Info("Created user %s (%s)", u.name, u.role)
	}

	return nil
}

func seedPlans(db *gorm.DB, log *logger.Logger) error {
	var count int64
	db.Model(&models.Plan{}).Count(&count)
	if count > 0 {
		log.Info("Plans already seeded, skipping")
		return nil
	}

	plans := []models.Plan{
		{
			Name:        "Starter Likes",
			Description: "Entry pack of likes for a single post",
			Price:       199,
			Features:    pq.StringArray{"500 likes", "Gradual delivery", "No login required"},
			Type:        models.PlanTypeLikes,
			Platform:    models.PlatformInstagram,
			LikesCount:  500,
		},
		{
			Name:        "Viral Views",
			Description: "View boost for reels and shorts",
			Price:       499,
			Features:    pq.StringArray{"10k views", "48h delivery", "Retention optimized"},
			Type:        models.PlanTypeViews,
			Platform:    models.PlatformYouTube,
			ViewsCount:  10000,
		},
		{
			Name:           "Creator Bundle",
			Description:    "Views, likes and followers in one pack",
			Price:          1499,
			Features:       pq.StringArray{"25k views", "2k likes", "500 followers", "Priority support"},
			Type:           models.PlanTypeBundle,
			Platform:       models.PlatformInstagram,
			ViewsCount:     25000,
			LikesCount:     2000,
			FollowersCount: 500,
		},
		{
			Name:           "Channel Growth",
			Description:    "Subscriber push for new channels",
			Price:          999,
			Features:       pq.StringArray{"1k subscribers", "Weekly report"},
			Type:           models.PlanTypeFollowers,
			Platform:       models.PlatformTelegram,
			FollowersCount: 1000,
		},
	}

	for i := range plans {
		if err := db.Create(&plans[i]).Error; err != nil {
			return err
		}
	}
	log.Info("Created %d plans", len(plans))
	return nil
}

func seedPaymentConfig(db *gorm.DB, log *logger.Logger) error {
	var count int64
	db.Model(&models.PaymentConfig{}).Count(&count)
	if count > 0 {
		log.Info("Payment config already seeded, skipping")
		return nil
	}

	config := models.PaymentConfig{
		UPIID:        "admin@upi",
		Instructions: "Please pay to the UPI ID above and upload the screenshot.",
	}
	if err := db.Create(&config).Error; err != nil {
		return err
	}
	log.Info("Created default payment config")
	return nil
}

func seedProxies(db *gorm.DB, log *logger.Logger) error {
	var count int64
	db.Model(&models.Proxy{}).Count(&count)
	if count > 0 {
		log.Info("Proxies already seeded, skipping")
		return nil
	}

	proxies := []models.Proxy{
		{IP: "103.21.244.10", Port: "8080", Country: "IN", Status: models.ProxyStatusActive},
		{IP: "172.64.32.21", Port: "3128", Country: "SG", Status: models.ProxyStatusRotating},
		{IP: "185.199.110.5", Port: "8000", Country: "DE", Status: models.ProxyStatusIdle},
	}

	for i := range proxies {
		if err := db.Create(&proxies[i]).Error; err != nil {
			return err
		}
	}
	log.Info("Created %d proxies", len(proxies))
	return nil
}
