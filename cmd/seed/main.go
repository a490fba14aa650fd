// Command seed migrates the database schema and loads the default CMS
// content plus an initial superuser account. It is safe to run repeatedly:
// existing rows are left untouched.
package main

import (
	"log/slog"
	"os"

	"dentalstore/config"
	"dentalstore/internal/infra/auth"
	logs "dentalstore/internal/infra/log"
	"dentalstore/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := migrate(db); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Schema migrated")

	created, err := seedSettings(db)
	if err != nil {
		logger.Error("Seeding site settings failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Site settings seeded", slog.Int("created", created))

	if err := seedSuperuser(db, cfg, logger); err != nil {
		logger.Error("Seeding superuser failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seed complete")
}

func migrate(db *gorm.DB) error {
	// uuid_generate_v7 backs the primary key defaults on every table.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`).Error; err != nil {
		return errors.Wrap(err, "failed to create pg_uuidv7 extension")
	}

	err := db.AutoMigrate(
		&model.ProductModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.SiteSettingModel{},
		&model.PageImageModel{},
		&model.UserModel{},
		&model.ProfileModel{},
		&model.SessionModel{},
	)

	return errors.Wrap(err, "failed to migrate schema")
}

// seedSettings inserts the default site settings, skipping keys that already
// exist so operator edits survive re-runs.
func seedSettings(db *gorm.DB) (int, error) {
	defaults := []model.SiteSettingModel{
		{Key: "company_name", Value: "Dental Care Store", Description: "Company name", Category: "company"},
		{Key: "company_description", Value: "High quality oral care products for a healthy, confident smile.", Description: "Company description", Category: "company"},
		{Key: "company_address", Value: "19V Nguyen Huu Canh, Binh Thanh District, Ho Chi Minh City", Description: "Company address", Category: "company"},
		{Key: "logo_url", Value: "/media/logo.jpg", Description: "Company logo URL", Category: "company"},

		{Key: "contact_phone", Value: "(+84) 866 940 279", Description: "Contact phone number", Category: "contact"},
		{Key: "contact_email", Value: "support@example.com", Description: "Contact email", Category: "contact"},
		{Key: "contact_hotline", Value: "19001234", Description: "Hotline", Category: "contact"},
		{Key: "working_hours", Value: "8:00 - 18:00 (Mon - Sun)", Description: "Working hours", Category: "contact"},

		{Key: "facebook_url", Value: "", Description: "Facebook page link", Category: "social"},
		{Key: "tiktok_url", Value: "", Description: "TikTok link", Category: "social"},
		{Key: "instagram_url", Value: "", Description: "Instagram link", Category: "social"},
		{Key: "youtube_url", Value: "", Description: "YouTube link", Category: "social"},

		{Key: "hero_title", Value: "Oral care experts", Description: "Home page hero title", Category: "other"},
		{Key: "hero_subtitle", Value: "Complete oral care solutions", Description: "Home page hero subtitle", Category: "other"},
		{Key: "hero_description", Value: "Discover our collection of quality oral care products.", Description: "Home page hero description", Category: "other"},

		{Key: "about_hero_title", Value: "About us", Description: "About page hero title", Category: "other"},
		{Key: "about_hero_subtitle", Value: "Your partner in oral health", Description: "About page hero subtitle", Category: "other"},
		{Key: "about_mission_title", Value: "Our mission", Description: "About page mission title", Category: "other"},
		{Key: "about_mission_content", Value: "We believe a healthy smile is the foundation of confidence.", Description: "About page mission content", Category: "other"},
		{Key: "about_story_title", Value: "Our story", Description: "About page story title", Category: "other"},
		{Key: "about_story_content", Value: "Founded on the belief that everyone deserves the best oral care products.", Description: "About page story content", Category: "other"},
		{Key: "about_team_title", Value: "Our team", Description: "About page team title", Category: "other"},
		{Key: "about_team_subtitle", Value: "The people behind the store", Description: "About page team subtitle", Category: "other"},
	}

	created := 0
	for _, setting := range defaults {
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&setting)
		if result.Error != nil {
			return created, errors.Wrapf(result.Error, "failed to seed setting %q", setting.Key)
		}
		created += int(result.RowsAffected)
	}

	return created, nil
}

// seedSuperuser creates the initial admin account. The password comes from
// SEED_ADMIN_PASSWORD; without it the step is skipped so the seed can run in
// environments where the account already exists.
func seedSuperuser(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	username := os.Getenv("SEED_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		logger.Warn("SEED_ADMIN_PASSWORD not set, skipping superuser creation")

		return nil
	}

	var count int64
	if err := db.Model(&model.UserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check for existing superuser")
	}
	if count > 0 {
		logger.Info("Superuser already exists", slog.String("username", username))

		return nil
	}

	hash, err := auth.NewBcryptHasher(cfg).Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash superuser password")
	}

	user := model.UserModel{
		Username:     username,
		Email:        os.Getenv("SEED_ADMIN_EMAIL"),
		PasswordHash: hash,
		IsActive:     true,
		IsSuperuser:  true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return errors.Wrap(err, "failed to create superuser")
		}

		profile := model.ProfileModel{UserID: user.ID, Role: "admin"}

		return errors.Wrap(tx.Create(&profile).Error, "failed to create superuser profile")
	})
	if err != nil {
		return err
	}

	logger.Info("Superuser created", slog.String("username", username))

	return nil
}
