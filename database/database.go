package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inkwell-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	addDatabaseConstraints(db)

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Listing queries order by created_at within an author or group
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_author_created ON posts(author_id, created_at DESC)").Error; err != nil {
		log.Printf("Warning: could not create index for posts by author: %v", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_posts_group_created ON posts(group_id, created_at DESC)").Error; err != nil {
		log.Printf("Warning: could not create index for posts by group: %v", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_post_created ON comments(post_id, created_at)").Error; err != nil {
		log.Printf("Warning: could not create index for comments: %v", err)
	}

	return nil
}

// addDatabaseConstraints backs the handler-level follow guards with schema
// constraints where the backend supports them. Failures are logged and
// ignored so older MySQL versions (and sqlite in tests) keep working; the
// handlers enforce both invariants regardless.
func addDatabaseConstraints(db *gorm.DB) {
	if err := db.Exec("ALTER TABLE follows ADD CONSTRAINT ck_follows_no_self_follow CHECK (user_id <> author_id)").Error; err != nil {
		log.Printf("Warning: could not add self-follow check constraint: %v", err)
	}
}

// SeedData populates the database with a starter group and demo users for
// development. Production deployments create groups via admin inserts.
func SeedData(db *gorm.DB) error {
	var groupCount int64
	db.Model(&models.Group{}).Count(&groupCount)
	if groupCount > 0 {
		log.Println("Database already has data, skipping seed")
		return nil
	}

	general := models.Group{
		ID:          uuid.New().String(),
		Title:       "General",
		Slug:        "general",
		Description: "Catch-all community for posts without a better home",
	}
	if err := db.Create(&general).Error; err != nil {
		return fmt.Errorf("failed to seed group: %w", err)
	}

	password, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	demoUsers := []models.User{
		{ID: uuid.New().String(), Username: "demo_writer", Email: "writer@example.com", Password: string(password)},
		{ID: uuid.New().String(), Username: "demo_reader", Email: "reader@example.com", Password: string(password)},
	}
	for _, user := range demoUsers {
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warning: could not create demo user %s: %v", user.Username, err)
		}
	}

	log.Println("Database seeded with starter group and demo users")
	return nil
}
