package database

import (
	"log"
	"strings"

	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{TranslateError: true},
	)
}

// Migrate creates or updates the schema for every domain model, including
// the unique indexes the toggle operations rely on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Video{},
		&domain.VideoView{},
		&domain.Tweet{},
		&domain.Comment{},
		&domain.Playlist{},
		&domain.PlaylistVideo{},
		&domain.Like{},
		&domain.Subscription{},
		&domain.WatchHistoryEntry{},
	)
}
