package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/MashookhKhanlol/youtube-clone/internal/database"
	"github.com/MashookhKhanlol/youtube-clone/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "youtube_clone.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM watch_history")
	db.Exec("DELETE FROM video_views")
	db.Exec("DELETE FROM playlist_videos")
	db.Exec("DELETE FROM playlists")
	db.Exec("DELETE FROM likes")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM tweets")
	db.Exec("DELETE FROM videos")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	usernames := []string{"alice", "bob", "carol", "dave"}
	users := make([]domain.User, 0, len(usernames))
	for i, name := range usernames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		u := domain.User{
			Username:     name,
			Email:        fmt.Sprintf("%s@example.com", name),
			FullName:     fmt.Sprintf("User %d", i+1),
			PasswordHash: string(hash),
		}
		db.Create(&u)
		users = append(users, u)
		log.Printf("User created: %s / password123", name)
	}

	// ================== VIDEOS ==================
	log.Println("Creating videos...")
	videos := make([]domain.Video, 0, 8)
	for i := 0; i < 8; i++ {
		owner := users[i%len(users)]
		v := domain.Video{
			OwnerID:      owner.ID,
			Title:        fmt.Sprintf("Sample video %d", i+1),
			Description:  "Seeded demo content",
			VideoURL:     fmt.Sprintf("videos/sample_%d.mp4", i+1),
			ThumbnailURL: fmt.Sprintf("thumbnails/sample_%d.jpg", i+1),
			Duration:     30 + rand.Float64()*300,
			IsPublished:  i%4 != 3,
		}
		db.Create(&v)
		videos = append(videos, v)
	}

	// ================== SUBSCRIPTIONS ==================
	log.Println("Creating subscriptions...")
	for _, u := range users {
		for _, channel := range users {
			if u.ID == channel.ID || rand.Intn(2) == 0 {
				continue
			}
			db.Create(&domain.Subscription{SubscriberID: u.ID, ChannelID: channel.ID})
		}
	}

	// ================== ENGAGEMENT ==================
	log.Println("Creating comments, likes and views...")
	for _, v := range videos {
		if !v.IsPublished {
			continue
		}
		for _, u := range users {
			if rand.Intn(2) == 0 {
				continue
			}
			db.Create(&domain.VideoView{VideoID: v.ID, UserID: u.ID})
			if rand.Intn(2) == 0 {
				vid := v.ID
				db.Create(&domain.Like{UserID: u.ID, VideoID: &vid})
			}
			if rand.Intn(3) == 0 {
				db.Create(&domain.Comment{
					OwnerID: u.ID,
					VideoID: v.ID,
					Content: fmt.Sprintf("Nice one, %d!", v.ID),
				})
			}
		}
	}

	// ================== TWEETS ==================
	log.Println("Creating tweets...")
	for i, u := range users {
		db.Create(&domain.Tweet{
			OwnerID: u.ID,
			Content: fmt.Sprintf("Hello from %s, post #%d", u.Username, i+1),
		})
	}

	// ================== PLAYLISTS ==================
	log.Println("Creating playlists...")
	for _, u := range users[:2] {
		p := domain.Playlist{
			OwnerID:     u.ID,
			Name:        fmt.Sprintf("%s's favorites", u.Username),
			Description: "Seeded playlist",
		}
		db.Create(&p)
		for _, v := range videos {
			if v.IsPublished && rand.Intn(2) == 0 {
				db.Create(&domain.PlaylistVideo{PlaylistID: p.ID, VideoID: v.ID})
			}
		}
	}

	log.Println("Seed complete")
}
