package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/auth"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/config"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/db"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
)

type seedSlot struct {
	Therapist string
	DayOffset int
	StartTime string
	EndTime   string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	settings := map[string]string{
		"sandra_calendar_url": envOrDefault("SANDRA_CALENDAR_URL", ""),
		"brett_calendar_url":  envOrDefault("BRETT_CALENDAR_URL", ""),
	}
	for key, value := range settings {
		update := bson.M{
			"$setOnInsert": bson.M{
				"value":      value,
				"updated_at": time.Now().In(cfg.Timezone),
			},
		}
		if _, err := cols.Settings.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed error for setting %s: %v", key, err)
		}
	}

	// Sample availability for the next two weeks, skipping weekends.
	weekSlots := []seedSlot{
		{Therapist: models.TherapistSandra, DayOffset: 1, StartTime: "09:00", EndTime: "10:00"},
		{Therapist: models.TherapistSandra, DayOffset: 1, StartTime: "10:00", EndTime: "11:00"},
		{Therapist: models.TherapistSandra, DayOffset: 3, StartTime: "14:00", EndTime: "15:00"},
		{Therapist: models.TherapistBrett, DayOffset: 2, StartTime: "09:00", EndTime: "10:00"},
		{Therapist: models.TherapistBrett, DayOffset: 2, StartTime: "17:00", EndTime: "18:00"},
		{Therapist: models.TherapistBrett, DayOffset: 4, StartTime: "11:00", EndTime: "12:00"},
	}

	today := time.Now().In(cfg.Timezone)
	for week := 0; week < 2; week++ {
		for _, s := range weekSlots {
			date := today.AddDate(0, 0, s.DayOffset+week*7)
			if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				continue
			}
			dateStr := date.Format("2006-01-02")
			filter := bson.M{"therapist": s.Therapist, "slot_date": dateStr, "start_time": s.StartTime}
			update := bson.M{
				"$setOnInsert": bson.M{
					"_id":        primitive.NewObjectID().Hex(),
					"therapist":  s.Therapist,
					"slot_date":  dateStr,
					"start_time": s.StartTime,
					"end_time":   s.EndTime,
					"is_booked":  false,
					"created_at": time.Now().In(cfg.Timezone),
				},
			}
			if _, err := cols.Slots.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
				log.Fatalf("seed error for slot %s %s %s: %v", s.Therapist, dateStr, s.StartTime, err)
			}
		}
	}

	username := envOrDefault("ADMIN_USER", "admin")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Printf("seed admin: %s skipped (ADMIN_PASSWORD not set)", username)
	} else if err := seedAdminUser(ctx, cols, username, envOrDefault("ADMIN_EMAIL", ""), password, cfg.Timezone); err != nil {
		log.Fatalf("seed admin error for %s: %v", username, err)
	}

	log.Println("seed completed")
}

func seedAdminUser(ctx context.Context, cols *db.Collections, username, email, password string, loc *time.Location) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	set := bson.M{
		"passwordHash": hash,
		"role":         models.UserRoleAdmin,
		"updatedAt":    now,
	}
	setOnInsert := bson.M{
		"_id":       primitive.NewObjectID().Hex(),
		"username":  username,
		"createdAt": now,
	}
	if email != "" {
		set["email"] = email
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": setOnInsert,
	}
	_, err = cols.Users.UpdateOne(ctx, bson.M{"username": username}, update, options.Update().SetUpsert(true))
	return err
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
