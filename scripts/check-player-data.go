package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/cultivation-api/internal/realm"
)

// Minimal view of a stored player record
type playerData struct {
	ID          string `json:"id"`
	Realm       string `json:"realm"`
	Level       int    `json:"level"`
	Cultivation int64  `json:"cultivation"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning player records...")

	iter := client.Scan(ctx, 0, "player:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount, suspectCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var p playerData
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// These load with defaults applied, so report them without deleting
		if _, ok := realm.Lookup(realm.ID(p.Realm)); !ok {
			fmt.Printf("! %s: unknown realm %q loads as %s\n", key, p.Realm, realm.First().Name)
			suspectCount++
		}
		if p.Level < realm.MinLevel || p.Level > realm.MaxLevel {
			fmt.Printf("! %s: level %d clamps to %d\n", key, p.Level, realm.ClampLevel(p.Level))
			suspectCount++
		}
		if p.Cultivation < 0 {
			fmt.Printf("! %s: negative cultivation %d\n", key, p.Cultivation)
			suspectCount++
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries and %d suspect fields\n",
		checkedCount, len(corruptedKeys), suspectCount)

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range corruptedKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}
