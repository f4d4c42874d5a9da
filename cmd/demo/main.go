// Command demo walks through the cache contract against a running Redis
// server (default: localhost:6379).
//
// To run Redis locally using Docker:
//
//	docker run -d -p 6379:6379 redis:latest
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MindFiv/FivcGlue/caches"
	"github.com/MindFiv/FivcGlue/site"
	"github.com/joho/godotenv"
)

func rule(c string) string {
	return strings.Repeat(c, 60)
}

func section(title string) {
	fmt.Println(rule("-"))
	fmt.Println(title)
	fmt.Println(rule("-"))
	fmt.Println()
}

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Fprintln(os.Stderr, "failed to load the env file")
			os.Exit(1)
		}
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = caches.DefaultRedisAddr
	}

	fmt.Println(rule("="))
	fmt.Println("Redis Cache Implementation Demo")
	fmt.Println(rule("="))
	fmt.Println()

	// Create component site
	componentSite := site.New()

	fmt.Printf("Creating Redis cache (%s)...\n", addr)
	cache, err := caches.NewRedisCache(addr, os.Getenv("REDIS_PASS"), 0)
	fmt.Println()

	// Check if connected
	if err != nil || !cache.Connected() {
		fmt.Println("Redis is not connected!")
		fmt.Printf("Please ensure Redis is running on %s\n", addr)
		fmt.Println()
		fmt.Println("To start Redis with Docker:")
		fmt.Println("  docker run -d -p 6379:6379 redis:latest")
		fmt.Println()
		return
	}

	fmt.Println("Connected to Redis successfully!")
	fmt.Println()

	// Register cache with component site
	if err := site.Register[caches.Cache](componentSite, "redis", cache); err != nil {
		fmt.Fprintf(os.Stderr, "failed to register cache: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Cache registered with component site")
	fmt.Println()

	section("Basic Cache Operations")

	// Set a value
	key := "demo:user:123"
	value := []byte(`{"name": "John Doe", "email": "john@example.com"}`)
	expire := 30 * time.Second

	fmt.Printf("Setting key: %s\n", key)
	fmt.Printf("Value: %s\n", value)
	fmt.Printf("Expiration: %v\n", expire)

	if err := cache.SetValue(key, value, expire); err != nil {
		fmt.Printf("Result: Failed (%v)\n", err)
	} else {
		fmt.Println("Result: Success")
	}
	fmt.Println()

	// Get the value back
	fmt.Printf("Getting key: %s\n", key)
	retrieved, err := cache.GetValue(key)
	if err != nil {
		fmt.Println("Value not found")
	} else {
		fmt.Printf("Retrieved: %s\n", retrieved)
		fmt.Println("Value found in cache")
	}
	fmt.Println()

	// Try to get a non-existent key
	fmt.Println("Getting non-existent key: demo:nonexistent")
	_, err = cache.GetValue("demo:nonexistent")
	fmt.Printf("Result: %v\n", err)
	fmt.Println("Correctly returns not-found for missing keys")
	fmt.Println()

	section("Expiration Demo")

	shortKey := "demo:short_lived"
	shortValue := []byte("This will expire in 2 seconds")
	shortExpire := 2 * time.Second

	fmt.Printf("Setting key with 2-second expiration: %s\n", shortKey)
	cache.SetValue(shortKey, shortValue, shortExpire)

	fmt.Println("Immediately retrieving...")
	result, err := cache.GetValue(shortKey)
	if err != nil {
		fmt.Println("Result: not found")
	} else {
		fmt.Printf("Result: %s\n", result)
	}
	fmt.Println()

	fmt.Println("Waiting 3 seconds for expiration...")
	time.Sleep(3 * time.Second)

	fmt.Println("Retrieving after expiration...")
	_, err = cache.GetValue(shortKey)
	fmt.Printf("Result: %v\n", err)
	fmt.Println("Value correctly expired and removed by Redis")
	fmt.Println()

	section("Update Demo")

	updateKey := "demo:counter"
	fmt.Printf("Setting initial value: %s = 1\n", updateKey)
	cache.SetValue(updateKey, []byte("1"), 5*time.Minute)

	fmt.Printf("Updating value: %s = 2\n", updateKey)
	cache.SetValue(updateKey, []byte("2"), 5*time.Minute)

	result, err = cache.GetValue(updateKey)
	if err != nil {
		fmt.Println("Retrieved: not found")
	} else {
		fmt.Printf("Retrieved: %s\n", result)
		fmt.Println("Value successfully updated")
	}
	fmt.Println()

	section("Nil Value Demo")

	nilKey := "demo:nil_value"
	fmt.Printf("Setting nil value for key: %s\n", nilKey)
	cache.SetValue(nilKey, nil, time.Minute)

	result, err = cache.GetValue(nilKey)
	if errors.Is(err, caches.ErrNotFound) {
		fmt.Println("Retrieved: not found")
	} else {
		fmt.Printf("Retrieved: %q (length %d)\n", result, len(result))
		fmt.Println("Nil values are stored as empty bytes")
	}
	fmt.Println()

	section("Cleanup")

	fmt.Println("Cleaning up demo keys...")
	for _, k := range []string{key, updateKey, nilKey} {
		cache.DeleteValue(k)
	}
	fmt.Println("Remaining keys will auto-expire based on their TTL")
	fmt.Println()

	fmt.Println(rule("="))
	fmt.Println("Demo Complete!")
	fmt.Println(rule("="))
}
