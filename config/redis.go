package config

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis menyiapkan client untuk cache proxy data wilayah.
// Redis bersifat opsional: kalau tidak di-set, cache dilewati saja.
func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR kosong, cache wilayah dimatikan")
		return
	}

	Redis = redis.NewClient(&redis.Options{Addr: addr})
}
