package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
)

func main() {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}

	fmt.Println("Generated JWT signing key (hex):")
	fmt.Println(hex.EncodeToString(key))
	fmt.Println()
	fmt.Println("Add this to your config/private.yaml:")
	fmt.Printf("jwt_key: \"%s\"\n", hex.EncodeToString(key))
	fmt.Println()
	fmt.Println("Keep this key secret and never commit it to version control.")
}
