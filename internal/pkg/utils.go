package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
)

// gameIDBytes keeps ids of concurrent sessions sharing one store from colliding.
const gameIDBytes = 16

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-session-id"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

// GenerateGameID - generates a random hex identifier for a game snapshot.
func GenerateGameID() string {
	b := make([]byte, gameIDBytes)
	if _, err := rand.Read(b); err != nil {
		return GenerateNewSessionID()
	}

	return hex.EncodeToString(b)
}
