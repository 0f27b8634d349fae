// Package suppress_exchange implements stateless auth tokens: a JSON payload
// is encrypted with AES-256-CBC into a hex string the client can hold and
// return, so no session state lives on the server. Tokens carry their own
// expiration inside the payload; callers are expected to check it.
//
// The 32-byte key comes from the SIGNING_KEY environment variable. Without
// one, an insecure default is used and a warning is logged.
package suppress_exchange

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

// AuthPayload is the standard payload encrypted into session tokens.
type AuthPayload struct {
	AccountId  int64     `json:"account_id"`
	Expiration time.Time `json:"expiration"`
}

// Valid reports whether the payload has not yet expired.
func (p *AuthPayload) Valid() bool {
	return p.Expiration.After(time.Now())
}

func getSecret() string {
	key, exists := os.LookupEnv("SIGNING_KEY")
	if exists {
		return key
	}
	log.Println("Warning: No signing key found. Using default. DO NOT USE IN PRODUCTION.")
	return "SOME_RANDOM_KEY_SOME_RANDOM_KEY_"
}

// EncodeJson marshals data, pads it to the AES block size, encrypts it under
// a fresh random IV and returns hex(iv + ciphertext + plaintext length). The
// random IV means the same payload never produces the same token twice.
// Payloads over 255 bytes cannot be represented in the length byte and are
// rejected with an empty token.
func EncodeJson(data any) string {
	contents, _ := json.Marshal(data)
	contentSize := len(contents)
	// The plaintext length travels in a single trailing byte.
	if contentSize > 255 {
		log.Println("Couldn't encode payload larger than 255 bytes.")
		return ""
	}
	block, err := aes.NewCipher([]byte(getSecret()))
	if err != nil {
		log.Println("Couldn't create cipher for encryption.")
		return ""
	}
	for len(contents)%aes.BlockSize != 0 {
		contents = append(contents, 0)
	}
	encrypted := make([]byte, aes.BlockSize+len(contents))
	if _, err := io.ReadFull(rand.Reader, encrypted[:aes.BlockSize]); err != nil {
		log.Println("Couldn't create iv for encryption.")
		return ""
	}
	mode := cipher.NewCBCEncrypter(block, encrypted[:aes.BlockSize])
	mode.CryptBlocks(encrypted[aes.BlockSize:], contents)
	encrypted = append(encrypted, byte(contentSize))
	return hex.EncodeToString(encrypted)
}

// DecodeJson reverses EncodeJson. Returns nil for any failure: bad hex, a
// truncated token, the wrong key, or a payload that does not unmarshal into
// Data.
func DecodeJson[Data any](token string) *Data {
	encrypted, err := hex.DecodeString(token)
	if err != nil {
		return nil
	}
	if len(encrypted) < aes.BlockSize+1 {
		return nil
	}
	messageEnd := len(encrypted) - 1
	contentSize := int(encrypted[messageEnd])
	block, err := aes.NewCipher([]byte(getSecret()))
	if err != nil {
		log.Println("Couldn't create cipher for decryption.")
		return nil
	}
	ciphertext := encrypted[aes.BlockSize:messageEnd]
	if len(ciphertext)%aes.BlockSize != 0 || contentSize > len(ciphertext) {
		return nil
	}
	decrypted := make([]byte, len(ciphertext))
	decrypter := cipher.NewCBCDecrypter(block, encrypted[:aes.BlockSize])
	decrypter.CryptBlocks(decrypted, ciphertext)
	var payload Data
	if err := json.Unmarshal(decrypted[:contentSize], &payload); err != nil {
		return nil
	}
	return &payload
}
