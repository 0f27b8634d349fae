package suppress_exchange_test

import (
	"strings"
	"testing"
	"time"

	suppress_exchange "github.com/gDenisLit/suppress/suppress-exchange"
)

type testMessage struct {
	Message string `json:"message"`
}

func TestEndToEnd(t *testing.T) {
	value := testMessage{Message: "Hello, world!"}
	encrypted := suppress_exchange.EncodeJson(value)
	decrypted := suppress_exchange.DecodeJson[testMessage](encrypted)
	if decrypted == nil {
		t.Fatal("decryption failed")
	}
	if value.Message != decrypted.Message {
		t.Error("Encryption/decryption failed.")
	}
}

func TestTokensAreUnique(t *testing.T) {
	value := testMessage{Message: "same payload"}
	if suppress_exchange.EncodeJson(value) == suppress_exchange.EncodeJson(value) {
		t.Error("two tokens for the same payload should differ")
	}
}

func TestEncodeRejectsOversizedPayload(t *testing.T) {
	big := testMessage{Message: strings.Repeat("x", 300)}
	if token := suppress_exchange.EncodeJson(big); token != "" {
		t.Errorf("expected empty token for oversized payload, got %d bytes", len(token))
	}

	// Just under the limit still round-trips.
	near := testMessage{Message: strings.Repeat("x", 200)}
	token := suppress_exchange.EncodeJson(near)
	if token == "" {
		t.Fatal("near-limit payload was rejected")
	}
	decoded := suppress_exchange.DecodeJson[testMessage](token)
	if decoded == nil || decoded.Message != near.Message {
		t.Error("near-limit payload did not round-trip")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if got := suppress_exchange.DecodeJson[testMessage]("not hex"); got != nil {
		t.Errorf("got %v", got)
	}
	if got := suppress_exchange.DecodeJson[testMessage]("abcd"); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestAuthPayloadValid(t *testing.T) {
	live := suppress_exchange.AuthPayload{AccountId: 1, Expiration: time.Now().Add(time.Hour)}
	if !live.Valid() {
		t.Error("future expiration reported invalid")
	}
	dead := suppress_exchange.AuthPayload{AccountId: 1, Expiration: time.Now().Add(-time.Hour)}
	if dead.Valid() {
		t.Error("past expiration reported valid")
	}
}
