package token

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/crypto/argon2"
)

func TestHashArgon2id(t *testing.T) {
	v := StringValue("123456")

	encoded, err := HashArgon2id(v)
	if err != nil {
		t.Fatalf("HashArgon2id() error = %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=16384,t=2,p=2$") {
		t.Errorf("unexpected encoding %q", encoded)
	}

	again, err := HashArgon2id(v)
	if err != nil {
		t.Fatalf("HashArgon2id() error = %v", err)
	}
	if again == encoded {
		t.Error("HashArgon2id() should use a fresh salt")
	}

	if !Verify(v, encoded) || !Verify(v, again) {
		t.Error("Verify() should accept Argon2id hashes of the same value")
	}
	if Verify(StringValue("654321"), encoded) {
		t.Error("Verify() accepted a different value")
	}
}

func TestHashArgon2id_FixedSalt(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, Argon2SaltLen)

	a, err := hashArgon2id(StringValue("reset"), bytes.NewReader(salt))
	if err != nil {
		t.Fatalf("hashArgon2id() error = %v", err)
	}
	b, err := hashArgon2id(StringValue("reset"), bytes.NewReader(salt))
	if err != nil {
		t.Fatalf("hashArgon2id() error = %v", err)
	}
	if a != b {
		t.Error("same salt should produce the same hash")
	}
}

func TestHashArgon2id_SaltFailure(t *testing.T) {
	_, err := hashArgon2id(StringValue("x"), iotest.ErrReader(bytes.ErrTooLarge))
	if !IsError(err, ErrGenerationFailure.Code) {
		t.Errorf("expected GenerationFailure, got %v", err)
	}
}

func TestVerify_MalformedArgon2id(t *testing.T) {
	v := StringValue("123456")
	valid, err := HashArgon2id(v)
	if err != nil {
		t.Fatalf("HashArgon2id() error = %v", err)
	}
	parts := strings.Split(valid, "$")

	tests := []struct {
		name    string
		encoded string
	}{
		{"too few parts", "$argon2id$v=19$m=16384,t=2,p=2$abc"},
		{"wrong version", strings.Join([]string{"", "argon2id", "v=16", parts[3], parts[4], parts[5]}, "$")},
		{"bad params", strings.Join([]string{"", "argon2id", parts[2], "m=x", parts[4], parts[5]}, "$")},
		{"zero time", strings.Join([]string{"", "argon2id", parts[2], "m=16384,t=0,p=2", parts[4], parts[5]}, "$")},
		{"huge memory", strings.Join([]string{"", "argon2id", parts[2], "m=4294967295,t=2,p=2", parts[4], parts[5]}, "$")},
		{"huge time", strings.Join([]string{"", "argon2id", parts[2], "m=16384,t=4294967295,p=2", parts[4], parts[5]}, "$")},
		{"time above cap", strings.Join([]string{"", "argon2id", parts[2], "m=16384,t=17,p=2", parts[4], parts[5]}, "$")},
		{"short key", strings.Join([]string{"", "argon2id", parts[2], parts[3], parts[4], "AAAA"}, "$")},
		{"long key", strings.Join([]string{"", "argon2id", parts[2], parts[3], parts[4], strings.Repeat("A", 200)}, "$")},
		{"empty salt", strings.Join([]string{"", "argon2id", parts[2], parts[3], "", parts[5]}, "$")},
		{"bad salt", strings.Join([]string{"", "argon2id", parts[2], parts[3], "!!", parts[5]}, "$")},
		{"empty hash", strings.Join([]string{"", "argon2id", parts[2], parts[3], parts[4], ""}, "$")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Verify(v, tt.encoded) {
				t.Errorf("Verify() accepted %q", tt.encoded)
			}
		})
	}
}

func TestVerify_Argon2idParametersWithinBounds(t *testing.T) {
	v := StringValue("123456")
	salt := bytes.Repeat([]byte{0x02}, Argon2SaltLen)
	key := argon2.IDKey(v.data, salt, maxArgon2Time, 64, 1, minArgon2KeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=64,t=%d,p=1$%s$%s", argon2.Version, maxArgon2Time,
		base64.RawStdEncoding.EncodeToString(salt), base64.RawStdEncoding.EncodeToString(key))
	if !Verify(v, encoded) {
		t.Errorf("Verify() rejected %q", encoded)
	}
}
