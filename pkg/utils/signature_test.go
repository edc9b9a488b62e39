package utils

import "testing"

func TestSignPayloadDeterministic(t *testing.T) {
	body := []byte(`{"form_id":"abc"}`)

	first := SignPayload("s3cret", body)
	second := SignPayload("s3cret", body)
	if first != second {
		t.Errorf("SignPayload not deterministic: %q != %q", first, second)
	}
	if len(first) != 64 {
		t.Errorf("signature length = %d, want 64 hex chars", len(first))
	}
}

func TestValidSignature(t *testing.T) {
	body := []byte(`{"form_id":"abc"}`)
	signature := SignPayload("s3cret", body)

	if !ValidSignature("s3cret", body, signature) {
		t.Error("matching signature should validate")
	}
	if ValidSignature("s3cret", body, "deadbeef") {
		t.Error("bogus signature should not validate")
	}
	if ValidSignature("wrong-secret", body, signature) {
		t.Error("signature under a different secret should not validate")
	}
	if ValidSignature("s3cret", []byte(`{"form_id":"xyz"}`), signature) {
		t.Error("signature over a different body should not validate")
	}
}

func TestHashString(t *testing.T) {
	first := HashString("jane@x.com")
	second := HashString("jane@x.com")
	if first != second {
		t.Errorf("HashString not deterministic: %q != %q", first, second)
	}
	if first == HashString("john@x.com") {
		t.Error("different inputs should hash differently")
	}
}
