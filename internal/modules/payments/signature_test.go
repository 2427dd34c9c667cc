package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifierAcceptsValidSignature(t *testing.T) {
	v := NewVerifier("sk_test_secret")
	body := []byte(`{"event":"charge.success","data":{"reference":"TX-1"}}`)

	require.NoError(t, v.Verify(body, v.Sign(body)))
}

func TestVerifierRejectsTamperedBody(t *testing.T) {
	v := NewVerifier("sk_test_secret")
	body := []byte(`{"event":"charge.success","data":{"reference":"TX-1"}}`)
	sig := v.Sign(body)

	tampered := []byte(`{"event":"charge.success","data":{"reference":"TX-2"}}`)
	assert.ErrorIs(t, v.Verify(tampered, sig), ErrInvalidSignature)
}

func TestVerifierRejectsWrongSecret(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"TX-1"}}`)
	sig := NewVerifier("other_secret").Sign(body)

	v := NewVerifier("sk_test_secret")
	assert.ErrorIs(t, v.Verify(body, sig), ErrInvalidSignature)
}

func TestVerifierRejectsGarbageSignature(t *testing.T) {
	v := NewVerifier("sk_test_secret")
	assert.ErrorIs(t, v.Verify([]byte(`{}`), "not-a-hex-digest"), ErrInvalidSignature)
}
