package sphincsplus

import (
	"context"
	"errors"
	"testing"
)

func TestVerifyBatch(t *testing.T) {
	_, vkey, sig := fixtures(t)
	items := []BatchItem{
		{PublicKey: vkey, Message: fix_msg, Signature: sig},
		{PublicKey: vkey, Message: fix_msg, Signature: sig},
		{PublicKey: vkey, Message: fix_msg, Signature: sig},
	}
	if err := VerifyBatch(context.Background(), items); err != nil {
		t.Fatal(err)
	}
	if err := VerifyBatch(context.Background(), nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
}

func TestVerifyBatchFailure(t *testing.T) {
	_, vkey, sig := fixtures(t)
	bad := append([]byte(nil), sig...)
	bad[100] ^= 0x10
	items := []BatchItem{
		{PublicKey: vkey, Message: fix_msg, Signature: sig},
		{PublicKey: vkey, Message: fix_msg, Signature: bad},
	}
	err := VerifyBatch(context.Background(), items)
	if !errors.Is(err, ErrVerificationFailed) {
		t.Fatalf("want ErrVerificationFailed, got %v", err)
	}

	items[1].Signature = sig[:SignatureSize-2]
	err = VerifyBatch(context.Background(), items)
	if !errors.Is(err, ErrInvalidSignatureSize) {
		t.Fatalf("want ErrInvalidSignatureSize, got %v", err)
	}
}

func TestVerifyBatchCancelled(t *testing.T) {
	_, vkey, sig := fixtures(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	items := make([]BatchItem, 64)
	for i := range items {
		items[i] = BatchItem{PublicKey: vkey, Message: fix_msg, Signature: sig}
	}
	if err := VerifyBatch(ctx, items); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
