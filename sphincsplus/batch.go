package sphincsplus

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// A BatchItem is one (public key, message, signature) triple submitted
// for batch verification.
type BatchItem struct {
	PublicKey []byte
	Message   []byte
	Signature []byte
}

// VerifyBatch verifies a set of independent signatures concurrently.
// The engine is stateless and reentrant, so the items are checked on
// up to GOMAXPROCS goroutines. The result is nil only if every item
// verifies; otherwise the error identifies the first failing item (by
// index) and carries its [VerifyDetailed] error. Verification stops
// early when the context is cancelled or an item fails.
//
// Batching is a throughput measure only; each signature is verified
// exactly as [Verify] would, with no cryptographic aggregation.
func VerifyBatch(ctx context.Context, items []BatchItem) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range items {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			it := &items[i]
			if _, err := VerifyDetailed(it.PublicKey, it.Message, it.Signature); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
