package fuzztests

import (
	"context"
	"testing"
	"time"

	"concatident/internal/driver"
	"concatident/internal/source"
)

// expandTimeout is the maximum time allowed for expanding a single input.
// If expansion takes longer, it indicates a potential infinite loop.
const expandTimeout = 5 * time.Second

func FuzzExpandNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Add([]byte("concat_idents!(x = a { concat_idents!(y = x { concat_idents!(z = y { z }) }) })"))
	f.Add([]byte("concat_idents!(x = a { x!() x!(x = b { x }) })"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		ctx, cancel := context.WithTimeout(context.Background(), expandTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			id := fs.AddVirtual("fuzz.go.in", input)
			_, _ = driver.ExpandSource(ctx, fs, id, driver.Options{MaxDepth: 8})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("expansion hang detected after %v\ninput (%d bytes): %q",
				expandTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
