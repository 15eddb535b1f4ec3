package intern

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/robinvdvleuten/intern/telemetry"
)

const (
	// MaxLineSize is the longest line AddLines accepts.
	MaxLineSize = 1 << 20

	cancelCheckInterval = 1024
)

// AddLines adds every line read from r and returns the IDs in line order.
// Line terminators ("\n" or "\r\n") are not part of the stored strings.
// On error the IDs of the lines added so far are returned with it.
func (t *Table) AddLines(ctx context.Context, r io.Reader) ([]ID, error) {
	timer := telemetry.FromContext(ctx).Start("intern.AddLines")
	defer timer.End()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), MaxLineSize)

	var ids []ID
	for scanner.Scan() {
		if len(ids)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				timer.Add(len(ids))
				return ids, fmt.Errorf("interning lines: %w", err)
			}
		}
		ids = append(ids, t.AddBytes(scanner.Bytes()))
	}
	timer.Add(len(ids))

	if err := scanner.Err(); err != nil {
		return ids, fmt.Errorf("reading lines: %w", err)
	}
	return ids, nil
}

// AddAll adds every string yielded by seq and returns the IDs in order.
func (t *Table) AddAll(ctx context.Context, seq iter.Seq[string]) ([]ID, error) {
	timer := telemetry.FromContext(ctx).Start("intern.AddAll")
	defer timer.End()

	var ids []ID
	for s := range seq {
		if len(ids)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				timer.Add(len(ids))
				return ids, fmt.Errorf("interning strings: %w", err)
			}
		}
		ids = append(ids, t.Add(s))
	}
	timer.Add(len(ids))

	return ids, nil
}
