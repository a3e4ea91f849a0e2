// index for context values
package wctx

import "context"

type key int

const (
	opKey    key = 1
	inputKey key = 2
)

type input struct{ idx, total int }

// Names the codec operation (pack, unpack)
// for log lines written with ctx.
func WithOp(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, opKey, op)
}

func Op(ctx context.Context) string {
	op, _ := ctx.Value(opKey).(string)
	return op
}

// Records the position of the value being converted.
// idx is zero based.
func WithInput(ctx context.Context, idx, total int) context.Context {
	return context.WithValue(ctx, inputKey, input{idx, total})
}

// Returns -1, 0 when no input was set
func Input(ctx context.Context) (int, int) {
	in, ok := ctx.Value(inputKey).(input)
	if !ok {
		return -1, 0
	}
	return in.idx, in.total
}
