// bintq packs integers into minimal little-endian bytes
// and unpacks them back.
//
//	$ bintq 65537
//	010001
//	$ bintq -d -f dec 010001
//	65537
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"runtime"
	"strings"

	"github.com/goccy/go-json"
	"github.com/indexsupply/bigpack/bint"
	"github.com/indexsupply/bigpack/wctx"
	"github.com/indexsupply/bigpack/werr"
	"github.com/indexsupply/bigpack/wos"
	"github.com/indexsupply/bigpack/wslog"
	"golang.org/x/sync/errgroup"
)

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

type result struct {
	Int    string `json:"int"`
	Packed string `json:"packed"`
	Len    int    `json:"len"`

	x *big.Int
	b []byte
}

func convert(ctx context.Context, s string, decode bool) (result, error) {
	s, err := wos.Getenv(strings.TrimSpace(s))
	if err != nil {
		return result{}, err
	}
	var r result
	switch {
	case decode:
		r.b, err = hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return result{}, werr.Wrapf(err, "decoding hex %q", s)
		}
		r.x = bint.Unpack(r.b)
	default:
		var ok bool
		r.x, ok = new(big.Int).SetString(s, 0)
		if !ok {
			return result{}, fmt.Errorf("not an integer: %q", s)
		}
		r.b, err = bint.Pack(r.x)
		if err != nil {
			return result{}, err
		}
	}
	r.Int = r.x.String()
	r.Packed = hex.EncodeToString(r.b)
	r.Len = len(r.b)
	slog.DebugContext(ctx, "converted", "int", r.x, "packed", r.b)
	return r, nil
}

// hex and dec render the side of the conversion
// that was produced: packed bytes when packing and
// the integer when unpacking.
func (r result) format(f string, decode bool) (string, error) {
	switch {
	case f == "json":
		b, err := json.Marshal(r)
		return string(b), err
	case f == "hex" && decode:
		return "0x" + r.x.Text(16), nil
	case f == "hex":
		return r.Packed, nil
	case f == "dec" && decode:
		return r.Int, nil
	case f == "dec":
		s := make([]string, len(r.b))
		for i := range r.b {
			s[i] = fmt.Sprintf("%d", r.b[i])
		}
		return strings.Join(s, " "), nil
	default:
		return "", fmt.Errorf("unknown format %q", f)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var (
		lines []string
		sc    = bufio.NewScanner(r)
	)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	return lines, sc.Err()
}

// Converts inputs concurrently. Results are in input order.
func run(ctx context.Context, inputs []string, decode bool) ([]result, error) {
	results := make([]result, len(inputs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i := range inputs {
		eg.Go(func() error {
			r, err := convert(wctx.WithInput(ctx, i, len(inputs)), inputs[i], decode)
			if err != nil {
				return werr.Wrapf(err, "input %d", i+1)
			}
			results[i] = r
			return nil
		})
	}
	return results, eg.Wait()
}

func main() {
	var (
		ctx     = context.Background()
		decode  bool
		format  string
		verbose bool
	)
	flag.BoolVar(&decode, "d", false, "unpack hex encoded bytes into integers")
	flag.StringVar(&format, "f", wos.Default("BINTQ_FORMAT", "hex"), "output format: dec, hex, or json")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelInfo)
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}
	lh := wslog.New(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	lh.RegisterContext(func(ctx context.Context) (string, any) {
		op := wctx.Op(ctx)
		if op == "" {
			return "", nil
		}
		return "op", op
	})
	lh.RegisterContext(func(ctx context.Context) (string, any) {
		idx, total := wctx.Input(ctx)
		if idx < 0 {
			return "", nil
		}
		return "in", fmt.Sprintf("%d/%d", idx+1, total)
	})
	slog.SetDefault(slog.New(lh))

	ctx = wctx.WithOp(ctx, "pack")
	if decode {
		ctx = wctx.WithOp(ctx, "unpack")
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		var err error
		inputs, err = readLines(os.Stdin)
		check(werr.Wrapf(err, "reading stdin"))
	}
	results, err := run(ctx, inputs, decode)
	check(err)
	slog.DebugContext(ctx, "done", "n", len(results))

	w := bufio.NewWriter(os.Stdout)
	for _, r := range results {
		line, err := r.format(format, decode)
		check(err)
		fmt.Fprintln(w, line)
	}
	check(w.Flush())
}
