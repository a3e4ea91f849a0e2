// test helpers
package tc

import (
	"errors"
	"math/big"
	"reflect"
	"testing"

	"github.com/kr/pretty"
)

func NoErr(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Errorf("expected no error. got: %s", err)
	}
}

// Fails unless errors.Is(got, want)
func WantErr(tb testing.TB, want, got error) {
	tb.Helper()
	if !errors.Is(got, want) {
		tb.Errorf("want error: %v got: %v", want, got)
	}
}

func WantGot(tb testing.TB, want, got any) {
	tb.Helper()
	if !reflect.DeepEqual(want, got) {
		tb.Error(pretty.Sprintf("want: %v got: %v", want, got))
	}
}

// Compares by value since big.Int internals
// may differ for equal numbers.
func WantInt(tb testing.TB, want, got *big.Int) {
	tb.Helper()
	if got == nil || want.Cmp(got) != 0 {
		tb.Errorf("want: %s got: %s", want, got)
	}
}
