package main

import (
	"context"
	"strings"
	"testing"

	"github.com/indexsupply/bigpack/bint"
	"github.com/indexsupply/bigpack/tc"
	"kr.dev/diff"
)

func TestRun_Pack(t *testing.T) {
	t.Setenv("BINTQ_TEST_SECRET", "0x010000")
	inputs := []string{"0", "255", "256", "65537", "$BINTQ_TEST_SECRET"}
	results, err := run(context.Background(), inputs, false)
	tc.NoErr(t, err)

	var got []string
	for _, r := range results {
		s, err := r.format("hex", false)
		tc.NoErr(t, err)
		got = append(got, s)
	}
	diff.Test(t, t.Errorf, got, []string{"", "ff", "0001", "010001", "000001"})
}

func TestRun_Unpack(t *testing.T) {
	results, err := run(context.Background(), []string{"", "ff", "0x0001", "01000100"}, true)
	tc.NoErr(t, err)

	var got []string
	for _, r := range results {
		s, err := r.format("dec", true)
		tc.NoErr(t, err)
		got = append(got, s)
	}
	diff.Test(t, t.Errorf, got, []string{"0", "255", "256", "65537"})
}

func TestRun_Errors(t *testing.T) {
	_, err := run(context.Background(), []string{"1", "-1"}, false)
	tc.WantErr(t, bint.ErrInvalidArgument, err)
	if err == nil || !strings.HasPrefix(err.Error(), "input 2") {
		t.Errorf("expected input 2 error. got: %v", err)
	}

	_, err = run(context.Background(), []string{"12abc"}, false)
	if err == nil {
		t.Errorf("expected parse error. got none")
	}
	_, err = run(context.Background(), []string{"zz"}, true)
	if err == nil {
		t.Errorf("expected hex error. got none")
	}
}

func TestFormat(t *testing.T) {
	r, err := convert(context.Background(), "65537", false)
	tc.NoErr(t, err)
	cases := []struct {
		format string
		decode bool
		want   string
	}{
		{"hex", false, "010001"},
		{"dec", false, "1 0 1"},
		{"hex", true, "0x10001"},
		{"dec", true, "65537"},
		{"json", false, `{"int":"65537","packed":"010001","len":3}`},
	}
	for _, c := range cases {
		got, err := r.format(c.format, c.decode)
		tc.NoErr(t, err)
		diff.Test(t, t.Errorf, got, c.want)
	}
	_, err = r.format("xml", false)
	if err == nil {
		t.Errorf("expected format error. got none")
	}
}

func TestReadLines(t *testing.T) {
	got, err := readLines(strings.NewReader("1\n\n  256 \n65537"))
	tc.NoErr(t, err)
	diff.Test(t, t.Errorf, got, []string{"1", "256", "65537"})
}
