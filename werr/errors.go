// error wrapping that tolerates nil
package werr

import "golang.org/x/xerrors"

// Wraps err with a message and the caller's frame.
// Returns nil if err is nil so that call sites can
// wrap unconditionally:
//
//	check(werr.Wrapf(err, "parsing %q", s))
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf(format+": %w", append(args, err)...)
}
