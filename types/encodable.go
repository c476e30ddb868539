package types

import "github.com/beatoz/fxmath/types/xerrors"

// IEncoder is implemented by documents that are stored as files, e.g. pool definitions.
type IEncoder interface {
	Encode() ([]byte, xerrors.XError)
	Decode([]byte) xerrors.XError
}
