package format

import (
	"encoding"

	"github.com/dhamidi/retrojanet/janet"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(decl *janet.Declaration) error
}
