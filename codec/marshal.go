// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/avalanche-sdk-go/consts"
)

const defaultWriterSize = 256

// Marshaler writes its wire form to a Packer.
type Marshaler interface {
	Marshal(p *Packer)
}

// Unmarshaler reads its wire form from a Packer. Failures are recorded on the
// Packer.
type Unmarshaler interface {
	Unmarshal(p *Packer)
}

func Marshal(v Marshaler) ([]byte, error) {
	p := NewWriter(defaultWriterSize, consts.MaxInt)
	v.Marshal(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// Unmarshal decodes [v] from the front of [b] and returns the bytes that
// follow it.
func Unmarshal(b []byte, v Unmarshaler) ([]byte, error) {
	p := NewReader(b, consts.MaxInt)
	v.Unmarshal(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Remaining(), nil
}

// UnmarshalExact decodes [v] from [b] and fails if any bytes are left over.
func UnmarshalExact(b []byte, v Unmarshaler) error {
	rest, err := Unmarshal(b, v)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(rest))
	}
	return nil
}
