// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package typeutil

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/wdamron/catinfer/types"
)

// ErrEngineDefect is wrapped by errors which indicate that the constraint store reached a state it
// should never reach. An inference pass which fails with such an error must be discarded.
var ErrEngineDefect = errors.New("Internal inference error")

var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

// UnsupportedPairingError is returned when the resolver meets two kinds outside of its closed set of cases.
type UnsupportedPairingError struct {
	Left, Right types.Kind
}

func (e *UnsupportedPairingError) Error() string {
	return fmt.Sprintf("Unsupported kinds %s:%s and %s:%s\n%s",
		kindLabel(e.Left), kindName(e.Left), kindLabel(e.Right), kindName(e.Right),
		dumper.Sdump(e.Left, e.Right))
}

func (e *UnsupportedPairingError) Unwrap() error { return ErrEngineDefect }

func kindName(k types.Kind) string {
	if k == nil {
		return "nil"
	}
	return k.KindName()
}

func kindLabel(k types.Kind) string {
	if k == nil {
		return "<nil>"
	}
	return k.String()
}

func defectf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrEngineDefect}, args...)...)
}
