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

package types

// Reasons attached to a KindMismatchError.
const (
	MismatchSubtype = "incompatible types"
	MismatchArity   = "stacks differ in size"
)

// KindMismatchError is returned when two kinds cannot be unified. The error is recoverable:
// it describes the input, not the state of the inference engine.
type KindMismatchError struct {
	Left, Right Kind
	Reason      string
}

func (e *KindMismatchError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = MismatchSubtype
	}
	return "Failed to unify " + mismatchOperand(e.Left) + " with " + mismatchOperand(e.Right) + ": " + reason
}

func mismatchOperand(k Kind) string {
	if v, ok := k.(*Vector); ok {
		return "[" + VectorString(v) + "]"
	}
	return KindString(k)
}

func NewKindMismatch(left, right Kind, reason string) *KindMismatchError {
	return &KindMismatchError{Left: left, Right: right, Reason: reason}
}
