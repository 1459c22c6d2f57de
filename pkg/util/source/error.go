// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"fmt"
	"strings"
)

// SyntaxError is a structured error which retains the span within the
// original text where the error arose, along with an error message.
type SyntaxError struct {
	// Text being parsed when the error arose.
	text []rune
	// Span within the text where error arose.
	span Span
	// Error message being reported
	msg string
}

// NewSyntaxError constructs a syntax error over a given span of some text.
func NewSyntaxError(text []rune, span Span, msg string) *SyntaxError {
	return &SyntaxError{text, span, msg}
}

// Text returns the text in which this error arose.
func (p *SyntaxError) Text() string {
	return string(p.text)
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}

// Highlight returns a line of text which places carets underneath the span of
// the original text covered by this error.  A span of zero length (e.g. at the
// end of the text) is still highlighted with a single caret.
func (p *SyntaxError) Highlight() string {
	var (
		start = min(p.span.Start(), len(p.text))
		n     = max(1, p.span.Length())
	)
	//
	return strings.Repeat(" ", start) + strings.Repeat("^", n)
}
