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
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-bitvec/pkg/bitvec"
	"github.com/consensys/go-bitvec/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// parseLiterals parses one or more literals, reporting the first failure.
func parseLiterals(args []string) ([]bitvec.BitVector, error) {
	var vecs = make([]bitvec.BitVector, len(args))
	//
	for i, arg := range args {
		x, err := bitvec.Parse(arg)
		if err != nil {
			return nil, err
		}
		//
		log.Debugf("parsed %s as %s", arg, x.String())
		//
		vecs[i] = x
	}
	//
	return vecs, nil
}

// parseBase checks that a base flag names one of the literal bases.
func parseBase(base string) (byte, error) {
	switch base {
	case "b", "o", "d", "h":
		return base[0], nil
	default:
		return 0, fmt.Errorf("unknown base \"%s\" (expected b, o, d or h)", base)
	}
}

// writeSyntaxError writes a syntax error to the given output, with the
// offending portion of the literal highlighted.  This returns false (writing
// nothing) for any other kind of error.
func writeSyntaxError(out io.Writer, err error) bool {
	var serr *source.SyntaxError
	//
	if !errors.As(err, &serr) {
		return false
	}
	//
	fmt.Fprintf(out, "%s: %s\n", serr.Text(), serr.Message())
	fmt.Fprintln(out, serr.Text())
	fmt.Fprintln(out, serr.Highlight())
	//
	return true
}

// exitOnError reports an error (if there is one) and exits.
func exitOnError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	} else if !writeSyntaxError(cmd.ErrOrStderr(), err) {
		log.Error(err)
	}
	//
	os.Exit(2)
}
