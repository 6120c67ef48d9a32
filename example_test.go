// Copyright 2026 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hideqr_test

import (
	"fmt"
	"log"

	"github.com/unixdj/hideqr"
	"github.com/unixdj/hideqr/detect"
)

func ExampleEncode() {
	sym, err := hideqr.Encode("HELLO", hideqr.H)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(sym.Version, sym.Size, sym.Capacity())
	// Output: 1 21 160
}

func ExampleSymbol_Embed() {
	sym, err := hideqr.Encode("HELLO", hideqr.H)
	if err != nil {
		log.Fatalln(err)
	}
	ov, err := sym.Embed("HI")
	if err != nil {
		log.Fatalln(err)
	}
	raw, err := detect.Stream(ov.Version(), ov.Black)
	if err != nil {
		log.Fatalln(err)
	}
	r := hideqr.NewReader(raw)
	fmt.Println(r.Len(), r.Read())
	// Output: 2 HI
}

func ExampleParseLevel() {
	l, err := hideqr.ParseLevel("q")
	fmt.Println(l, err)
	// Output: Q <nil>
}
