// Copyright (C) 2024 The jtok Authors. All Rights Reserved.

package path_test

import (
	"fmt"
	"log"

	"github.com/jtok-dev/jtok/ast"
	"github.com/jtok-dev/jtok/path"
)

func ExampleGet() {
	v, err := ast.Parse(`{"server": {"ports": [8080, 8443], "tls": true}}`)
	if err != nil {
		log.Fatalf("Parse failed: %v", err)
	}

	port, _ := path.GetNumber(v, "server", "ports", -1)
	tls, _ := path.GetBool(v, "server", "tls")
	fmt.Println(port, tls)
	// Output:
	// 8443 true
}
