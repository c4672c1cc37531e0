// Command demo walks the container through its growth schedule and prints a
// YAML snapshot of the resulting shape.
package main

import (
	"fmt"
	"os"

	"github.com/comalice/vectorx"
	"gopkg.in/yaml.v3"
)

func main() {
	n := 1000

	v := vectorx.New[int]()
	lastCap := -1
	for i := 0; i < n; i++ {
		if err := v.PushBack(i); err != nil {
			fmt.Fprintf(os.Stderr, "push %d: %v\n", i, err)
			os.Exit(1)
		}
		if v.Cap() != lastCap {
			fmt.Printf("len=%4d -> cap=%4d\n", v.Len(), v.Cap())
			lastCap = v.Cap()
		}
	}

	v.Erase(100, n-100)
	if err := v.ShrinkToFit(); err != nil {
		fmt.Fprintf(os.Stderr, "shrink: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(v.Stats())
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("---\n%s", out)
}
