package main

import (
	"context"
	"fmt"
	"os"

	"iconforge/internal/bootstrap"
)

func main() {
	if err := bootstrap.Run(context.Background(), os.Args[1:]); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "iconforge failed: %v\n", err)
		os.Exit(1)
	}
}
