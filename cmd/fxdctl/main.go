package main

import (
	"github.com/funcx-faas/fx-deploy/pkg/cli"
)

func main() {
	cli.Execute()
}
