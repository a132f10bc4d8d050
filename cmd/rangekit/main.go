// Command rangekit expands, tests and samples inclusive numeric bounds.
//
//	rangekit seq 1 6 --step 2          # 1 3 5
//	rangekit admit 5 1 3               # true
//	rangekit sample 1 6 -n 3 --seed 7  # three die rolls
//	rangekit string 12                 # [a-zA-Z0-9]{12}
package main

import (
	"os"

	"github.com/katalvlaran/numrange/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
