// Command annealtsp solves travelling-salesman instances by simulated annealing.
//
//	annealtsp solve --cities 100 --kernel reversion --iterations 200000
//	annealtsp solve --points cities.csv --chains 4 --stats
//	annealtsp runs --limit 10
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
