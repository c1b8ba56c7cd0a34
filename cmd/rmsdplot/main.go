// rmsdplot renders the Root Mean Square Deviation (RMSD) values of a
// molecular dynamics trajectory, read from a whitespace-delimited .dat
// file, as a 2-D line plot.
//
// Usage:
//
//	rmsdplot --title "RMSD: hsp90" -o results/rmsd_hsp90.svg rmsd_hsp90.dat
//	rmsdplot formats
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
