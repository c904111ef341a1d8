// pdage reads newline-separated fossil ages from stdin and describes
// the implied probability distribution of the clade's origination
// age.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/evolucionario/cladeage/age"
)

func main() {
	ages := readInput(os.Stdin)

	d, err := age.NewAgeDist(ages, age.Baseline{}, age.StraussSadler)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("N %d  oldest occurrence %.6g\n", len(ages), d.Oldest())
	fmt.Println()

	// Quantiles of the clade age under each model.
	models := []age.Model{age.StraussSadler, age.Beta, age.Solow}
	fmt.Printf("%8s", "")
	for _, m := range models {
		fmt.Printf(" %14s", m)
	}
	fmt.Println()
	for _, p := range []float64{0, 0.5, 0.75, 0.9, 0.95, 0.99} {
		fmt.Printf("%7g%%", p*100)
		for _, m := range models {
			q, err := age.Quantile(p, ages, age.Baseline{}, m)
			if err != nil {
				fmt.Printf(" %14s", "-")
				continue
			}
			fmt.Printf(" %14.6g", q)
		}
		fmt.Println()
	}
	fmt.Println()

	// Likelihood density of the clade age.
	curve, err := age.Density{}.From(ages)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i := 0; i < curve.Len(); i++ {
		fmt.Printf("%8.6g %.6g\n", curve.Ages[i], curve.Probs[i])
	}
}

func readInput(r io.Reader) (ages []float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		ages = append(ages, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
