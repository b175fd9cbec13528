// Command jobimport loads jobs from a CSV or XLSX file into the staffing store.
//
//	jobimport create --file jobs.csv
//	jobimport update --file jobs.xlsx
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(openStore).Execute(); err != nil {
		os.Exit(1)
	}
}
