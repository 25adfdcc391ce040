package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rachcampitos/taringuita-inventory/internal"
	"github.com/rachcampitos/taringuita-inventory/internal/config"
	"github.com/rachcampitos/taringuita-inventory/internal/pipeline"
	"github.com/rachcampitos/taringuita-inventory/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "extract":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.WorkbookPath, "master inventory workbook (.xlsx)")
		output := fs.String("output", cfg.OutputPath, "output json path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input or EXCEL_PATH is required"))
		}

		result, err := pipeline.ExtractWorkbookFile(*input, pipeline.Sheets)
		must(err)
		doc := pipeline.BuildDocument(result, pipeline.Sheets)
		must(pipeline.WriteDocument(doc, *output))

		recordRun(cfg.DBPath, *input, *output, doc)

		pipeline.PrintSummary(doc, *output, pipeline.Sheets)
	case "runs:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 10, "max runs to list")
		_ = fs.Parse(os.Args[2:])
		db := mustOpenDB(cfg.DBPath)
		defer db.Close()
		if last, err := db.GetMetadata("extract.last_success"); err == nil && last != nil {
			fmt.Printf("last successful extract: %s\n", *last)
		}
		runs, err := db.ListRuns(*limit)
		must(err)
		if len(runs) == 0 {
			fmt.Println("no recorded runs")
			return
		}
		for _, run := range runs {
			fmt.Printf("#%d %s products=%d families=%d source=%s\n",
				run.ID, run.CreatedAt, run.TotalProducts, run.TotalFamilies, run.SourcePath)
		}
	case "runs:diff":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		from := fs.Int("from", 0, "older run id")
		to := fs.Int("to", 0, "newer run id")
		_ = fs.Parse(os.Args[2:])
		db := mustOpenDB(cfg.DBPath)
		defer db.Close()
		if *from == 0 || *to == 0 {
			ids, err := db.LatestRunIDs(2)
			must(err)
			if len(ids) < 2 {
				must(fmt.Errorf("need two recorded runs, or explicit --from and --to"))
			}
			if *to == 0 {
				*to = ids[0]
			}
			if *from == 0 {
				*from = ids[1]
			}
		}
		for _, id := range []int{*from, *to} {
			run, err := db.GetRun(id)
			must(err)
			if run == nil {
				must(fmt.Errorf("run #%d not found", id))
			}
		}
		older, err := db.GetRunProducts(*from)
		must(err)
		newer, err := db.GetRunProducts(*to)
		must(err)
		diff := pipeline.DiffProducts(older, newer)
		fmt.Printf("run #%d -> #%d: %d added, %d removed, %d changed\n",
			*from, *to, len(diff.Added), len(diff.Removed), len(diff.Changed))
		for _, p := range diff.Added {
			fmt.Printf("  + %s %s\n", p.Code, p.Name)
		}
		for _, p := range diff.Removed {
			fmt.Printf("  - %s %s\n", p.Code, p.Name)
		}
		for _, c := range diff.Changed {
			fmt.Printf("  ~ %s %s\n", c.After.Code, c.After.Name)
		}
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		runID := fs.Int("runId", 0, "run id, defaults to the latest")
		out := fs.String("out", filepath.Join(cfg.ExportDir, "products-review.xlsx"), "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		db := mustOpenDB(cfg.DBPath)
		defer db.Close()
		if *runID == 0 {
			ids, err := db.LatestRunIDs(1)
			must(err)
			if len(ids) == 0 {
				must(fmt.Errorf("no recorded runs"))
			}
			*runID = ids[0]
		}
		products, err := db.GetRunProducts(*runID)
		must(err)
		if len(products) == 0 {
			must(fmt.Errorf("no products for runId=%d", *runID))
		}
		must(pipeline.ExportProductsToXLSX(products, *out))
		fmt.Printf("exported %d products to %s\n", len(products), *out)
	default:
		usage()
		os.Exit(1)
	}
}

// recordRun appends the run to the local history; failures only warn.
func recordRun(dbPath, input, output string, doc internal.SeedDocument) {
	db, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run history disabled: %v\n", err)
		return
	}
	defer db.Close()

	if _, err := db.InsertRun(uuid.NewString(), input, output, doc); err != nil {
		fmt.Fprintf(os.Stderr, "warning: run history not recorded: %v\n", err)
		return
	}
	_ = db.SetMetadata("extract.last_success", time.Now().UTC().Format(time.RFC3339))
}

func mustOpenDB(path string) *storage.DB {
	db, err := storage.Open(path)
	must(err)
	return db
}

func usage() {
	fmt.Println("usage: taringuita <command>")
	fmt.Println("commands:")
	fmt.Println("  extract [--input=master.xlsx] [--output=./data/products-data.json]")
	fmt.Println("  runs:list [--limit=10]")
	fmt.Println("  runs:diff [--from=1] [--to=2]")
	fmt.Println("  export:xlsx [--runId=1] [--out=./out/products-review.xlsx]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
