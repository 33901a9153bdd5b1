package main

import (
	"code-racer/repositories"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	DBPath string `envconfig:"INSPECT_DB_PATH"`
	// INSPECT_COLOURS colours the phase column
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	dbPath := flag.String("db", config.DBPath, "Path to badger DB")
	colours := flag.Bool("colours", config.Colours, "Colour the phase column")
	flag.Parse()
	if *dbPath == "" {
		log.Fatal("No database path, set INSPECT_DB_PATH or -db")
	}

	// Read-only, the coordinator may hold the lock
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewRaceRepository(db, logs.GetLoggerFromString("ERROR"))
	records, err := repository.ListRaces()
	if err != nil {
		log.Fatal("Error while listing races: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Race", "Phase", "Started at", "Ended at", "Duration"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, record := range records {
		table.Append([]string{
			string(record.ID),
			phase(record, *colours),
			formatTime(record.StartedAt),
			formatTime(record.EndedAt),
			formatDuration(record.Duration()),
		})
	}
	table.Render()
	fmt.Printf("\n%d race(s)\n", len(records))
}

func phase(record repositories.RaceRecord, colours bool) string {
	p := record.Phase()
	if !colours {
		return p
	}
	switch p {
	case "finished":
		return color.Green.Render(p)
	case "running":
		return color.Yellow.Render(p)
	default:
		return color.New(color.FgRed, color.OpBold).Render(p)
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return d.Round(time.Millisecond).String()
}
