package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"arbeitszeit/config"
	"arbeitszeit/csvimport"
	"arbeitszeit/holiday"
	"arbeitszeit/timesheet"
	"arbeitszeit/view"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := &cli.App{
		Name:  "arbeitszeit",
		Usage: "Arbeitszeit-Export in einen Monatsbericht umwandeln",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML config",
				Value:   config.DefaultConfigPath(),
				EnvVars: []string{"ARBEITSZEIT_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			generateCommand,
			viewCommand,
			holidaysCommand,
			sendCommand,
		},
	}
	return app.Run(args)
}

var generateCommand = &cli.Command{
	Name:      "generate",
	Usage:     "Bericht aus einem CSV-Export erzeugen und versenden",
	ArgsUsage: "<export.csv>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "no-holidays", Usage: "do not insert public holidays"},
		&cli.BoolFlag{Name: "no-mail", Usage: "only write the spreadsheet"},
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "send without the confirmation screen"},
		&cli.BoolFlag{Name: "force", Usage: "send even if the month was already sent"},
		&cli.StringFlag{Name: "out", Usage: "output directory (defaults to output.dir)"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit("usage: arbeitszeit generate <export.csv>", 2)
		}
		d, err := newDeps(c.String("config"))
		if err != nil {
			return err
		}
		defer d.Close()

		sessions, err := csvimport.ParseFile(c.Args().First(), csvLayout(d.conf))
		if err != nil {
			return fmt.Errorf("read export: %w", err)
		}
		if len(sessions) == 0 {
			return fmt.Errorf("export %s contains no sessions", c.Args().First())
		}
		d.logger.Info("export parsed", "file", c.Args().First(), "sessions", len(sessions))

		var entries []timesheet.NonWorkdayEntry
		if d.conf.Holidays.Enabled && !c.Bool("no-holidays") {
			entries, err = d.calendar.NonWorkdays(c.Context, sessions[0].Date, sessions[len(sessions)-1].Date)
			if err != nil {
				return fmt.Errorf("fetch holidays: %w", err)
			}
		}

		rp, err := d.reporter.Generate(sessions, entries)
		if err != nil {
			return err
		}
		return d.deliver(c.Context, rp, deliverOptions{
			outDir: c.String("out"),
			noMail: c.Bool("no-mail"),
			yes:    c.Bool("yes"),
			force:  c.Bool("force"),
		})
	},
}

var viewCommand = &cli.Command{
	Name:      "view",
	Usage:     "gespeicherten Bericht anzeigen",
	ArgsUsage: "[yyyy-mm]",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: string(view.FormatTable), Usage: "table, csv, markdown or html"},
	},
	Action: func(c *cli.Context) error {
		format, err := view.ParseFormat(c.String("format"))
		if err != nil {
			return err
		}
		d, err := newDeps(c.String("config"))
		if err != nil {
			return err
		}
		defer d.Close()

		v := view.NewTableViewer(view.NewViewRepository(d.reporter), os.Stdout, format)
		return v.Do(c.Args().First())
	},
}

var holidaysCommand = &cli.Command{
	Name:      "holidays",
	Usage:     "Feiertage eines Jahres auflisten",
	ArgsUsage: "<yyyy>",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "month", Aliases: []string{"m"}, Usage: "only list this month (1-12)"},
	},
	Action: func(c *cli.Context) error {
		year, err := strconv.Atoi(c.Args().First())
		if err != nil {
			return cli.Exit("usage: arbeitszeit holidays <yyyy>", 2)
		}
		d, err := newDeps(c.String("config"))
		if err != nil {
			return err
		}
		defer d.Close()

		hs, err := d.holidays.Fetch(c.Context, year)
		if err != nil {
			return err
		}
		weekly, err := d.conf.Weekly()
		if err != nil {
			return err
		}
		renderHolidays(os.Stdout, hs, c.Int("month"), holiday.Credit(weekly))
		return nil
	},
}

var sendCommand = &cli.Command{
	Name:      "send",
	Usage:     "gespeicherten Bericht erneut versenden",
	ArgsUsage: "<yyyy-mm>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "send without the confirmation screen"},
		&cli.BoolFlag{Name: "force", Usage: "send even if the month was already sent"},
		&cli.StringFlag{Name: "out", Usage: "output directory (defaults to output.dir)"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit("usage: arbeitszeit send <yyyy-mm>", 2)
		}
		d, err := newDeps(c.String("config"))
		if err != nil {
			return err
		}
		defer d.Close()

		rp, err := view.NewViewRepository(d.reporter).GetReport(c.Args().First())
		if err != nil {
			return err
		}
		return d.deliver(c.Context, rp, deliverOptions{
			outDir: c.String("out"),
			yes:    c.Bool("yes"),
			force:  c.Bool("force"),
		})
	},
}

func csvLayout(conf *config.Config) csvimport.Layout {
	l := csvimport.DefaultLayout()
	if r := []rune(conf.CSV.Delimiter); len(r) == 1 {
		l.Delimiter = r[0]
	}
	l.DateLayout = conf.CSV.DateLayout
	l.TimeLayout = conf.CSV.TimeLayout
	l.BreakLayout = conf.CSV.BreakLayout
	l.DateColumn = conf.CSV.DateColumn
	l.StartColumn = conf.CSV.StartColumn
	l.EndColumn = conf.CSV.EndColumn
	l.BreakColumn = conf.CSV.BreakColumn
	return l
}
