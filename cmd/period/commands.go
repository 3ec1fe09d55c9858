package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/warp/period-engine/period"
)

// register adds the period subcommands.
func register(c *subcommands.Commander) {
	c.Register(&startCmd{}, "boundaries")
	c.Register(&endCmd{}, "boundaries")
	c.Register(&rangeCmd{}, "boundaries")
	c.Register(&unitsCmd{}, "")
}

// boundaryFlags are shared by every command that resolves a period.
type boundaryFlags struct {
	start string
	end   string
	tz    string

	out io.Writer
	now func() time.Time
}

func (b *boundaryFlags) register(f *flag.FlagSet) {
	f.StringVar(&b.start, "start", "", "Start date (RFC 3339 or YYYY-MM-DD)")
	f.StringVar(&b.end, "end", "", "End date (RFC 3339 or YYYY-MM-DD)")
	f.StringVar(&b.tz, "tz", "Local", "Time zone for bare dates and now")
}

func (b *boundaryFlags) stdout() io.Writer {
	if b.out != nil {
		return b.out
	}
	return os.Stdout
}

// resolver builds a resolver from the flags and the remaining arguments,
// which are joined so that `period start 3 months` works without quoting.
func (b *boundaryFlags) resolver(f *flag.FlagSet) (*period.Resolver, error) {
	if f.NArg() == 0 {
		return nil, fmt.Errorf("missing period expression")
	}
	loc, err := time.LoadLocation(b.tz)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", b.tz, err)
	}

	r := period.NewResolver(strings.Join(f.Args(), " "))
	r.Clock = func() time.Time {
		if b.now != nil {
			return b.now()
		}
		return time.Now().In(loc)
	}

	if b.start != "" {
		t, err := period.ParseInstant(b.start, loc)
		if err != nil {
			return nil, err
		}
		r.SetStartDate(t)
	}
	if b.end != "" {
		t, err := period.ParseInstant(b.end, loc)
		if err != nil {
			return nil, err
		}
		r.SetEndDate(t)
	}
	return r, nil
}

// exitStatus reports err on stderr and picks the exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if period.IsClientError(err) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// =============================================================================
// start / end
// =============================================================================

type startCmd struct{ boundaryFlags }

func (*startCmd) Name() string     { return "start" }
func (*startCmd) Synopsis() string { return "print the start of a period" }
func (*startCmd) Usage() string {
	return `period start [-end <date>] [-start <date>] [-tz <zone>] <expression>

  Prints the start of the period ending at -end (defaults to now).
  For "all" this is always the UNIX epoch.
`
}
func (c *startCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *startCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.resolver(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	t, err := r.StartDate()
	if err != nil {
		return exitStatus(err)
	}
	fmt.Fprintln(c.stdout(), t.Format(time.RFC3339))
	return subcommands.ExitSuccess
}

type endCmd struct{ boundaryFlags }

func (*endCmd) Name() string     { return "end" }
func (*endCmd) Synopsis() string { return "print the end of a period" }
func (*endCmd) Usage() string {
	return `period end [-start <date>] [-end <date>] [-tz <zone>] <expression>

  Prints the end of the period starting at -start (defaults to the UNIX epoch).
`
}
func (c *endCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *endCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.resolver(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	t, err := r.EndDate()
	if err != nil {
		return exitStatus(err)
	}
	fmt.Fprintln(c.stdout(), t.Format(time.RFC3339))
	return subcommands.ExitSuccess
}

// =============================================================================
// range
// =============================================================================

type rangeCmd struct{ boundaryFlags }

func (*rangeCmd) Name() string     { return "range" }
func (*rangeCmd) Synopsis() string { return "print both boundaries of a period and its length in days" }
func (*rangeCmd) Usage() string {
	return `period range [-start <date> | -end <date>] [-tz <zone>] <expression>

  Prints "<start> <end> <days>" separated by tabs.
`
}
func (c *rangeCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *rangeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.resolver(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	w, err := r.Resolve()
	if err != nil {
		return exitStatus(err)
	}
	fmt.Fprintf(c.stdout(), "%s\t%s\t%s\n", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339), w.Days())
	return subcommands.ExitSuccess
}

// =============================================================================
// units
// =============================================================================

type unitsCmd struct{ out io.Writer }

func (*unitsCmd) Name() string             { return "units" }
func (*unitsCmd) Synopsis() string         { return "list the accepted period units" }
func (*unitsCmd) Usage() string            { return "period units\n" }
func (*unitsCmd) SetFlags(f *flag.FlagSet) {}

func (c *unitsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	for _, u := range period.Units() {
		fmt.Fprintln(out, u)
	}
	return subcommands.ExitSuccess
}
