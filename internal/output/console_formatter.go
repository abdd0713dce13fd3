package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/finsim/goal-simulator/internal/domain"
	"github.com/finsim/goal-simulator/pkg/money"
)

// ConsoleFormatter renders a concise human-readable summary: the headline
// metrics followed by a year-by-year percentile table. The table samples
// every 12th month, which is the resolution a funnel chart is usually drawn
// at anyway.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer

	unit := ""
	if result.InflationAdjusted {
		unit = " (today's money)"
	}

	fmt.Fprintf(&buf, "SIMULATION RESULTS%s\n", unit)
	fmt.Fprintln(&buf, "==================================================")
	fmt.Fprintf(&buf, "Paths: %d   Horizon: %d months   Seed: %d   Elapsed: %s\n",
		result.NumSimulations, result.Months, result.Seed, result.Elapsed)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Median final value:      %s\n", money.New(result.Headline.MedianFinalValue).Format())
	fmt.Fprintf(&buf, "Worst case (p10):        %s\n", money.New(result.Headline.WorstCase).Format())
	fmt.Fprintf(&buf, "Best case (p90):         %s\n", money.New(result.Headline.BestCase).Format())
	fmt.Fprintf(&buf, "Total invested:          %s\n", money.New(result.Headline.TotalInvested).Format())
	fmt.Fprintf(&buf, "Final value range:       %s .. %s\n",
		money.New(result.Headline.MinFinalValue).Format(),
		money.New(result.Headline.MaxFinalValue).Format())
	fmt.Fprintln(&buf)

	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tInvested\tp10\tp50\tp90\t")
	for m := 0; m <= result.Months; m += 12 {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			m/12,
			money.New(result.InvestedCapital[m]).Format(),
			money.New(result.PercentileCurves.P10[m]).Format(),
			money.New(result.PercentileCurves.P50[m]).Format(),
			money.New(result.PercentileCurves.P90[m]).Format())
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
