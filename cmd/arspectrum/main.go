// Command arspectrum simulates autoregressive processes, estimates their
// power spectral density, and compares the estimates with the closed-form
// spectra.
//
// Usage:
//
//	arspectrum [flags]
//
// Without -coeffs it runs white noise, AR(1) a=0.7 and AR(2) (0.3, -0.6).
// Each -coeffs flag adds a process; coefficients are comma separated, most
// recent lag first, and an empty value means white noise.
//
// Examples:
//
//	arspectrum
//	arspectrum -samples 4096 -num 4096 -window 41
//	arspectrum -coeffs 0.9 -coeffs 0.5,-0.25 -method blackman
//	arspectrum -bins 8
//	arspectrum -list -window 201
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-psd/dsp/signal"
	"github.com/cwbudde/algo-psd/dsp/spectrum"
	"github.com/cwbudde/algo-psd/dsp/window"
	"github.com/cwbudde/algo-psd/measure/psdcheck"
)

// coeffList collects repeated -coeffs flags.
type coeffList [][]float64

func (c *coeffList) String() string {
	parts := make([]string, len(*c))
	for i, cs := range *c {
		parts[i] = formatCoeffs(cs)
	}
	return strings.Join(parts, " ")
}

func (c *coeffList) Set(v string) error {
	cs, err := parseCoeffs(v)
	if err != nil {
		return err
	}
	*c = append(*c, cs)
	return nil
}

type options struct {
	samples   int
	num       int
	window    int
	method    string
	seed      uint64
	tolerance float64
	bins      int
	raw       bool
	normalize string
	list      bool
	verbose   bool
	coeffs    coeffList
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()

	if opts.list {
		return printWindows(stdout, opts.window, opts.num)
	}

	scenarios, err := buildScenarios(opts)
	if err != nil {
		return err
	}

	g := signal.NewGenerator(signal.WithSeed(opts.seed), signal.WithLogger(logger))

	outcomes, err := psdcheck.RunAll(g, scenarios, logger)
	if err != nil {
		return err
	}

	if err := printSummary(stdout, outcomes); err != nil {
		return err
	}

	if opts.bins > 0 {
		for _, o := range outcomes {
			if err := printBins(stdout, o, opts.bins); err != nil {
				return err
			}
		}
	}

	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("arspectrum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.samples, "samples", 500, "samples per realization")
	fs.IntVar(&opts.num, "num", 2048, "transform length; the grid has num/2+1 bins")
	fs.IntVar(&opts.window, "window", 201, "smoothing kernel length in bins (odd)")
	fs.StringVar(&opts.method, "method", "hamming", "smoothing kernel: hamming, hanning, bartlett, blackman, flat")
	fs.Uint64Var(&opts.seed, "seed", 1, "innovation seed")
	fs.Float64Var(&opts.tolerance, "tolerance", 0.2, "relative error counted as a match")
	fs.IntVar(&opts.bins, "bins", 0, "print this many grid rows per process (at least 2: first and last bin)")
	fs.BoolVar(&opts.raw, "raw", false, "disable smoothing")
	fs.StringVar(&opts.normalize, "normalize", "samples", "periodogram divisor: samples or transform")
	fs.BoolVar(&opts.list, "list", false, "list smoothing kernels and exit")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.Var(&opts.coeffs, "coeffs", "comma-separated AR coefficients, most recent lag first (repeatable)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: arspectrum [flags]\n\n")
		fmt.Fprintf(stderr, "Compares periodogram estimates of AR processes with their theoretical spectra.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}

// newLogger builds a development console logger on w. Without verbose only
// warnings are shown.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core, zap.Development())
}

func buildScenarios(opts options) ([]psdcheck.Scenario, error) {
	var smoothing spectrum.SmoothingConfig
	if opts.raw {
		smoothing = spectrum.DefaultSmoothingConfig()
	} else {
		var err error
		smoothing, err = spectrum.NewSmoothingConfig(opts.window, opts.method)
		if err != nil {
			return nil, err
		}
	}

	norm, err := spectrum.ParseNormalization(opts.normalize)
	if err != nil {
		return nil, err
	}

	check := psdcheck.DefaultConfig()
	check.Tolerance = opts.tolerance

	scenarios := psdcheck.DefaultScenarios()
	if len(opts.coeffs) > 0 {
		scenarios = scenarios[:0]
		for _, cs := range opts.coeffs {
			scenarios = append(scenarios, psdcheck.Scenario{
				Name:         fmt.Sprintf("AR(%d)", len(cs)),
				Coefficients: cs,
			})
		}
	}

	for i := range scenarios {
		scenarios[i].Samples = opts.samples
		scenarios[i].Num = opts.num
		scenarios[i].Smoothing = smoothing
		scenarios[i].Normalization = norm
		scenarios[i].Check = check
	}

	return scenarios, nil
}

func printSummary(w io.Writer, outcomes []psdcheck.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Process\tCoefficients\tStationary\tVar sample\tVar theory\tFitted\tRaw err\tEstimate err\tWithin tol\tLog RMS [dB]\tPeak [rad]\n")
	fmt.Fprintf(tw, "-------\t------------\t----------\t----------\t----------\t------\t-------\t------------\t----------\t------------\t----------\n")

	for _, o := range outcomes {
		best := o.Best()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.4f\t%.4f\t%s\t%.3f\t%.3f\t%.1f%%\t%.2f\t%.4f\n",
			o.Scenario.Name,
			formatCoeffs(o.Scenario.Coefficients),
			yesNo(o.Stationary == nil),
			o.SampleVariance,
			o.TheoreticalVariance,
			formatCoeffs(o.Fitted),
			o.RawResult.MeanRelError,
			best.MeanRelError,
			100*best.WithinTolerance,
			best.LogRatioRMS_dB,
			o.Shape.PeakFreq,
		)
	}

	return tw.Flush()
}

func printBins(w io.Writer, o psdcheck.Outcome, rows int) error {
	fmt.Fprintf(w, "\n%s %s\n", o.Scenario.Name, o.Scenario.Smoothing)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFreq [rad]\tRaw\tSmoothed\tTheory\n")

	for _, k := range binRows(len(o.Freqs), rows) {
		writeBinRow(tw, o, k)
	}

	return tw.Flush()
}

// binRows picks rows evenly spaced bin indices out of n, always including
// the first and last bin. rows is clamped to [2, n].
func binRows(n, rows int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{0}
	}

	rows = min(max(rows, 2), n)
	out := make([]int, rows)
	for i := range out {
		out[i] = (i*(n-1) + (rows-1)/2) / (rows - 1)
	}

	return out
}

func writeBinRow(w io.Writer, o psdcheck.Outcome, k int) {
	smoothed := "-"
	if o.Smoothed != nil {
		smoothed = strconv.FormatFloat(o.Smoothed[k], 'f', 5, 64)
	}
	fmt.Fprintf(w, "%d\t%.4f\t%.5f\t%s\t%.5f\n", k, o.Freqs[k], o.Raw[k], smoothed, o.Theory[k])
}

func printWindows(w io.Writer, length, num int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tLength\tENBW [bins]\tSidelobe [dB]\tVariance ratio\tEquivalent bins\tFWHM [bins]\tResolution [rad]\n")
	fmt.Fprintf(tw, "------\t------\t-----------\t-------------\t--------------\t---------------\t-----------\t----------------\n")

	for _, t := range window.Types() {
		kernel, err := window.Kernel(t, length)
		if err != nil {
			return err
		}

		info := window.Info(t)
		a := window.Analyze(kernel)
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.1f\t%.5f\t%.1f\t%.1f\t%.4f\n",
			t, length, info.ENBW, info.HighestSidelobe,
			a.VarianceRatio, a.EquivalentBins, a.HalfHeightWidth, a.ResolutionRad(num))
	}

	return tw.Flush()
}

func parseCoeffs(v string) ([]float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return []float64{}, nil
	}

	fields := strings.Split(v, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", f, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func formatCoeffs(cs []float64) string {
	if len(cs) == 0 {
		return "-"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = strconv.FormatFloat(c, 'f', 3, 64)
	}
	return strings.Join(parts, ",")
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
