package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"PackageExpress/internal/calculator"
	"PackageExpress/internal/display"
	"PackageExpress/internal/input"
	"PackageExpress/internal/logx"
	"PackageExpress/internal/model"
	"PackageExpress/internal/recorder"
	"PackageExpress/internal/validation"
)

const (
	WeightPrompt = "Please enter the package weight:"
	WidthPrompt  = "Please enter the package width:"
	HeightPrompt = "Please enter the package height:"
	LengthPrompt = "Please enter the package length:"
)

// Workflow runs one quoting session: weight, dimensions, price.
type Workflow struct {
	Input      input.Source
	Validator  validation.Validator
	Calculator calculator.CostCalculator
	Recorder   recorder.Recorder
	Out        io.Writer
	Log        *slog.Logger
}

// New creates a Workflow. A nil recorder or logger is replaced with a no-op or the default logger.
func New(src input.Source, v validation.Validator, calc calculator.CostCalculator, rec recorder.Recorder, out io.Writer, log *slog.Logger) *Workflow {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Workflow{
		Input:      src,
		Validator:  v,
		Calculator: calc,
		Recorder:   rec,
		Out:        out,
		Log:        log.With("component", "workflow"),
	}
}

// Run executes the session. A validation rejection is a normal outcome and
// returns a nil error; errors come only from reading input.
func (w *Workflow) Run(ctx context.Context) (model.Outcome, error) {
	w.println(display.WelcomeMessage)

	var pkg model.Package
	var err error

	if pkg.Weight, err = w.Input.Number(ctx, WeightPrompt); err != nil {
		return "", fmt.Errorf("read weight: %w", err)
	}
	if res := w.Validator.ValidateWeight(pkg.Weight); !res.Valid {
		return w.reject(model.OutcomeTooHeavy, pkg, res.Message), nil
	}

	if pkg.Width, err = w.Input.Number(ctx, WidthPrompt); err != nil {
		return "", fmt.Errorf("read width: %w", err)
	}
	if pkg.Height, err = w.Input.Number(ctx, HeightPrompt); err != nil {
		return "", fmt.Errorf("read height: %w", err)
	}
	if pkg.Length, err = w.Input.Number(ctx, LengthPrompt); err != nil {
		return "", fmt.Errorf("read length: %w", err)
	}
	if res := w.Validator.ValidateDimensions(pkg.Dimensions); !res.Valid {
		return w.reject(model.OutcomeTooBig, pkg, res.Message), nil
	}

	quote := model.Quote{Package: pkg, Cost: w.Calculator.CalculateShippingCost(pkg)}
	w.println(display.FormatQuote(quote))
	w.println(display.ThankYouMessage)

	if err := w.Recorder.RecordQuote(&recorder.QuoteEvent{Quote: quote}); err != nil {
		w.Log.Warn("record quote failed", logx.Error(err))
	}
	return model.OutcomeQuoted, nil
}

func (w *Workflow) reject(outcome model.Outcome, pkg model.Package, message string) model.Outcome {
	w.println(message)
	if err := w.Recorder.RecordRejection(&recorder.RejectionEvent{
		Outcome: outcome,
		Package: pkg,
		Message: message,
	}); err != nil {
		w.Log.Warn("record rejection failed", logx.Error(err))
	}
	return outcome
}

func (w *Workflow) println(line string) {
	fmt.Fprintln(w.Out, line)
}
