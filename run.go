package probeplot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/google/uuid"
)

// ConditionSpec describes one condition of a run.
type ConditionSpec struct {
	Path  string
	Title string
	Label string

	// MinSize overrides RunConfig.MinSize for this condition if not nil.
	MinSize *float64
}

// RunConfig is the complete, explicit configuration of one run.
type RunConfig struct {
	Conditions []ConditionSpec
	OutputDir  string

	// MinSize restricts the size samples to valid bubbles larger than
	// MinSize µm. Zero disables the restriction.
	MinSize float64

	// Overwrite allows replacing figures from an earlier run.
	Overwrite bool

	Theme Theme
}

// Validate checks c and returns an error wrapping ErrInvalidConfig.
func (c RunConfig) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	if len(c.Conditions) == 0 {
		return invalid("no conditions")
	}
	if c.OutputDir == "" {
		return invalid("empty output directory")
	}
	if c.MinSize < 0 {
		return invalid("negative min_size %g", c.MinSize)
	}
	for i, cs := range c.Conditions {
		switch {
		case cs.Path == "":
			return invalid("condition %d: empty path", i)
		case cs.Title == "":
			return invalid("condition %d: empty title", i)
		case cs.Label == "":
			return invalid("condition %d: empty label", i)
		case cs.MinSize != nil && *cs.MinSize < 0:
			return invalid("condition %d: negative min_size %g", i, *cs.MinSize)
		}
	}
	if err := c.Theme.Validate(); err != nil {
		return invalid("theme: %v", err)
	}
	return nil
}

// Recorder is notified about the progress of a run.
type Recorder interface {
	ConditionProcessed(cond *Condition, s Summary)
	ConditionFailed(ordinal int, label string, err error)
	ArtifactWritten(a Artifact)
}

type nopRecorder struct{}

func (nopRecorder) ConditionProcessed(*Condition, Summary) {}
func (nopRecorder) ConditionFailed(int, string, error) {}
func (nopRecorder) ArtifactWritten(Artifact) {}

// ConditionResult is the outcome of one successfully processed condition.
type ConditionResult struct {
	Ordinal  int
	Label    string
	Title    string
	Summary  Summary
	Artifact Artifact
}

// Result of a run.
type Result struct {
	RunID      string
	Conditions []ConditionResult
	Artifacts  []Artifact
	Failed     int

	// Boxed lists the ordinals of the conditions shown in the boxplots.
	// These are exactly the ordinals in Conditions.
	Boxed []int
}

// Pipeline reads, summarizes and plots all conditions of a run, one after
// the other.
type Pipeline struct {
	Config RunConfig

	// Log receives progress and failures. Nil means the apex/log default.
	Log log.Interface

	// Report receives the summary blocks. Nil means os.Stdout.
	Report io.Writer

	// Metrics is optional.
	Metrics Recorder
}

// Run processes every condition in configuration order, then renders the
// boxplots of all conditions which succeeded. A failing condition does not
// stop the run; all failures are returned joined, each as a
// *ConditionError.
func (p *Pipeline) Run() (*Result, error) {
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	result := &Result{RunID: uuid.NewString()}

	var logger log.Interface = log.Log
	if p.Log != nil {
		logger = p.Log
	}
	logger = logger.WithField("run", result.RunID)
	report := p.Report
	if report == nil {
		report = os.Stdout
	}
	var metrics Recorder = nopRecorder{}
	if p.Metrics != nil {
		metrics = p.Metrics
	}

	renderer := NewRenderer(p.Config.OutputDir, p.Config.Theme, p.Config.Overwrite)
	corpus := &Corpus{}
	var errs []error

	for i, cs := range p.Config.Conditions {
		cl := logger.WithFields(log.Fields{"condition": cs.Label, "path": cs.Path, "ordinal": i})
		cr, err := p.process(i, cs, renderer, corpus, report, metrics, cl)
		if err != nil {
			cl.WithError(err).WithField("reason", Reason(err)).Error("condition failed")
			metrics.ConditionFailed(i, cs.Label, err)
			errs = append(errs, &ConditionError{Ordinal: i, Label: cs.Label, Err: err})
			result.Failed++
			continue
		}
		metrics.ArtifactWritten(cr.Artifact)
		result.Conditions = append(result.Conditions, cr)
		result.Artifacts = append(result.Artifacts, cr.Artifact)
	}

	if corpus.Len() == 0 {
		logger.Warn("no condition succeeded, skipping boxplots")
		corpus.Seal()
		return result, errors.Join(errs...)
	}
	result.Boxed = append(result.Boxed, corpus.Ordinals...)
	boxes, err := renderer.Boxplots(corpus, len(p.Config.Conditions))
	for _, a := range boxes {
		metrics.ArtifactWritten(a)
		logger.WithFields(log.Fields{"kind": a.Kind, "file": a.Path}).Info("boxplot written")
	}
	result.Artifacts = append(result.Artifacts, boxes...)
	if err != nil {
		logger.WithError(err).Error("boxplots failed")
		errs = append(errs, fmt.Errorf("boxplots: %w", err))
	}
	return result, errors.Join(errs...)
}

// process handles one condition. The corpus only receives the sample once
// the distribution figure is written, so a failed condition never shows up
// in the boxplots.
func (p *Pipeline) process(ordinal int, spec ConditionSpec, r *Renderer, corpus *Corpus, report io.Writer, metrics Recorder, logger log.Interface) (ConditionResult, error) {
	events, err := ReadEvents(spec.Path)
	if err != nil {
		return ConditionResult{}, err
	}
	cond := &Condition{
		Ordinal: ordinal,
		Label:   spec.Label,
		Title:   spec.Title,
		Path:    spec.Path,
		Events:  events,
	}
	logger.WithField("events", len(events)).Debug("events loaded")

	minSize := p.Config.MinSize
	if spec.MinSize != nil {
		minSize = *spec.MinSize
	}
	part := Classify(cond.Events, minSize)
	summary, err := Summarize(cond.Events, part)
	if err != nil {
		return ConditionResult{}, err
	}
	logger.WithFields(log.Fields{
		"valid":    summary.Valid,
		"samples":  summary.SizeSamples,
		"min_size": minSize,
	}).Debug("events classified")

	sample, err := NewSample(cond, part.ValidSizes)
	if err != nil {
		return ConditionResult{}, err
	}
	if err := WriteReport(report, cond.Title, summary); err != nil {
		return ConditionResult{}, err
	}
	metrics.ConditionProcessed(cond, summary)

	artifact, err := r.Distribution(cond, part, summary)
	if err != nil {
		return ConditionResult{}, err
	}
	if err := corpus.Append(sample); err != nil {
		return ConditionResult{}, err
	}
	logger.WithFields(log.Fields{"file": artifact.Path, "rate": summary.ValidationRate()}).Info("condition done")

	return ConditionResult{
		Ordinal:  ordinal,
		Label:    cond.Label,
		Title:    cond.Title,
		Summary:  summary,
		Artifact: artifact,
	}, nil
}
