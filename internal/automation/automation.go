package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/export"
)

// Scenario is a scripted batch of exports.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Jobs        []Job  `yaml:"jobs"`
}

// Job renders one target. Format is "png" (one frame at Step) or "gif"
// (one full cycle); an empty Output picks a name from the target.
type Job struct {
	Target string `yaml:"target"`
	Reveal bool   `yaml:"reveal"`
	Format string `yaml:"format"`
	Step   int    `yaml:"step"`
	Size   int    `yaml:"size"`
	Stride int    `yaml:"stride"`
	Output string `yaml:"output"`
}

// Result is the outcome of one job.
type Result struct {
	Job    Job
	Output string
	Frames int
	Err    error
}

// Options controls RunScenario. Zero values pick one worker, the current
// directory and the export defaults.
type Options struct {
	Dir     string
	Workers int
	DelayCS int
	Logger  *log.Logger
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	for i := range sc.Jobs {
		j := &sc.Jobs[i]
		if j.Format == "" {
			j.Format = "png"
		}
		if j.Format != "png" && j.Format != "gif" {
			return nil, fmt.Errorf("scenario: job %d: unknown format %q", i+1, j.Format)
		}
		if j.Step < 0 || j.Step >= 360 {
			return nil, fmt.Errorf("scenario: job %d: step %d out of range 0-359", i+1, j.Step)
		}
	}
	return &sc, nil
}

// RunScenario executes the jobs concurrently, at most opts.Workers at a
// time. Results keep the job order. The error joins every failed job.
func RunScenario(ctx context.Context, sc *Scenario, opts Options) ([]Result, error) {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(sc.Jobs))
	sem := make(chan struct{}, opts.Workers)

	var wg sync.WaitGroup
	for i, job := range sc.Jobs {
		wg.Add(1)
		go func(idx int, job Job) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[idx] = Result{Job: job, Err: ctx.Err()}
				return
			}
			defer func() { <-sem }()

			results[idx] = runJob(ctx, job, opts)
			if err := results[idx].Err; err != nil {
				opts.Logger.Error("job failed", "job", idx+1, "target", job.Target, "err", err)
				return
			}
			opts.Logger.Info("job done", "job", idx+1, "target", job.Target, "output", results[idx].Output, "frames", results[idx].Frames)
		}(i, job)
	}
	wg.Wait()

	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("job %d (%s): %w", i+1, r.Job.Target, r.Err))
		}
	}
	return results, errors.Join(errs...)
}

func runJob(ctx context.Context, job Job, opts Options) Result {
	res := Result{Job: job}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	in, err := Resolve(job.Target, job.Reveal)
	if err != nil {
		res.Err = err
		return res
	}
	res.Output = filepath.Join(opts.Dir, outputName(job))

	res.Err = export.WriteFile(res.Output, func(w io.Writer) error {
		if job.Format == "gif" {
			n, err := export.GIF(w, in, export.GIFOptions{Stride: job.Stride, DelayCS: opts.DelayCS, Size: job.Size})
			res.Frames = n
			return err
		}
		res.Frames = 1
		return export.PNG(w, in, anim.Step(job.Step), job.Size)
	})
	return res
}

func outputName(job Job) string {
	if job.Output != "" {
		return job.Output
	}
	name := strings.NewReplacer("/", "_", " ", "_").Replace(job.Target)
	if job.Reveal {
		name += "_solved"
	}
	if job.Format == "png" {
		name += fmt.Sprintf("_%03d", job.Step)
	}
	return name + "." + job.Format
}
