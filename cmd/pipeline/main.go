package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"

	"go-maintenance-pipeline/internal/model"
	"go-maintenance-pipeline/internal/pipeline"
)

type options struct {
	Input             string `short:"i" long:"input" description:"CSV file path, or - for stdin (default: built-in sample fleet)"`
	OutputDir         string `short:"o" long:"output" description:"Directory for exported reports (reports are skipped when unset)"`
	ValidationWorkers int    `long:"validation-workers" default:"3" description:"Workers for the validation stage"`
	MetricsWorkers    int    `long:"metrics-workers" default:"2" description:"Workers for the metrics stage"`
	Timeout           string `long:"timeout" default:"5m" description:"Job timeout, e.g. 5m"`
	Quiet             bool   `short:"q" long:"quiet" description:"Suppress stage progress logging"`
}

// sampleData is the built-in demo fleet used when no input is given.
const sampleData = `machine_id,runtime_hours,vibration_level,temperature,maintenance_threshold,max_operating_hours,scaling_factor
M501,50,2,80,30,200,5
M502,40,3,85,35,300,4
M503,30,2,65,25,100,3
M504,60,4,90,20,120,2
M505,70,3,75,15,150,3
M506,80,2,88,15,200,5
M507,45,3,82,25,150,3
M508,500,1,75,10,600,1
M509,300,2,85,5,400,1
M510,20,2,70,30,80,2`

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	input := opts.Input
	if input == "" {
		// No input: run the built-in sample fleet through a temp file.
		path, err := writeSampleInput()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to prepare sample input: %v\n", err)
			os.Exit(1)
		}
		defer os.Remove(path)
		input = path
	}

	job := model.JobSpec{
		Input: input,
		Concurrency: model.ConcurrencyConfig{
			Workers: model.Workers{
				Validation: opts.ValidationWorkers,
				Metrics:    opts.MetricsWorkers,
			},
			JobTimeout: opts.Timeout,
		},
		Logging: !opts.Quiet,
	}
	if opts.OutputDir != "" {
		job.Export = &model.Export{Dir: opts.OutputDir}
	}

	runID := uuid.New().String()
	result, err := pipeline.Run(context.Background(), runID, job)

	if result.Report != "" {
		fmt.Println(result.Report)
	}
	if err != nil {
		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "run %s failed: %v\n", runID, err)
		}
		os.Exit(1)
	}
}

func writeSampleInput() (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("maintenance-sample-%s.csv", uuid.New().String()[:8]))
	if err := os.WriteFile(path, []byte(sampleData), 0644); err != nil {
		return "", err
	}
	return path, nil
}
