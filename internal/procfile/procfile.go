// Package procfile loads the batch of process definitions a simulation
// runs. The format is one whitespace-separated record per line, fields
// in the order
//
//	pid arrival_ms total_cpu_ms burst_interval_ms io_ms priority
//
// Blank lines and lines starting with # are skipped. Records are fully
// validated here so the scheduler can trust its input.
package procfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/viant/afs"

	"github.com/korhansevinc/process-scheduler/internal/sched"
)

const fieldsPerRecord = 6

// Load reads and parses the process file at URL, which may be a plain
// path or any scheme afs understands (file, mem, embed, ...).
func Load(ctx context.Context, URL string) ([]sched.ProcessSpec, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("read process file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse reads process records from r. Any malformed or invalid record
// aborts the whole batch with an error naming the line.
func Parse(r io.Reader) ([]sched.ProcessSpec, error) {
	var specs []sched.ProcessSpec
	seen := map[int]int{} // pid -> first line it appeared on

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != fieldsPerRecord {
			return nil, fmt.Errorf("line %d: want %d fields, got %d", line, fieldsPerRecord, len(fields))
		}
		nums := make([]int64, fieldsPerRecord)
		for i, f := range fields {
			n, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: field %d %q: not an integer", line, i+1, f)
			}
			nums[i] = n
		}

		spec := sched.ProcessSpec{
			PID:      int(nums[0]),
			Arrival:  nums[1],
			TotalCPU: nums[2],
			Interval: nums[3],
			IOTime:   nums[4],
			Priority: int(nums[5]),
		}
		if err := validate(spec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if first, dup := seen[spec.PID]; dup {
			return nil, fmt.Errorf("line %d: duplicate pid %d, first defined on line %d", line, spec.PID, first)
		}
		seen[spec.PID] = line
		specs = append(specs, spec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, errors.New("no process records found")
	}
	return specs, nil
}

// validate enforces the ranges the scheduler relies on. Zero total CPU
// or a zero burst interval would make a process undispatchable, so both
// are rejected here rather than looping forever later.
func validate(spec sched.ProcessSpec) error {
	switch {
	case spec.PID < 0:
		return fmt.Errorf("pid %d: must not be negative", spec.PID)
	case spec.Arrival < 0:
		return fmt.Errorf("pid %d: arrival %d must not be negative", spec.PID, spec.Arrival)
	case spec.TotalCPU < 1:
		return fmt.Errorf("pid %d: total cpu time %d must be at least 1", spec.PID, spec.TotalCPU)
	case spec.Interval < 1:
		return fmt.Errorf("pid %d: burst interval %d must be at least 1", spec.PID, spec.Interval)
	case spec.IOTime < 0:
		return fmt.Errorf("pid %d: io time %d must not be negative", spec.PID, spec.IOTime)
	case spec.Priority < sched.MinPriority || spec.Priority > sched.MaxPriority:
		return fmt.Errorf("pid %d: priority %d outside %d..%d", spec.PID, spec.Priority, sched.MinPriority, sched.MaxPriority)
	}
	return nil
}
