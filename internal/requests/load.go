package requests

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadScheduleRequests reads jobs from a YAML, JSON or CSV file, picked by
// extension.
func LoadScheduleRequests(path string) (*ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening jobs file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		jobs, err := ParseCSV(f)
		if err != nil {
			return nil, err
		}
		return &ScheduleRequests{Jobs: jobs}, nil
	case ".yaml", ".yml", ".json":
		return ParseYAML(f)
	default:
		return nil, fmt.Errorf("unsupported jobs file %q: want .yaml, .yml, .json or .csv", path)
	}
}

// ParseYAML decodes a request document. JSON is accepted as well since it is
// valid YAML.
func ParseYAML(r io.Reader) (*ScheduleRequests, error) {
	var req ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&req); err != nil {
		if err == io.EOF {
			return &ScheduleRequests{Jobs: []Job{}}, nil
		}
		return nil, fmt.Errorf("parsing jobs file: %w", err)
	}
	if req.Jobs == nil {
		req.Jobs = []Job{}
	}
	return &req, nil
}

// ParseCSV reads rows of name,arrival_time,burst_time[,priority]. A first
// row starting with "name" is treated as a header.
func ParseCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	jobs := make([]Job, 0, len(rows))
	for n, row := range rows {
		if n == 0 && len(row) > 0 && strings.EqualFold(row[0], "name") {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("CSV line %d: want 3 or 4 columns, got %d", n+1, len(row))
		}
		job := Job{Name: row[0]}
		if job.ArrivalTime, err = strconv.Atoi(row[1]); err != nil {
			return nil, fmt.Errorf("CSV line %d: arrival_time: %w", n+1, err)
		}
		if job.BurstTime, err = strconv.Atoi(row[2]); err != nil {
			return nil, fmt.Errorf("CSV line %d: burst_time: %w", n+1, err)
		}
		if len(row) == 4 && row[3] != "" {
			priority, err := strconv.Atoi(row[3])
			if err != nil {
				return nil, fmt.Errorf("CSV line %d: priority: %w", n+1, err)
			}
			job.Priority = &priority
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
