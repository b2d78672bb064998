package minutes

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Job is one unit of work: a recorded meeting plus the template the
// minutes must conform to. Jobs are immutable once decoded and terminal
// on success or failure; no partial document is retained.
type Job struct {
	JobID       string `json:"job_id"`
	BlobURL     string `json:"blob_url"`
	TemplateURL string `json:"template_blob_url"`
}

// DecodeWorkItem parses a work-item message. Queue transports may wrap
// the JSON payload in whole-body base64; both encodings are accepted
// transparently.
func DecodeWorkItem(raw []byte) (Job, error) {
	var job Job

	data := raw
	if err := json.Unmarshal(data, &job); err != nil {
		decoded, decErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
		if decErr != nil {
			return Job{}, fmt.Errorf("work item is neither JSON nor base64-encoded JSON: %w", err)
		}
		if err := json.Unmarshal(decoded, &job); err != nil {
			return Job{}, fmt.Errorf("parse base64-decoded work item: %w", err)
		}
	}

	if job.JobID == "" {
		return Job{}, fmt.Errorf("work item missing job_id")
	}
	if job.BlobURL == "" {
		return Job{}, fmt.Errorf("work item missing blob_url")
	}
	if job.TemplateURL == "" {
		return Job{}, fmt.Errorf("work item missing template_blob_url")
	}

	return job, nil
}
