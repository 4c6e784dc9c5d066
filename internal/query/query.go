// Package query builds the immutable persona/job query that drives
// relevance scoring: role and task text plus a mined keyword set.
package query

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults substituted when the persona configuration is missing or
// malformed.
const (
	DefaultPersona = "Document Analyst"
	DefaultJob     = "General document analysis"
)

// PersonaConfig is the run configuration: who is reading and what for.
type PersonaConfig struct {
	Persona   string
	Job       string
	Documents []string
}

// Query is derived once per run and read-only downstream.
type Query struct {
	Persona  string
	Job      string
	Combined string
	Keywords []string
}

// Build derives the run query from the persona configuration and the
// corpus filenames.
func Build(pc PersonaConfig, filenames []string) Query {
	return Query{
		Persona:  pc.Persona,
		Job:      pc.Job,
		Combined: fmt.Sprintf("%s. %s", pc.Persona, pc.Job),
		Keywords: Mine(pc.Persona, pc.Job, filenames),
	}
}

// personaFile mirrors the on-disk JSON. The persona and job fields accept
// either a bare string or an object ({"role": ...} / {"task": ...}).
type personaFile struct {
	Persona     json.RawMessage `json:"persona"`
	JobToBeDone json.RawMessage `json:"job_to_be_done"`
	Documents   []documentRef   `json:"documents"`
}

type documentRef struct {
	Filename string
}

func (d *documentRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Filename = s
		return nil
	}
	var obj struct {
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	d.Filename = obj.Filename
	return nil
}

// LoadPersona reads a persona configuration file. Any failure falls back
// to the documented defaults; the returned error reports what went wrong
// so callers can log it, but the config is always usable.
func LoadPersona(path string) (PersonaConfig, error) {
	fallback := PersonaConfig{Persona: DefaultPersona, Job: DefaultJob}

	data, err := os.ReadFile(path)
	if err != nil {
		return fallback, fmt.Errorf("read persona config: %w", err)
	}

	var pf personaFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return fallback, fmt.Errorf("parse persona config: %w", err)
	}

	cfg := PersonaConfig{
		Persona: stringOrField(pf.Persona, "role"),
		Job:     stringOrField(pf.JobToBeDone, "task"),
	}
	if cfg.Persona == "" {
		cfg.Persona = DefaultPersona
	}
	if cfg.Job == "" {
		cfg.Job = DefaultJob
	}
	for _, d := range pf.Documents {
		if d.Filename != "" {
			cfg.Documents = append(cfg.Documents, d.Filename)
		}
	}
	return cfg, nil
}

func stringOrField(raw json.RawMessage, field string) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj[field]
	}
	return ""
}
