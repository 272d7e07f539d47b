// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matgen/gen"
	"github.com/katalvlaran/matgen/rng"
)

// defaultPowerIters is the power-iteration count used for the spectral norm
// when a job does not set one.
const defaultPowerIters = 20

// errJobFile marks malformed job files.
var errJobFile = errors.New("matgen: invalid job file")

// jobFile is the YAML document read by `matgen generate`.
//
//	seed: 42
//	jobs:
//	  - name: poly
//	    family: polynomial
//	    rows: 200
//	    cols: 50
//	    rank: 50
//	    cond: 1e6
type jobFile struct {
	Seed uint64 `yaml:"seed"`
	Jobs []job  `yaml:"jobs"`
}

// job is one matrix request. Zero values select the gen.NewSpec defaults.
type job struct {
	Name          string  `yaml:"name"`
	Family        string  `yaml:"family"`
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	Rank          int     `yaml:"rank,omitempty"`
	Cond          float64 `yaml:"cond,omitempty"`
	Scaling       float64 `yaml:"scaling,omitempty"`
	Diagonal      bool    `yaml:"diagonal,omitempty"`
	CheckTrueRank bool    `yaml:"check_true_rank,omitempty"`
	PowerIters    int     `yaml:"power_iters,omitempty"`
	Seed          *uint64 `yaml:"seed,omitempty"`
}

// readJobFile opens and decodes path.
func readJobFile(path string) (jobFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return jobFile{}, err
	}
	defer f.Close()

	return decodeJobs(f)
}

// decodeJobs parses a job file strictly: unknown keys are rejected so typos
// do not silently fall back to defaults.
func decodeJobs(r io.Reader) (jobFile, error) {
	var jf jobFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&jf); err != nil {
		return jobFile{}, fmt.Errorf("%w: %v", errJobFile, err)
	}
	if len(jf.Jobs) == 0 {
		return jobFile{}, fmt.Errorf("%w: no jobs", errJobFile)
	}
	seen := make(map[string]struct{}, len(jf.Jobs))
	for i := range jf.Jobs {
		if jf.Jobs[i].Name == "" {
			jf.Jobs[i].Name = fmt.Sprintf("job%d", i)
		}
		if !validJobName(jf.Jobs[i].Name) {
			return jobFile{}, fmt.Errorf("%w: job name %q must not contain path separators", errJobFile, jf.Jobs[i].Name)
		}
		if _, dup := seen[jf.Jobs[i].Name]; dup {
			return jobFile{}, fmt.Errorf("%w: duplicate job name %q", errJobFile, jf.Jobs[i].Name)
		}
		seen[jf.Jobs[i].Name] = struct{}{}
	}

	return jf, nil
}

// validJobName reports whether name can be used as a plot file stem inside
// --plot-dir: no separators and no dot-only names.
func validJobName(name string) bool {
	return !strings.ContainsAny(name, `/\`) && name != "." && name != ".."
}

// spec converts j into a validated gen.Spec.
func (j job) spec() (gen.Spec, error) {
	family, err := gen.ParseFamily(j.Family)
	if err != nil {
		return gen.Spec{}, fmt.Errorf("job %q: %w", j.Name, err)
	}
	s := gen.NewSpec(j.Rows, j.Cols, family)
	if j.Rank != 0 {
		s.Rank = j.Rank
	}
	if j.Cond != 0 {
		s.CondNum = j.Cond
	}
	if j.Scaling != 0 {
		s.Scaling = j.Scaling
	}
	s.Diagonal = j.Diagonal
	s.CheckTrueRank = j.CheckTrueRank
	if err = s.Validate(); err != nil {
		return gen.Spec{}, fmt.Errorf("job %q: %w", j.Name, err)
	}

	return s, nil
}

// powerIters returns the configured iteration count or the default.
func (j job) powerIters() int {
	if j.PowerIters > 0 {
		return j.PowerIters
	}

	return defaultPowerIters
}

// state returns the rng state for job i: its own seed when set, otherwise an
// independent sub-stream of the file seed. Results therefore do not depend on
// the order in which workers pick jobs up.
func (jf jobFile) state(i int) rng.State {
	if s := jf.Jobs[i].Seed; s != nil {
		return rng.New(*s)
	}

	return rng.New(jf.Seed).Split(uint64(i))
}
