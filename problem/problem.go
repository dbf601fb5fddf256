package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deepsearch/dominos"
	"github.com/katalvlaran/deepsearch/space"
)

// ErrFormat is returned for input that does not follow either format.
var ErrFormat = errors.New("problem: malformed problem file")

// Problem is a domino set together with the budgets to search it with.
// A nil capacity was not given by the file; the caller picks a default.
type Problem struct {
	FrontierCapacity *int
	TotalCapacity    *int
	Dominos          []dominos.Domino
}

// Space builds the domino state space of p.
func (p *Problem) Space() (*dominos.Space, error) {
	return dominos.New(p.Dominos)
}

// Load reads the problem at path, choosing the format by extension.
func Load(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening problem file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}

// Parse reads the plain text format.
func Parse(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	p := &Problem{}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case line == 1:
			n, err := parseCapacity(text)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: frontier capacity: %v", ErrFormat, line, err)
			}
			p.FrontierCapacity = &n
		case line == 2:
			n, err := parseCapacity(text)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: total capacity: %v", ErrFormat, line, err)
			}
			p.TotalCapacity = &n
		case text == "":
		default:
			d, err := parseDomino(text)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, line, err)
			}
			p.Dominos = append(p.Dominos, d)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading problem: %w", err)
	}
	if line < 2 {
		return nil, fmt.Errorf("%w: missing capacity lines", ErrFormat)
	}

	return p, nil
}

func parseCapacity(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}

	return n, nil
}

func parseDomino(s string) (dominos.Domino, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return dominos.Domino{}, fmt.Errorf("want \"<index> <top> <bottom>\", got %q", s)
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil {
		return dominos.Domino{}, fmt.Errorf("domino index: %v", err)
	}

	return dominos.Domino{Index: space.TransitionID(idx), Top: fields[1], Bottom: fields[2]}, nil
}

type yamlDomino struct {
	Index  int    `yaml:"index"`
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

type yamlProblem struct {
	FrontierCapacity *int         `yaml:"frontier_capacity"`
	TotalCapacity    *int         `yaml:"total_capacity"`
	Dominos          []yamlDomino `yaml:"dominos"`
}

// ParseYAML reads the YAML format. Both capacities are optional; unknown
// keys are rejected.
func ParseYAML(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw yamlProblem
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrFormat)
		}
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	for _, c := range []*int{raw.FrontierCapacity, raw.TotalCapacity} {
		if c != nil && *c < 0 {
			return nil, fmt.Errorf("%w: capacities cannot be negative", ErrFormat)
		}
	}

	p := &Problem{
		FrontierCapacity: raw.FrontierCapacity,
		TotalCapacity:    raw.TotalCapacity,
		Dominos:          make([]dominos.Domino, 0, len(raw.Dominos)),
	}
	for _, d := range raw.Dominos {
		p.Dominos = append(p.Dominos, dominos.Domino{Index: space.TransitionID(d.Index), Top: d.Top, Bottom: d.Bottom})
	}

	return p, nil
}
