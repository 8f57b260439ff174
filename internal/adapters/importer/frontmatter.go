package importer

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
)

var (
	delimiter = []byte("---")
	opening   = []byte("---\n")
)

// splitFrontmatter separates the YAML header from the markdown body. A file
// without a header is all body.
func splitFrontmatter(data []byte) ([]byte, string, error) {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(data, opening) {
		return nil, string(bytes.TrimSpace(data)), nil
	}

	rest := data[len(opening):]
	var header []byte
	for {
		line, tail, found := bytes.Cut(rest, []byte("\n"))
		if bytes.Equal(bytes.TrimRight(line, " \t"), delimiter) {
			return header, string(bytes.TrimSpace(tail)), nil
		}
		if !found {
			return nil, "", fmt.Errorf("unterminated frontmatter")
		}
		header = append(header, line...)
		header = append(header, '\n')
		rest = tail
	}
}

func decodeFrontmatter(data []byte, meta any) (string, error) {
	header, body, err := splitFrontmatter(data)
	if err != nil {
		return "", err
	}
	if len(header) > 0 {
		if err := yaml.Unmarshal(header, meta); err != nil {
			return "", fmt.Errorf("frontmatter: %w", err)
		}
	}
	return body, nil
}

type habitMeta struct {
	Name        string           `yaml:"name"`
	Days        []int            `yaml:"days"`
	Color       string           `yaml:"color"`
	Completions []domain.DateKey `yaml:"completions"`
}

type activityMeta struct {
	Name string         `yaml:"name"`
	Date domain.DateKey `yaml:"date"`
}

type presetMeta struct {
	Name string `yaml:"name"`
}

type mediaMeta struct {
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
	Type    string `yaml:"type"`
	Status  string `yaml:"status"`
	Rating  string `yaml:"rating"`
}

type setMeta struct {
	Reps   *int             `yaml:"reps"`
	Weight *decimal.Decimal `yaml:"weight"`
}

type exerciseMeta struct {
	Name string    `yaml:"name"`
	Sets []setMeta `yaml:"sets"`
}

type groupMeta struct {
	Name        string         `yaml:"name"`
	RestSeconds int            `yaml:"rest_seconds"`
	Exercises   []exerciseMeta `yaml:"exercises"`
}

type workoutMeta struct {
	Date   domain.DateKey   `yaml:"date"`
	Time   domain.TimeOfDay `yaml:"time"`
	Groups []groupMeta      `yaml:"groups"`
}

type templateMeta struct {
	Name   string      `yaml:"name"`
	Groups []groupMeta `yaml:"groups"`
}

func toGroups(in []groupMeta) domain.Groups {
	out := make(domain.Groups, 0, len(in))
	for _, g := range in {
		group := domain.ExerciseGroup{
			Name:        g.Name,
			RestSeconds: g.RestSeconds,
			Exercises:   make([]domain.Exercise, 0, len(g.Exercises)),
		}
		for _, e := range g.Exercises {
			ex := domain.Exercise{Name: e.Name, Sets: make([]domain.WorkoutSet, 0, len(e.Sets))}
			for _, s := range e.Sets {
				ex.Sets = append(ex.Sets, domain.WorkoutSet{Reps: s.Reps, Weight: s.Weight})
			}
			group.Exercises = append(group.Exercises, ex)
		}
		out = append(out, group)
	}
	return out
}
