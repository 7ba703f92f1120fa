package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/napolitain/solver-geodes/internal/models"
)

// ErrMalformedBlueprint is returned for lines that do not follow the blueprint template
var ErrMalformedBlueprint = errors.New("malformed blueprint")

// Precompiled regex for better performance
var blueprintRegex = regexp.MustCompile(`^Blueprint (\d+): ` +
	`Each ore robot costs (\d+) ore\. ` +
	`Each clay robot costs (\d+) ore\. ` +
	`Each obsidian robot costs (\d+) ore and (\d+) clay\. ` +
	`Each geode robot costs (\d+) ore and (\d+) obsidian\.$`)

// ParseBlueprint parses a single blueprint line
func ParseBlueprint(line string) (*models.Blueprint, error) {
	m := blueprintRegex.FindStringSubmatch(line)
	if m == nil {
		return nil, ErrMalformedBlueprint
	}

	// id, ore robot ore, clay robot ore, obsidian robot ore+clay, geode robot ore+obsidian
	var v [7]int
	for i := range v {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: field %d: %w", ErrMalformedBlueprint, i+1, err)
		}
		v[i] = n
	}

	return models.NewBlueprint(v[0], v[1], v[2], v[3], v[4], v[5], v[6]), nil
}

// ReadBlueprints parses one blueprint per line. Blank lines are skipped; the
// first malformed line aborts the whole read.
func ReadBlueprints(r io.Reader) ([]*models.Blueprint, error) {
	var blueprints []*models.Blueprint

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		bp, err := ParseBlueprint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		blueprints = append(blueprints, bp)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}

	return blueprints, nil
}

// LoadBlueprints reads blueprints from a file
func LoadBlueprints(path string) ([]*models.Blueprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open blueprints: %w", err)
	}
	defer file.Close()

	return ReadBlueprints(file)
}
