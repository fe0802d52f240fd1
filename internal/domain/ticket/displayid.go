package ticket

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"deskhub/internal/domain/catalog"
)

// GenericPrefix is the display-ID prefix used when a ticket has no project.
const GenericPrefix = "IT"

// SequenceSource exposes the persisted-ticket reads the generator needs. The
// repository implements it.
type SequenceSource interface {
	// LastDisplayID returns the lexicographically highest display ID for the
	// project starting with prefix, or "" when none exists.
	LastDisplayID(ctx context.Context, projectID uint, prefix string) (string, error)
	// CountForProjectYear counts tickets created for the project in the year.
	CountForProjectYear(ctx context.Context, projectID uint, year int) (int64, error)
	// CountByPrefix counts tickets whose display ID starts with prefix.
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
}

// DisplayIDGenerator produces ticket display IDs in the form
// {CODE}-{YEAR}-{NNNNN}: three alphanumerics from the project name, the
// calendar year, and a five-digit zero-padded per-project-per-year sequence.
//
// The read-then-increment is racy: two concurrent creations for the same
// project and year can observe the same last sequence and emit identical IDs.
// This is left unserialized; the unique index on the display ID column rejects
// the second insert and the failure surfaces to the caller as a conflict.
type DisplayIDGenerator struct {
	source SequenceSource
}

func NewDisplayIDGenerator(source SequenceSource) *DisplayIDGenerator {
	return &DisplayIDGenerator{source: source}
}

func (g *DisplayIDGenerator) Generate(ctx context.Context, project *catalog.Project, now time.Time) (string, error) {
	year := now.Year()

	if project == nil {
		prefix := fmt.Sprintf("%s-%d-", GenericPrefix, year)
		count, err := g.source.CountByPrefix(ctx, prefix)
		if err != nil {
			return "", fmt.Errorf("failed to count generic tickets: %w", err)
		}
		return fmt.Sprintf("%s%05d", prefix, count+1), nil
	}

	code := project.Code()
	prefix := fmt.Sprintf("%s-%d-", code, year)

	last, err := g.source.LastDisplayID(ctx, project.ID(), prefix)
	if err != nil {
		return "", fmt.Errorf("failed to read last display ID: %w", err)
	}

	next := 1
	if last != "" && strings.HasPrefix(last, prefix) {
		if seq, ok := parseSequence(last); ok {
			next = seq + 1
		} else {
			count, err := g.source.CountForProjectYear(ctx, project.ID(), year)
			if err != nil {
				return "", fmt.Errorf("failed to count project tickets: %w", err)
			}
			next = int(count) + 1
		}
	} else {
		count, err := g.source.CountForProjectYear(ctx, project.ID(), year)
		if err != nil {
			return "", fmt.Errorf("failed to count project tickets: %w", err)
		}
		next = int(count) + 1
	}

	return fmt.Sprintf("%s%05d", prefix, next), nil
}

func parseSequence(displayID string) (int, bool) {
	idx := strings.LastIndex(displayID, "-")
	if idx < 0 || idx == len(displayID)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(displayID[idx+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
