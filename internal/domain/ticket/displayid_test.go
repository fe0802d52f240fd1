package ticket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/internal/domain/catalog"
)

type mockSequenceSource struct {
	lastDisplayIDFunc       func(ctx context.Context, projectID uint, prefix string) (string, error)
	countForProjectYearFunc func(ctx context.Context, projectID uint, year int) (int64, error)
	countByPrefixFunc       func(ctx context.Context, prefix string) (int64, error)
}

func (m *mockSequenceSource) LastDisplayID(ctx context.Context, projectID uint, prefix string) (string, error) {
	return m.lastDisplayIDFunc(ctx, projectID, prefix)
}

func (m *mockSequenceSource) CountForProjectYear(ctx context.Context, projectID uint, year int) (int64, error) {
	return m.countForProjectYearFunc(ctx, projectID, year)
}

func (m *mockSequenceSource) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	return m.countByPrefixFunc(ctx, prefix)
}

func helpdeskProject() *catalog.Project {
	p, err := catalog.ReconstructProject(1, "Helpdesk", "", "", true, time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	return p
}

func TestDisplayIDGenerator_Generate(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		project *catalog.Project
		source  *mockSequenceSource
		want    string
		wantErr bool
	}{
		{
			name:    "first ticket of the year",
			project: helpdeskProject(),
			source: &mockSequenceSource{
				lastDisplayIDFunc: func(ctx context.Context, projectID uint, prefix string) (string, error) {
					return "", nil
				},
				countForProjectYearFunc: func(ctx context.Context, projectID uint, year int) (int64, error) {
					return 0, nil
				},
			},
			want: "HEL-2026-00001",
		},
		{
			name:    "increments the last sequence",
			project: helpdeskProject(),
			source: &mockSequenceSource{
				lastDisplayIDFunc: func(ctx context.Context, projectID uint, prefix string) (string, error) {
					return "HEL-2026-00041", nil
				},
			},
			want: "HEL-2026-00042",
		},
		{
			name:    "malformed last ID falls back to year count",
			project: helpdeskProject(),
			source: &mockSequenceSource{
				lastDisplayIDFunc: func(ctx context.Context, projectID uint, prefix string) (string, error) {
					return "HEL-2026-oops", nil
				},
				countForProjectYearFunc: func(ctx context.Context, projectID uint, year int) (int64, error) {
					return 12, nil
				},
			},
			want: "HEL-2026-00013",
		},
		{
			name:    "nil project uses the generic prefix",
			project: nil,
			source: &mockSequenceSource{
				countByPrefixFunc: func(ctx context.Context, prefix string) (int64, error) {
					assert.Equal(t, "IT-2026-", prefix)
					return 3, nil
				},
			},
			want: "IT-2026-00004",
		},
		{
			name:    "source error propagates",
			project: helpdeskProject(),
			source: &mockSequenceSource{
				lastDisplayIDFunc: func(ctx context.Context, projectID uint, prefix string) (string, error) {
					return "", assert.AnError
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewDisplayIDGenerator(tt.source)
			got, err := gen.Generate(context.Background(), tt.project, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		displayID string
		want      int
		ok        bool
	}{
		{displayID: "HEL-2026-00042", want: 42, ok: true},
		{displayID: "IT-2026-00001", want: 1, ok: true},
		{displayID: "HEL-2026-", ok: false},
		{displayID: "nodash", ok: false},
		{displayID: "HEL-2026-abc", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.displayID, func(t *testing.T) {
			got, ok := parseSequence(tt.displayID)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
