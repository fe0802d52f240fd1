package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Code(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		id          uint
		want        string
	}{
		{name: "plain name", projectName: "Helpdesk", id: 1, want: "HEL"},
		{name: "skips punctuation and spaces", projectName: "I.T. Support", id: 2, want: "ITS"},
		{name: "short name", projectName: "HR", id: 3, want: "HR"},
		{name: "digits count", projectName: "3D Printing", id: 4, want: "3DP"},
		{name: "no alphanumerics falls back to id", projectName: "---", id: 7, want: "P7"},
		{name: "fallback truncated to three characters", projectName: "***", id: 123, want: "P12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ReconstructProject(tt.id, tt.projectName, "", "", true, time.Now(), time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Code())
		})
	}
}

func TestProject_Slug(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		want        string
	}{
		{name: "plain name", projectName: "Helpdesk", want: "helpdesk"},
		{name: "spaces and punctuation removed", projectName: "Campus IT / Facilities", want: "campusitfacilities"},
		{name: "no alphanumerics", projectName: "---", want: "unknown_project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ReconstructProject(1, tt.projectName, "", "", true, time.Now(), time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Slug())
		})
	}
}

func TestProject_SetIDOnce(t *testing.T) {
	p, err := NewProject("Helpdesk", "", "it@example.edu")
	require.NoError(t, err)

	require.NoError(t, p.SetID(5))
	assert.Error(t, p.SetID(6))
	assert.Equal(t, uint(5), p.ID())
}
