package postgres

import (
	"testing"

	"job-board-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQueryWithoutFilter(t *testing.T) {
	query, args := buildListQuery(domain.JobFilter{})

	assert.Equal(t, selectJobs+" ORDER BY created_at DESC", query)
	assert.Empty(t, args)
}

func TestBuildListQueryNumbersPlaceholdersInOrder(t *testing.T) {
	query, args := buildListQuery(domain.JobFilter{Type: "Contract", Location: "remo", Tag: "react"})

	assert.Contains(t, query, "type = $1")
	assert.Contains(t, query, "strpos(lower(location), lower($2)) > 0")
	assert.Contains(t, query, "unnest(tags) AS t WHERE strpos(lower(t), lower($3)) > 0")
	assert.Contains(t, query, " AND ")
	assert.Equal(t, []interface{}{"Contract", "remo", "react"}, args)
}

func TestBuildListQuerySkipsEmptyFields(t *testing.T) {
	query, args := buildListQuery(domain.JobFilter{Tag: "50%_off"})

	assert.NotContains(t, query, "type =")
	assert.NotContains(t, query, "location")
	assert.Contains(t, query, "lower($1)")
	assert.Equal(t, []interface{}{"50%_off"}, args)
}
