package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionListQueries_SortMostRecentFirst(t *testing.T) {
	queries := map[string]string{
		"all":        allSessionsQuery,
		"by student": sessionsByStudentQuery,
		"by mentor":  sessionsByMentorQuery,
	}

	for name, query := range queries {
		assert.Contains(t, query, "ORDER BY scheduled_at DESC", "%s query", name)
	}
}

func TestUpcomingSessionsQuery_IncludesSessionsStartingNow(t *testing.T) {
	query := fmt.Sprintf(upcomingSessionsQuery, "student_id")

	assert.Contains(t, query, "scheduled_at >= NOW()")
	assert.Contains(t, query, "ORDER BY scheduled_at ASC")
	assert.Contains(t, query, "student_id = $1")
}
